package service

import (
	"fmt"
	"time"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

// syntheticEvents derives compliance events from vehicle state rather than
// stored records. Currently that means registration expiry: a warning when the
// expiry date falls inside the configured window, escalating as it approaches,
// and a critical lapse event once it has passed. Both are timestamped at the
// aggregation moment, so they surface at the top of the timeline.
func (s *timelineService) syntheticEvents(v *model.Vehicle, now time.Time) []model.TimelineEvent {
	if v.RegistrationExpiry == nil {
		return nil
	}

	expiry := *v.RegistrationExpiry
	days := daysUntil(now, expiry)

	if days < 0 {
		return []model.TimelineEvent{{
			ID:              fmt.Sprintf("vehicle-%d-registration-expired", v.ID),
			Category:        model.CategoryCompliance,
			Action:          model.ActionRegistrationLapsed,
			Description:     fmt.Sprintf("Registration expired %d days ago", -days),
			PerformedBy:     systemActor,
			PerformedByType: model.ActorSystem,
			Severity:        model.SeverityCritical,
			Metadata: map[string]any{
				"expiresAt":   expiry.Format("2006-01-02"),
				"daysExpired": -days,
			},
			Timestamp: now,
			SortRank:  model.RankSynthetic,
		}}
	}

	if days > s.opts.ExpiryWindowDays {
		return nil
	}

	severity := model.SeverityInfo
	switch {
	case days <= s.opts.ExpiryErrorDays:
		severity = model.SeverityError
	case days <= s.opts.ExpiryWarningDays:
		severity = model.SeverityWarning
	}

	return []model.TimelineEvent{{
		ID:              fmt.Sprintf("vehicle-%d-registration-expiry", v.ID),
		Category:        model.CategoryCompliance,
		Action:          model.ActionRegistrationExpiry,
		Description:     fmt.Sprintf("Registration expires in %d days", days),
		PerformedBy:     systemActor,
		PerformedByType: model.ActorSystem,
		Severity:        severity,
		Metadata: map[string]any{
			"expiresAt":       expiry.Format("2006-01-02"),
			"daysUntilExpiry": days,
		},
		Timestamp: now,
		SortRank:  model.RankSynthetic,
	}}
}

// daysUntil counts whole calendar days from now to target, negative when
// target is in the past.
func daysUntil(now, target time.Time) int {
	nowDay := now.UTC().Truncate(24 * time.Hour)
	targetDay := target.UTC().Truncate(24 * time.Hour)
	return int(targetDay.Sub(nowDay) / (24 * time.Hour))
}
