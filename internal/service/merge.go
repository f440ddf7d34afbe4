package service

import (
	"sort"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

// sortEvents orders the merged timeline newest first. Equal timestamps fall
// back to the source-kind rank and then the event id, so the order is stable
// across runs no matter which fetch finished first.
func sortEvents(events []model.TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		if a.SortRank != b.SortRank {
			return a.SortRank < b.SortRank
		}
		return a.ID < b.ID
	})
}

// filterEvents applies the optional category and severity filters, both
// exact-match and combined with AND. Nil filters pass everything through.
func filterEvents(events []model.TimelineEvent, category *model.EventCategory, severity *model.EventSeverity) []model.TimelineEvent {
	if category == nil && severity == nil {
		return events
	}
	filtered := make([]model.TimelineEvent, 0, len(events))
	for _, e := range events {
		if category != nil && e.Category != *category {
			continue
		}
		if severity != nil && e.Severity != *severity {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// paginate slices one page out of the filtered timeline. Pages are 1-based; a
// page past the end yields an empty slice, not an error.
func paginate(events []model.TimelineEvent, page, limit int) ([]model.TimelineEvent, model.Pagination) {
	total := len(events)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return events[start:end], model.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    end < total,
	}
}

// computeStatistics tallies the full unfiltered timeline, so clients can show
// category badges with true counts regardless of the active filter or page.
func computeStatistics(events []model.TimelineEvent, data *sourceData) model.TimelineStatistics {
	stats := model.TimelineStatistics{
		TotalEvents: len(events),
		ByCategory:  make(map[model.EventCategory]int),
		BySeverity:  make(map[model.EventSeverity]int),
		SourceCounts: model.SourceCounts{
			AuditLogs:      len(data.auditLogs),
			Bookings:       len(data.bookings),
			ServiceRecords: len(data.serviceRecords),
			Claims:         len(data.claims),
			Payouts:        len(data.payouts),
			Photos:         len(data.photos),
			ClaimPhotos:    len(data.claimPhotos),
		},
	}
	for _, e := range events {
		stats.ByCategory[e.Category]++
		stats.BySeverity[e.Severity]++
	}
	return stats
}
