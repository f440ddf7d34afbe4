package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

// systemActor is the display name used when no human actor applies.
const systemActor = "System"

// Attribution is the request-scoped actor lookup table. It is built once per
// aggregation from at most one batched query per identifier space and then
// threaded through the normalizer functions; nothing resolves ids inside a
// loop. It is discarded with the rest of the run.
type Attribution struct {
	admins map[int64]string
	hosts  map[int64]model.Host

	// When a batch lookup fails the space degrades to generic labels instead
	// of failing the aggregation; attribution is enrichment, not correctness.
	adminsDegraded bool
	hostsDegraded  bool
}

// Admin resolves an admin id to a display name.
func (a *Attribution) Admin(id int64) (string, model.ActorType) {
	if name, ok := a.admins[id]; ok {
		return name, model.ActorAdmin
	}
	return "Admin", model.ActorAdmin
}

// Host resolves a host id to a display name.
func (a *Attribution) Host(id int64) (string, model.ActorType) {
	if h, ok := a.hosts[id]; ok {
		return h.Name, model.ActorHost
	}
	return "Host", model.ActorHost
}

// HostSummary returns the full host row when the batch lookup found it.
func (a *Attribution) HostSummary(id int64) (model.Host, bool) {
	h, ok := a.hosts[id]
	return h, ok
}

// resolveActors is the second fan-out stage: it collects every distinct actor
// id discovered by the source fetches and resolves each identifier space with
// one batched call. Lookup failures degrade with a warning.
func (s *timelineService) resolveActors(ctx context.Context, data *sourceData) *Attribution {
	adminIDs := collectAdminIDs(data)
	hostIDs := collectHostIDs(data)

	attr := &Attribution{
		admins: make(map[int64]string, len(adminIDs)),
		hosts:  make(map[int64]model.Host, len(hostIDs)),
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		admins, err := s.deps.Admins.ListByIDs(ctx, adminIDs)
		if err != nil {
			slog.WarnContext(ctx, "admin attribution lookup failed, degrading to generic labels", "error", err)
			attr.adminsDegraded = true
			return
		}
		for _, a := range admins {
			attr.admins[a.ID] = a.Name
		}
	}()

	go func() {
		defer wg.Done()
		hosts, err := s.deps.Hosts.ListByIDs(ctx, hostIDs)
		if err != nil {
			slog.WarnContext(ctx, "host attribution lookup failed, degrading to generic labels", "error", err)
			attr.hostsDegraded = true
			return
		}
		for _, h := range hosts {
			attr.hosts[h.ID] = h
		}
	}()

	wg.Wait()
	return attr
}

func collectAdminIDs(data *sourceData) []int64 {
	seen := make(map[int64]struct{})
	for _, l := range data.auditLogs {
		if l.AdminID != nil {
			seen[*l.AdminID] = struct{}{}
		}
	}
	for _, r := range data.serviceRecords {
		if r.VerifiedByAdminID != nil {
			seen[*r.VerifiedByAdminID] = struct{}{}
		}
	}
	for _, c := range data.claims {
		if c.ReviewedByAdminID != nil {
			seen[*c.ReviewedByAdminID] = struct{}{}
		}
	}
	return idSet(seen)
}

func collectHostIDs(data *sourceData) []int64 {
	seen := make(map[int64]struct{})
	seen[data.vehicle.HostID] = struct{}{}
	for _, l := range data.auditLogs {
		if l.HostID != nil {
			seen[*l.HostID] = struct{}{}
		}
	}
	for _, p := range data.photos {
		if p.UploadedByHostID != nil {
			seen[*p.UploadedByHostID] = struct{}{}
		}
	}
	for _, p := range data.payouts {
		seen[p.HostID] = struct{}{}
	}
	return idSet(seen)
}

func idSet(seen map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return ids
}
