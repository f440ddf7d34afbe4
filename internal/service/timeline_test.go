package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
	"github.com/itwhiprentals/fleet-timeline/internal/service"
)

var _ = Describe("TimelineService", func() {
	var (
		f   *fixture
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
	})

	Describe("GetVehicleTimeline", func() {
		Context("when the vehicle does not exist", func() {
			It("should return ErrVehicleNotFound", func() {
				result, err := f.service().GetVehicleTimeline(ctx, service.GetTimelineParams{VehicleID: 999})

				Expect(err).To(MatchError(service.ErrVehicleNotFound))
				Expect(result).To(BeNil())
			})
		})

		Context("when a secondary source fails", func() {
			It("should fail the whole aggregation", func() {
				f.bookings.listByVehicleFn = func(_ context.Context, _ int64) ([]model.Booking, error) {
					return nil, errors.New("connection reset")
				}

				result, err := f.timeline(ctx)

				Expect(err).To(HaveOccurred())
				Expect(result).To(BeNil())

				var sfe *service.SourceFetchError
				Expect(errors.As(err, &sfe)).To(BeTrue())
				Expect(sfe.Source).To(Equal("bookings"))
			})
		})

		Context("when the vehicle has no history", func() {
			It("should still return the creation event", func() {
				result, err := f.timeline(ctx)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Events).To(HaveLen(1))
				Expect(result.Events[0].Action).To(Equal(model.ActionVehicleCreated))
				Expect(result.Events[0].Description).To(Equal("2023 Tesla Model 3 added to the fleet"))
				Expect(result.Events[0].PerformedBy).To(Equal("Maria Lopez"))
				Expect(result.Events[0].Timestamp).To(Equal(f.vehicle.CreatedAt))
			})
		})

		Context("ordering", func() {
			BeforeEach(func() {
				f.auditLogs.listByEntityFn = func(_ context.Context, _ string, _ int64) ([]model.AuditLog, error) {
					return []model.AuditLog{
						{ID: 1, Action: "PRICE_UPDATED", CreatedAt: daysAgo(f.now, 3)},
						{ID: 2, Action: "STATUS_CHANGED", CreatedAt: daysAgo(f.now, 10)},
					}, nil
				}
				f.payouts.listByVehicleFn = func(_ context.Context, _ int64) ([]model.Payout, error) {
					processed := daysAgo(f.now, 5)
					return []model.Payout{
						{ID: 1, HostID: testHostID, Amount: 120, ProcessedAt: &processed, CreatedAt: daysAgo(f.now, 6)},
					}, nil
				}
			})

			It("should order events newest first with the creation event last", func() {
				result, err := f.timeline(ctx)

				Expect(err).NotTo(HaveOccurred())
				for i := 1; i < len(result.Events); i++ {
					prev, cur := result.Events[i-1].Timestamp, result.Events[i].Timestamp
					Expect(prev.Before(cur)).To(BeFalse(),
						"event %d (%s) is newer than event %d (%s)", i, result.Events[i].ID, i-1, result.Events[i-1].ID)
				}

				last := result.Events[len(result.Events)-1]
				Expect(last.Action).To(Equal(model.ActionVehicleCreated))
				Expect(last.Timestamp).To(Equal(f.vehicle.CreatedAt))
			})

			It("should keep the creation event last among events with equal timestamps", func() {
				vin := "5YJ3E1EA8PF000001"
				title := "clean"
				f.vehicle.VIN = &vin
				f.vehicle.TitleStatus = &title

				result, err := f.timeline(ctx)

				Expect(err).NotTo(HaveOccurred())
				last := result.Events[len(result.Events)-1]
				Expect(last.Action).To(Equal(model.ActionVehicleCreated))
			})

			It("should be idempotent across runs", func() {
				first, err := f.timeline(ctx)
				Expect(err).NotTo(HaveOccurred())

				second, err := f.timeline(ctx)
				Expect(err).NotTo(HaveOccurred())

				firstIDs := make([]string, len(first.Events))
				secondIDs := make([]string, len(second.Events))
				for i := range first.Events {
					firstIDs[i] = first.Events[i].ID
					secondIDs[i] = second.Events[i].ID
				}
				Expect(firstIDs).To(Equal(secondIDs))
			})
		})

		Context("pagination", func() {
			BeforeEach(func() {
				f.auditLogs.listByEntityFn = func(_ context.Context, _ string, _ int64) ([]model.AuditLog, error) {
					logs := make([]model.AuditLog, 14)
					for i := range logs {
						logs[i] = model.AuditLog{
							ID:        int64(i + 1),
							Action:    "FIELD_UPDATED",
							CreatedAt: daysAgo(f.now, i+1),
						}
					}
					return logs, nil
				}
			})

			It("should return the remainder on the last page", func() {
				// 14 audit events + creation = 15 total
				result, err := f.service().GetVehicleTimeline(ctx, service.GetTimelineParams{
					VehicleID: testVehicleID,
					Page:      2,
					Limit:     10,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Events).To(HaveLen(5))
				Expect(result.Pagination.Page).To(Equal(2))
				Expect(result.Pagination.Total).To(Equal(15))
				Expect(result.Pagination.TotalPages).To(Equal(2))
				Expect(result.Pagination.HasMore).To(BeFalse())
			})

			It("should report more pages when they exist", func() {
				result, err := f.service().GetVehicleTimeline(ctx, service.GetTimelineParams{
					VehicleID: testVehicleID,
					Page:      1,
					Limit:     10,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Events).To(HaveLen(10))
				Expect(result.Pagination.HasMore).To(BeTrue())
			})

			It("should return an empty page past the end", func() {
				result, err := f.service().GetVehicleTimeline(ctx, service.GetTimelineParams{
					VehicleID: testVehicleID,
					Page:      9,
					Limit:     10,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Events).To(BeEmpty())
				Expect(result.Pagination.Total).To(Equal(15))
			})

			It("should reject out-of-range pagination", func() {
				_, err := f.service().GetVehicleTimeline(ctx, service.GetTimelineParams{
					VehicleID: testVehicleID,
					Page:      -1,
				})
				Expect(err).To(MatchError(service.ErrInvalidPagination))

				_, err = f.service().GetVehicleTimeline(ctx, service.GetTimelineParams{
					VehicleID: testVehicleID,
					Limit:     501,
				})
				Expect(err).To(MatchError(service.ErrInvalidPagination))
			})
		})

		Context("filtering", func() {
			BeforeEach(func() {
				f.bookings.listByVehicleFn = func(_ context.Context, _ int64) ([]model.Booking, error) {
					return []model.Booking{{
						ID:          1,
						Code:        "BK-1001",
						GuestName:   "Sam Chen",
						Status:      model.BookingConfirmed,
						TripStatus:  model.TripNotStarted,
						TotalAmount: 350,
						CreatedAt:   daysAgo(f.now, 2),
						UpdatedAt:   daysAgo(f.now, 2),
					}}, nil
				}
			})

			It("should filter events without changing statistics", func() {
				category := model.CategoryBooking
				result, err := f.service().GetVehicleTimeline(ctx, service.GetTimelineParams{
					VehicleID: testVehicleID,
					Category:  &category,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Events).To(HaveLen(1))
				Expect(result.Events[0].Category).To(Equal(model.CategoryBooking))
				Expect(result.Pagination.Total).To(Equal(1))

				// Statistics always cover the unfiltered timeline.
				Expect(result.Statistics.TotalEvents).To(Equal(2))
				Expect(result.Statistics.ByCategory[model.CategoryVehicle]).To(Equal(1))
				Expect(result.Statistics.ByCategory[model.CategoryBooking]).To(Equal(1))
			})

			It("should reject unknown filter values", func() {
				bogus := model.EventCategory("BOGUS")
				_, err := f.service().GetVehicleTimeline(ctx, service.GetTimelineParams{
					VehicleID: testVehicleID,
					Category:  &bogus,
				})
				Expect(err).To(MatchError(service.ErrInvalidFilter))
			})
		})

		Context("statistics", func() {
			It("should count raw source records independently of emitted events", func() {
				f.photos.listByVehicleFn = func(_ context.Context, _ int64) ([]model.VehiclePhoto, error) {
					uploaded := daysAgo(f.now, 4)
					return []model.VehiclePhoto{
						{ID: 1, VehicleID: testVehicleID, CreatedAt: uploaded},
						{ID: 2, VehicleID: testVehicleID, CreatedAt: uploaded.Add(time.Minute)},
						{ID: 3, VehicleID: testVehicleID, CreatedAt: uploaded.Add(2 * time.Minute)},
					}, nil
				}

				result, err := f.timeline(ctx)

				Expect(err).NotTo(HaveOccurred())
				// Three same-day photos collapse into one event.
				Expect(result.Statistics.SourceCounts.Photos).To(Equal(3))
				Expect(result.Statistics.ByCategory[model.CategoryPhoto]).To(Equal(1))
			})
		})

		Context("attribution", func() {
			It("should resolve each identifier space with a single batched call", func() {
				adminID := int64(5)
				f.serviceRecords.listByVehicleFn = func(_ context.Context, _ int64) ([]model.ServiceRecord, error) {
					verified := daysAgo(f.now, 1)
					return []model.ServiceRecord{
						{ID: 1, VehicleID: testVehicleID, ServiceType: "Oil change", ServiceDate: daysAgo(f.now, 2), VerifiedAt: &verified, VerifiedByAdminID: &adminID},
						{ID: 2, VehicleID: testVehicleID, ServiceType: "Tire rotation", ServiceDate: daysAgo(f.now, 8), VerifiedAt: &verified, VerifiedByAdminID: &adminID},
					}, nil
				}

				var capturedAdminIDs []int64
				f.admins.listByIDsFn = func(_ context.Context, ids []int64) ([]model.Admin, error) {
					capturedAdminIDs = ids
					return []model.Admin{{ID: adminID, Name: "Alex Rivera"}}, nil
				}

				result, err := f.timeline(ctx)

				Expect(err).NotTo(HaveOccurred())
				Expect(f.admins.listCalls).To(Equal(1))
				Expect(f.hosts.listCalls).To(Equal(1))
				Expect(capturedAdminIDs).To(ConsistOf(adminID))

				verifiedEvent := findEvent(result.Events, model.ActionServiceVerified)
				Expect(verifiedEvent).NotTo(BeNil())
				Expect(verifiedEvent.PerformedBy).To(Equal("Alex Rivera"))
				Expect(verifiedEvent.PerformedByType).To(Equal(model.ActorAdmin))
			})

			It("should degrade to generic labels when a lookup fails", func() {
				f.hosts.listByIDsFn = func(_ context.Context, _ []int64) ([]model.Host, error) {
					return nil, errors.New("hosts table unavailable")
				}

				result, err := f.timeline(ctx)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Events[0].PerformedBy).To(Equal("Host"))
			})
		})

		Context("caching", func() {
			It("should serve a cached response without re-aggregating", func() {
				cached := &service.TimelineResult{
					Vehicle: service.VehicleSummary{ID: testVehicleID, DisplayName: "cached"},
				}
				encoded, err := json.Marshal(cached)
				Expect(err).NotTo(HaveOccurred())

				f.cache.getFn = func(_ context.Context, _ string) ([]byte, error) {
					return encoded, nil
				}

				result, err := f.timeline(ctx)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Vehicle.DisplayName).To(Equal("cached"))
				Expect(f.hosts.listCalls).To(BeZero())
				Expect(f.cache.setCalls).To(BeZero())
			})

			It("should write the assembled response to the cache", func() {
				var capturedKey string
				f.cache.setFn = func(_ context.Context, key string, _ []byte) error {
					capturedKey = key
					return nil
				}

				_, err := f.timeline(ctx)

				Expect(err).NotTo(HaveOccurred())
				Expect(f.cache.setCalls).To(Equal(1))
				Expect(capturedKey).To(Equal(fmt.Sprintf("timeline:%d:*:*:1:100", testVehicleID)))
			})

			It("should not fail the request when the cache write fails", func() {
				f.cache.setFn = func(_ context.Context, _ string, _ []byte) error {
					return errors.New("redis down")
				}

				result, err := f.timeline(ctx)

				Expect(err).NotTo(HaveOccurred())
				Expect(result).NotTo(BeNil())
			})
		})
	})

	Describe("GetVehicleSummary", func() {
		It("should return the vehicle header with the host name resolved", func() {
			summary, err := f.service().GetVehicleSummary(ctx, testVehicleID)

			Expect(err).NotTo(HaveOccurred())
			Expect(summary.DisplayName).To(Equal("2023 Tesla Model 3"))
			Expect(summary.Host.ID).To(Equal(testHostID))
			Expect(summary.Host.Name).To(Equal("Maria Lopez"))
		})

		It("should return ErrVehicleNotFound for an unknown id", func() {
			_, err := f.service().GetVehicleSummary(ctx, 999)
			Expect(err).To(MatchError(service.ErrVehicleNotFound))
		})
	})
})
