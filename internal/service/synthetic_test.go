package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itwhiprentals/fleet-timeline/internal/model"
)

var _ = Describe("Registration expiry events", func() {
	var (
		f   *fixture
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
	})

	Context("when the registration is far from expiring", func() {
		It("should emit nothing", func() {
			expiry := f.now.AddDate(0, 0, 90)
			f.vehicle.RegistrationExpiry = &expiry

			result, err := f.timeline(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(findEvent(result.Events, model.ActionRegistrationExpiry)).To(BeNil())
			Expect(findEvent(result.Events, model.ActionRegistrationLapsed)).To(BeNil())
		})
	})

	Context("when the registration expires inside the window", func() {
		It("should warn at INFO severity beyond the warning breakpoint", func() {
			expiry := f.now.AddDate(0, 0, 45)
			f.vehicle.RegistrationExpiry = &expiry

			result, err := f.timeline(ctx)

			Expect(err).NotTo(HaveOccurred())
			event := findEvent(result.Events, model.ActionRegistrationExpiry)
			Expect(event).NotTo(BeNil())
			Expect(event.Severity).To(Equal(model.SeverityInfo))
			Expect(event.Description).To(Equal("Registration expires in 45 days"))
			Expect(event.Timestamp).To(Equal(f.now))
		})

		It("should escalate to WARNING inside the warning breakpoint", func() {
			expiry := f.now.AddDate(0, 0, 20)
			f.vehicle.RegistrationExpiry = &expiry

			result, err := f.timeline(ctx)

			Expect(err).NotTo(HaveOccurred())
			event := findEvent(result.Events, model.ActionRegistrationExpiry)
			Expect(event).NotTo(BeNil())
			Expect(event.Severity).To(Equal(model.SeverityWarning))
		})

		It("should escalate to ERROR inside the error breakpoint", func() {
			expiry := f.now.AddDate(0, 0, 10)
			f.vehicle.RegistrationExpiry = &expiry

			result, err := f.timeline(ctx)

			Expect(err).NotTo(HaveOccurred())
			event := findEvent(result.Events, model.ActionRegistrationExpiry)
			Expect(event).NotTo(BeNil())
			Expect(event.Severity).To(Equal(model.SeverityError))
			Expect(findEvent(result.Events, model.ActionRegistrationLapsed)).To(BeNil())
		})

		It("should surface at the top of the timeline", func() {
			expiry := f.now.AddDate(0, 0, 10)
			f.vehicle.RegistrationExpiry = &expiry

			result, err := f.timeline(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Events[0].Action).To(Equal(model.ActionRegistrationExpiry))
		})
	})

	Context("when the registration has already expired", func() {
		It("should emit a critical lapse event instead of a warning", func() {
			expiry := f.now.AddDate(0, 0, -7)
			f.vehicle.RegistrationExpiry = &expiry

			result, err := f.timeline(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(findEvent(result.Events, model.ActionRegistrationExpiry)).To(BeNil())

			event := findEvent(result.Events, model.ActionRegistrationLapsed)
			Expect(event).NotTo(BeNil())
			Expect(event.Severity).To(Equal(model.SeverityCritical))
			Expect(event.Description).To(Equal("Registration expired 7 days ago"))
			Expect(event.Metadata).To(HaveKeyWithValue("daysExpired", 7))
		})
	})

	Context("when no expiry date is recorded", func() {
		It("should emit nothing", func() {
			result, err := f.timeline(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(findEvent(result.Events, model.ActionRegistrationExpiry)).To(BeNil())
			Expect(findEvent(result.Events, model.ActionRegistrationLapsed)).To(BeNil())
		})
	})
})
