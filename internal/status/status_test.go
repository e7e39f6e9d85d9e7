package status_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/sda-clothing/storefront/internal/model"
	"github.com/sda-clothing/storefront/internal/status"
)

func strptr(s string) *string { return &s }

var _ = Describe("Normalize", func() {
	It("maps the dash sentinel to Unknown", func() {
		Expect(status.Normalize("-")).To(Equal(status.Unknown))
		Expect(status.Normalize("  -  ")).To(Equal(status.Unknown))
	})
	It("maps absence to Waiting, not Unknown", func() {
		Expect(status.Normalize("")).To(Equal(status.Waiting))
		Expect(status.Normalize("   ")).To(Equal(status.Waiting))
	})
	It("matches approve before the admin rule", func() {
		Expect(status.Normalize("Approved by Admin")).To(Equal(status.Approved))
	})
	It("matches reject case-insensitively", func() {
		Expect(status.Normalize("rejected")).To(Equal(status.Rejected))
		Expect(status.Normalize("REJECTED")).To(Equal(status.Rejected))
		Expect(status.Normalize("Rejected by admin")).To(Equal(status.Rejected))
	})
	It("maps waiting and admin vocabularies to Waiting", func() {
		Expect(status.Normalize("waiting_for_admin")).To(Equal(status.Waiting))
		Expect(status.Normalize("pending admin review")).To(Equal(status.Waiting))
	})
	It("maps the short codes", func() {
		Expect(status.Normalize("ok")).To(Equal(status.Approved))
		Expect(status.Normalize("declined")).To(Equal(status.Rejected))
	})
	It("falls open to Waiting on anything else", func() {
		Expect(status.Normalize("xyz-unexpected-value")).To(Equal(status.Waiting))
		Expect(status.Normalize("!!!")).To(Equal(status.Waiting))
		Expect(status.Normalize("状態")).To(Equal(status.Waiting))
	})
})

var _ = Describe("FromOrder", func() {
	It("prefers the verification field over the payment field", func() {
		o := model.Order{
			PaymentVerificationStatus: strptr("approved"),
			PaymentStatus:             strptr("rejected"),
		}
		Expect(status.FromOrder(o)).To(Equal(status.Approved))
	})
	It("does not fall through on an empty verification field", func() {
		o := model.Order{
			PaymentVerificationStatus: strptr(""),
			PaymentStatus:             strptr("approved"),
		}
		Expect(status.FromOrder(o)).To(Equal(status.Waiting))
	})
	It("falls through absent fields down to the legacy status", func() {
		o := model.Order{Status: strptr("declined")}
		Expect(status.FromOrder(o)).To(Equal(status.Rejected))
	})
	It("defaults to Waiting when every field is absent", func() {
		Expect(status.FromOrder(model.Order{})).To(Equal(status.Waiting))
	})
})

var _ = Describe("Track", func() {
	It("derives shipping for approved payments", func() {
		Expect(status.Track(status.Approved)).To(Equal("shipping"))
	})
	It("derives a dash otherwise", func() {
		Expect(status.Track(status.Waiting)).To(Equal("-"))
		Expect(status.Track(status.Rejected)).To(Equal("-"))
		Expect(status.Track(status.Unknown)).To(Equal("-"))
	})
	It("returns an explicit label verbatim", func() {
		Expect(status.Track(status.Approved, "Delivered")).To(Equal("Delivered"))
		Expect(status.Track(status.Waiting, "", "Out for Delivery")).To(Equal("Out for Delivery"))
	})
	It("uses the order's track fields in order", func() {
		o := model.Order{
			PaymentVerificationStatus: strptr("approved"),
			TrackStatus:               strptr("Packed"),
		}
		Expect(status.TrackFromOrder(o)).To(Equal("Packed"))

		o.TrackOrderStatus = strptr("Shipped")
		Expect(status.TrackFromOrder(o)).To(Equal("Shipped"))
	})
})

var _ = Describe("Label", func() {
	It("captions every state", func() {
		Expect(status.Label(status.Approved)).To(Equal("Approved"))
		Expect(status.Label(status.Rejected)).To(Equal("Rejected"))
		Expect(status.Label(status.Waiting)).To(Equal("Waiting for Admin Approval"))
		Expect(status.Label(status.Unknown)).To(Equal("-"))
	})
})
