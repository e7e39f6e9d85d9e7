// Package status folds the backend's overlapping status vocabularies
// (payment_verification_status, payment_status, legacy status and the two
// track fields) into one closed set of display states. Every consumer goes
// through this package; the substring rules used to be copied per view and
// had drifted apart.
package status

import (
	"strings"

	"github.com/sda-clothing/storefront/internal/model"
)

// Verification is the outcome of payment-proof review.
type Verification string

const (
	Approved Verification = "approved"
	Rejected Verification = "rejected"
	Waiting  Verification = "waiting"

	// Unknown means the backend explicitly answered "-" (not applicable).
	// Ordinary absence is Waiting, never Unknown.
	Unknown Verification = "-"
)

// Normalize maps a raw backend status string to a Verification. It accepts
// any input and never fails; unrecognized values fall open to Waiting.
func Normalize(raw string) Verification {
	s := strings.TrimSpace(raw)
	if s == "-" {
		return Unknown
	}
	if s == "" {
		return Waiting
	}

	v := strings.ToLower(s)
	switch {
	case strings.Contains(v, "approve"):
		return Approved
	case strings.Contains(v, "reject"):
		return Rejected
	case strings.Contains(v, "waiting"), strings.Contains(v, "admin"):
		return Waiting
	case v == "approved", v == "ok":
		return Approved
	case v == "rejected", v == "declined":
		return Rejected
	}

	return Waiting
}

// FromOrder picks the status field to normalize. Precedence follows the
// newest vocabulary first; only an absent field falls through, an empty
// string is taken as-is and normalizes to Waiting.
func FromOrder(o model.Order) Verification {
	return Normalize(firstPresent(o.PaymentVerificationStatus, o.PaymentStatus, o.Status))
}

// Track returns the shipment-progress label. The first non-empty explicit
// label wins verbatim; otherwise an approved payment reads "shipping" and
// anything else reads "-".
func Track(v Verification, explicit ...string) string {
	for _, t := range explicit {
		if t != "" {
			return t
		}
	}
	if v == Approved {
		return "shipping"
	}
	return "-"
}

// TrackFromOrder applies Track with the order's explicit track fields.
func TrackFromOrder(o model.Order) string {
	return Track(FromOrder(o), deref(o.TrackOrderStatus), deref(o.TrackStatus))
}

// Label is the caption shown next to the badge.
func Label(v Verification) string {
	switch v {
	case Approved:
		return "Approved"
	case Rejected:
		return "Rejected"
	case Unknown:
		return "-"
	}
	return "Waiting for Admin Approval"
}

func firstPresent(vals ...*string) string {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
