package session

import "github.com/hithereguys123/Creative-Clicks/internal/flow"

// Flows bundles the per-visitor state machines. One instance exists per
// session and is never shared across sessions.
type Flows struct {
	Booking      *flow.BookingFlow
	Registration *flow.RegistrationFlow
	Media        *flow.MediaFlow
	Contact      *flow.ContactFlow
	Checkout     *CheckoutRecorder
}

// Factory builds a fresh Flows bundle for a new session.
type Factory func() *Flows
