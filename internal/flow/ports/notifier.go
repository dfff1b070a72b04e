package ports

import (
	"context"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
)

// StudioNotifier pings the studio owner about new submissions. Delivery is
// best effort and never affects the flow outcome.
type StudioNotifier interface {
	NotifyBookingPlaced(ctx context.Context, b domain.BookingSnapshot)
	NotifyRegistrationStarted(ctx context.Context, w domain.Workshop, d domain.RegistrationDraft)
	NotifyContactReceived(ctx context.Context, m domain.ContactMessage)
}
