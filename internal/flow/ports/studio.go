package ports

import (
	"context"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
)

type MediaAPI interface {
	ListMedia(ctx context.Context, category domain.Category) ([]domain.MediaItem, error)
	UploadMedia(ctx context.Context, file domain.UploadFile, title string, category domain.Category) error
}

type WorkshopAPI interface {
	ListWorkshops(ctx context.Context) ([]domain.Workshop, error)
	Register(ctx context.Context, workshopID string, draft domain.RegistrationDraft) (checkoutURL string, err error)
}

type BookingAPI interface {
	CreateBooking(ctx context.Context, snapshot domain.BookingSnapshot) error
}

type ContactAPI interface {
	SendContact(ctx context.Context, msg domain.ContactMessage) error
}
