package flow

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
	"github.com/hithereguys123/Creative-Clicks/internal/flow/ports"
)

// BookingFlow owns one visitor's event booking form. Fields are mutated
// freely while editing; Submit validates, snapshots the draft and sends it
// to the studio API. A successful submit clears the draft, a failed one
// preserves it so the visitor can correct and resubmit by hand. At most one
// submission is in flight at a time.
type BookingFlow struct {
	api      ports.BookingAPI
	notifier ports.StudioNotifier
	catalog  []domain.ServiceOption
	logger   logger.Logger

	mu         sync.Mutex
	submitting bool
	draft      domain.BookingDraft
}

func NewBookingFlow(
	api ports.BookingAPI,
	notifier ports.StudioNotifier,
	catalog []domain.ServiceOption,
	logger logger.Logger,
) *BookingFlow {
	return &BookingFlow{
		api:      api,
		notifier: notifier,
		catalog:  catalog,
		logger:   logger,
		draft:    domain.NewBookingDraft(),
	}
}

// UpdateField mutates one named field of the draft. No validation happens
// here; bad input is caught at submit.
func (f *BookingFlow) UpdateField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return domain.ErrSubmissionInFlight
	}

	switch name {
	case "client_name":
		f.draft.ClientName = value
	case "client_email":
		f.draft.ClientEmail = value
	case "phone":
		f.draft.Phone = value
	case "event_date":
		f.draft.EventDate = value
	case "event_type":
		f.draft.EventType = value
	case "special_requests":
		f.draft.SpecialRequests = value
	default:
		return fmt.Errorf("%w: unknown booking field %q", domain.ErrValidation, name)
	}
	return nil
}

// SetEstimatedHours stores the hour count, clamped to the allowed range.
// The estimator relies on this clamp and does not repeat it.
func (f *BookingFlow) SetEstimatedHours(hours int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return domain.ErrSubmissionInFlight
	}

	if hours < domain.MinEstimatedHours {
		hours = domain.MinEstimatedHours
	}
	if hours > domain.MaxEstimatedHours {
		hours = domain.MaxEstimatedHours
	}
	f.draft.EstimatedHours = hours
	return nil
}

// ToggleService adds the service id to the selection if absent and removes
// it if present. Toggling twice restores the original selection.
func (f *BookingFlow) ToggleService(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return domain.ErrSubmissionInFlight
	}

	for i, s := range f.draft.Services {
		if s == id {
			f.draft.Services = slices.Delete(f.draft.Services, i, i+1)
			return nil
		}
	}
	f.draft.Services = append(f.draft.Services, id)
	return nil
}

// Estimate recomputes the current price estimate from the draft.
func (f *BookingFlow) Estimate() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ComputeEstimate(f.draft, f.catalog)
}

// Draft returns a copy of the current draft.
func (f *BookingFlow) Draft() domain.BookingDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.draft
	d.Services = slices.Clone(d.Services)
	return d
}

// Submitting reports whether a submission is in flight, so the caller can
// disable the submit trigger.
func (f *BookingFlow) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the draft, sends a snapshot of it to the studio API and
// clears the draft on success. Validation failures and backend errors leave
// the draft untouched; no retry is attempted.
func (f *BookingFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	snapshot, err := f.snapshotLocked()
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.submitting = true
	f.mu.Unlock()

	err = f.api.CreateBooking(ctx, snapshot)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.mu.Unlock()
		f.logger.Error("booking submission failed",
			logger.String("event_type", snapshot.EventType),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("create booking: %w", err)
	}
	f.draft = domain.NewBookingDraft()
	f.mu.Unlock()

	f.logger.Info("booking submitted",
		logger.String("event_type", snapshot.EventType),
		logger.Int("estimated_hours", snapshot.EstimatedHours),
	)

	go f.notifier.NotifyBookingPlaced(context.WithoutCancel(ctx), snapshot)

	return nil
}

// snapshotLocked checks the mandatory fields and freezes the draft. The
// caller holds f.mu.
func (f *BookingFlow) snapshotLocked() (domain.BookingSnapshot, error) {
	d := f.draft
	switch {
	case strings.TrimSpace(d.ClientName) == "":
		return domain.BookingSnapshot{}, fmt.Errorf("%w: client name is required", domain.ErrValidation)
	case strings.TrimSpace(d.ClientEmail) == "":
		return domain.BookingSnapshot{}, fmt.Errorf("%w: client email is required", domain.ErrValidation)
	case strings.TrimSpace(d.Phone) == "":
		return domain.BookingSnapshot{}, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	case strings.TrimSpace(d.EventDate) == "":
		return domain.BookingSnapshot{}, fmt.Errorf("%w: event date is required", domain.ErrValidation)
	case strings.TrimSpace(d.EventType) == "":
		return domain.BookingSnapshot{}, fmt.Errorf("%w: event type is required", domain.ErrValidation)
	}

	if !domain.EventType(d.EventType).Valid() {
		return domain.BookingSnapshot{}, fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, d.EventType)
	}

	when, err := parseEventDate(d.EventDate)
	if err != nil {
		return domain.BookingSnapshot{}, fmt.Errorf("%w: invalid event date %q", domain.ErrValidation, d.EventDate)
	}

	return domain.BookingSnapshot{
		ClientName:      d.ClientName,
		ClientEmail:     d.ClientEmail,
		Phone:           d.Phone,
		EventDate:       when.UTC(),
		EventType:       d.EventType,
		Services:        slices.Clone(d.Services),
		EstimatedHours:  d.EstimatedHours,
		SpecialRequests: d.SpecialRequests,
	}, nil
}

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
