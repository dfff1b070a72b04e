package flow

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/wb-go/wbf/logger"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
	"github.com/hithereguys123/Creative-Clicks/internal/flow/ports"
)

// RegistrationFlow owns the workshop catalog view and the registration form
// for the one workshop that is currently open. A successful registration
// hands off to the external checkout page via the navigator; the draft is
// abandoned at that point since control leaves the portal.
type RegistrationFlow struct {
	api       ports.WorkshopAPI
	navigator ports.Navigator
	notifier  ports.StudioNotifier
	logger    logger.Logger

	mu         sync.Mutex
	workshops  []domain.Workshop
	active     *domain.Workshop
	draft      domain.RegistrationDraft
	submitting bool
}

func NewRegistrationFlow(
	api ports.WorkshopAPI,
	navigator ports.Navigator,
	notifier ports.StudioNotifier,
	logger logger.Logger,
) *RegistrationFlow {
	return &RegistrationFlow{
		api:       api,
		navigator: navigator,
		notifier:  notifier,
		logger:    logger,
	}
}

// FetchCatalog loads the workshop list in the order the backend returns it.
// On failure any previously loaded list stays in place and the error is
// surfaced; retry is manual.
func (f *RegistrationFlow) FetchCatalog(ctx context.Context) error {
	list, err := f.api.ListWorkshops(ctx)
	if err != nil {
		f.logger.Error("workshop catalog fetch failed",
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("fetch workshops: %w", err)
	}

	f.mu.Lock()
	f.workshops = list
	f.mu.Unlock()
	return nil
}

// Workshops returns the cached catalog in backend order.
func (f *RegistrationFlow) Workshops() []domain.Workshop {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.workshops)
}

// OpenRegistration makes the given workshop active and starts a fresh empty
// draft. Any unsaved draft for a previously opened workshop is discarded.
func (f *RegistrationFlow) OpenRegistration(w domain.Workshop) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = &w
	f.draft = domain.RegistrationDraft{}
}

// OpenRegistrationByID looks the workshop up in the cached catalog.
func (f *RegistrationFlow) OpenRegistrationByID(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.workshops {
		if w.ID == id {
			f.active = &w
			f.draft = domain.RegistrationDraft{}
			return nil
		}
	}
	return domain.ErrWorkshopNotFound
}

// CancelRegistration closes the registration form without any backend call.
func (f *RegistrationFlow) CancelRegistration() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = nil
	f.draft = domain.RegistrationDraft{}
}

// Active returns a copy of the workshop currently open for registration,
// or nil when none is.
func (f *RegistrationFlow) Active() *domain.Workshop {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active == nil {
		return nil
	}
	w := *f.active
	return &w
}

// Draft returns a copy of the current registration draft.
func (f *RegistrationFlow) Draft() domain.RegistrationDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *RegistrationFlow) UpdateField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return domain.ErrSubmissionInFlight
	}
	if f.active == nil {
		return domain.ErrNoActiveWorkshop
	}

	switch name {
	case "participant_name":
		f.draft.ParticipantName = value
	case "participant_email":
		f.draft.ParticipantEmail = value
	case "phone":
		f.draft.Phone = value
	default:
		return fmt.Errorf("%w: unknown registration field %q", domain.ErrValidation, name)
	}
	return nil
}

// SubmitRegistration registers the participant for the active workshop and
// hands off to the checkout URL the backend returns. A response without a
// checkout URL counts as a rejection: the workshop and draft stay in place
// and ErrCheckoutUnavailable is surfaced. Request failures likewise preserve
// the form for a manual retry.
func (f *RegistrationFlow) SubmitRegistration(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	if f.active == nil {
		f.mu.Unlock()
		return domain.ErrNoActiveWorkshop
	}
	if strings.TrimSpace(f.draft.ParticipantName) == "" {
		f.mu.Unlock()
		return fmt.Errorf("%w: participant name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(f.draft.ParticipantEmail) == "" {
		f.mu.Unlock()
		return fmt.Errorf("%w: participant email is required", domain.ErrValidation)
	}
	w := *f.active
	d := f.draft
	f.submitting = true
	f.mu.Unlock()

	checkoutURL, err := f.api.Register(ctx, w.ID, d)

	f.mu.Lock()
	f.submitting = false
	f.mu.Unlock()

	if err != nil {
		f.logger.Error("workshop registration failed",
			logger.String("workshop_id", w.ID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("register for workshop %s: %w", w.ID, err)
	}
	if checkoutURL == "" {
		f.logger.Error("registration response has no checkout url",
			logger.String("workshop_id", w.ID),
		)
		return domain.ErrCheckoutUnavailable
	}

	f.logger.Info("registration accepted, handing off to checkout",
		logger.String("workshop_id", w.ID),
	)

	go f.notifier.NotifyRegistrationStarted(context.WithoutCancel(ctx), w, d)

	f.navigator.OpenCheckout(checkoutURL)
	return nil
}
