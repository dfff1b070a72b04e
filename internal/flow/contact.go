package flow

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/wb-go/wbf/logger"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
	"github.com/hithereguys123/Creative-Clicks/internal/flow/ports"
)

// ContactFlow owns the contact form. Same lifecycle as the booking flow:
// a successful submit clears the form, a failed one preserves it.
type ContactFlow struct {
	api      ports.ContactAPI
	notifier ports.StudioNotifier
	logger   logger.Logger

	mu         sync.Mutex
	submitting bool
	draft      domain.ContactMessage
}

func NewContactFlow(api ports.ContactAPI, notifier ports.StudioNotifier, logger logger.Logger) *ContactFlow {
	return &ContactFlow{
		api:      api,
		notifier: notifier,
		logger:   logger,
	}
}

func (f *ContactFlow) UpdateField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return domain.ErrSubmissionInFlight
	}

	switch name {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "subject":
		f.draft.Subject = value
	case "message":
		f.draft.Message = value
	default:
		return fmt.Errorf("%w: unknown contact field %q", domain.ErrValidation, name)
	}
	return nil
}

func (f *ContactFlow) Draft() domain.ContactMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *ContactFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	msg := f.draft
	if err := validateContact(msg); err != nil {
		f.mu.Unlock()
		return err
	}
	f.submitting = true
	f.mu.Unlock()

	err := f.api.SendContact(ctx, msg)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.mu.Unlock()
		f.logger.Error("contact submission failed",
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("send contact message: %w", err)
	}
	f.draft = domain.ContactMessage{}
	f.mu.Unlock()

	f.logger.Info("contact message sent", logger.String("subject", msg.Subject))

	go f.notifier.NotifyContactReceived(context.WithoutCancel(ctx), msg)

	return nil
}

func validateContact(m domain.ContactMessage) error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case strings.TrimSpace(m.Email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	case strings.TrimSpace(m.Subject) == "":
		return fmt.Errorf("%w: subject is required", domain.ErrValidation)
	case strings.TrimSpace(m.Message) == "":
		return fmt.Errorf("%w: message is required", domain.ErrValidation)
	}
	return nil
}
