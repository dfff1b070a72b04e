package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
	"github.com/hithereguys123/Creative-Clicks/internal/flow/ports/mocks"
)

func newContactFlow(t *testing.T) (*ContactFlow, *mocks.MockContactAPI, *mocks.MockStudioNotifier) {
	t.Helper()
	api := mocks.NewMockContactAPI(t)
	notifier := mocks.NewMockStudioNotifier(t)
	return NewContactFlow(api, notifier, newTestLogger(t)), api, notifier
}

func fillContact(t *testing.T, f *ContactFlow) {
	t.Helper()
	require.NoError(t, f.UpdateField("name", "Carol"))
	require.NoError(t, f.UpdateField("email", "carol@example.com"))
	require.NoError(t, f.UpdateField("subject", "Availability"))
	require.NoError(t, f.UpdateField("message", "Are you free in June?"))
}

func TestContactFlow_Submit_Success_ClearsForm(t *testing.T) {
	f, api, notifier := newContactFlow(t)
	fillContact(t, f)

	api.EXPECT().SendContact(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyContactReceived(mock.Anything, mock.Anything).Return()

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, domain.ContactMessage{}, f.Draft())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestContactFlow_Submit_MissingFieldBlocked(t *testing.T) {
	f, _, _ := newContactFlow(t)
	fillContact(t, f)
	require.NoError(t, f.UpdateField("message", ""))

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestContactFlow_Submit_FailurePreservesForm(t *testing.T) {
	f, api, _ := newContactFlow(t)
	fillContact(t, f)

	api.EXPECT().SendContact(mock.Anything, mock.Anything).Return(domain.ErrBackendRejected)

	before := f.Draft()
	err := f.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, before, f.Draft())
}
