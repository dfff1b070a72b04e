package flow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
	"github.com/hithereguys123/Creative-Clicks/internal/flow/ports/mocks"
)

func newMediaFlow(t *testing.T) (*MediaFlow, *mocks.MockMediaAPI) {
	t.Helper()
	api := mocks.NewMockMediaAPI(t)
	return NewMediaFlow(api, newTestLogger(t)), api
}

func portfolioItems() []domain.MediaItem {
	return []domain.MediaItem{
		{ID: "m1", OriginalName: "sunset.jpg", FileType: domain.FileImage, Category: domain.CategoryPortfolio},
		{ID: "m2", OriginalName: "reel.mp4", FileType: domain.FileVideo, Category: domain.CategoryPortfolio},
	}
}

func teamItems() []domain.MediaItem {
	return []domain.MediaItem{
		{ID: "t1", OriginalName: "crew.jpg", FileType: domain.FileImage, Category: domain.CategoryTeam},
	}
}

func TestMediaFlow_DefaultsToPortfolio(t *testing.T) {
	f, _ := newMediaFlow(t)
	assert.Equal(t, domain.CategoryPortfolio, f.Category())
}

func TestMediaFlow_SetCategory_FetchesList(t *testing.T) {
	f, api := newMediaFlow(t)

	api.EXPECT().ListMedia(mock.Anything, domain.CategoryTeam).Return(teamItems(), nil)

	require.NoError(t, f.SetCategory(context.Background(), domain.CategoryTeam))
	assert.Equal(t, domain.CategoryTeam, f.Category())
	assert.Equal(t, teamItems(), f.Items())
}

func TestMediaFlow_SetCategory_RejectsUnknown(t *testing.T) {
	f, _ := newMediaFlow(t)

	err := f.SetCategory(context.Background(), domain.Category("vacation"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMediaFlow_StaleResponseDiscarded(t *testing.T) {
	f, api := newMediaFlow(t)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().ListMedia(mock.Anything, domain.CategoryPortfolio).
		RunAndReturn(func(context.Context, domain.Category) ([]domain.MediaItem, error) {
			close(inFlight)
			<-release
			return portfolioItems(), nil
		})
	api.EXPECT().ListMedia(mock.Anything, domain.CategoryTeam).Return(teamItems(), nil)

	done := make(chan error, 1)
	go func() { done <- f.SetCategory(context.Background(), domain.CategoryPortfolio) }()

	// switch to team while the portfolio fetch is still pending
	<-inFlight
	require.NoError(t, f.SetCategory(context.Background(), domain.CategoryTeam))

	// the late portfolio response must not overwrite the team list
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, domain.CategoryTeam, f.Category())
	assert.Equal(t, teamItems(), f.Items())
}

func TestMediaFlow_FetchFailureKeepsPreviousList(t *testing.T) {
	f, api := newMediaFlow(t)

	api.EXPECT().ListMedia(mock.Anything, domain.CategoryPortfolio).Return(portfolioItems(), nil).Once()
	require.NoError(t, f.Refresh(context.Background()))

	api.EXPECT().ListMedia(mock.Anything, domain.CategoryTeam).Return(nil, domain.ErrBackendUnavailable).Once()
	err := f.SetCategory(context.Background(), domain.CategoryTeam)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Equal(t, portfolioItems(), f.Items())
}

func TestMediaFlow_Upload_PartialFailureStillRefetchesOnce(t *testing.T) {
	f, api := newMediaFlow(t)

	files := []domain.UploadFile{
		{Name: "one.jpg", Data: strings.NewReader("1")},
		{Name: "two.jpg", Data: strings.NewReader("2")},
		{Name: "three.jpg", Data: strings.NewReader("3")},
	}

	api.EXPECT().UploadMedia(mock.Anything, mock.Anything, "one.jpg", domain.CategoryPortfolio).Return(nil).Once()
	api.EXPECT().UploadMedia(mock.Anything, mock.Anything, "two.jpg", domain.CategoryPortfolio).Return(errors.New("disk full")).Once()
	api.EXPECT().UploadMedia(mock.Anything, mock.Anything, "three.jpg", domain.CategoryPortfolio).Return(nil).Once()
	api.EXPECT().ListMedia(mock.Anything, domain.CategoryPortfolio).Return(portfolioItems(), nil).Once()

	err := f.Upload(context.Background(), files)

	var batchErr *domain.UploadBatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, []string{"two.jpg"}, batchErr.FailedNames())
	assert.Equal(t, portfolioItems(), f.Items())
	assert.False(t, f.Busy())
}

func TestMediaFlow_Upload_AllSucceed(t *testing.T) {
	f, api := newMediaFlow(t)

	files := []domain.UploadFile{{Name: "one.jpg", Data: strings.NewReader("1")}}

	api.EXPECT().UploadMedia(mock.Anything, mock.Anything, "one.jpg", domain.CategoryPortfolio).Return(nil).Once()
	api.EXPECT().ListMedia(mock.Anything, domain.CategoryPortfolio).Return(portfolioItems(), nil).Once()

	require.NoError(t, f.Upload(context.Background(), files))
}

func TestMediaFlow_Upload_EmptyBatchIsNoop(t *testing.T) {
	f, _ := newMediaFlow(t)
	require.NoError(t, f.Upload(context.Background(), nil))
}

func TestMediaFlow_Upload_RejectedWhileBusy(t *testing.T) {
	f, api := newMediaFlow(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().UploadMedia(mock.Anything, mock.Anything, "slow.jpg", domain.CategoryPortfolio).
		RunAndReturn(func(context.Context, domain.UploadFile, string, domain.Category) error {
			close(entered)
			<-release
			return nil
		}).Once()
	api.EXPECT().ListMedia(mock.Anything, domain.CategoryPortfolio).Return(nil, nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- f.Upload(context.Background(), []domain.UploadFile{{Name: "slow.jpg", Data: strings.NewReader("x")}})
	}()

	<-entered
	assert.True(t, f.Busy())
	err := f.Upload(context.Background(), []domain.UploadFile{{Name: "late.jpg", Data: strings.NewReader("y")}})
	assert.ErrorIs(t, err, domain.ErrUploadInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestMediaFlow_Preview(t *testing.T) {
	f, _ := newMediaFlow(t)

	assert.Nil(t, f.Preview())

	item := portfolioItems()[0]
	f.SelectForPreview(item)
	got := f.Preview()
	require.NotNil(t, got)
	assert.Equal(t, item.ID, got.ID)

	f.ClearPreview()
	assert.Nil(t, f.Preview())
}
