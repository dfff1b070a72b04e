package flow

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/wb-go/wbf/logger"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
	"github.com/hithereguys123/Creative-Clicks/internal/flow/ports"
)

// MediaFlow owns the gallery's category filter and item list. Category
// switches refetch the list; responses that arrive after the filter moved on
// are discarded so the displayed list always matches the current category.
// Uploads run sequentially per batch with exactly one refetch at the end.
type MediaFlow struct {
	api    ports.MediaAPI
	logger logger.Logger

	mu        sync.Mutex
	category  domain.Category
	items     []domain.MediaItem
	fetchSeq  uint64
	uploading bool
	preview   *domain.MediaItem
}

func NewMediaFlow(api ports.MediaAPI, logger logger.Logger) *MediaFlow {
	return &MediaFlow{
		api:      api,
		logger:   logger,
		category: domain.CategoryPortfolio,
	}
}

func (f *MediaFlow) Category() domain.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category
}

// Items returns the list currently on display.
func (f *MediaFlow) Items() []domain.MediaItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items)
}

// Busy reports whether an upload batch is outstanding.
func (f *MediaFlow) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploading
}

// SetCategory switches the filter and fetches the matching item list. Any
// fetch still in flight for a previous category is superseded: its response
// will be discarded on arrival.
func (f *MediaFlow) SetCategory(ctx context.Context, category domain.Category) error {
	if !category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, category)
	}

	f.mu.Lock()
	f.category = category
	f.fetchSeq++
	seq := f.fetchSeq
	f.mu.Unlock()

	return f.fetch(ctx, category, seq)
}

// Refresh refetches the item list for the current category.
func (f *MediaFlow) Refresh(ctx context.Context) error {
	f.mu.Lock()
	category := f.category
	f.fetchSeq++
	seq := f.fetchSeq
	f.mu.Unlock()

	return f.fetch(ctx, category, seq)
}

// fetch loads the list for category and installs it unless a newer request
// superseded this one while it was in flight. Fetch failures keep the
// previous list on display.
func (f *MediaFlow) fetch(ctx context.Context, category domain.Category, seq uint64) error {
	items, err := f.api.ListMedia(ctx, category)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchSeq != seq {
		// stale response: the filter moved on while this was in flight
		return nil
	}
	if err != nil {
		f.logger.Error("media fetch failed",
			logger.String("category", string(category)),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("fetch media: %w", err)
	}
	f.items = items
	return nil
}

// Upload sends the files one by one, each titled after its original name and
// tagged with the category at the time the batch began. A failing file does
// not abort the rest; failures are collected into an UploadBatchError. The
// current category's list is refetched exactly once after the whole batch
// has resolved. A second Upload while one is outstanding is rejected.
func (f *MediaFlow) Upload(ctx context.Context, files []domain.UploadFile) error {
	if len(files) == 0 {
		return nil
	}

	f.mu.Lock()
	if f.uploading {
		f.mu.Unlock()
		return domain.ErrUploadInProgress
	}
	f.uploading = true
	category := f.category
	f.mu.Unlock()

	var failed []domain.FileError
	for _, file := range files {
		if err := f.api.UploadMedia(ctx, file, file.Name, category); err != nil {
			f.logger.Error("file upload failed",
				logger.String("file", file.Name),
				logger.String("category", string(category)),
				logger.String("error", err.Error()),
			)
			failed = append(failed, domain.FileError{Name: file.Name, Err: err})
		}
	}

	f.mu.Lock()
	f.uploading = false
	f.mu.Unlock()

	if err := f.Refresh(ctx); err != nil {
		f.logger.Error("post-upload refresh failed",
			logger.String("error", err.Error()),
		)
	}

	if len(failed) > 0 {
		return &domain.UploadBatchError{Failed: failed}
	}
	return nil
}

// SelectForPreview marks one item as currently previewed. UI state only, no
// network effect.
func (f *MediaFlow) SelectForPreview(item domain.MediaItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.preview = &item
}

func (f *MediaFlow) ClearPreview() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.preview = nil
}

// Preview returns a copy of the previewed item, or nil when none is open.
func (f *MediaFlow) Preview() *domain.MediaItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.preview == nil {
		return nil
	}
	item := *f.preview
	return &item
}
