package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
)

func TestComputeEstimate_Example(t *testing.T) {
	catalog := domain.DefaultServiceCatalog()

	draft := domain.BookingDraft{
		Services:       []string{"photography", "framing"},
		EstimatedHours: 3,
	}

	// 30*3 hourly photography + 5 flat framing
	assert.InDelta(t, 95.0, ComputeEstimate(draft, catalog), 1e-9)
}

func TestComputeEstimate_EmptySelection(t *testing.T) {
	catalog := domain.DefaultServiceCatalog()

	for _, hours := range []int{1, 6, 12} {
		draft := domain.BookingDraft{EstimatedHours: hours}
		assert.Zero(t, ComputeEstimate(draft, catalog))
	}
}

func TestComputeEstimate_OrderInvariant(t *testing.T) {
	catalog := domain.DefaultServiceCatalog()

	a := domain.BookingDraft{
		Services:       []string{"photography", "videography", "framing"},
		EstimatedHours: 4,
	}
	b := domain.BookingDraft{
		Services:       []string{"framing", "photography", "videography"},
		EstimatedHours: 4,
	}

	assert.Equal(t, ComputeEstimate(a, catalog), ComputeEstimate(b, catalog))
}

func TestComputeEstimate_AdditiveOverDisjointSelections(t *testing.T) {
	catalog := domain.DefaultServiceCatalog()

	left := domain.BookingDraft{Services: []string{"photography"}, EstimatedHours: 5}
	right := domain.BookingDraft{Services: []string{"videography", "framing"}, EstimatedHours: 5}
	union := domain.BookingDraft{
		Services:       []string{"photography", "videography", "framing"},
		EstimatedHours: 5,
	}

	sum := ComputeEstimate(left, catalog) + ComputeEstimate(right, catalog)
	assert.InDelta(t, sum, ComputeEstimate(union, catalog), 1e-9)
}

func TestComputeEstimate_IgnoresUnknownServiceIDs(t *testing.T) {
	catalog := domain.DefaultServiceCatalog()

	draft := domain.BookingDraft{
		Services:       []string{"framing", "drone-footage"},
		EstimatedHours: 2,
	}

	assert.InDelta(t, 5.0, ComputeEstimate(draft, catalog), 1e-9)
}
