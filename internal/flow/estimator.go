package flow

import "github.com/hithereguys123/Creative-Clicks/internal/domain"

// ComputeEstimate prices the draft's selected services against the catalog.
// Flat services contribute their unit price once, hourly services contribute
// unit price times the draft's estimated hours. Selected ids missing from
// the catalog are ignored. An empty selection estimates to 0.
//
// The function trusts EstimatedHours to already be clamped by the input
// layer; it is recomputed on every read rather than cached.
func ComputeEstimate(draft domain.BookingDraft, catalog []domain.ServiceOption) float64 {
	var total float64
	for _, id := range draft.Services {
		for _, opt := range catalog {
			if opt.ID != id {
				continue
			}
			if opt.Billing == domain.BillingFlat {
				total += opt.UnitPrice
			} else {
				total += opt.UnitPrice * float64(draft.EstimatedHours)
			}
		}
	}
	return total
}
