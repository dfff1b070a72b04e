package domain

type BillingMode string

const (
	BillingPerHour BillingMode = "per_hour"
	BillingFlat    BillingMode = "flat"
)

// ServiceOption is one entry of the static price list shown on the services
// page. The catalog is fixed at process start and never mutated.
type ServiceOption struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	UnitPrice float64     `json:"unit_price"`
	Billing   BillingMode `json:"billing"`
}

// DefaultServiceCatalog mirrors the published Creative Clicks price list.
func DefaultServiceCatalog() []ServiceOption {
	return []ServiceOption{
		{ID: "photography", Label: "Photography ($30/hour)", UnitPrice: 30, Billing: BillingPerHour},
		{ID: "videography", Label: "Videography ($40-45/hour)", UnitPrice: 42.5, Billing: BillingPerHour},
		{ID: "framing", Label: "Photo Framing (+$5)", UnitPrice: 5, Billing: BillingFlat},
	}
}
