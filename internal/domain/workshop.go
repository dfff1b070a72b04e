package domain

import "time"

// Workshop is a read-only catalog entry owned by the studio API. The
// registration flow caches the list in the order the backend returned it.
type Workshop struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationDays    int       `json:"duration_days"`
	MaxParticipants int       `json:"max_participants"`
	StartDate       time.Time `json:"start_date"`
}

// RegistrationDraft holds the participant details for the one workshop that
// is currently open for registration. Phone is optional.
type RegistrationDraft struct {
	ParticipantName  string
	ParticipantEmail string
	Phone            string
}
