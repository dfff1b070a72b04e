package domain

import "time"

type EventType string

const (
	EventWedding    EventType = "wedding"
	EventCorporate  EventType = "corporate"
	EventBirthday   EventType = "birthday"
	EventGraduation EventType = "graduation"
	EventPortrait   EventType = "portrait"
	EventOther      EventType = "other"
)

var EventTypes = []EventType{
	EventWedding, EventCorporate, EventBirthday,
	EventGraduation, EventPortrait, EventOther,
}

func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Estimated hours are clamped to this range by the input layer before they
// reach the estimator.
const (
	MinEstimatedHours = 1
	MaxEstimatedHours = 12
)

// BookingDraft is the in-progress event booking form. It is owned by exactly
// one booking flow instance and mutated field by field as the visitor types;
// validation is deferred until submit.
type BookingDraft struct {
	ClientName      string
	ClientEmail     string
	Phone           string
	EventDate       string // raw form input, normalized to UTC at submit
	EventType       string
	Services        []string
	EstimatedHours  int
	SpecialRequests string
}

func NewBookingDraft() BookingDraft {
	return BookingDraft{EstimatedHours: MinEstimatedHours}
}

// BookingSnapshot is the immutable copy of a draft taken at submit time and
// sent to the studio API.
type BookingSnapshot struct {
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
	Phone           string    `json:"phone"`
	EventDate       time.Time `json:"event_date"`
	EventType       string    `json:"event_type"`
	Services        []string  `json:"services"`
	EstimatedHours  int       `json:"estimated_hours"`
	SpecialRequests string    `json:"special_requests,omitempty"`
}
