package dto

type BookingRequest struct {
	ClientName      string   `json:"client_name" binding:"required"`
	ClientEmail     string   `json:"client_email" binding:"required,email"`
	Phone           string   `json:"phone"`
	EventDate       string   `json:"event_date" binding:"required"`
	EventType       string   `json:"event_type" binding:"required"`
	Services        []string `json:"services"`
	EstimatedHours  int      `json:"estimated_hours" binding:"required"`
	SpecialRequests string   `json:"special_requests"`
}

type EstimateRequest struct {
	Services       []string `json:"services"`
	EstimatedHours int      `json:"estimated_hours"`
}

type RegisterRequest struct {
	ParticipantName  string `json:"participant_name" binding:"required"`
	ParticipantEmail string `json:"participant_email" binding:"required,email"`
	Phone            string `json:"phone"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
