package dto

import (
	"time"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
)

type MediaItemResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title,omitempty"`
	OriginalName string `json:"original_name"`
	Description  string `json:"description,omitempty"`
	FilePath     string `json:"file_path"`
	FileType     string `json:"file_type"`
	Category     string `json:"category"`
}

type MediaListResponse struct {
	Category string              `json:"category"`
	Items    []MediaItemResponse `json:"items"`
}

type UploadResponse struct {
	Uploaded int      `json:"uploaded"`
	Failed   []string `json:"failed,omitempty"`
}

type WorkshopResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationDays    int     `json:"duration_days"`
	MaxParticipants int     `json:"max_participants"`
	StartDate       string  `json:"start_date"`
}

type RegisterResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

type EstimateResponse struct {
	Estimate float64 `json:"estimate"`
}

type ServiceOptionResponse struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
	Billing   string  `json:"billing"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToMediaItemResponse(item domain.MediaItem) MediaItemResponse {
	return MediaItemResponse{
		ID:           item.ID,
		Title:        item.Title,
		OriginalName: item.OriginalName,
		Description:  item.Description,
		FilePath:     item.FilePath,
		FileType:     string(item.FileType),
		Category:     string(item.Category),
	}
}

func ToWorkshopResponse(w domain.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:              w.ID,
		Title:           w.Title,
		Description:     w.Description,
		Price:           w.Price,
		DurationDays:    w.DurationDays,
		MaxParticipants: w.MaxParticipants,
		StartDate:       w.StartDate.Format(time.RFC3339),
	}
}

func ToServiceOptionResponse(opt domain.ServiceOption) ServiceOptionResponse {
	return ServiceOptionResponse{
		ID:        opt.ID,
		Label:     opt.Label,
		UnitPrice: opt.UnitPrice,
		Billing:   string(opt.Billing),
	}
}
