package domain

import "io"

type FileType string

const (
	FileImage FileType = "image"
	FileVideo FileType = "video"
)

type Category string

const (
	CategoryPortfolio Category = "portfolio"
	CategoryWorkshop  Category = "workshop"
	CategoryTeam      Category = "team"
)

var Categories = []Category{CategoryPortfolio, CategoryWorkshop, CategoryTeam}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MediaItem is a gallery entry owned by the studio API. FilePath arrives as
// a path relative to the API origin and is resolved to an absolute URL by
// the backend client.
type MediaItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title,omitempty"`
	OriginalName string   `json:"original_name"`
	Description  string   `json:"description,omitempty"`
	FilePath     string   `json:"file_path"`
	FileType     FileType `json:"file_type"`
	Category     Category `json:"category"`
}

// UploadFile is one file handed to the media flow for upload.
type UploadFile struct {
	Name        string
	ContentType string
	Data        io.Reader
}
