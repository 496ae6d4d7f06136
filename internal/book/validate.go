package book

import (
	"strconv"

	"bookcatalog/internal/apperr"
)

// ParseBookID validates an externally supplied identifier. Anything that
// is not a positive base-10 integer is rejected before the store is ever
// touched.
func ParseBookID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalid("Invalid book id")
	}
	return id, nil
}

// CreateRequest is the create-mode payload. Title, author, and genre must
// be non-empty; publishedYear must be present (empty string and null count
// as missing).
type CreateRequest struct {
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	PublishedYear YearField `json:"publishedYear"`
}

// validateCreate checks fields in a fixed order and fails with the first
// violation.
func validateCreate(req CreateRequest) error {
	if req.Title == "" {
		return apperr.Invalid("Title is required")
	}
	if req.Author == "" {
		return apperr.Invalid("Author is required")
	}
	if req.Genre == "" {
		return apperr.Invalid("Genre is required")
	}
	if !req.PublishedYear.Present || req.PublishedYear.Null {
		return apperr.Invalid("Published year is required")
	}
	return nil
}

// UpdateRequest is the update-mode payload. Fields left out of the JSON
// body stay untouched; explicit null (and, for genre and publishedYear,
// empty values) overwrite with NULL.
type UpdateRequest struct {
	Title         Field[string] `json:"title"`
	Author        Field[string] `json:"author"`
	Genre         Field[string] `json:"genre"`
	PublishedYear YearField     `json:"publishedYear"`
}

// buildUpdatePatch turns the payload into a sparse column patch. A nil
// value means SQL NULL. An empty patch is a client error.
func buildUpdatePatch(req UpdateRequest) (map[string]any, error) {
	patch := make(map[string]any)

	if req.Title.Present {
		if req.Title.Null {
			patch["title"] = nil
		} else {
			patch["title"] = req.Title.Value
		}
	}
	if req.Author.Present {
		if req.Author.Null {
			patch["author"] = nil
		} else {
			patch["author"] = req.Author.Value
		}
	}
	if req.Genre.Present {
		if req.Genre.Null || req.Genre.Value == "" {
			patch["genre"] = nil
		} else {
			patch["genre"] = req.Genre.Value
		}
	}
	if req.PublishedYear.Present {
		if req.PublishedYear.Null {
			patch["published_year"] = nil
		} else {
			patch["published_year"] = req.PublishedYear.Value
		}
	}

	if len(patch) == 0 {
		return nil, apperr.Invalid("No valid fields to update")
	}
	return patch, nil
}
