package dto

import "ratemyprompt/internal/http-api/models"

// CategoryResponse for returning category information
type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

func CategoryFromModel(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Icon:        c.Icon,
		Color:       c.Color,
		Description: c.Description,
	}
}

// CategoryWithCountResponse adds the prompt count for GET /api/categories
type CategoryWithCountResponse struct {
	CategoryResponse
	PromptCount int64 `json:"prompt_count"`
}
