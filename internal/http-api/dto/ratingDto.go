package dto

import (
	"time"

	"ratemyprompt/internal/catalog"
	"ratemyprompt/internal/http-api/models"
)

// CreateRatingDTO for creating or overwriting a rating
type CreateRatingDTO struct {
	Llm     string  `json:"llm" binding:"required"`
	Score   int     `json:"score" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

// RatingResponse for returning rating information. LlmDetail is the resolved
// catalog entry for the attributed model; attribution is a free string, so it
// is absent for identifiers the catalog does not know.
type RatingResponse struct {
	ID        string         `json:"id"`
	Llm       string         `json:"llm"`
	LlmDetail *catalog.LLM   `json:"llm_detail,omitempty"`
	Score     int            `json:"score"`
	Comment   *string        `json:"comment,omitempty"`
	User      *AuthorSummary `json:"user,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	resp := &RatingResponse{
		ID:        rating.ID,
		Llm:       rating.Llm,
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
	if detail, ok := catalog.ByID(rating.Llm); ok {
		resp.LlmDetail = &detail
	}
	// A nil user is an orphaned rating (rater deleted); rendered as
	// anonymous like an authorless prompt
	resp.User = authorFromModel(rating.User)
	return resp
}

// PromptSummary identifies the rated prompt in the activity feed.
type PromptSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// RatingFeedItem is one entry of the recent-ratings feed.
type RatingFeedItem struct {
	RatingResponse
	Prompt PromptSummary `json:"prompt"`
}

func FromModelToRatingFeedItem(rating *models.Rating) *RatingFeedItem {
	return &RatingFeedItem{
		RatingResponse: *FromModelToRatingResponse(rating),
		Prompt:         PromptSummary{ID: rating.Prompt.ID, Title: rating.Prompt.Title},
	}
}
