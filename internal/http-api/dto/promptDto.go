package dto

import (
	"math"
	"time"

	"ratemyprompt/internal/catalog"
	"ratemyprompt/internal/http-api/models"
	"ratemyprompt/internal/http-api/service"
)

// CreatePromptDTO for submitting a new prompt
type CreatePromptDTO struct {
	Title      string   `json:"title" binding:"required"`
	Text       string   `json:"text" binding:"required"`
	Tags       []string `json:"tags"`
	CategoryID *string  `json:"categoryId"`
	Llms       []string `json:"llms"`
}

// AuthorSummary is the public slice of a user attached to prompts and
// ratings. A nil summary renders as "Anonymous" client-side.
type AuthorSummary struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	ImageURL *string `json:"image_url,omitempty"`
}

func authorFromModel(u *models.User) *AuthorSummary {
	if u == nil {
		return nil
	}
	return &AuthorSummary{ID: u.ID, Name: u.Name, ImageURL: u.ImageURL}
}

// PromptResponse carries a prompt with its joined category, author summary
// and ratings, plus the display aggregate.
type PromptResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Text         string            `json:"text"`
	Tags         []string          `json:"tags"`
	Llms         []string          `json:"llms"`
	LlmDetails   []catalog.LLM     `json:"llm_details"`
	Category     *CategoryResponse `json:"category,omitempty"`
	Author       *AuthorSummary    `json:"author"`
	CreatedAt    time.Time         `json:"created_at"`
	Ratings      []RatingResponse  `json:"ratings"`
	AverageScore float64           `json:"average_score"`
	RatingCount  int64             `json:"rating_count"`
}

// FromModelToPromptResponse converts a Prompt model to its response shape.
// The aggregate is computed from the prompt's loaded rating snapshot and
// rounded to one decimal here - rounding is presentation only, the engine
// keeps full precision.
func FromModelToPromptResponse(p *models.Prompt) *PromptResponse {
	summary := service.Aggregate(p.Ratings)

	ratings := make([]RatingResponse, 0, len(p.Ratings))
	for i := range p.Ratings {
		ratings = append(ratings, *FromModelToRatingResponse(&p.Ratings[i]))
	}

	resp := &PromptResponse{
		ID:           p.ID,
		Title:        p.Title,
		Text:         p.Text,
		Tags:         p.Tags,
		Llms:         p.Llms,
		LlmDetails:   catalog.ByIDs(p.Llms),
		Author:       authorFromModel(p.Author),
		CreatedAt:    p.CreatedAt,
		Ratings:      ratings,
		AverageScore: roundScore(summary.Average),
		RatingCount:  summary.Count,
	}
	if p.Category != nil {
		c := CategoryFromModel(*p.Category)
		resp.Category = &c
	}
	return resp
}

// FromModelsToPromptResponses converts a discovery result list.
func FromModelsToPromptResponses(prompts []models.Prompt) []PromptResponse {
	out := make([]PromptResponse, 0, len(prompts))
	for i := range prompts {
		out = append(out, *FromModelToPromptResponse(&prompts[i]))
	}
	return out
}

// roundScore rounds to one decimal place for display.
func roundScore(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// HomeSectionResponse is one capped category shelf on the homepage.
type HomeSectionResponse struct {
	Category CategoryResponse `json:"category"`
	Prompts  []PromptResponse `json:"prompts"`
}

// HomeResponse is the composed homepage view.
type HomeResponse struct {
	Trending []PromptResponse      `json:"trending"`
	Sections []HomeSectionResponse `json:"sections"`
}

func FromHomeView(view *service.HomeView) *HomeResponse {
	sections := make([]HomeSectionResponse, 0, len(view.Sections))
	for _, s := range view.Sections {
		sections = append(sections, HomeSectionResponse{
			Category: CategoryFromModel(s.Category),
			Prompts:  FromModelsToPromptResponses(s.Prompts),
		})
	}
	return &HomeResponse{
		Trending: FromModelsToPromptResponses(view.Trending),
		Sections: sections,
	}
}
