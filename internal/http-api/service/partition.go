package service

import "ratemyprompt/internal/http-api/models"

// DefaultSectionCap bounds how many prompts a homepage category section shows.
const DefaultSectionCap = 10

// CategorySection is one homepage shelf: a category and its capped prompts.
type CategorySection struct {
	Category models.Category `json:"category"`
	Prompts  []models.Prompt `json:"prompts"`
}

// PartitionByCategory groups prompts by category for the sectioned homepage.
// Categories keep their supplied order, prompts keep their input order (the
// caller passes them pre-sorted newest-first) truncated to cap, and categories
// with no prompts are omitted entirely - empty sections are not rendered.
func PartitionByCategory(prompts []models.Prompt, categories []models.Category, cap int) []CategorySection {
	if cap <= 0 {
		cap = DefaultSectionCap
	}

	sections := make([]CategorySection, 0, len(categories))
	for _, category := range categories {
		var matched []models.Prompt
		for _, p := range prompts {
			if p.CategoryID != nil && *p.CategoryID == category.ID {
				matched = append(matched, p)
				if len(matched) == cap {
					break
				}
			}
		}
		if len(matched) == 0 {
			continue
		}
		sections = append(sections, CategorySection{Category: category, Prompts: matched})
	}

	return sections
}
