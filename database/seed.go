package database

import (
	"log/slog"

	"ratemyprompt/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func strPtr(s string) *string { return &s }

// seedCategories is the fixed taxonomy. Slug is the natural key; re-running
// the seed refreshes display metadata without touching ids.
var seedCategories = []models.Category{
	{Name: "Creative Writing", Slug: "creative-writing", Description: strPtr("Prompts for storytelling, poetry, and creative content"), Icon: strPtr("✍️"), Color: strPtr("#8B5CF6")},
	{Name: "Code & Development", Slug: "code-development", Description: strPtr("Programming, debugging, and software development prompts"), Icon: strPtr("💻"), Color: strPtr("#10B981")},
	{Name: "Business & Marketing", Slug: "business-marketing", Description: strPtr("Marketing copy, business strategy, and sales prompts"), Icon: strPtr("📊"), Color: strPtr("#3B82F6")},
	{Name: "Education & Learning", Slug: "education-learning", Description: strPtr("Teaching, tutoring, and educational content prompts"), Icon: strPtr("📚"), Color: strPtr("#F59E0B")},
	{Name: "Data & Analysis", Slug: "data-analysis", Description: strPtr("Data analysis, research, and analytical prompts"), Icon: strPtr("📈"), Color: strPtr("#EF4444")},
	{Name: "Design & Art", Slug: "design-art", Description: strPtr("Visual design, UI/UX, and artistic prompts"), Icon: strPtr("🎨"), Color: strPtr("#EC4899")},
	{Name: "Productivity", Slug: "productivity", Description: strPtr("Task management, organization, and efficiency prompts"), Icon: strPtr("⚡"), Color: strPtr("#6366F1")},
	{Name: "General", Slug: "general", Description: strPtr("General purpose and miscellaneous prompts"), Icon: strPtr("🌟"), Color: strPtr("#6B7280")},
}

// SeedCategories upserts the fixed category list keyed by slug. Seeded one at
// a time so created_at keeps the declaration order - the homepage partitioner
// relies on a stable category order.
func SeedCategories(db *gorm.DB, logger *slog.Logger) error {
	for _, c := range seedCategories {
		category := c
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "icon", "color"}),
		}).Create(&category).Error
		if err != nil {
			return err
		}
	}

	logger.Info("Category seed applied", "count", len(seedCategories))
	return nil
}
