package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MealType    string    `json:"meal_type"` // "Breakfast", "Lunch", "Dinner", "Snack"
	DietaryTags string    `json:"dietary_tags" gorm:"type:text"` // comma separated, e.g. "vegan,low-carb"
	Calories    int       `json:"calories"`
	ProteinG    int       `json:"protein_g"`
	CarbsG      int       `json:"carbs_g"`
	FatG        int       `json:"fat_g"`
	ImageURL    string    `json:"image_url,omitempty"`
	// Position preserves stable catalog order for deterministic ranking ties.
	Position int `json:"position"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Timestamp
}

type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	// Text is the free form ingredient line as entered, quantity and unit
	// included, e.g. "2 cups chopped spinach".
	Text     string `json:"text" gorm:"type:text"`
	Position int    `json:"position"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}
