package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessAddRecipe       = "recipe added successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedAddRecipe       = "failed to add recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrUnknownMealType = errors.New("unknown meal type")
)

// MealTypes are the accepted values for Recipe.MealType and for the
// suggestion meal type filter.
var MealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

func ValidMealType(mealType string) bool {
	for _, m := range MealTypes {
		if m == mealType {
			return true
		}
	}
	return false
}

type (
	AddRecipeRequest struct {
		Name        string   `json:"name" validate:"required"`
		Description string   `json:"description" validate:"omitempty"`
		MealType    string   `json:"meal_type" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
		DietaryTags []string `json:"dietary_tags" validate:"omitempty"`
		Ingredients []string `json:"ingredients" validate:"required,min=0,dive,required"`
		Calories    int      `json:"calories" validate:"omitempty,min=0"`
		ProteinG    int      `json:"protein_g" validate:"omitempty,min=0"`
		CarbsG      int      `json:"carbs_g" validate:"omitempty,min=0"`
		FatG        int      `json:"fat_g" validate:"omitempty,min=0"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		MealType    string    `json:"meal_type"`
		DietaryTags []string  `json:"dietary_tags"`
		Ingredients []string  `json:"ingredients"`
		Calories    int       `json:"calories"`
		ProteinG    int       `json:"protein_g"`
		CarbsG      int       `json:"carbs_g"`
		FatG        int       `json:"fat_g"`
		ImageURL    string    `json:"image_url,omitempty"`
		Position    int       `json:"position"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
