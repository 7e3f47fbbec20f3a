package recipe

import (
	"HealthPantry-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		AddRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipes(ctx context.Context, mealType string, page, limit int) ([]*entities.Recipe, int64, error)
		// GetCatalog returns the full catalog (optionally filtered by meal
		// type) in stable position order for a scoring pass.
		GetCatalog(ctx context.Context, mealType string) ([]*entities.Recipe, error)
		NextPosition(ctx context.Context) (int, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) AddRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) GetRecipes(ctx context.Context, mealType string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if mealType != "" {
		query = query.Where("meal_type = ?", mealType)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Order("position ASC").
		Offset(offset).Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetCatalog(ctx context.Context, mealType string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if mealType != "" {
		query = query.Where("meal_type = ?", mealType)
	}
	if err := query.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Order("position ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) NextPosition(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
