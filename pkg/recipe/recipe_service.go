package recipe

import (
	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/entities"
	"HealthPantry-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipes(ctx context.Context, mealType string, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetCatalog(ctx context.Context, mealType string) ([]domain.RecipeResponse, error)
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

// ToResponse converts a recipe entity into the DTO the engine and the API
// share. Ingredient order follows stored positions.
func ToResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Description: recipe.Description,
		MealType:    recipe.MealType,
		Calories:    recipe.Calories,
		ProteinG:    recipe.ProteinG,
		CarbsG:      recipe.CarbsG,
		FatG:        recipe.FatG,
		ImageURL:    recipe.ImageURL,
		Position:    recipe.Position,
		CreatedAt:   recipe.CreatedAt,
	}
	if recipe.DietaryTags != "" {
		for _, tag := range strings.Split(recipe.DietaryTags, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				res.DietaryTags = append(res.DietaryTags, trimmed)
			}
		}
	}
	for _, ing := range recipe.Ingredients {
		res.Ingredients = append(res.Ingredients, ing.Text)
	}
	return res
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error) {
	if !domain.ValidMealType(req.MealType) {
		return domain.RecipeResponse{}, domain.ErrUnknownMealType
	}

	position, err := s.recipeRepository.NextPosition(ctx)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		MealType:    req.MealType,
		DietaryTags: strings.Join(req.DietaryTags, ","),
		Calories:    req.Calories,
		ProteinG:    req.ProteinG,
		CarbsG:      req.CarbsG,
		FatG:        req.FatG,
		Position:    position,
	}
	for i, text := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, entities.RecipeIngredient{
			ID:       uuid.New(),
			RecipeID: recipe.ID,
			Text:     text,
			Position: i,
		})
	}

	if err := s.recipeRepository.AddRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return ToResponse(recipe), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return ToResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipes(ctx context.Context, mealType string, page, limit int) ([]domain.RecipeResponse, int64, error) {
	if mealType != "" && !domain.ValidMealType(mealType) {
		return nil, 0, domain.ErrUnknownMealType
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, mealType, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.RecipeResponse
	for _, r := range recipes {
		response = append(response, ToResponse(r))
	}
	return response, count, nil
}

func (s *recipeService) GetCatalog(ctx context.Context, mealType string) ([]domain.RecipeResponse, error) {
	if mealType != "" && !domain.ValidMealType(mealType) {
		return nil, domain.ErrUnknownMealType
	}

	recipes, err := s.recipeRepository.GetCatalog(ctx, mealType)
	if err != nil {
		return nil, err
	}

	var response []domain.RecipeResponse
	for _, r := range recipes {
		response = append(response, ToResponse(r))
	}
	return response, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
	var objectKey string
	var uploadErr error

	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ImageURL, nil
}
