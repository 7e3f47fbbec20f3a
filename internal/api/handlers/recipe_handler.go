package handlers

import (
	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/internal/api/presenters"
	"HealthPantry-Backend/pkg/recipe"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		AddRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetails(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	req := new(domain.AddRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}

	res, err := h.recipeService.AddRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	mealType := c.Query("meal_type", "")
	if mealType != "" && !domain.ValidMealType(mealType) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, domain.ErrUnknownMealType)
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	recipes, count, err := h.recipeService.GetRecipes(c.Context(), mealType, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetails(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipe(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	req := new(domain.UploadRecipeImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	url, err := h.recipeService.UploadRecipeImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
