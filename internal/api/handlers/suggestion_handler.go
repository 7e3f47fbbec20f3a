package handlers

import (
	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/internal/api/presenters"
	"HealthPantry-Backend/pkg/suggestion"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SuggestionHandler interface {
		GetSuggestions(c *fiber.Ctx) error
	}

	suggestionHandler struct {
		suggestionService suggestion.SuggestionService
		validator         *validator.Validate
	}
)

func NewSuggestionHandler(suggestionService suggestion.SuggestionService, validator *validator.Validate) SuggestionHandler {
	return &suggestionHandler{
		suggestionService: suggestionService,
		validator:         validator,
	}
}

func (h *suggestionHandler) GetSuggestions(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	req := new(domain.SuggestionOptions)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
	}

	res, err := h.suggestionService.GetMemberRecipeSuggestions(c.Context(), accountID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingPatient),
			errors.Is(err, domain.ErrNegativeMaxResults),
			errors.Is(err, domain.ErrInvalidMinAvailability),
			errors.Is(err, domain.ErrUnknownMealType):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
		default:
			return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetSuggestions, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}
