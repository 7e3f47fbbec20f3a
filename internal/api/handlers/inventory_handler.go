package handlers

import (
	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/internal/api/presenters"
	"HealthPantry-Backend/pkg/inventory"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetExpiringItems(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) AddItem(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	req := new(domain.AddInventoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddInventoryItem, err)
	}

	res, err := h.inventoryService.AddItem(c.Context(), *req, accountID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddInventoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddInventoryItem)
}

func (h *inventoryHandler) UpdateItem(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateInventoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateInventoryItem, err)
	}

	if err := h.inventoryService.UpdateItem(c.Context(), itemID, *req, accountID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateInventoryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateInventoryItem)
}

func (h *inventoryHandler) DeleteItem(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	itemID := c.Params("id")

	if err := h.inventoryService.DeleteItem(c.Context(), itemID, accountID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteInventoryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteInventoryItem)
}

func (h *inventoryHandler) GetItems(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.inventoryService.GetItems(c.Context(), accountID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) GetExpiringItems(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)

	days, err := strconv.Atoi(c.Query("days", "5"))
	if err != nil || days < 1 {
		days = 5
	}

	items, err := h.inventoryService.GetExpiringItems(c.Context(), accountID, days)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetExpiringItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetExpiringItems)
}
