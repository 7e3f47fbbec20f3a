package handlers

import (
	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/internal/api/presenters"
	"HealthPantry-Backend/pkg/catalog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		AddProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		RecordScan(c *fiber.Ctx) error
		ReportPrice(c *fiber.Ctx) error
	}

	productHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewProductHandler(catalogService catalog.CatalogService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *productHandler) AddProduct(c *fiber.Ctx) error {
	req := new(domain.AddProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	res, err := h.catalogService.AddProduct(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	region := c.Query("region", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	products, count, err := h.catalogService.GetProducts(c.Context(), region, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"products": products,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) RecordScan(c *fiber.Ctx) error {
	barcode := c.Params("barcode")

	if err := h.catalogService.RecordScan(c.Context(), barcode); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRecordScan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRecordScan)
}

func (h *productHandler) ReportPrice(c *fiber.Ctx) error {
	req := new(domain.ReportPriceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReportPrice, err)
	}

	if err := h.catalogService.ReportPrice(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedReportPrice, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReportPrice)
}
