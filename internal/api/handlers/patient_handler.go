package handlers

import (
	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/internal/api/presenters"
	"HealthPantry-Backend/pkg/patient"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PatientHandler interface {
		AddPatient(c *fiber.Ctx) error
		UpdatePatient(c *fiber.Ctx) error
		DeletePatient(c *fiber.Ctx) error
		GetPatients(c *fiber.Ctx) error
		GetPatientDetails(c *fiber.Ctx) error
		AddMedication(c *fiber.Ctx) error
		AddAllergy(c *fiber.Ctx) error
		AddDietaryTag(c *fiber.Ctx) error
		AddVitalReading(c *fiber.Ctx) error
		GetMedications(c *fiber.Ctx) error
		GetVitals(c *fiber.Ctx) error
	}

	patientHandler struct {
		patientService patient.PatientService
		validator      *validator.Validate
	}
)

func NewPatientHandler(patientService patient.PatientService, validator *validator.Validate) PatientHandler {
	return &patientHandler{
		patientService: patientService,
		validator:      validator,
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrPatientNotFound),
		errors.Is(err, domain.ErrInventoryItemNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedAccess):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func (h *patientHandler) AddPatient(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	req := new(domain.AddPatientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPatient, err)
	}

	res, err := h.patientService.AddPatient(c.Context(), *req, accountID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddPatient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPatient)
}

func (h *patientHandler) UpdatePatient(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	patientID := c.Params("id")
	req := new(domain.UpdatePatientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePatient, err)
	}

	if err := h.patientService.UpdatePatient(c.Context(), patientID, *req, accountID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdatePatient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePatient)
}

func (h *patientHandler) DeletePatient(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	patientID := c.Params("id")

	if err := h.patientService.DeletePatient(c.Context(), patientID, accountID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeletePatient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePatient)
}

func (h *patientHandler) GetPatients(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	patients, count, err := h.patientService.GetPatients(c.Context(), accountID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetPatients, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"patients": patients,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetPatients)
}

func (h *patientHandler) GetPatientDetails(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	patientID := c.Params("id")

	res, err := h.patientService.GetPatient(c.Context(), patientID, accountID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetPatientDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPatientDetail)
}

func (h *patientHandler) AddMedication(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	req := new(domain.AddMedicationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMedication, err)
	}

	if err := h.patientService.AddMedication(c.Context(), *req, accountID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddMedication, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddMedication)
}

func (h *patientHandler) AddAllergy(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	req := new(domain.AddAllergyRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddAllergy, err)
	}

	if err := h.patientService.AddAllergy(c.Context(), *req, accountID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddAllergy, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddAllergy)
}

func (h *patientHandler) AddDietaryTag(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	req := new(domain.AddDietaryTagRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddDietaryTag, err)
	}

	if err := h.patientService.AddDietaryTag(c.Context(), *req, accountID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddDietaryTag, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddDietaryTag)
}

func (h *patientHandler) AddVitalReading(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	req := new(domain.AddVitalReadingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddVital, err)
	}

	if err := h.patientService.AddVitalReading(c.Context(), *req, accountID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddVital, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddVital)
}

func (h *patientHandler) GetMedications(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	patientID := c.Params("id")

	res, err := h.patientService.GetMedications(c.Context(), patientID, accountID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetPatientDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPatientDetail)
}

func (h *patientHandler) GetVitals(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(string)
	patientID := c.Params("id")

	res, err := h.patientService.GetVitals(c.Context(), patientID, accountID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetVitals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVitals)
}
