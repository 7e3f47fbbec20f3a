package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPatient       = "patient added successfully"
	MessageSuccessUpdatePatient    = "patient updated successfully"
	MessageSuccessDeletePatient    = "patient deleted successfully"
	MessageSuccessGetPatients      = "patients retrieved successfully"
	MessageSuccessGetPatientDetail = "patient detail retrieved successfully"
	MessageSuccessAddMedication    = "medication added successfully"
	MessageSuccessAddAllergy       = "allergy added successfully"
	MessageSuccessAddDietaryTag    = "dietary tag added successfully"
	MessageSuccessAddVital         = "vital reading added successfully"
	MessageSuccessGetVitals        = "vital readings retrieved successfully"

	MessageFailedAddPatient       = "failed to add patient"
	MessageFailedUpdatePatient    = "failed to update patient"
	MessageFailedDeletePatient    = "failed to delete patient"
	MessageFailedGetPatients      = "failed to retrieve patients"
	MessageFailedGetPatientDetail = "failed to retrieve patient detail"
	MessageFailedAddMedication    = "failed to add medication"
	MessageFailedAddAllergy       = "failed to add allergy"
	MessageFailedAddDietaryTag    = "failed to add dietary tag"
	MessageFailedAddVital         = "failed to add vital reading"
	MessageFailedGetVitals        = "failed to retrieve vital readings"

	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvalidDateOfBirth = errors.New("invalid date of birth")
	ErrInvalidVitalValue  = errors.New("vital value must be a finite number")
)

type (
	AddPatientRequest struct {
		Name        string `json:"name" validate:"required"`
		Species     string `json:"species" validate:"required,oneof=Human Pet"`
		DateOfBirth string `json:"date_of_birth" validate:"required"`
	}

	UpdatePatientRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Species     string `json:"species" validate:"omitempty,oneof=Human Pet"`
		DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	}

	AddMedicationRequest struct {
		PatientID      string `json:"patient_id" validate:"required,uuid"`
		Name           string `json:"name" validate:"required"`
		Dosage         string `json:"dosage" validate:"required"`
		InteractionTag string `json:"interaction_tag" validate:"omitempty"`
	}

	AddAllergyRequest struct {
		PatientID string `json:"patient_id" validate:"required,uuid"`
		Allergen  string `json:"allergen" validate:"required"`
	}

	AddDietaryTagRequest struct {
		PatientID string `json:"patient_id" validate:"required,uuid"`
		Tag       string `json:"tag" validate:"required"`
	}

	AddVitalReadingRequest struct {
		PatientID  string  `json:"patient_id" validate:"required,uuid"`
		Type       string  `json:"type" validate:"required"`
		Value      float64 `json:"value" validate:"required"`
		Unit       string  `json:"unit" validate:"required"`
		IsAbnormal bool    `json:"is_abnormal"`
	}

	PatientResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Species     string    `json:"species"`
		DateOfBirth time.Time `json:"date_of_birth"`
		CreatedAt   time.Time `json:"created_at"`
	}

	MedicationResponse struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Dosage         string `json:"dosage"`
		InteractionTag string `json:"interaction_tag,omitempty"`
		IsActive       bool   `json:"is_active"`
	}

	VitalReadingResponse struct {
		ID         string    `json:"id"`
		Type       string    `json:"type"`
		Value      float64   `json:"value"`
		Unit       string    `json:"unit"`
		IsAbnormal bool      `json:"is_abnormal"`
		RecordedAt time.Time `json:"recorded_at"`
	}

	// PatientMedicalContext is the read-only medical snapshot the
	// recommendation engine consumes. Empty slices are valid: absence of
	// data means absence of that badge category, never a safety guarantee.
	PatientMedicalContext struct {
		PatientID   string                 `json:"patient_id"`
		PatientName string                 `json:"patient_name"`
		Medications []MedicationResponse   `json:"medications"`
		Allergies   []string               `json:"allergies"`
		DietaryTags []string               `json:"dietary_tags"`
		Vitals      []VitalReadingResponse `json:"vitals"`
	}
)
