package patient

import (
	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/entities"
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentVitalsLimit = 20

type (
	PatientService interface {
		AddPatient(ctx context.Context, req domain.AddPatientRequest, accountID string) (domain.PatientResponse, error)
		UpdatePatient(ctx context.Context, id string, req domain.UpdatePatientRequest, accountID string) error
		DeletePatient(ctx context.Context, id string, accountID string) error
		GetPatients(ctx context.Context, accountID string, page, limit int) ([]domain.PatientResponse, int64, error)
		GetPatient(ctx context.Context, id string, accountID string) (domain.PatientResponse, error)

		AddMedication(ctx context.Context, req domain.AddMedicationRequest, accountID string) error
		AddAllergy(ctx context.Context, req domain.AddAllergyRequest, accountID string) error
		AddDietaryTag(ctx context.Context, req domain.AddDietaryTagRequest, accountID string) error
		AddVitalReading(ctx context.Context, req domain.AddVitalReadingRequest, accountID string) error
		GetMedications(ctx context.Context, patientID string, accountID string) ([]domain.MedicationResponse, error)
		GetVitals(ctx context.Context, patientID string, accountID string) ([]domain.VitalReadingResponse, error)

		// GetMedicalContext assembles the read-only snapshot consumed by the
		// suggestion engine. Empty lists are valid output, not errors.
		GetMedicalContext(ctx context.Context, patientID string, accountID string) (domain.PatientMedicalContext, error)
	}

	patientService struct {
		patientRepository PatientRepository
	}
)

func NewPatientService(patientRepository PatientRepository) PatientService {
	return &patientService{patientRepository: patientRepository}
}

func (s *patientService) ownedPatient(ctx context.Context, patientID string, accountID string) (*entities.Patient, error) {
	patient, err := s.patientRepository.GetPatientByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}
	if patient.AccountID.String() != accountID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return patient, nil
}

func (s *patientService) AddPatient(ctx context.Context, req domain.AddPatientRequest, accountID string) (domain.PatientResponse, error) {
	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return domain.PatientResponse{}, domain.ErrInvalidDateOfBirth
	}

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return domain.PatientResponse{}, domain.ErrParseUUID
	}

	patient := &entities.Patient{
		ID:          uuid.New(),
		AccountID:   accountUUID,
		Name:        req.Name,
		Species:     req.Species,
		DateOfBirth: dateOfBirth,
	}

	if err := s.patientRepository.AddPatient(ctx, patient); err != nil {
		return domain.PatientResponse{}, err
	}

	return domain.PatientResponse{
		ID:          patient.ID.String(),
		Name:        patient.Name,
		Species:     patient.Species,
		DateOfBirth: patient.DateOfBirth,
		CreatedAt:   patient.CreatedAt,
	}, nil
}

func (s *patientService) UpdatePatient(ctx context.Context, id string, req domain.UpdatePatientRequest, accountID string) error {
	patient, err := s.ownedPatient(ctx, id, accountID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Species != "" {
		patient.Species = req.Species
	}
	if req.DateOfBirth != "" {
		dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return domain.ErrInvalidDateOfBirth
		}
		patient.DateOfBirth = dateOfBirth
	}

	return s.patientRepository.UpdatePatient(ctx, patient)
}

func (s *patientService) DeletePatient(ctx context.Context, id string, accountID string) error {
	if _, err := s.ownedPatient(ctx, id, accountID); err != nil {
		return err
	}
	return s.patientRepository.DeletePatient(ctx, id)
}

func (s *patientService) GetPatients(ctx context.Context, accountID string, page, limit int) ([]domain.PatientResponse, int64, error) {
	patients, count, err := s.patientRepository.GetPatients(ctx, accountID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.PatientResponse
	for _, p := range patients {
		response = append(response, domain.PatientResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Species:     p.Species,
			DateOfBirth: p.DateOfBirth,
			CreatedAt:   p.CreatedAt,
		})
	}
	return response, count, nil
}

func (s *patientService) GetPatient(ctx context.Context, id string, accountID string) (domain.PatientResponse, error) {
	patient, err := s.ownedPatient(ctx, id, accountID)
	if err != nil {
		return domain.PatientResponse{}, err
	}
	return domain.PatientResponse{
		ID:          patient.ID.String(),
		Name:        patient.Name,
		Species:     patient.Species,
		DateOfBirth: patient.DateOfBirth,
		CreatedAt:   patient.CreatedAt,
	}, nil
}

func (s *patientService) AddMedication(ctx context.Context, req domain.AddMedicationRequest, accountID string) error {
	patient, err := s.ownedPatient(ctx, req.PatientID, accountID)
	if err != nil {
		return err
	}

	medication := &entities.Medication{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Name:      req.Name,
		Dosage:    req.Dosage,
		IsActive:  true,
	}
	if req.InteractionTag != "" {
		tag := req.InteractionTag
		medication.InteractionTag = &tag
	}

	return s.patientRepository.AddMedication(ctx, medication)
}

func (s *patientService) AddAllergy(ctx context.Context, req domain.AddAllergyRequest, accountID string) error {
	patient, err := s.ownedPatient(ctx, req.PatientID, accountID)
	if err != nil {
		return err
	}

	return s.patientRepository.AddAllergy(ctx, &entities.Allergy{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Allergen:  req.Allergen,
	})
}

func (s *patientService) AddDietaryTag(ctx context.Context, req domain.AddDietaryTagRequest, accountID string) error {
	patient, err := s.ownedPatient(ctx, req.PatientID, accountID)
	if err != nil {
		return err
	}

	return s.patientRepository.AddDietaryTag(ctx, &entities.PatientDietaryTag{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Tag:       req.Tag,
	})
}

func (s *patientService) AddVitalReading(ctx context.Context, req domain.AddVitalReadingRequest, accountID string) error {
	patient, err := s.ownedPatient(ctx, req.PatientID, accountID)
	if err != nil {
		return err
	}

	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return domain.ErrInvalidVitalValue
	}

	return s.patientRepository.AddVitalReading(ctx, &entities.VitalReading{
		ID:         uuid.New(),
		PatientID:  patient.ID,
		Type:       req.Type,
		Value:      req.Value,
		Unit:       req.Unit,
		IsAbnormal: req.IsAbnormal,
		RecordedAt: time.Now(),
	})
}

func (s *patientService) GetMedications(ctx context.Context, patientID string, accountID string) ([]domain.MedicationResponse, error) {
	if _, err := s.ownedPatient(ctx, patientID, accountID); err != nil {
		return nil, err
	}

	medications, err := s.patientRepository.GetActiveMedications(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MedicationResponse, 0, len(medications))
	for _, m := range medications {
		med := domain.MedicationResponse{
			ID:       m.ID.String(),
			Name:     m.Name,
			Dosage:   m.Dosage,
			IsActive: m.IsActive,
		}
		if m.InteractionTag != nil {
			med.InteractionTag = *m.InteractionTag
		}
		response = append(response, med)
	}
	return response, nil
}

func (s *patientService) GetVitals(ctx context.Context, patientID string, accountID string) ([]domain.VitalReadingResponse, error) {
	if _, err := s.ownedPatient(ctx, patientID, accountID); err != nil {
		return nil, err
	}

	vitals, err := s.patientRepository.GetRecentVitals(ctx, patientID, recentVitalsLimit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.VitalReadingResponse, 0, len(vitals))
	for _, v := range vitals {
		response = append(response, domain.VitalReadingResponse{
			ID:         v.ID.String(),
			Type:       v.Type,
			Value:      v.Value,
			Unit:       v.Unit,
			IsAbnormal: v.IsAbnormal,
			RecordedAt: v.RecordedAt,
		})
	}
	return response, nil
}

func (s *patientService) GetMedicalContext(ctx context.Context, patientID string, accountID string) (domain.PatientMedicalContext, error) {
	patient, err := s.ownedPatient(ctx, patientID, accountID)
	if err != nil {
		return domain.PatientMedicalContext{}, err
	}

	mc := domain.PatientMedicalContext{
		PatientID:   patient.ID.String(),
		PatientName: patient.Name,
	}

	medications, err := s.GetMedications(ctx, patientID, accountID)
	if err != nil {
		return domain.PatientMedicalContext{}, err
	}
	mc.Medications = medications

	allergies, err := s.patientRepository.GetAllergies(ctx, patientID)
	if err != nil {
		return domain.PatientMedicalContext{}, err
	}
	for _, a := range allergies {
		mc.Allergies = append(mc.Allergies, a.Allergen)
	}

	tags, err := s.patientRepository.GetDietaryTags(ctx, patientID)
	if err != nil {
		return domain.PatientMedicalContext{}, err
	}
	for _, t := range tags {
		mc.DietaryTags = append(mc.DietaryTags, t.Tag)
	}

	vitals, err := s.GetVitals(ctx, patientID, accountID)
	if err != nil {
		return domain.PatientMedicalContext{}, err
	}
	mc.Vitals = vitals

	return mc, nil
}
