package patient

import (
	"HealthPantry-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PatientRepository interface {
		AddPatient(ctx context.Context, patient *entities.Patient) error
		GetPatientByID(ctx context.Context, id string) (*entities.Patient, error)
		UpdatePatient(ctx context.Context, patient *entities.Patient) error
		DeletePatient(ctx context.Context, id string) error
		GetPatients(ctx context.Context, accountID string, page, limit int) ([]*entities.Patient, int64, error)

		AddMedication(ctx context.Context, medication *entities.Medication) error
		GetActiveMedications(ctx context.Context, patientID string) ([]*entities.Medication, error)
		AddAllergy(ctx context.Context, allergy *entities.Allergy) error
		GetAllergies(ctx context.Context, patientID string) ([]*entities.Allergy, error)
		AddDietaryTag(ctx context.Context, tag *entities.PatientDietaryTag) error
		GetDietaryTags(ctx context.Context, patientID string) ([]*entities.PatientDietaryTag, error)
		AddVitalReading(ctx context.Context, vital *entities.VitalReading) error
		GetRecentVitals(ctx context.Context, patientID string, limit int) ([]*entities.VitalReading, error)
	}

	patientRepository struct {
		db *gorm.DB
	}
)

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) AddPatient(ctx context.Context, patient *entities.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) GetPatientByID(ctx context.Context, id string) (*entities.Patient, error) {
	var patient entities.Patient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) UpdatePatient(ctx context.Context, patient *entities.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) DeletePatient(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Patient{}).Error
}

func (r *patientRepository) GetPatients(ctx context.Context, accountID string, page, limit int) ([]*entities.Patient, int64, error) {
	var patients []*entities.Patient
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Patient{}).Where("account_id = ?", accountID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&patients).Error; err != nil {
		return nil, 0, err
	}

	return patients, count, nil
}

func (r *patientRepository) AddMedication(ctx context.Context, medication *entities.Medication) error {
	return r.db.WithContext(ctx).Create(medication).Error
}

func (r *patientRepository) GetActiveMedications(ctx context.Context, patientID string) ([]*entities.Medication, error) {
	var medications []*entities.Medication
	if err := r.db.WithContext(ctx).
		Where("patient_id = ? AND is_active = ?", patientID, true).
		Order("created_at ASC").
		Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *patientRepository) AddAllergy(ctx context.Context, allergy *entities.Allergy) error {
	return r.db.WithContext(ctx).Create(allergy).Error
}

func (r *patientRepository) GetAllergies(ctx context.Context, patientID string) ([]*entities.Allergy, error) {
	var allergies []*entities.Allergy
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at ASC").
		Find(&allergies).Error; err != nil {
		return nil, err
	}
	return allergies, nil
}

func (r *patientRepository) AddDietaryTag(ctx context.Context, tag *entities.PatientDietaryTag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *patientRepository) GetDietaryTags(ctx context.Context, patientID string) ([]*entities.PatientDietaryTag, error) {
	var tags []*entities.PatientDietaryTag
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *patientRepository) AddVitalReading(ctx context.Context, vital *entities.VitalReading) error {
	return r.db.WithContext(ctx).Create(vital).Error
}

func (r *patientRepository) GetRecentVitals(ctx context.Context, patientID string, limit int) ([]*entities.VitalReading, error) {
	var vitals []*entities.VitalReading
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&vitals).Error; err != nil {
		return nil, err
	}
	return vitals, nil
}
