package entities

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"` // "Human", "Pet"
	DateOfBirth time.Time `json:"date_of_birth"`

	Medications   []Medication        `gorm:"foreignKey:PatientID" json:"medications,omitempty"`
	Allergies     []Allergy           `gorm:"foreignKey:PatientID" json:"allergies,omitempty"`
	DietaryTags   []PatientDietaryTag `gorm:"foreignKey:PatientID" json:"dietary_tags,omitempty"`
	VitalReadings []VitalReading      `gorm:"foreignKey:PatientID" json:"vital_readings,omitempty"`
	Timestamp
}

type Medication struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	// InteractionTag references a key in the clinical interaction table.
	// Nil means no known food interaction.
	InteractionTag *string `json:"interaction_tag,omitempty"`
	IsActive       bool    `json:"is_active"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
	Timestamp
}

type Allergy struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Allergen  string    `json:"allergen"` // canonical allergen name, e.g. "dairy"

	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
	Timestamp
}

type PatientDietaryTag struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Tag       string    `json:"tag"` // e.g. "vegan", "keto", "low-carb"

	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
	Timestamp
}

type VitalReading struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PatientID  uuid.UUID `json:"patient_id"`
	Type       string    `json:"type"` // e.g. "blood_pressure", "glucose", "weight"
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	IsAbnormal bool      `json:"is_abnormal"`
	RecordedAt time.Time `gorm:"type:timestamp" json:"recorded_at"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
	Timestamp
}
