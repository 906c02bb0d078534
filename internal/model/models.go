package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CropStage values accepted for a farm's crop stage
const (
	StageSeedling   = "Seedling"
	StageVegetative = "Vegetative"
	StageFlowering  = "Flowering"
	StageMaturity   = "Maturity"
)

// CropStages lists the accepted crop stage values
func CropStages() []string {
	return []string{StageSeedling, StageVegetative, StageFlowering, StageMaturity}
}

// ValidCropStage reports whether s is one of the accepted crop stages
func ValidCropStage(s string) bool {
	for _, stage := range CropStages() {
		if s == stage {
			return true
		}
	}
	return false
}

// SoilTypes lists the eight accepted soil type values
func SoilTypes() []string {
	return []string{
		"Black Soil",
		"Red Soil",
		"Alluvial Soil",
		"Laterite Soil",
		"Desert Soil",
		"Mountain Soil",
		"Clay Loam",
		"Sandy Loam",
	}
}

// ValidSoilType reports whether s is one of the accepted soil types
func ValidSoilType(s string) bool {
	for _, soil := range SoilTypes() {
		if s == soil {
			return true
		}
	}
	return false
}

// Location holds a farm's geographic coordinates and optional place names
type Location struct {
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`
	City      string  `gorm:"size:255" json:"city,omitempty"`
	State     string  `gorm:"size:255" json:"state,omitempty"`
}

// Farm represents a user-owned plot of land, its crop, and location
type Farm struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"not null;index;size:36" json:"userId"`
	FarmName  string    `gorm:"not null;size:255" json:"farmName"`
	Location  Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	SoilType  string    `gorm:"not null;size:64" json:"soilType"`
	Crop      string    `gorm:"not null;size:255" json:"crop"`
	CropStage string    `gorm:"not null;size:32" json:"cropStage"`
	AreaSqM   float64   `gorm:"not null;column:area_sq_meters" json:"areaSqMeters"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Farm
func (Farm) TableName() string {
	return "farms"
}

// BeforeCreate assigns an opaque identifier when none is set
func (f *Farm) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// FarmSnapshot is the denormalized copy of a farm's descriptive fields
// captured into an Advice record at generation time. Historical advice
// stays stable even if the farm is later edited or deleted.
type FarmSnapshot struct {
	FarmName  string `json:"farmName"`
	Crop      string `json:"crop"`
	SoilType  string `json:"soilType"`
	CropStage string `json:"cropStage"`
}

// WeatherSnapshot is normalized current-conditions data embedded into an
// Advice record. All numeric fields are already rounded: temperature and
// feels-like to the nearest whole degree, wind speed to one decimal.
// Rainfall is 0 when the provider reported none. Immutable once captured.
type WeatherSnapshot struct {
	Temperature int     `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Description string  `json:"description"`
	FeelsLike   int     `json:"feelsLike"`
	Pressure    int     `json:"pressure"`
	Cloudiness  int     `json:"cloudiness"`
	Rainfall    float64 `json:"rainfall"`
}

// Advice is one persisted result of the generation pipeline. Created
// exactly once per successful generation request and never updated.
// Deleting a farm does not delete its advice history.
type Advice struct {
	ID          string           `gorm:"primaryKey;size:36" json:"id"`
	UserID      string           `gorm:"not null;index;size:36" json:"userId"`
	FarmID      string           `gorm:"not null;index;size:36" json:"farmId"`
	FarmData    FarmSnapshot     `gorm:"serializer:json" json:"farmData"`
	WeatherData *WeatherSnapshot `gorm:"serializer:json" json:"weatherData,omitempty"`
	AIAdvice    string           `gorm:"not null;type:text;column:ai_advice" json:"aiAdvice"`
	CreatedAt   time.Time        `gorm:"index" json:"createdAt"`
}

// TableName specifies the table name for Advice
func (Advice) TableName() string {
	return "advice"
}

// BeforeCreate assigns an opaque identifier when none is set
func (a *Advice) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
