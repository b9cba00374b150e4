package entities

import "time"

// RecommendationRecord is an append-only log entry for a resolved query.
// RecommendedCrop references CropProfile.Name by value.
type RecommendationRecord struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Location          string    `json:"location"`
	SoilType          string    `json:"soil_type"`
	Season            string    `json:"season"`
	WaterAvailability string    `json:"water_availability"`
	Budget            string    `json:"budget"`
	RecommendedCrop   string    `gorm:"column:recommended_crop;index" json:"recommended_crop"`
	Timestamp         time.Time `gorm:"index;not null" json:"timestamp"`
}
