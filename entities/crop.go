package entities

// CropProfile is one row of the crop catalog.
type CropProfile struct {
	ID                 uint   `gorm:"primaryKey" json:"id,omitempty"`
	Name               string `gorm:"uniqueIndex;not null" json:"name"`
	SoilType           string `gorm:"index" json:"soil_type,omitempty"`
	Season             string `gorm:"index" json:"season,omitempty"`
	WaterRequirement   string `json:"water_requirement,omitempty"`
	Budget             string `json:"budget,omitempty"`
	Fertilizer         string `json:"fertilizer"`
	IrrigationSchedule string `json:"irrigation_schedule"`
	ExpectedYield      string `json:"expected_yield"`
}
