package models

// BMICategory represents a classification bucket with a half-open
// value range [MinValue, MaxValue).
type BMICategory struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:100;not null" json:"name"`
	MinValue        float64 `gorm:"not null" json:"min_value"`
	MaxValue        float64 `gorm:"not null" json:"max_value"`
	Description     string  `gorm:"type:text" json:"description"`
	Recommendations string  `gorm:"type:text" json:"recommendations"`
}

// TableName specifies the table name for BMICategory model
func (BMICategory) TableName() string {
	return "bmi_categories"
}
