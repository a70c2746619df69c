package model

// swagger:model Review
type Review struct {
	UUIDBase
	CourseID   string  `gorm:"index;size:36" json:"courseId" validate:"required"`
	LearnerID  string  `gorm:"size:36" json:"learnerId" validate:"required"`
	Rating     float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewText string  `gorm:"type:text" json:"reviewText,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
