package model

import "time"

// swagger:model Course
type Course struct {
	UUIDBase
	CreatorID   string `gorm:"index;size:36" json:"creatorId" validate:"required"`
	Title       string `gorm:"size:255;not null" json:"title" validate:"required"`
	Category    string `gorm:"size:100;not null" json:"category" validate:"required"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Enrollment 课程与学员的关联记录，不限制基数
// swagger:model Enrollment
type Enrollment struct {
	UUIDBase
	CourseID   string    `gorm:"index;size:36" json:"courseId" validate:"required"`
	LearnerID  string    `gorm:"index;size:36" json:"learnerId" validate:"required"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
