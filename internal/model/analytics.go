package model

import "gorm.io/datatypes"

type Timeframe string

const (
	Daily   Timeframe = "daily"
	Weekly  Timeframe = "weekly"
	Monthly Timeframe = "monthly"
)

func (t Timeframe) Valid() bool {
	switch t {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

// Analytic 课程在某一时间粒度上的统计快照，取值范围只在写入时校验
// swagger:model Analytic
type Analytic struct {
	UUIDBase
	CourseID                 string         `gorm:"index;size:36" json:"courseId" validate:"required"`
	Timeframe                Timeframe      `gorm:"type:varchar(10);index" json:"timeframe" validate:"required,oneof=daily weekly monthly"`
	Enrollments              int            `json:"enrollments" validate:"gte=0"`
	CompletionRate           float64        `json:"completionRate" validate:"gte=0,lte=100"`
	AvgWatchTime             float64        `json:"avgWatchTime" validate:"gte=0"` // 分钟
	DropOffPoints            datatypes.JSON `json:"dropOffPoints,omitempty"`       // {"t": v}
	AssignmentSubmissionRate float64        `json:"assignmentSubmissionRate" validate:"gte=0,lte=100"`
	Rating                   float64        `json:"rating" validate:"gte=0,lte=5"`
}

func (Analytic) TableName() string {
	return "analytics"
}
