package model

import "gorm.io/datatypes"

// swagger:model AIInsight
type AIInsight struct {
	UUIDBase
	CreatorID        string                      `gorm:"index;size:36" json:"creatorId" validate:"required"`
	RecommendedTopic string                      `gorm:"size:255" json:"recommendedTopic,omitempty"`
	Summary          string                      `gorm:"type:text" json:"summary,omitempty"`
	Suggestions      datatypes.JSONSlice[string] `json:"suggestions,omitempty"`
}

func (AIInsight) TableName() string {
	return "ai_insights"
}
