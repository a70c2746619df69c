package model

// swagger:model Creator
type Creator struct {
	UUIDBase
	Name         string `gorm:"size:100;not null" json:"name" validate:"required"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email" validate:"required,email"`
	Bio          string `gorm:"type:text" json:"bio,omitempty"`
	ProfileImage string `gorm:"size:255" json:"profileImage,omitempty"`
	TotalPoints  int    `gorm:"default:0" json:"totalPoints" validate:"gte=0"`
}

func (Creator) TableName() string {
	return "creators"
}
