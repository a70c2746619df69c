package model

type Level string

const (
	Bronze   Level = "Bronze"
	Silver   Level = "Silver"
	Gold     Level = "Gold"
	Platinum Level = "Platinum"
)

// Achievement 存储的等级不会根据积分自动推导
// swagger:model Achievement
type Achievement struct {
	UUIDBase
	CreatorID string  `gorm:"index;size:36" json:"creatorId" validate:"required"`
	Level     Level   `gorm:"type:varchar(10);default:'Bronze'" json:"level" validate:"omitempty,oneof=Bronze Silver Gold Platinum"`
	Points    int     `gorm:"default:0" json:"points" validate:"gte=0"`
	Progress  float64 `gorm:"default:0" json:"progress" validate:"gte=0,lte=100"`
}

func (Achievement) TableName() string {
	return "achievements"
}
