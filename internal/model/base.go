package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDBase 文档型实体的公共字段，外键均为不做约束的字符串
// swagger:model
type UUIDBase struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = GenerateUUID()
	}
	return
}

func GenerateUUID() string {
	return uuid.New().String()
}

// All 返回需要自动迁移的全部实体
func All() []interface{} {
	return []interface{}{
		&Creator{},
		&Course{},
		&Enrollment{},
		&Analytic{},
		&Review{},
		&Achievement{},
		&AIInsight{},
	}
}
