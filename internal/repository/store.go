package repository

import (
	"context"
	"creator_insight_backend/internal/util"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// conn 返回绑定了请求上下文的会话，数据库未连接时返回 ErrStoreUnavailable
func conn(ctx context.Context, db *gorm.DB) (*gorm.DB, error) {
	if db == nil {
		return nil, util.ErrStoreUnavailable
	}
	return db.WithContext(ctx), nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
}
