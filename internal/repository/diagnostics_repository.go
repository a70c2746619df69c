package repository

import (
	"context"

	"gorm.io/gorm"
)

type DiagnosticsRepository struct {
	DB *gorm.DB
}

func NewDiagnosticsRepository(db *gorm.DB) *DiagnosticsRepository {
	return &DiagnosticsRepository{DB: db}
}

func (r *DiagnosticsRepository) Ping(ctx context.Context) error {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return translate(err)
	}
	return translate(sqlDB.PingContext(ctx))
}

// Tables 返回最多 limit 个表名
func (r *DiagnosticsRepository) Tables(ctx context.Context, limit int) ([]string, error) {
	db, err := conn(ctx, r.DB)
	if err != nil {
		return nil, err
	}
	tables, err := db.Migrator().GetTables()
	if err != nil {
		return nil, translate(err)
	}
	if len(tables) > limit {
		tables = tables[:limit]
	}
	return tables, nil
}
