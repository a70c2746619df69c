package database

import (
	"creator_insight_backend/internal/config"
	"creator_insight_backend/internal/model"
	"creator_insight_backend/internal/util"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotConfigured = errors.New("database not configured")

// ResolveDSN 根据配置得到驱动名和 DSN，URL 的 scheme 决定驱动
func ResolveDSN(cfg *config.DatabaseConfig) (string, string, error) {
	url := strings.TrimSpace(cfg.URL)
	driver := strings.ToLower(cfg.Driver)

	if url == "" {
		if cfg.Host == "" {
			return "", "", ErrNotConfigured
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=true&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Name,
			cfg.Charset,
		)
		return util.DriverMySQL, dsn, nil
	}

	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return util.DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		return util.DriverSQLite, strings.TrimPrefix(url, "sqlite://"), nil
	case strings.HasPrefix(url, "file:"), strings.HasSuffix(url, ".db"), url == ":memory:":
		return util.DriverSQLite, url, nil
	case strings.HasPrefix(url, "mysql://"):
		return util.DriverMySQL, strings.TrimPrefix(url, "mysql://"), nil
	}

	if driver == "" {
		driver = util.DriverMySQL
	}
	return driver, url, nil
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case util.DriverMySQL:
		return mysql.Open(dsn), nil
	case util.DriverPostgres:
		return postgres.Open(dsn), nil
	case util.DriverSQLite:
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// InitDB 打开数据库连接并确认可达，未配置时返回 ErrNotConfigured
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	driver, dsn, err := ResolveDSN(cfg)
	if err != nil {
		return nil, err
	}

	d, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	logMode := logger.Silent
	if cfg.LogSQL {
		logMode = logger.Info
	}

	// 连通性由下面的 pingOrClose 检查
	db, err := gorm.Open(d, &gorm.Config{
		Logger:               logger.Default.LogMode(logMode),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := pingOrClose(sqlDB); err != nil {
		return nil, err
	}

	return db, nil
}

type pool interface {
	Ping() error
	Close() error
}

// pingOrClose 检查连接，失败时关闭连接池
func pingOrClose(p pool) error {
	if err := p.Ping(); err != nil {
		p.Close()
		return err
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}
