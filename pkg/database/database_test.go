package database

import (
	"context"
	"creator_insight_backend/internal/config"
	"creator_insight_backend/internal/model"
	"creator_insight_backend/internal/util"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDSN(t *testing.T) {
	cases := []struct {
		name   string
		cfg    config.DatabaseConfig
		driver string
		dsn    string
	}{
		{"postgres", config.DatabaseConfig{URL: "postgres://u:p@localhost:5432/app"}, util.DriverPostgres, "postgres://u:p@localhost:5432/app"},
		{"postgresql", config.DatabaseConfig{URL: "postgresql://localhost/app"}, util.DriverPostgres, "postgresql://localhost/app"},
		{"sqlite scheme", config.DatabaseConfig{URL: "sqlite://data/app.db"}, util.DriverSQLite, "data/app.db"},
		{"sqlite file", config.DatabaseConfig{URL: "portal.db"}, util.DriverSQLite, "portal.db"},
		{"memory", config.DatabaseConfig{URL: ":memory:"}, util.DriverSQLite, ":memory:"},
		{"mysql scheme", config.DatabaseConfig{URL: "mysql://root:pw@tcp(db:3306)/app"}, util.DriverMySQL, "root:pw@tcp(db:3306)/app"},
		{"bare dsn", config.DatabaseConfig{URL: "root:pw@tcp(db:3306)/app"}, util.DriverMySQL, "root:pw@tcp(db:3306)/app"},
		{
			"fields",
			config.DatabaseConfig{Host: "db", Port: 3306, User: "root", Password: "pw", Name: "portal", Charset: "utf8mb4"},
			util.DriverMySQL,
			"root:pw@tcp(db:3306)/portal?charset=utf8mb4&parseTime=true&loc=Local",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			driver, dsn, err := ResolveDSN(&tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.driver, driver)
			assert.Equal(t, tc.dsn, dsn)
		})
	}

	_, _, err := ResolveDSN(&config.DatabaseConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestInitDBUnsupportedDriver(t *testing.T) {
	_, err := InitDB(&config.DatabaseConfig{URL: "whatever", Driver: "oracle"})
	assert.Error(t, err)
}

type fakePool struct {
	pingErr error
	closed  bool
}

func (p *fakePool) Ping() error { return p.pingErr }
func (p *fakePool) Close() error { p.closed = true; return nil }

func TestPingOrCloseClosesOnFailure(t *testing.T) {
	down := &fakePool{pingErr: errors.New("connection refused")}
	assert.Error(t, pingOrClose(down))
	assert.True(t, down.closed)

	up := &fakePool{}
	assert.NoError(t, pingOrClose(up))
	assert.False(t, up.closed)
}

func TestInitDBUnreachable(t *testing.T) {
	_, err := InitDB(&config.DatabaseConfig{URL: "postgres://portal:pw@127.0.0.1:1/portal?sslmode=disable&connect_timeout=1"})
	assert.Error(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	db, err := InitDB(&config.DatabaseConfig{URL: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(context.Background(), db))
	require.NoError(t, Seed(context.Background(), db))

	counts := map[interface{}]int64{
		&model.Creator{}:     1,
		&model.Course{}:      3,
		&model.Enrollment{}:  30,
		&model.Analytic{}:    3,
		&model.Review{}:      3,
		&model.Achievement{}: 1,
		&model.AIInsight{}:   1,
	}
	for entity, want := range counts {
		var got int64
		require.NoError(t, db.Model(entity).Count(&got).Error)
		assert.Equal(t, want, got, "%T", entity)
	}
}
