package util

const (
	DateFormat = "2006-01-02"
)

const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
