package service

import (
	"context"
	"creator_insight_backend/internal/config"
	"creator_insight_backend/internal/repository"
)

type DiagnosticsService struct {
	Repo *repository.DiagnosticsRepository
	Cfg  *config.DatabaseConfig
}

func NewDiagnosticsService(repo *repository.DiagnosticsRepository, cfg *config.DatabaseConfig) *DiagnosticsService {
	return &DiagnosticsService{Repo: repo, Cfg: cfg}
}

type DatabaseReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func setOrNot(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate 按字符截断，不会切断多字节字符
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Report 汇总数据库连接状态，最多列出 10 张表
func (s *DiagnosticsService) Report(ctx context.Context) DatabaseReport {
	report := DatabaseReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setOrNot(s.Cfg.URL),
		DatabaseName:     setOrNot(s.Cfg.Name),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if s.Repo.DB == nil {
		return report
	}

	report.Database = "✅ Available"
	report.ConnectionStatus = "Connected"
	tables, err := s.Repo.Tables(ctx, 10)
	if err != nil {
		report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 80)
		return report
	}
	report.Collections = tables
	report.Database = "✅ Connected & Working"
	return report
}

func (s *DiagnosticsService) Healthy(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}
