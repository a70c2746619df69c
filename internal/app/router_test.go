package app

import (
	"bytes"
	"context"
	"creator_insight_backend/internal/config"
	"creator_insight_backend/internal/util"
	"creator_insight_backend/pkg/database"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "8000", Mode: "test"},
		Auth: config.AuthConfig{
			Scheme:        config.AuthSchemePlaceholder,
			Secret:        config.DefaultSecret,
			Issuer:        "creator-insight-portal",
			ExpireSeconds: 3600,
		},
		Achievements: config.AchievementsConfig{Source: config.PointsSourceDemo, DemoPoints: 1860},
	}
}

func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(&config.DatabaseConfig{URL: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(context.Background(), db))
	return db
}

func newTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(testConfig(), db).Router
}

func do(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t, nil)

	t.Run("missing credentials", func(t *testing.T) {
		for _, body := range []interface{}{nil, map[string]string{"email": "ada@example.com"}, map[string]string{"password": "x"}} {
			w := do(r, http.MethodPost, "/auth/login", body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp util.Response
			decode(t, w, &resp)
			assert.Equal(t, "Email and password required", resp.Message)
		}
	})

	t.Run("whitespace email", func(t *testing.T) {
		w := do(r, http.MethodPost, "/auth/login", map[string]string{"email": " ", "password": "pw"}, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp map[string]interface{}
		decode(t, w, &resp)
		assert.True(t, strings.HasPrefix(resp["access_token"].(string), "token:: ::"))
	})

	t.Run("issues token", func(t *testing.T) {
		w := do(r, http.MethodPost, "/auth/login", map[string]string{"email": "ada@example.com", "password": "pw"}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			ExpiresIn   int    `json:"expires_in"`
		}
		decode(t, w, &resp)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, 3600, resp.ExpiresIn)
		assert.True(t, strings.HasPrefix(resp.AccessToken, "token::ada@example.com::"))

		me := do(r, http.MethodGet, "/auth/me", nil, map[string]string{"Authorization": "Bearer " + resp.AccessToken})
		require.Equal(t, http.StatusOK, me.Code)
		var user map[string]string
		decode(t, me, &user)
		assert.Equal(t, "ada@example.com", user["email"])
	})
}

func TestMeRejectsBadTokens(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer token::a::1::" + config.DefaultSecret, "Bearer token::a::9999999999::wrong"} {
		headers := map[string]string{}
		if header != "" {
			headers["Authorization"] = header
		}
		w := do(r, http.MethodGet, "/auth/me", nil, headers)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header=%q", header)
	}
}

func TestDashboardAllowsAnonymous(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/dashboard/summary", nil, map[string]string{"Authorization": "Bearer garbage"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, util.SourceFallback, w.Header().Get(util.DataSourceHeader))

	var summary map[string]int
	decode(t, w, &summary)
	assert.Equal(t, map[string]int{"totalCourses": 8, "totalEnrollments": 1240, "activeLearners": 744}, summary)

	w = do(r, http.MethodGet, "/dashboard/activity", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var activity []map[string]interface{}
	decode(t, w, &activity)
	assert.Len(t, activity, 14)
}

func TestCoursesFallback(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/courses", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, util.SourceFallback, w.Header().Get(util.DataSourceHeader))
	var courses []map[string]string
	decode(t, w, &courses)
	require.Len(t, courses, 3)
	assert.Equal(t, "c1", courses[0]["id"])

	w = do(r, http.MethodGet, "/courses/c1/reviews", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews struct {
		Rating float64 `json:"rating"`
		Count  int     `json:"count"`
	}
	decode(t, w, &reviews)
	assert.Equal(t, 4.5, reviews.Rating)
	assert.Equal(t, 3, reviews.Count)

	w = do(r, http.MethodGet, "/courses/c1/enrollments?period=monthly", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var series []map[string]interface{}
	decode(t, w, &series)
	assert.Len(t, series, 6)

	w = do(r, http.MethodGet, "/courses/c1/enrollments?period=hourly", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/courses/c1/dropoff", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dropOff struct {
		Points []map[string]float64 `json:"points"`
	}
	decode(t, w, &dropOff)
	assert.Len(t, dropOff.Points, 21)
}

func TestCoursesLive(t *testing.T) {
	r := newTestRouter(t, seededDB(t))

	w := do(r, http.MethodGet, "/courses/c1/completion", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, util.SourceLive, w.Header().Get(util.DataSourceHeader))
	assert.JSONEq(t, `{"completionRate":82.4}`, w.Body.String())

	w = do(r, http.MethodGet, "/courses/c2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var course map[string]interface{}
	decode(t, w, &course)
	assert.Equal(t, "Data Visualization", course["title"])
	assert.Contains(t, course, "creatorId")

	w = do(r, http.MethodGet, "/dashboard/summary", nil, nil)
	assert.Equal(t, util.SourceLive, w.Header().Get(util.DataSourceHeader))
	assert.JSONEq(t, `{"totalCourses":3,"totalEnrollments":30,"activeLearners":500}`, w.Body.String())
}

func TestInsightAndPortfolio(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/ai/next-topic", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":"Recommended next course topic: Building Interactive Dashboards with Real-time Data."}`, w.Body.String())

	w = do(r, http.MethodPost, "/ai/improvement-tips", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/ai/improvement-tips", map[string]string{"courseId": "c1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/ai/summarize-reviews", map[string]string{"courseId": "c1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/portfolio/generate", map[string]string{"name": "Ada"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var portfolio map[string]interface{}
	decode(t, w, &portfolio)
	assert.Equal(t, "Ada – Creator Portfolio", portfolio["title"])

	w = do(r, http.MethodPost, "/portfolio/generate", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 必填字段允许空字符串
	w = do(r, http.MethodPost, "/portfolio/generate", map[string]string{"name": ""}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/resume/generate", map[string]string{"name": "Ada"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/resume/generate", map[string]string{"name": "", "email": ""}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `""`, mustField(t, w, "email"))

	w = do(r, http.MethodPost, "/resume/generate", map[string]string{"name": "Ada", "email": "ada@example.com"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAchievements(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/achievements/level", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"level":"Bronze"}`, w.Body.String())

	w = do(r, http.MethodGet, "/achievements/progress?creatorId=x", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"points":1860,"nextLevel":"Silver","progressPercent":93}`, w.Body.String())

	w = do(r, http.MethodPost, "/achievements/update", map[string]interface{}{"creatorId": "x", "pointsDelta": 0}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","creatorId":"x","pointsAdded":0}`, w.Body.String())

	w = do(r, http.MethodPost, "/achievements/update", map[string]interface{}{"creatorId": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSystemEndpoints(t *testing.T) {
	offline := newTestRouter(t, nil)

	w := do(offline, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(offline, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(offline, http.MethodGet, "/test", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var report map[string]interface{}
	decode(t, w, &report)
	assert.Equal(t, "Not Connected", report["connection_status"])

	online := newTestRouter(t, seededDB(t))
	w = do(online, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(online, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodOptions, "/courses", nil, map[string]string{
		"Origin":                         "http://localhost:3000",
		"Access-Control-Request-Method":  "GET",
		"Access-Control-Request-Headers": "Authorization",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = do(r, http.MethodGet, "/courses", nil, map[string]string{"Origin": "https://portal.example.com"})
	assert.Equal(t, "https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), util.DataSourceHeader)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestAchievementProgressNegativePoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.Achievements.DemoPoints = -5
	r := New(cfg, nil).Router

	w := do(r, http.MethodGet, "/achievements/progress", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"points":-5,"nextLevel":"Bronze","progressPercent":100}`, w.Body.String())
}

func mustField(t *testing.T, w *httptest.ResponseRecorder, key string) string {
	t.Helper()
	var body map[string]json.RawMessage
	decode(t, w, &body)
	raw, ok := body[key]
	require.True(t, ok, key)
	return string(raw)
}
