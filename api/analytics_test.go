package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"moneybook/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "amount", "kind", "category_id", "occurred_at", "note", "created_at", "updated_at", "deleted_at"})
}

func TestAnalyticsHandler_GetSummary_Month(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 2024-03：收入 1000，支出 500（餐饮 300 + 交通 200）
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(transactionRows().
			AddRow(1, 7, 1000.0, "income", 9, time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local), "", time.Now(), time.Now(), nil).
			AddRow(2, 7, 300.0, "expense", 1, time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local), "", time.Now(), time.Now(), nil).
			AddRow(3, 7, 200.0, "expense", 2, time.Date(2024, 3, 20, 18, 0, 0, 0, time.Local), "", time.Now(), time.Now(), nil))

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "kind", "color", "sort", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 7, "餐饮", "expense", "#ef4444", 10, time.Now(), time.Now(), nil).
			AddRow(2, 7, "交通", "expense", "#3b82f6", 20, time.Now(), time.Now(), nil).
			AddRow(9, 7, "工资", "income", "#10b981", 10, time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAnalyticsHandler()
	router.GET("/analytics/summary", setUserIDMiddleware(7), h.GetSummary)

	req := httptest.NewRequest("GET", "/analytics/summary?range_type=month&month=2024-03", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1000), data["total_income"])
	assert.Equal(t, float64(500), data["total_expense"])
	assert.Equal(t, float64(500), data["net_savings"])

	stats := data["category_stats"].([]interface{})
	require.Len(t, stats, 2)
	top := stats[0].(map[string]interface{})
	assert.Equal(t, "餐饮", top["category"])
	assert.Equal(t, float64(300), top["total"])
	assert.Equal(t, float64(60), top["percentage"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_GetSummary_InvalidRangeType(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAnalyticsHandler()
	router.GET("/analytics/summary", setUserIDMiddleware(7), h.GetSummary)

	req := httptest.NewRequest("GET", "/analytics/summary?range_type=week", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestAnalyticsHandler_GetSummary_CustomRangeMissingBounds(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAnalyticsHandler()
	router.GET("/analytics/summary", setUserIDMiddleware(7), h.GetSummary)

	req := httptest.NewRequest("GET", "/analytics/summary?range_type=custom&start_time=2024-01-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestAnalyticsHandler_GetTrend(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(transactionRows().
			AddRow(1, 7, 800.0, "income", 9, now, "", time.Now(), time.Now(), nil).
			AddRow(2, 7, 200.0, "expense", 1, now, "", time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAnalyticsHandler()
	router.GET("/analytics/trend", setUserIDMiddleware(7), h.GetTrend)

	req := httptest.NewRequest("GET", "/analytics/trend?months=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	points := resp["data"].([]interface{})
	require.Len(t, points, 3)

	// 最早的月份在前，当前月在最后
	last := points[2].(map[string]interface{})
	assert.Equal(t, float64(now.Year()), last["year"])
	assert.Equal(t, float64(now.Month()), last["month"])
	assert.Equal(t, float64(800), last["total_income"])
	assert.Equal(t, float64(200), last["total_expense"])
	assert.Equal(t, float64(600), last["savings"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_GetTrend_InvalidMonths(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAnalyticsHandler()
	router.GET("/analytics/trend", setUserIDMiddleware(7), h.GetTrend)

	req := httptest.NewRequest("GET", "/analytics/trend?months=48", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
