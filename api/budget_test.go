package api

import (
	"bytes"
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

func TestBudgetHandler_Create_IncomeCategoryRejected(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 预算只能挂支出类别
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(2, 7).
		WillReturnRows(categoryRow(2, 7, "工资", "income", "#10b981"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBudgetHandler()
	router.POST("/budgets", setUserIDMiddleware(7), h.Create)

	body := `{"category_id":2,"amount":1000,"month":3,"year":2024}`
	req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "只能为支出类别设置预算", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Create_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(1, 7).
		WillReturnRows(categoryRow(1, 7, "餐饮", "expense", "#ef4444"))

	// 已有同类别同月份预算
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(7, 1, 3, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "amount", "month", "year", "created_at", "updated_at", "deleted_at"}).
			AddRow(5, 7, 1, 500.0, 3, 2024, time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBudgetHandler()
	router.POST("/budgets", setUserIDMiddleware(7), h.Create)

	body := `{"category_id":1,"amount":1000,"month":3,"year":2024}`
	req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "该类别本月已设置预算", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Overview(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 当月预算：餐饮 500
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(7, 3, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "amount", "month", "year", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 7, 1, 500.0, 3, 2024, time.Now(), time.Now(), nil))

	// Preload 类别
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(1).
		WillReturnRows(categoryRow(1, 7, "餐饮", "expense", "#ef4444"))

	// 当月支出记录：餐饮累计 450
	occurred := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "kind", "category_id", "occurred_at", "note", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 7, 300.0, "expense", 1, occurred, "", time.Now(), time.Now(), nil).
			AddRow(2, 7, 150.0, "expense", 1, occurred, "", time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBudgetHandler()
	router.GET("/budgets/overview", setUserIDMiddleware(7), h.Overview)

	req := httptest.NewRequest("GET", "/budgets/overview?month=3&year=2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "餐饮", item["category"])
	assert.Equal(t, float64(450), item["spent"])
	assert.Equal(t, float64(90), item["percentage"])
	assert.Equal(t, float64(50), item["remaining"])
	assert.Equal(t, "warning", item["status"])
	require.NoError(t, mock.ExpectationsWereMet())
}
