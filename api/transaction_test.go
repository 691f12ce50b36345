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

func categoryRow(id, userID uint, name, kind, color string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "name", "kind", "color", "sort", "created_at", "updated_at", "deleted_at"}).
		AddRow(id, userID, name, kind, color, 10, time.Now(), time.Now(), nil)
}

func TestTransactionHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 类别归属与类型校验
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(1, 7).
		WillReturnRows(categoryRow(1, 7, "餐饮", "expense", "#ef4444"))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTransactionHandler()
	router.POST("/transactions", setUserIDMiddleware(7), h.Create)

	body := `{"amount":58.5,"kind":"expense","category_id":1,"occurred_at":"2024-03-15 12:30:00","note":"午餐"}`
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_Create_KindMismatch(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 支出记录挂收入类别，写入时拒绝
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(2, 7).
		WillReturnRows(categoryRow(2, 7, "工资", "income", "#10b981"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTransactionHandler()
	router.POST("/transactions", setUserIDMiddleware(7), h.Create)

	body := `{"amount":58.5,"kind":"expense","category_id":2,"occurred_at":"2024-03-15 12:30:00"}`
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "记录类型与类别类型不一致", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_Create_NegativeAmount(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTransactionHandler()
	router.POST("/transactions", setUserIDMiddleware(7), h.Create)

	// 金额必须为正数，binding 层直接拒绝
	body := `{"amount":-10,"kind":"expense","category_id":1,"occurred_at":"2024-03-15 12:30:00"}`
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestTransactionHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT count").
		WithArgs(7, "expense").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(7, "expense").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "kind", "category_id", "occurred_at", "note", "created_at", "updated_at", "deleted_at"}).
			AddRow(2, 7, 30.0, "expense", 1, time.Now(), "晚餐", time.Now(), time.Now(), nil).
			AddRow(1, 7, 58.5, "expense", 1, time.Now(), "午餐", time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTransactionHandler()
	router.GET("/transactions", setUserIDMiddleware(7), h.List)

	req := httptest.NewRequest("GET", "/transactions?kind=expense", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	list := data["list"].([]interface{})
	assert.Len(t, list, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_List_InvalidKind(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTransactionHandler()
	router.GET("/transactions", setUserIDMiddleware(7), h.List)

	req := httptest.NewRequest("GET", "/transactions?kind=transfer", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestTransactionHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(99, 7).
		WillReturnRows(sqlmock.NewRows([]string{}))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTransactionHandler()
	router.GET("/transactions/:id", setUserIDMiddleware(7), h.Get)

	req := httptest.NewRequest("GET", "/transactions/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
