package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupNotifierDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

func TestReminderNotifierScan(t *testing.T) {
	db, mock, cleanup := setupNotifierDB(t)
	defer cleanup()

	today := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)

	// 启用的提醒：17号到期（2天后，需通知）、25号到期（10天后，跳过）
	reminderRows := sqlmock.NewRows([]string{"id", "user_id", "title", "amount", "due_day", "category_id", "is_recurring", "is_active"}).
		AddRow(1, 7, "房租", 2000.0, 17, nil, true, true).
		AddRow(2, 7, "水电费", 150.0, 25, nil, true, true)
	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WithArgs(true).
		WillReturnRows(reminderRows)

	// 当天尚无该提醒的通知
	mock.ExpectQuery("SELECT .* FROM `notifications`").
		WithArgs(1, "2024-03-15").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `notifications`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	notifier := NewReminderNotifier(db)
	created, err := notifier.Scan(today)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderNotifierScanIdempotent(t *testing.T) {
	db, mock, cleanup := setupNotifierDB(t)
	defer cleanup()

	today := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)

	reminderRows := sqlmock.NewRows([]string{"id", "user_id", "title", "amount", "due_day", "category_id", "is_recurring", "is_active"}).
		AddRow(1, 7, "房租", 2000.0, 15, nil, true, true)
	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WithArgs(true).
		WillReturnRows(reminderRows)

	// 当天已有通知，不再生成
	existingRows := sqlmock.NewRows([]string{"id", "user_id", "reminder_id", "title", "content", "notify_date", "is_read"}).
		AddRow(9, 7, 1, "账单到期提醒", "「房租」今天到期，金额 2000.00", "2024-03-15", false)
	mock.ExpectQuery("SELECT .* FROM `notifications`").
		WithArgs(1, "2024-03-15").
		WillReturnRows(existingRows)

	notifier := NewReminderNotifier(db)
	created, err := notifier.Scan(today)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderNotifierScanDedupQueryError(t *testing.T) {
	db, mock, cleanup := setupNotifierDB(t)
	defer cleanup()

	today := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)

	reminderRows := sqlmock.NewRows([]string{"id", "user_id", "title", "amount", "due_day", "category_id", "is_recurring", "is_active"}).
		AddRow(1, 7, "房租", 2000.0, 15, nil, true, true)
	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WithArgs(true).
		WillReturnRows(reminderRows)

	// 去重查询失败时向上返回错误，而不是当作"不存在"重复生成
	mock.ExpectQuery("SELECT .* FROM `notifications`").
		WithArgs(1, "2024-03-15").
		WillReturnError(errors.New("connection reset"))

	notifier := NewReminderNotifier(db)
	created, err := notifier.Scan(today)
	require.Error(t, err)
	assert.Equal(t, 0, created)
	require.NoError(t, mock.ExpectationsWereMet())
}
