package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification 站内通知模型
// 由账单提醒扫描任务生成，仅做站内展示，不负责推送
type Notification struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"index;not null"`
	ReminderID uint           `json:"reminder_id" gorm:"index;not null"`
	Title      string         `json:"title" gorm:"size:100;not null"`
	Content    string         `json:"content" gorm:"size:255"`
	NotifyDate string         `json:"notify_date" gorm:"size:10;not null;index"` // 2006-01-02，同一提醒同一天只生成一条
	IsRead     bool           `json:"is_read" gorm:"default:false;index"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Notification) TableName() string {
	return "notifications"
}
