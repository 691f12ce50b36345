package models

import (
	"time"

	"gorm.io/gorm"
)

// Reminder 账单提醒模型
// due_day 为每月到期日（1-31）；category_id 可为空，类别删除时置空
type Reminder struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Title       string         `json:"title" gorm:"size:100;not null"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	DueDay      int            `json:"due_day" gorm:"not null"` // 1-31
	CategoryID  *uint          `json:"category_id" gorm:"index"`
	IsRecurring bool           `json:"is_recurring" gorm:"default:true"`
	IsActive    bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Reminder) TableName() string {
	return "reminders"
}
