package models

import (
	"time"

	"gorm.io/gorm"
)

// Budget 预算限额模型
// 每个用户、类别、月份、年份组合唯一
type Budget struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_cat_month_year"`
	CategoryID uint           `json:"category_id" gorm:"not null;uniqueIndex:idx_user_cat_month_year"`
	Amount     float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Month      int            `json:"month" gorm:"not null;uniqueIndex:idx_user_cat_month_year"` // 1-12
	Year       int            `json:"year" gorm:"not null;uniqueIndex:idx_user_cat_month_year"`  // >= 2000
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
	User       User           `json:"-" gorm:"foreignKey:UserID"`
	Category   Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}
