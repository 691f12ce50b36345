package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultCategoryColor 未指定颜色时的默认灰色
const DefaultCategoryColor = "#64748b"

// Category 收支类别
// 每个类别归属一个用户，并限定收入或支出一种类型
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_name_kind"`
	Name      string         `json:"name" gorm:"size:50;not null;uniqueIndex:idx_user_name_kind"`
	Kind      string         `json:"kind" gorm:"size:10;not null;uniqueIndex:idx_user_name_kind"` // income/expense
	Color     string         `json:"color" gorm:"size:20;default:#64748b"`                        // 颜色代码，如 #ef4444
	Sort      int            `json:"sort" gorm:"default:0;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}
