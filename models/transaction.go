package models

import (
	"time"

	"gorm.io/gorm"
)

// 记录类型：收入/支出，封闭的两值枚举
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// IsValidKind 校验记录类型是否合法
func IsValidKind(kind string) bool {
	return kind == KindIncome || kind == KindExpense
}

// Transaction 收支记录模型
// 金额始终为正数，收入/支出由 kind 区分
type Transaction struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"index;not null"`
	Amount     float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Kind       string         `json:"kind" gorm:"size:10;not null;index"` // income/expense
	CategoryID uint           `json:"category_id" gorm:"index;not null"`
	OccurredAt time.Time      `json:"occurred_at" gorm:"not null;index"`
	Note       string         `json:"note" gorm:"size:255"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
	User       User           `json:"-" gorm:"foreignKey:UserID"`
	Category   Category       `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}
