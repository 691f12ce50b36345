package models

import (
	"time"
)

// 主题取值
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UserSettings 用户偏好设置
// 登录时随登录响应一次性下发，货币仅为展示标签，不影响存储的金额数值
type UserSettings struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Currency  string    `json:"currency" gorm:"size:10;default:CNY"` // 展示货币标签，如 CNY/USD
	Theme     string    `json:"theme" gorm:"size:10;default:light"`  // light/dark
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultUserSettings 返回默认偏好设置
func DefaultUserSettings(userID uint) UserSettings {
	return UserSettings{
		UserID:   userID,
		Currency: "CNY",
		Theme:    ThemeLight,
	}
}
