package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"moneybook/models"

	"gorm.io/gorm"
)

// ReminderNotifier 账单提醒扫描器
// 由定时任务驱动，为即将到期的账单生成站内通知；推送/邮件等投递渠道不在职责范围内
type ReminderNotifier struct {
	db *gorm.DB
}

// NewReminderNotifier 创建账单提醒扫描器
func NewReminderNotifier(db *gorm.DB) *ReminderNotifier {
	return &ReminderNotifier{db: db}
}

// Scan 扫描启用中的提醒，为3天内到期的生成站内通知
// 同一提醒同一天只生成一条，重复执行安全
func (n *ReminderNotifier) Scan(today time.Time) (int, error) {
	var reminders []models.Reminder
	if err := n.db.Where("is_active = ?", true).Find(&reminders).Error; err != nil {
		return 0, err
	}

	created := 0
	date := today.Format("2006-01-02")
	for _, r := range reminders {
		days := DaysUntilDue(r.DueDay, today)
		if days > 3 {
			continue
		}

		var existing models.Notification
		err := n.db.Where("reminder_id = ? AND notify_date = ?", r.ID, date).
			First(&existing).Error
		if err == nil {
			continue
		}
		// 查询失败不能当作"不存在"，否则会重复生成通知
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		var content string
		if days == 0 {
			content = fmt.Sprintf("「%s」今天到期，金额 %.2f", r.Title, r.Amount)
		} else {
			content = fmt.Sprintf("「%s」还有 %d 天到期（每月%d号），金额 %.2f", r.Title, days, r.DueDay, r.Amount)
		}

		notif := models.Notification{
			UserID:     r.UserID,
			ReminderID: r.ID,
			Title:      "账单到期提醒",
			Content:    content,
			NotifyDate: date,
		}
		if err := n.db.Create(&notif).Error; err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

// Run 定时任务入口，打印扫描结果
func (n *ReminderNotifier) Run() {
	count, err := n.Scan(time.Now())
	if err != nil {
		log.Printf("账单提醒扫描失败: %v", err)
		return
	}
	if count > 0 {
		log.Printf("账单提醒扫描完成，生成 %d 条通知", count)
	}
}
