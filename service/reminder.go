package service

import (
	"time"

	"moneybook/models"
)

// 账单到期紧迫度
const (
	UrgencyInactive  = "inactive"
	UrgencyDueToday  = "due_today"
	UrgencyImminent  = "imminent"
	UrgencyUpcoming  = "upcoming"
	UrgencyScheduled = "scheduled"
)

// DaysInMonth 返回指定年月的天数（按日历计算，闰年感知）
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysUntilDue 距离下一次到期日的天数，结果始终在 [0, 31)
// 本月到期日已过时，跨月计算到下个月的到期日
func DaysUntilDue(dueDay int, today time.Time) int {
	day := today.Day()
	if dueDay >= day {
		return dueDay - day
	}
	return (DaysInMonth(today.Year(), today.Month()) - day) + dueDay
}

// ClassifyUrgency 到期紧迫度分类
func ClassifyUrgency(daysUntil int, isActive bool) string {
	switch {
	case !isActive:
		return UrgencyInactive
	case daysUntil == 0:
		return UrgencyDueToday
	case daysUntil <= 3:
		return UrgencyImminent
	case daysUntil <= 7:
		return UrgencyUpcoming
	default:
		return UrgencyScheduled
	}
}

// UpcomingCount 统计7天内到期的启用提醒数量，用于通知角标
func UpcomingCount(reminders []models.Reminder, today time.Time) int {
	count := 0
	for _, r := range reminders {
		if r.IsActive && DaysUntilDue(r.DueDay, today) <= 7 {
			count++
		}
	}
	return count
}

// OrdinalSuffix 英文序数词后缀（1st/2nd/3rd/4th，11-13 例外），仅用于展示
func OrdinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
