package service

import (
	"testing"
	"time"

	"moneybook/models"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 29, DaysInMonth(2024, time.February)) // 闰年
	assert.Equal(t, 28, DaysInMonth(2023, time.February)) // 平年
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
}

func TestDaysUntilDue(t *testing.T) {
	// 当天到期
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	assert.Equal(t, 0, DaysUntilDue(15, today))

	// 本月内未到期
	assert.Equal(t, 5, DaysUntilDue(20, today))

	// 到期日已过，跨月：3月31天，(31-15)+10 = 26
	assert.Equal(t, 26, DaysUntilDue(10, today))
}

func TestDaysUntilDueMonthWrap(t *testing.T) {
	// 30天月份的最后一天，到期日5号：(30-30)+5 = 5，不为负
	today := time.Date(2024, 4, 30, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 5, DaysUntilDue(5, today))

	// 平年2月28日，到期日2号：(28-28)+2 = 2
	febToday := time.Date(2023, 2, 28, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 2, DaysUntilDue(2, febToday))

	// 闰年2月28日，到期日2号：(29-28)+2 = 3
	leapToday := time.Date(2024, 2, 28, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 3, DaysUntilDue(2, leapToday))
}

func TestDaysUntilDueRange(t *testing.T) {
	// 任意合法输入结果均在 [0, 31)
	for month := time.January; month <= time.December; month++ {
		for day := 1; day <= DaysInMonth(2023, month); day++ {
			today := time.Date(2023, month, day, 0, 0, 0, 0, time.Local)
			for dueDay := 1; dueDay <= 31; dueDay++ {
				got := DaysUntilDue(dueDay, today)
				assert.GreaterOrEqual(t, got, 0)
				assert.Less(t, got, 31)
			}
		}
	}
}

func TestClassifyUrgency(t *testing.T) {
	// 停用的提醒不参与分级
	assert.Equal(t, UrgencyInactive, ClassifyUrgency(0, false))
	assert.Equal(t, UrgencyInactive, ClassifyUrgency(10, false))

	assert.Equal(t, UrgencyDueToday, ClassifyUrgency(0, true))
	assert.Equal(t, UrgencyImminent, ClassifyUrgency(1, true))
	assert.Equal(t, UrgencyImminent, ClassifyUrgency(3, true))
	assert.Equal(t, UrgencyUpcoming, ClassifyUrgency(4, true))
	assert.Equal(t, UrgencyUpcoming, ClassifyUrgency(7, true))
	assert.Equal(t, UrgencyScheduled, ClassifyUrgency(8, true))
	assert.Equal(t, UrgencyScheduled, ClassifyUrgency(30, true))
}

func TestClassifyUrgencyFebScenario(t *testing.T) {
	// 平年2月28日，到期日2号：2天后到期，临近
	today := time.Date(2023, 2, 28, 0, 0, 0, 0, time.Local)
	days := DaysUntilDue(2, today)
	assert.Equal(t, 2, days)
	assert.Equal(t, UrgencyImminent, ClassifyUrgency(days, true))
}

func TestUpcomingCount(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	reminders := []models.Reminder{
		{DueDay: 15, IsActive: true},  // 今天到期
		{DueDay: 20, IsActive: true},  // 5天后
		{DueDay: 22, IsActive: true},  // 7天后，计入
		{DueDay: 25, IsActive: true},  // 10天后，不计入
		{DueDay: 16, IsActive: false}, // 停用，不计入
	}

	assert.Equal(t, 3, UpcomingCount(reminders, today))
	assert.Equal(t, 0, UpcomingCount(nil, today))
}

func TestOrdinalSuffix(t *testing.T) {
	assert.Equal(t, "st", OrdinalSuffix(1))
	assert.Equal(t, "nd", OrdinalSuffix(2))
	assert.Equal(t, "rd", OrdinalSuffix(3))
	assert.Equal(t, "th", OrdinalSuffix(4))
	// 11-13 为例外
	assert.Equal(t, "th", OrdinalSuffix(11))
	assert.Equal(t, "th", OrdinalSuffix(12))
	assert.Equal(t, "th", OrdinalSuffix(13))
	assert.Equal(t, "st", OrdinalSuffix(21))
	assert.Equal(t, "nd", OrdinalSuffix(22))
	assert.Equal(t, "rd", OrdinalSuffix(23))
	assert.Equal(t, "th", OrdinalSuffix(30))
	assert.Equal(t, "st", OrdinalSuffix(31))
}
