package service

import (
	"sort"
	"time"

	"moneybook/models"
)

// CategoryStat 单个支出类别的统计
type CategoryStat struct {
	CategoryID uint    `json:"category_id"`
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Total      float64 `json:"total"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"` // 占支出总额的百分比，支出总额为0时为0
}

// PeriodSummary 一个时间段的收支汇总
type PeriodSummary struct {
	TotalIncome   float64        `json:"total_income"`
	TotalExpense  float64        `json:"total_expense"`
	NetSavings    float64        `json:"net_savings"`
	CategoryStats []CategoryStat `json:"category_stats"`
}

// MonthlyPoint 月度收支序列中的一个点
type MonthlyPoint struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Savings      float64 `json:"savings"`
}

// Aggregate 汇总 [periodStart, periodEnd] 闭区间内的收支记录
// 类别统计仅覆盖支出记录，按金额降序排列，金额相同保持首次出现顺序；
// 纯内存计算，不访问数据库，空记录集返回全零结果
func Aggregate(records []models.Transaction, categories []models.Category, periodStart, periodEnd time.Time) PeriodSummary {
	catByID := make(map[uint]models.Category, len(categories))
	for _, c := range categories {
		catByID[c.ID] = c
	}

	var summary PeriodSummary
	var stats []CategoryStat
	idx := make(map[uint]int)

	for _, r := range records {
		if r.OccurredAt.Before(periodStart) || r.OccurredAt.After(periodEnd) {
			continue
		}
		switch r.Kind {
		case models.KindIncome:
			summary.TotalIncome += r.Amount
		case models.KindExpense:
			summary.TotalExpense += r.Amount
			i, ok := idx[r.CategoryID]
			if !ok {
				name, color := "未分类", models.DefaultCategoryColor
				if c, found := catByID[r.CategoryID]; found {
					name, color = c.Name, c.Color
				}
				stats = append(stats, CategoryStat{CategoryID: r.CategoryID, Category: name, Color: color})
				i = len(stats) - 1
				idx[r.CategoryID] = i
			}
			stats[i].Total += r.Amount
			stats[i].Count++
		}
	}

	// 百分比：支出总额为 0 时全部为 0，避免除零
	for i := range stats {
		if summary.TotalExpense > 0 {
			stats[i].Percentage = stats[i].Total / summary.TotalExpense * 100
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})

	summary.NetSavings = summary.TotalIncome - summary.TotalExpense
	summary.CategoryStats = stats
	return summary
}

// MonthlySeries 以 anchor 所在月为终点，计算最近 monthCount 个自然月的收支序列（最早的月份在前）
// 月边界按日历计算：当月1号到下月第0天（即当月最后一天）
func MonthlySeries(records []models.Transaction, monthCount int, anchor time.Time) []MonthlyPoint {
	if monthCount <= 0 {
		return nil
	}

	points := make([]MonthlyPoint, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location()).AddDate(0, -i, 0)
		last := time.Date(first.Year(), first.Month()+1, 0, 23, 59, 59, 0, first.Location())

		p := MonthlyPoint{Year: first.Year(), Month: int(first.Month())}
		for _, r := range records {
			if r.OccurredAt.Before(first) || r.OccurredAt.After(last) {
				continue
			}
			switch r.Kind {
			case models.KindIncome:
				p.TotalIncome += r.Amount
			case models.KindExpense:
				p.TotalExpense += r.Amount
			}
		}
		p.Savings = p.TotalIncome - p.TotalExpense
		points = append(points, p)
	}

	return points
}

// ExpenseTotalsByCategory 按类别ID汇总支出金额，供预算评估使用
func ExpenseTotalsByCategory(records []models.Transaction) map[uint]float64 {
	totals := make(map[uint]float64)
	for _, r := range records {
		if r.Kind == models.KindExpense {
			totals[r.CategoryID] += r.Amount
		}
	}
	return totals
}
