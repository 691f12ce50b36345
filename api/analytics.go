package api

import (
	"strconv"
	"time"

	"moneybook/database"
	"moneybook/middleware"
	"moneybook/models"
	"moneybook/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler 统计分析处理器
type AnalyticsHandler struct{}

// NewAnalyticsHandler 创建统计分析处理器
func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// SummaryRequest 汇总统计请求
type SummaryRequest struct {
	RangeType string `form:"range_type" example:"month"` // month/year/custom，默认 month
	Month     string `form:"month" example:"2024-03"`    // range_type=month 时生效
	Year      int    `form:"year" example:"2024"`        // range_type=year 时生效
	StartTime string `form:"start_time" example:"2024-01-01"`
	EndTime   string `form:"end_time" example:"2024-03-31"`
}

// resolveRange 解析统计时间范围，返回闭区间 [start, end]
func resolveRange(req *SummaryRequest) (time.Time, time.Time, string) {
	now := time.Now()

	switch req.RangeType {
	case "", "month":
		month := now.Format("2006-01")
		if req.Month != "" {
			month = req.Month
		}
		first, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, "month格式错误，应为: 2006-01"
		}
		last := time.Date(first.Year(), first.Month()+1, 0, 23, 59, 59, 0, time.Local)
		return first, last, ""
	case "year":
		year := now.Year()
		if req.Year > 0 {
			year = req.Year
		}
		first := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
		last := time.Date(year, 12, 31, 23, 59, 59, 0, time.Local)
		return first, last, ""
	case "custom":
		if req.StartTime == "" || req.EndTime == "" {
			return time.Time{}, time.Time{}, "自定义范围需要提供start_time和end_time"
		}
		start, err := time.ParseInLocation("2006-01-02", req.StartTime, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, "start_time格式错误，应为: 2006-01-02"
		}
		end, err := time.ParseInLocation("2006-01-02", req.EndTime, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, "end_time格式错误，应为: 2006-01-02"
		}
		// 包含结束日期当天
		end = end.Add(24*time.Hour - time.Second)
		if end.Before(start) {
			return time.Time{}, time.Time{}, "结束时间不能早于开始时间"
		}
		return start, end, ""
	default:
		return time.Time{}, time.Time{}, "range_type参数值错误，可选值：month、year、custom"
	}
}

// GetSummary 获取收支汇总统计
// @Summary 获取收支汇总统计
// @Description 按时间范围统计总收入、总支出、净结余和支出的类别分布（按金额降序，附带占比）
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param range_type query string false "范围类型 month/year/custom" default(month)
// @Param month query string false "月份 (2024-03)，range_type=month 时生效"
// @Param year query int false "年份，range_type=year 时生效"
// @Param start_time query string false "开始时间 (2024-01-01)，range_type=custom 时必填"
// @Param end_time query string false "结束时间 (2024-03-31)，range_type=custom 时必填"
// @Success 200 {object} Response{data=service.PeriodSummary} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	start, end, msg := resolveRange(&req)
	if msg != "" {
		BadRequest(c, msg)
		return
	}

	var transactions []models.Transaction
	if err := database.DB.
		Where("user_id = ? AND occurred_at >= ? AND occurred_at <= ?", userID, start, end).
		Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	var categories []models.Category
	if err := database.DB.Where("user_id = ?", userID).Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, service.Aggregate(transactions, categories, start, end))
}

// GetTrend 获取月度收支趋势
// @Summary 获取月度收支趋势
// @Description 获取最近N个月每月的总收入、总支出和结余，按时间从早到晚排列
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param months query int false "月份数量，1-24" default(6)
// @Success 200 {object} Response{data=[]service.MonthlyPoint} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	months := 6
	if monthsStr := c.Query("months"); monthsStr != "" {
		m, err := strconv.Atoi(monthsStr)
		if err != nil || m < 1 || m > 24 {
			BadRequest(c, "months参数值错误，范围：1-24")
			return
		}
		months = m
	}

	now := time.Now()
	// 趋势窗口的最早一天，只取窗口内的记录
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -(months - 1), 0)

	var transactions []models.Transaction
	if err := database.DB.
		Where("user_id = ? AND occurred_at >= ?", userID, windowStart).
		Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, service.MonthlySeries(transactions, months, now))
}
