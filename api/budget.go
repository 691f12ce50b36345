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

// BudgetHandler 预算处理器
type BudgetHandler struct{}

// NewBudgetHandler 创建预算处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// CreateBudgetRequest 创建预算请求
type CreateBudgetRequest struct {
	CategoryID uint    `json:"category_id" binding:"required" example:"1"`
	Amount     float64 `json:"amount" binding:"required,gte=0" example:"1500"`
	Month      int     `json:"month" binding:"required,min=1,max=12" example:"3"`
	Year       int     `json:"year" binding:"required,min=2000,max=2100" example:"2024"`
}

// UpdateBudgetRequest 更新预算请求（仅可调整金额）
type UpdateBudgetRequest struct {
	Amount float64 `json:"amount" binding:"required,gte=0" example:"1500"`
}

// BudgetOverviewItem 预算概览条目
type BudgetOverviewItem struct {
	ID         uint    `json:"id"`
	CategoryID uint    `json:"category_id"`
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
	Status     string  `json:"status"`
}

// List 获取预算列表
// @Summary 获取预算列表
// @Description 获取当前用户指定月份的预算列表，不传月份则返回全部
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 1-12"
// @Param year query int false "年份"
// @Success 200 {object} Response{data=[]models.Budget} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := database.DB.Where("user_id = ?", userID)

	if monthStr := c.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			BadRequest(c, "month参数值错误")
			return
		}
		query = query.Where("month = ?", month)
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			BadRequest(c, "year参数值错误")
			return
		}
		query = query.Where("year = ?", year)
	}

	var budgets []models.Budget
	if err := query.Preload("Category").Order("id ASC").Find(&budgets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, budgets)
}

// Create 创建预算
// @Summary 创建预算
// @Description 为指定支出类别创建某个月份的预算，同一类别同一月份只能有一条预算
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 预算只能挂在自己的支出类别上
	var category models.Category
	if err := database.DB.Where("id = ? AND user_id = ?", req.CategoryID, userID).First(&category).Error; err != nil {
		BadRequest(c, "类别不存在")
		return
	}
	if category.Kind != models.KindExpense {
		BadRequest(c, "只能为支出类别设置预算")
		return
	}

	// 同一类别同一月份只能有一条预算
	var existing models.Budget
	if err := database.DB.Where("user_id = ? AND category_id = ? AND month = ? AND year = ?",
		userID, req.CategoryID, req.Month, req.Year).First(&existing).Error; err == nil {
		BadRequest(c, "该类别本月已设置预算")
		return
	}

	budget := models.Budget{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Month:      req.Month,
		Year:       req.Year,
	}

	if err := database.DB.Create(&budget).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建预算失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", budget)
}

// Update 更新预算金额
// @Summary 更新预算金额
// @Description 调整指定预算的金额，类别和月份不可修改
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Param request body UpdateBudgetRequest true "预算金额"
// @Success 200 {object} Response{data=models.Budget} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "预算不存在"
// @Router /api/v1/budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		NotFound(c, "预算不存在")
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if err := database.DB.Model(&budget).Update("amount", req.Amount).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&budget, budget.ID)
	SuccessWithMessage(c, "更新成功", budget)
}

// Delete 删除预算
// @Summary 删除预算
// @Description 删除指定预算
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "预算不存在"
// @Router /api/v1/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		NotFound(c, "预算不存在")
		return
	}

	if err := database.DB.Delete(&budget).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// Overview 预算执行概览
// @Summary 预算执行概览
// @Description 获取指定月份各预算的已花费金额、执行比例和状态，月份默认为当前月
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 1-12"
// @Param year query int false "年份"
// @Success 200 {object} Response{data=[]BudgetOverviewItem} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets/overview [get]
func (h *BudgetHandler) Overview(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if monthStr := c.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			BadRequest(c, "month参数值错误")
			return
		}
		month = m
	}
	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			BadRequest(c, "year参数值错误")
			return
		}
		year = y
	}

	var budgets []models.Budget
	if err := database.DB.Preload("Category").
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("id ASC").Find(&budgets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 一次性取出当月支出记录，按类别累计
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	monthEnd := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, time.Local)

	var transactions []models.Transaction
	if err := database.DB.
		Where("user_id = ? AND kind = ? AND occurred_at >= ? AND occurred_at <= ?",
			userID, models.KindExpense, monthStart, monthEnd).
		Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	spentByCategory := service.ExpenseTotalsByCategory(transactions)

	items := make([]BudgetOverviewItem, 0, len(budgets))
	for _, b := range budgets {
		eval := service.EvaluateBudget(b.Amount, spentByCategory[b.CategoryID])
		items = append(items, BudgetOverviewItem{
			ID:         b.ID,
			CategoryID: b.CategoryID,
			Category:   b.Category.Name,
			Color:      b.Category.Color,
			Amount:     b.Amount,
			Spent:      eval.Spent,
			Percentage: eval.Percentage,
			Remaining:  eval.Remaining,
			Status:     eval.Status,
		})
	}

	Success(c, items)
}
