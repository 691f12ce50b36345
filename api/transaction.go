package api

import (
	"strconv"
	"time"

	"moneybook/database"
	"moneybook/middleware"
	"moneybook/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 收支记录处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建收支记录处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest 创建收支记录请求
type CreateTransactionRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0" example:"99.99"`
	Kind       string  `json:"kind" binding:"required,oneof=income expense" example:"expense"`
	CategoryID uint    `json:"category_id" binding:"required" example:"1"`
	OccurredAt string  `json:"occurred_at" binding:"required" example:"2024-01-15 12:30:00"`
	Note       string  `json:"note" binding:"max=255" example:"午餐"`
}

// UpdateTransactionRequest 更新收支记录请求（整体替换，不支持部分合并）
type UpdateTransactionRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0" example:"99.99"`
	Kind       string  `json:"kind" binding:"required,oneof=income expense" example:"expense"`
	CategoryID uint    `json:"category_id" binding:"required" example:"1"`
	OccurredAt string  `json:"occurred_at" binding:"required" example:"2024-01-15 12:30:00"`
	Note       string  `json:"note" binding:"max=255" example:"午餐"`
}

// TransactionListRequest 收支记录列表请求
type TransactionListRequest struct {
	Page       int    `form:"page" example:"1"`
	PageSize   int    `form:"page_size" example:"10"`
	Kind       string `form:"kind" example:"expense"`
	CategoryID uint   `form:"category_id" example:"1"`
	StartTime  string `form:"start_time" example:"2024-01-01"`
	EndTime    string `form:"end_time" example:"2024-12-31"`
}

// loadOwnedCategory 校验类别存在、归当前用户所有且类型匹配
func loadOwnedCategory(userID, categoryID uint, kind string) (*models.Category, string) {
	var cat models.Category
	if err := database.DB.Where("id = ? AND user_id = ?", categoryID, userID).First(&cat).Error; err != nil {
		return nil, "类别不存在"
	}
	// 收支类型必须与类别类型一致，写入时即拒绝
	if cat.Kind != kind {
		return nil, "记录类型与类别类型不一致"
	}
	return &cat, ""
}

// Create 创建收支记录
// @Summary 创建收支记录
// @Description 创建一条新的收支记录，记录类型必须与所选类别的类型一致
// @Tags 收支记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "收支记录信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if _, msg := loadOwnedCategory(userID, req.CategoryID, req.Kind); msg != "" {
		BadRequest(c, msg)
		return
	}

	// 解析时间
	occurredAt, err := time.ParseInLocation("2006-01-02 15:04:05", req.OccurredAt, time.Local)
	if err != nil {
		BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
		return
	}

	tx := models.Transaction{
		UserID:     userID,
		Amount:     req.Amount,
		Kind:       req.Kind,
		CategoryID: req.CategoryID,
		OccurredAt: occurredAt,
		Note:       req.Note,
	}

	if err := database.DB.Create(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收支记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", tx)
}

// List 获取收支记录列表
// @Summary 获取收支记录列表
// @Description 获取当前用户的收支记录列表，支持分页和按类型、类别、时间范围筛选
// @Tags 收支记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param kind query string false "类型筛选 income/expense"
// @Param category_id query int false "类别筛选"
// @Param start_time query string false "开始时间 (2024-01-01)"
// @Param end_time query string false "结束时间 (2024-12-31)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Transaction}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if req.Kind != "" {
		if !models.IsValidKind(req.Kind) {
			BadRequest(c, "kind参数值错误，可选值：income、expense")
			return
		}
		query = query.Where("kind = ?", req.Kind)
	}
	if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}

	// 时间范围筛选
	if req.StartTime != "" {
		startTime, err := time.ParseInLocation("2006-01-02", req.StartTime, time.Local)
		if err == nil {
			query = query.Where("occurred_at >= ?", startTime)
		}
	}
	if req.EndTime != "" {
		endTime, err := time.ParseInLocation("2006-01-02", req.EndTime, time.Local)
		if err == nil {
			// 包含结束日期当天
			endTime = endTime.Add(24*time.Hour - time.Second)
			query = query.Where("occurred_at <= ?", endTime)
		}
	}

	// 获取总数
	var total int64
	query.Count(&total)

	// 获取列表
	var transactions []models.Transaction
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("occurred_at DESC").Offset(offset).Limit(req.PageSize).Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     transactions,
	})
}

// Get 获取单条收支记录
// @Summary 获取单条收支记录
// @Description 根据ID获取收支记录详情
// @Tags 收支记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收支记录ID"
// @Success 200 {object} Response{data=models.Transaction} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, tx)
}

// Update 更新收支记录
// @Summary 更新收支记录
// @Description 整体替换指定的收支记录，所有字段必填
// @Tags 收支记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收支记录ID"
// @Param request body UpdateTransactionRequest true "收支记录信息"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if _, msg := loadOwnedCategory(userID, req.CategoryID, req.Kind); msg != "" {
		BadRequest(c, msg)
		return
	}

	occurredAt, err := time.ParseInLocation("2006-01-02 15:04:05", req.OccurredAt, time.Local)
	if err != nil {
		BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
		return
	}

	// 整体替换
	updates := map[string]interface{}{
		"amount":      req.Amount,
		"kind":        req.Kind,
		"category_id": req.CategoryID,
		"occurred_at": occurredAt,
		"note":        req.Note,
	}

	if err := database.DB.Model(&tx).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	// 重新获取更新后的记录
	database.DB.First(&tx, tx.ID)
	SuccessWithMessage(c, "更新成功", tx)
}

// Delete 删除收支记录
// @Summary 删除收支记录
// @Description 删除指定的收支记录
// @Tags 收支记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收支记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
