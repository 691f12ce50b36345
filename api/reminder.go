package api

import (
	"fmt"
	"strconv"
	"time"

	"moneybook/database"
	"moneybook/middleware"
	"moneybook/models"
	"moneybook/service"

	"github.com/gin-gonic/gin"
)

// ReminderHandler 账单提醒处理器
type ReminderHandler struct{}

// NewReminderHandler 创建账单提醒处理器
func NewReminderHandler() *ReminderHandler {
	return &ReminderHandler{}
}

// CreateReminderRequest 创建提醒请求
type CreateReminderRequest struct {
	Title       string  `json:"title" binding:"required,max=100" example:"房租"`
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"2000"`
	DueDay      int     `json:"due_day" binding:"required,min=1,max=31" example:"5"`
	CategoryID  *uint   `json:"category_id" example:"1"`
	IsRecurring *bool   `json:"is_recurring" example:"true"`
}

// UpdateReminderRequest 更新提醒请求（部分更新，仅更新出现的字段）
type UpdateReminderRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=100" example:"房租"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0" example:"2000"`
	DueDay      *int     `json:"due_day" binding:"omitempty,min=1,max=31" example:"5"`
	CategoryID  *uint    `json:"category_id" example:"1"`
	IsRecurring *bool    `json:"is_recurring" example:"true"`
	IsActive    *bool    `json:"is_active" example:"true"`
}

// ReminderItem 提醒列表条目，附带到期倒计时与紧急程度
type ReminderItem struct {
	models.Reminder
	DaysUntilDue int    `json:"days_until_due"`
	Urgency      string `json:"urgency"`
	DueLabel     string `json:"due_label"`
}

// List 获取提醒列表
// @Summary 获取账单提醒列表
// @Description 获取当前用户的账单提醒列表，附带距下次到期的天数和紧急程度
// @Tags 账单提醒
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]ReminderItem} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/reminders [get]
func (h *ReminderHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var reminders []models.Reminder
	if err := database.DB.Where("user_id = ?", userID).Order("due_day ASC, id ASC").Find(&reminders).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	today := time.Now()
	items := make([]ReminderItem, 0, len(reminders))
	for _, r := range reminders {
		days := service.DaysUntilDue(r.DueDay, today)
		items = append(items, ReminderItem{
			Reminder:     r,
			DaysUntilDue: days,
			Urgency:      service.ClassifyUrgency(days, r.IsActive),
			DueLabel:     fmt.Sprintf("%d%s of each month", r.DueDay, service.OrdinalSuffix(r.DueDay)),
		})
	}

	Success(c, items)
}

// UpcomingCount 获取近期到期提醒数量
// @Summary 获取近期到期提醒数量
// @Description 获取7天内到期的启用中提醒数量，用于角标展示
// @Tags 账单提醒
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=map[string]int} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/reminders/upcoming-count [get]
func (h *ReminderHandler) UpcomingCount(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var reminders []models.Reminder
	if err := database.DB.Where("user_id = ?", userID).Find(&reminders).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, gin.H{"count": service.UpcomingCount(reminders, time.Now())})
}

// Create 创建提醒
// @Summary 创建账单提醒
// @Description 创建新的账单提醒，到期日为每月的1-31号
// @Tags 账单提醒
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReminderRequest true "提醒信息"
// @Success 200 {object} Response{data=models.Reminder} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/reminders [post]
func (h *ReminderHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 关联类别可选，给了就必须是自己的
	if req.CategoryID != nil {
		var category models.Category
		if err := database.DB.Where("id = ? AND user_id = ?", *req.CategoryID, userID).First(&category).Error; err != nil {
			BadRequest(c, "类别不存在")
			return
		}
	}

	isRecurring := true
	if req.IsRecurring != nil {
		isRecurring = *req.IsRecurring
	}

	reminder := models.Reminder{
		UserID:      userID,
		Title:       req.Title,
		Amount:      req.Amount,
		DueDay:      req.DueDay,
		CategoryID:  req.CategoryID,
		IsRecurring: isRecurring,
		IsActive:    true,
	}

	if err := database.DB.Create(&reminder).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建提醒失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", reminder)
}

// Update 更新提醒
// @Summary 更新账单提醒
// @Description 更新提醒的标题、金额、到期日、关联类别或启用状态
// @Tags 账单提醒
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "提醒ID"
// @Param request body UpdateReminderRequest true "提醒信息"
// @Success 200 {object} Response{data=models.Reminder} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "提醒不存在"
// @Router /api/v1/reminders/{id} [put]
func (h *ReminderHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var reminder models.Reminder
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
		NotFound(c, "提醒不存在")
		return
	}

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.DueDay != nil {
		updates["due_day"] = *req.DueDay
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := database.DB.Where("id = ? AND user_id = ?", *req.CategoryID, userID).First(&category).Error; err != nil {
			BadRequest(c, "类别不存在")
			return
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.IsRecurring != nil {
		updates["is_recurring"] = *req.IsRecurring
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&reminder).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	database.DB.First(&reminder, reminder.ID)
	SuccessWithMessage(c, "更新成功", reminder)
}

// Toggle 切换提醒启用状态
// @Summary 切换提醒启用状态
// @Description 启用或停用指定提醒，停用的提醒不再产生通知
// @Tags 账单提醒
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "提醒ID"
// @Success 200 {object} Response{data=models.Reminder} "切换成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "提醒不存在"
// @Router /api/v1/reminders/{id}/toggle [put]
func (h *ReminderHandler) Toggle(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var reminder models.Reminder
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
		NotFound(c, "提醒不存在")
		return
	}

	if err := database.DB.Model(&reminder).Update("is_active", !reminder.IsActive).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&reminder, reminder.ID)
	SuccessWithMessage(c, "切换成功", reminder)
}

// Delete 删除提醒
// @Summary 删除账单提醒
// @Description 删除指定提醒
// @Tags 账单提醒
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "提醒ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "提醒不存在"
// @Router /api/v1/reminders/{id} [delete]
func (h *ReminderHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var reminder models.Reminder
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
		NotFound(c, "提醒不存在")
		return
	}

	if err := database.DB.Delete(&reminder).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
