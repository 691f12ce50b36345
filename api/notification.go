package api

import (
	"strconv"

	"moneybook/database"
	"moneybook/middleware"
	"moneybook/models"

	"github.com/gin-gonic/gin"
)

// NotificationHandler 站内通知处理器
type NotificationHandler struct{}

// NewNotificationHandler 创建站内通知处理器
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List 获取通知列表
// @Summary 获取通知列表
// @Description 获取当前用户的站内通知列表，支持分页和按已读状态筛选
// @Tags 通知
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param is_read query bool false "已读状态筛选"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Notification}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	query := database.DB.Model(&models.Notification{}).Where("user_id = ?", userID)

	if isReadStr := c.Query("is_read"); isReadStr != "" {
		isRead, err := strconv.ParseBool(isReadStr)
		if err != nil {
			BadRequest(c, "is_read参数值错误")
			return
		}
		query = query.Where("is_read = ?", isRead)
	}

	var total int64
	query.Count(&total)

	var notifications []models.Notification
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&notifications).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		List:     notifications,
	})
}

// UnreadCount 获取未读通知数量
// @Summary 获取未读通知数量
// @Description 获取当前用户的未读通知数量，用于角标展示
// @Tags 通知
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=map[string]int64} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var count int64
	if err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, gin.H{"count": count})
}

// MarkRead 标记通知为已读
// @Summary 标记通知为已读
// @Description 将指定通知标记为已读
// @Tags 通知
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "通知ID"
// @Success 200 {object} Response "标记成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "通知不存在"
// @Router /api/v1/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var notification models.Notification
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		NotFound(c, "通知不存在")
		return
	}

	if err := database.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	SuccessWithMessage(c, "标记成功", nil)
}

// MarkAllRead 标记全部通知为已读
// @Summary 标记全部通知为已读
// @Description 将当前用户的所有未读通知标记为已读
// @Tags 通知
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "标记成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	if err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	SuccessWithMessage(c, "标记成功", nil)
}
