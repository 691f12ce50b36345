package api

import (
	"moneybook/database"
	"moneybook/middleware"
	"moneybook/models"

	"github.com/gin-gonic/gin"
)

// SettingsHandler 用户偏好设置处理器
type SettingsHandler struct{}

// NewSettingsHandler 创建用户偏好设置处理器
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// UpdateSettingsRequest 更新偏好设置请求（部分更新，仅更新出现的字段）
type UpdateSettingsRequest struct {
	Currency *string `json:"currency" binding:"omitempty,max=10" example:"CNY"`
	Theme    *string `json:"theme" binding:"omitempty,oneof=light dark" example:"light"`
}

// Get 获取偏好设置
// @Summary 获取偏好设置
// @Description 获取当前用户的偏好设置，不存在时返回默认设置
// @Tags 设置
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.UserSettings} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var settings models.UserSettings
	if err := database.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		// 老账号可能没有设置记录，补建一条默认的
		settings = models.DefaultUserSettings(userID)
		if err := database.DB.Create(&settings).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "初始化设置失败"))
			return
		}
	}

	Success(c, settings)
}

// Update 更新偏好设置
// @Summary 更新偏好设置
// @Description 更新当前用户的展示货币或主题
// @Tags 设置
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "偏好设置"
// @Success 200 {object} Response{data=models.UserSettings} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var settings models.UserSettings
	if err := database.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		settings = models.DefaultUserSettings(userID)
		if err := database.DB.Create(&settings).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "初始化设置失败"))
			return
		}
	}

	updates := map[string]interface{}{}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.Theme != nil {
		updates["theme"] = *req.Theme
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&settings).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	// 重新读取时用新变量，避免带上已填充的主键条件
	var updated models.UserSettings
	if err := database.DB.Where("user_id = ?", userID).First(&updated).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	SuccessWithMessage(c, "更新成功", updated)
}
