package api

import (
	"strconv"

	"moneybook/database"
	"moneybook/middleware"
	"moneybook/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 类别处理器
type CategoryHandler struct{}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CreateCategoryRequest 创建类别请求
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=50" example:"餐饮"`
	Kind  string `json:"kind" binding:"required,oneof=income expense" example:"expense"`
	Color string `json:"color" binding:"omitempty,max=20" example:"#ef4444"`
	Sort  int    `json:"sort" example:"1"`
}

// UpdateCategoryRequest 更新类别请求（部分更新，仅更新出现的字段）
type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=50" example:"餐饮"`
	Color *string `json:"color" binding:"omitempty,max=20" example:"#ef4444"`
	Sort  *int    `json:"sort" example:"1"`
}

// List 获取类别列表
// @Summary 获取类别列表
// @Description 获取当前用户的收支类别列表，可按类型筛选
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind query string false "类型筛选 income/expense"
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := database.DB.Where("user_id = ?", userID)

	if kind := c.Query("kind"); kind != "" {
		if !models.IsValidKind(kind) {
			BadRequest(c, "kind参数值错误，可选值：income、expense")
			return
		}
		query = query.Where("kind = ?", kind)
	}

	var categories []models.Category
	if err := query.Order("sort ASC, id ASC").Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, categories)
}

// Create 创建类别
// @Summary 创建类别
// @Description 创建新的收支类别，同一用户下同类型的类别名称不可重复
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCategoryRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 同一用户下同类型的类别名称不可重复
	var existing models.Category
	if err := database.DB.Where("user_id = ? AND name = ? AND kind = ?", userID, req.Name, req.Kind).First(&existing).Error; err == nil {
		BadRequest(c, "类别名称已存在")
		return
	}

	color := req.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}

	category := models.Category{
		UserID: userID,
		Name:   req.Name,
		Kind:   req.Kind,
		Color:  color,
		Sort:   req.Sort,
	}

	if err := database.DB.Create(&category).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建类别失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", category)
}

// Update 更新类别
// @Summary 更新类别
// @Description 更新类别的名称、颜色或排序，类别的收支类型不可修改
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Param request body UpdateCategoryRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var category models.Category
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		NotFound(c, "类别不存在")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		// 改名时仍需保证同类型下名称唯一
		var existing models.Category
		if err := database.DB.Where("user_id = ? AND name = ? AND kind = ? AND id != ?",
			userID, *req.Name, category.Kind, category.ID).First(&existing).Error; err == nil {
			BadRequest(c, "类别名称已存在")
			return
		}
		updates["name"] = *req.Name
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Sort != nil {
		updates["sort"] = *req.Sort
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&category).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	database.DB.First(&category, category.ID)
	SuccessWithMessage(c, "更新成功", category)
}

// Delete 删除类别
// @Summary 删除类别
// @Description 删除指定类别。若已有收支记录引用该类别则拒绝删除；引用该类别的账单提醒会被改为不关联类别
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "类别已被收支记录引用"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var category models.Category
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		NotFound(c, "类别不存在")
		return
	}

	// 有收支记录引用时拒绝删除，避免历史记录悬空
	var count int64
	database.DB.Model(&models.Transaction{}).Where("category_id = ? AND user_id = ?", category.ID, userID).Count(&count)
	if count > 0 {
		BadRequest(c, "该类别下已有收支记录，无法删除")
		return
	}

	// 该类别的预算一并删除
	database.DB.Where("category_id = ? AND user_id = ?", category.ID, userID).Delete(&models.Budget{})

	// 引用该类别的提醒改为不关联类别
	database.DB.Model(&models.Reminder{}).
		Where("category_id = ? AND user_id = ?", category.ID, userID).
		Update("category_id", nil)

	if err := database.DB.Delete(&category).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
