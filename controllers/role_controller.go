package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/services"
	"visitor-http-service/services/container"
)

// RoleController handles host role reference data
type RoleController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoleController creates a new role controller
func NewRoleController(ctx *gin.Context, container *container.ServiceContainer) *RoleController {
	return &RoleController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoleRequest creates or updates a role
type RoleRequest struct {
	Name        string `json:"name" binding:"required" example:"Manager"`
	Description string `json:"description" example:"Department manager"`
	IsActive    *bool  `json:"is_active" example:"true"`
}

// HandleRoleFunc returns a Gin handler dispatching role requests
func HandleRoleFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoleController(ctx, container)

		switch method {
		case "getRoles":
			controller.GetRoles()
		case "getRole":
			controller.GetRole()
		case "createRole":
			controller.CreateRole()
		case "updateRole":
			controller.UpdateRole()
		case "deleteRole":
			controller.DeleteRole()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetRoles returns a paginated role listing
// @Summary      List Roles
// @Tags         Role
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page number"     default(1)
// @Param        limit   query  int     false  "Items per page"  default(10)
// @Param        search  query  string  false  "Name search"
// @Success      200  {object}  map[string]interface{}
// @Router       /roles [get]
func (c *RoleController) GetRoles() {
	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid query parameters",
			"data":    nil,
		})
		return
	}
	query.Normalize()

	roleService := c.Container.GetService("role").(services.InterfaceRoleService)
	roles, total, err := roleService.GetAllRoles(query)
	if err != nil {
		config.Error("failed to list roles: %v", err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	pagination := models.NewPaginationResult(total, query.Page, query.Limit)
	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"total":       pagination.Total,
			"page":        pagination.Page,
			"page_size":   pagination.PageSize,
			"total_pages": pagination.TotalPages,
			"has_next":    pagination.HasNext,
			"has_prev":    pagination.HasPrev,
			"data":        roles,
		},
	})
}

// GetRole returns a single role
// @Summary      Get Role
// @Tags         Role
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Role ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /roles/{id} [get]
func (c *RoleController) GetRole() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid role ID",
			"data":    nil,
		})
		return
	}

	roleService := c.Container.GetService("role").(services.InterfaceRoleService)
	role, err := roleService.GetRoleByID(id)
	if err != nil {
		if err.Error() == "role not found" {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to get role %d: %v", id, err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    role,
	})
}

// CreateRole creates a role
// @Summary      Create Role
// @Tags         Role
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RoleRequest true "Role parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  ErrorResponse
// @Router       /roles [post]
func (c *RoleController) CreateRole() {
	var req RoleRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid request parameters",
			"data":    nil,
		})
		return
	}

	role := &models.Role{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	roleService := c.Container.GetService("role").(services.InterfaceRoleService)
	if err := roleService.CreateRole(role); err != nil {
		if err.Error() == "name already in use" {
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to create role: %v", err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Role created successfully",
		"data":    role,
	})
}

// UpdateRole updates a role
// @Summary      Update Role
// @Tags         Role
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int          true  "Role ID"
// @Param        request  body  RoleRequest  true  "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /roles/{id} [put]
func (c *RoleController) UpdateRole() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid role ID",
			"data":    nil,
		})
		return
	}

	var req RoleRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid request parameters",
			"data":    nil,
		})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	roleService := c.Container.GetService("role").(services.InterfaceRoleService)
	role, err := roleService.UpdateRole(id, updates)
	if err != nil {
		switch err.Error() {
		case "role not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
		case "name already in use":
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			config.Error("failed to update role %d: %v", id, err)
			c.Ctx.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "internal server error",
				"data":    nil,
			})
		}
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Role updated successfully",
		"data":    role,
	})
}

// DeleteRole deletes a role
// @Summary      Delete Role
// @Description  Delete a role; fails while hosts still reference it
// @Tags         Role
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Role ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /roles/{id} [delete]
func (c *RoleController) DeleteRole() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid role ID",
			"data":    nil,
		})
		return
	}

	roleService := c.Container.GetService("role").(services.InterfaceRoleService)
	if err := roleService.DeleteRole(id); err != nil {
		switch err.Error() {
		case "role not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
		case "record is still in use":
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			config.Error("failed to delete role %d: %v", id, err)
			c.Ctx.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "internal server error",
				"data":    nil,
			})
		}
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Role deleted successfully",
		"data":    nil,
	})
}
