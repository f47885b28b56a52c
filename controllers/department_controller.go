package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/services"
	"visitor-http-service/services/container"
)

// DepartmentController handles department reference data
type DepartmentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDepartmentController creates a new department controller
func NewDepartmentController(ctx *gin.Context, container *container.ServiceContainer) *DepartmentController {
	return &DepartmentController{
		Ctx:       ctx,
		Container: container,
	}
}

// DepartmentRequest creates or updates a department
type DepartmentRequest struct {
	Name        string `json:"name" binding:"required" example:"Engineering"`
	Description string `json:"description" example:"Product engineering team"`
	IsActive    *bool  `json:"is_active" example:"true"`
}

// HandleDepartmentFunc returns a Gin handler dispatching department requests
func HandleDepartmentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDepartmentController(ctx, container)

		switch method {
		case "getDepartments":
			controller.GetDepartments()
		case "getDepartment":
			controller.GetDepartment()
		case "createDepartment":
			controller.CreateDepartment()
		case "updateDepartment":
			controller.UpdateDepartment()
		case "deleteDepartment":
			controller.DeleteDepartment()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetDepartments returns a paginated department listing
// @Summary      List Departments
// @Tags         Department
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page number"     default(1)
// @Param        limit   query  int     false  "Items per page"  default(10)
// @Param        search  query  string  false  "Name search"
// @Success      200  {object}  map[string]interface{}
// @Router       /departments [get]
func (c *DepartmentController) GetDepartments() {
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

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	departments, total, err := departmentService.GetAllDepartments(query)
	if err != nil {
		config.Error("failed to list departments: %v", err)
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
			"data":        departments,
		},
	})
}

// GetDepartment returns a single department
// @Summary      Get Department
// @Tags         Department
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Department ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /departments/{id} [get]
func (c *DepartmentController) GetDepartment() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid department ID",
			"data":    nil,
		})
		return
	}

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	department, err := departmentService.GetDepartmentByID(id)
	if err != nil {
		if err.Error() == "department not found" {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to get department %d: %v", id, err)
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
		"data":    department,
	})
}

// CreateDepartment creates a department
// @Summary      Create Department
// @Tags         Department
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DepartmentRequest true "Department parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  ErrorResponse
// @Router       /departments [post]
func (c *DepartmentController) CreateDepartment() {
	var req DepartmentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid request parameters",
			"data":    nil,
		})
		return
	}

	department := &models.Department{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	if err := departmentService.CreateDepartment(department); err != nil {
		if err.Error() == "name already in use" {
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to create department: %v", err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Department created successfully",
		"data":    department,
	})
}

// UpdateDepartment updates a department
// @Summary      Update Department
// @Tags         Department
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                true  "Department ID"
// @Param        request  body  DepartmentRequest  true  "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid department ID",
			"data":    nil,
		})
		return
	}

	var req DepartmentRequest
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

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	department, err := departmentService.UpdateDepartment(id, updates)
	if err != nil {
		switch err.Error() {
		case "department not found":
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
			config.Error("failed to update department %d: %v", id, err)
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
		"message": "Department updated successfully",
		"data":    department,
	})
}

// DeleteDepartment deletes a department
// @Summary      Delete Department
// @Description  Delete a department; fails while hosts still reference it
// @Tags         Department
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Department ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid department ID",
			"data":    nil,
		})
		return
	}

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	if err := departmentService.DeleteDepartment(id); err != nil {
		switch err.Error() {
		case "department not found":
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
			config.Error("failed to delete department %d: %v", id, err)
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
		"message": "Department deleted successfully",
		"data":    nil,
	})
}
