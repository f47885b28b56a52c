package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/services"
	"visitor-http-service/services/container"
)

// InterfaceHostController defines the host controller interface
type InterfaceHostController interface {
	GetHosts()
	GetHost()
	CreateHost()
	UpdateHost()
	DeleteHost()
}

// HostController handles host administration
type HostController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHostController creates a new host controller
func NewHostController(ctx *gin.Context, container *container.ServiceContainer) *HostController {
	return &HostController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateHostRequest creates an employee who can receive visitors
type CreateHostRequest struct {
	Name         string `json:"name" binding:"required" example:"Budi Santoso"`
	Email        string `json:"email" binding:"required,email" example:"budi@example.com"`
	Phone        string `json:"phone" example:"081234567890"`
	DepartmentID *uint  `json:"department_id" example:"1"`
	RoleID       *uint  `json:"role_id" example:"1"`
	IsActive     *bool  `json:"is_active" example:"true"`
}

// UpdateHostRequest edits a host's details
type UpdateHostRequest struct {
	Name         string `json:"name" example:"Budi Santoso"`
	Email        string `json:"email" example:"budi@example.com"`
	Phone        string `json:"phone" example:"081234567890"`
	DepartmentID *uint  `json:"department_id" example:"2"`
	RoleID       *uint  `json:"role_id" example:"2"`
	IsActive     *bool  `json:"is_active" example:"false"`
}

// HandleHostFunc returns a Gin handler dispatching host requests
func HandleHostFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHostController(ctx, container)

		switch method {
		case "getHosts":
			controller.GetHosts()
		case "getHost":
			controller.GetHost()
		case "createHost":
			controller.CreateHost()
		case "updateHost":
			controller.UpdateHost()
		case "deleteHost":
			controller.DeleteHost()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetHosts returns a paginated host listing
// @Summary      List Hosts
// @Tags         Host
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page number"     default(1)
// @Param        limit   query  int     false  "Items per page"  default(10)
// @Param        search  query  string  false  "Name or email search"
// @Success      200  {object}  map[string]interface{}
// @Router       /hosts [get]
func (c *HostController) GetHosts() {
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

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	hosts, total, err := hostService.GetAllHosts(query)
	if err != nil {
		config.Error("failed to list hosts: %v", err)
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
			"data":        hosts,
		},
	})
}

// GetHost returns a single host
// @Summary      Get Host
// @Tags         Host
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Host ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /hosts/{id} [get]
func (c *HostController) GetHost() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid host ID",
			"data":    nil,
		})
		return
	}

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	host, err := hostService.GetHostByID(id)
	if err != nil {
		if err.Error() == "host not found" {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to get host %d: %v", id, err)
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
		"data":    host,
	})
}

// CreateHost creates a new host
// @Summary      Create Host
// @Tags         Host
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateHostRequest true "Host parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /hosts [post]
func (c *HostController) CreateHost() {
	var req CreateHostRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid request parameters",
			"data":    nil,
		})
		return
	}

	host := &models.Host{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
		IsActive:     true,
	}
	if req.IsActive != nil {
		host.IsActive = *req.IsActive
	}

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	if err := hostService.CreateHost(host); err != nil {
		switch err.Error() {
		case "email already in use":
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
		case "department not found", "role not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			config.Error("failed to create host: %v", err)
			c.Ctx.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "internal server error",
				"data":    nil,
			})
		}
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Host created successfully",
		"data":    host,
	})
}

// UpdateHost updates a host
// @Summary      Update Host
// @Tags         Host
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                true  "Host ID"
// @Param        request  body  UpdateHostRequest  true  "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /hosts/{id} [put]
func (c *HostController) UpdateHost() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid host ID",
			"data":    nil,
		})
		return
	}

	var req UpdateHostRequest
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
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.DepartmentID != nil {
		updates["department_id"] = *req.DepartmentID
	}
	if req.RoleID != nil {
		updates["role_id"] = *req.RoleID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	host, err := hostService.UpdateHost(id, updates)
	if err != nil {
		switch err.Error() {
		case "host not found", "department not found", "role not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
		case "email already in use":
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			config.Error("failed to update host %d: %v", id, err)
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
		"message": "Host updated successfully",
		"data":    host,
	})
}

// DeleteHost deletes a host
// @Summary      Delete Host
// @Tags         Host
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Host ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /hosts/{id} [delete]
func (c *HostController) DeleteHost() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid host ID",
			"data":    nil,
		})
		return
	}

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	if err := hostService.DeleteHost(id); err != nil {
		if err.Error() == "host not found" {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to delete host %d: %v", id, err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Host deleted successfully",
		"data":    nil,
	})
}
