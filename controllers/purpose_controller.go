package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/services"
	"visitor-http-service/services/container"
)

// PurposeController handles visit purpose reference data
type PurposeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPurposeController creates a new purpose controller
func NewPurposeController(ctx *gin.Context, container *container.ServiceContainer) *PurposeController {
	return &PurposeController{
		Ctx:       ctx,
		Container: container,
	}
}

// PurposeRequest creates or updates a visit purpose
type PurposeRequest struct {
	Name        string `json:"name" binding:"required" example:"Meeting"`
	Description string `json:"description" example:"Scheduled meeting with an employee"`
	IsActive    *bool  `json:"is_active" example:"true"`
}

// HandlePurposeFunc returns a Gin handler dispatching purpose requests
func HandlePurposeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPurposeController(ctx, container)

		switch method {
		case "getPurposes":
			controller.GetPurposes()
		case "getActivePurposes":
			controller.GetActivePurposes()
		case "getPurpose":
			controller.GetPurpose()
		case "createPurpose":
			controller.CreatePurpose()
		case "updatePurpose":
			controller.UpdatePurpose()
		case "deletePurpose":
			controller.DeletePurpose()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetPurposes returns a paginated purpose listing
// @Summary      List Purposes
// @Tags         Purpose
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page number"     default(1)
// @Param        limit   query  int     false  "Items per page"  default(10)
// @Param        search  query  string  false  "Name search"
// @Success      200  {object}  map[string]interface{}
// @Router       /purposes [get]
func (c *PurposeController) GetPurposes() {
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

	purposeService := c.Container.GetService("purpose").(services.InterfacePurposeService)
	purposes, total, err := purposeService.GetAllPurposes(query)
	if err != nil {
		config.Error("failed to list purposes: %v", err)
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
			"data":        purposes,
		},
	})
}

// GetActivePurposes returns active purposes for the kiosk dropdown
// @Summary      List Active Purposes
// @Description  Active purposes only, for the public kiosk check-in form
// @Tags         Purpose
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /purposes/active [get]
func (c *PurposeController) GetActivePurposes() {
	purposeService := c.Container.GetService("purpose").(services.InterfacePurposeService)
	purposes, err := purposeService.GetActivePurposes()
	if err != nil {
		config.Error("failed to list active purposes: %v", err)
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
		"data":    purposes,
	})
}

// GetPurpose returns a single purpose
// @Summary      Get Purpose
// @Tags         Purpose
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Purpose ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /purposes/{id} [get]
func (c *PurposeController) GetPurpose() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid purpose ID",
			"data":    nil,
		})
		return
	}

	purposeService := c.Container.GetService("purpose").(services.InterfacePurposeService)
	purpose, err := purposeService.GetPurposeByID(id)
	if err != nil {
		if err.Error() == "purpose not found" {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to get purpose %d: %v", id, err)
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
		"data":    purpose,
	})
}

// CreatePurpose creates a purpose
// @Summary      Create Purpose
// @Tags         Purpose
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PurposeRequest true "Purpose parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  ErrorResponse
// @Router       /purposes [post]
func (c *PurposeController) CreatePurpose() {
	var req PurposeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid request parameters",
			"data":    nil,
		})
		return
	}

	purpose := &models.Purpose{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		purpose.IsActive = *req.IsActive
	}

	purposeService := c.Container.GetService("purpose").(services.InterfacePurposeService)
	if err := purposeService.CreatePurpose(purpose); err != nil {
		if err.Error() == "name already in use" {
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to create purpose: %v", err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Purpose created successfully",
		"data":    purpose,
	})
}

// UpdatePurpose updates a purpose
// @Summary      Update Purpose
// @Tags         Purpose
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int             true  "Purpose ID"
// @Param        request  body  PurposeRequest  true  "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /purposes/{id} [put]
func (c *PurposeController) UpdatePurpose() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid purpose ID",
			"data":    nil,
		})
		return
	}

	var req PurposeRequest
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

	purposeService := c.Container.GetService("purpose").(services.InterfacePurposeService)
	purpose, err := purposeService.UpdatePurpose(id, updates)
	if err != nil {
		switch err.Error() {
		case "purpose not found":
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
			config.Error("failed to update purpose %d: %v", id, err)
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
		"message": "Purpose updated successfully",
		"data":    purpose,
	})
}

// DeletePurpose deletes a purpose
// @Summary      Delete Purpose
// @Description  Delete a purpose; fails while visits still reference it
// @Tags         Purpose
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Purpose ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /purposes/{id} [delete]
func (c *PurposeController) DeletePurpose() {
	id, err := parseUintParam(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid purpose ID",
			"data":    nil,
		})
		return
	}

	purposeService := c.Container.GetService("purpose").(services.InterfacePurposeService)
	if err := purposeService.DeletePurpose(id); err != nil {
		switch err.Error() {
		case "purpose not found":
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
			config.Error("failed to delete purpose %d: %v", id, err)
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
		"message": "Purpose deleted successfully",
		"data":    nil,
	})
}
