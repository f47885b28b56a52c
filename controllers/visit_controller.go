package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/services"
	"visitor-http-service/services/container"
)

// InterfaceVisitController defines the visit controller interface
type InterfaceVisitController interface {
	CreateVisit()
	GetVisits()
	GetVisit()
	UpdateVisit()
	DeleteVisit()
	CheckOutVisit()
	GetVisitStats()
	GetVisitReport()
}

// VisitController handles the visit lifecycle and reporting
type VisitController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisitController creates a new visit controller
func NewVisitController(ctx *gin.Context, container *container.ServiceContainer) *VisitController {
	return &VisitController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateVisitRequest opens a visit for an already registered guest
type CreateVisitRequest struct {
	GuestID       string `json:"guest_id" binding:"required" example:"f6b2c1d0-1234-4a5b-8c9d-0e1f2a3b4c5d"`
	PurposeID     uint   `json:"purpose_id" binding:"required" example:"1"`
	HostID        *uint  `json:"host_id" example:"1"`
	CustomPurpose string `json:"custom_purpose" example:"Annual audit"`
	Notes         string `json:"notes" example:"Escorted to meeting room 2"`
}

// UpdateVisitRequest edits a visit's mutable fields
type UpdateVisitRequest struct {
	PurposeID     uint   `json:"purpose_id" example:"2"`
	HostID        *uint  `json:"host_id" example:"3"`
	CustomPurpose string `json:"custom_purpose" example:"Contract signing"`
	Notes         string `json:"notes" example:"Left a package at the desk"`
}

// HandleVisitFunc returns a Gin handler dispatching visit requests
func HandleVisitFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisitController(ctx, container)

		switch method {
		case "createVisit":
			controller.CreateVisit()
		case "getVisits":
			controller.GetVisits()
		case "getVisit":
			controller.GetVisit()
		case "updateVisit":
			controller.UpdateVisit()
		case "deleteVisit":
			controller.DeleteVisit()
		case "checkOutVisit":
			controller.CheckOutVisit()
		case "getVisitStats":
			controller.GetVisitStats()
		case "getVisitReport":
			controller.GetVisitReport()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// CreateVisit opens a visit for an existing guest
// @Summary      Create Visit
// @Description  Open a checked-in visit for an already registered guest
// @Tags         Visit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateVisitRequest true "Visit parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /visits [post]
func (c *VisitController) CreateVisit() {
	var req CreateVisitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid request parameters",
			"data":    nil,
		})
		return
	}

	visit := &models.Visit{
		GuestID:       req.GuestID,
		PurposeID:     req.PurposeID,
		HostID:        req.HostID,
		CustomPurpose: req.CustomPurpose,
		Notes:         req.Notes,
	}

	visitService := c.Container.GetService("visit").(services.InterfaceVisitService)
	if err := visitService.CreateVisit(visit); err != nil {
		switch err.Error() {
		case "guest not found", "purpose not found", "host not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			config.Error("failed to create visit: %v", err)
			c.Ctx.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "internal server error",
				"data":    nil,
			})
		}
		return
	}

	created, err := visitService.GetVisitByID(visit.ID)
	if err != nil {
		created = visit
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Visit created successfully",
		"data":    created,
	})
}

// GetVisits returns a filtered, paginated visit listing
// @Summary      List Visits
// @Description  List visits newest first, filtered by status, host, purpose, date range and guest search
// @Tags         Visit
// @Produce      json
// @Security     BearerAuth
// @Param        page        query  int     false  "Page number"     default(1)
// @Param        limit       query  int     false  "Items per page"  default(10)
// @Param        search      query  string  false  "Guest name, email or company"
// @Param        status      query  string  false  "checked_in or checked_out"
// @Param        startDate   query  string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        endDate     query  string  false  "Inclusive end date (YYYY-MM-DD)"
// @Param        host_id     query  int     false  "Host ID"
// @Param        purpose_id  query  int     false  "Purpose ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /visits [get]
func (c *VisitController) GetVisits() {
	var filter services.VisitFilter
	if err := c.Ctx.ShouldBindQuery(&filter); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid query parameters",
			"data":    nil,
		})
		return
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	visitService := c.Container.GetService("visit").(services.InterfaceVisitService)
	visits, total, err := visitService.GetAllVisits(filter)
	if err != nil {
		config.Error("failed to list visits: %v", err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	pagination := models.NewPaginationResult(total, filter.Page, filter.Limit)
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
			"data":        visits,
		},
	})
}

// GetVisit returns a single visit with its relations
// @Summary      Get Visit
// @Tags         Visit
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Visit ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /visits/{id} [get]
func (c *VisitController) GetVisit() {
	id := c.Ctx.Param("id")

	visitService := c.Container.GetService("visit").(services.InterfaceVisitService)
	visit, err := visitService.GetVisitByID(id)
	if err != nil {
		if err.Error() == "visit not found" {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to get visit %s: %v", id, err)
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
		"data":    visit,
	})
}

// UpdateVisit edits a visit's host, purpose and notes
// @Summary      Update Visit
// @Tags         Visit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string              true  "Visit ID"
// @Param        request  body  UpdateVisitRequest  true  "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /visits/{id} [put]
func (c *VisitController) UpdateVisit() {
	id := c.Ctx.Param("id")

	var req UpdateVisitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid request parameters",
			"data":    nil,
		})
		return
	}

	updates := map[string]interface{}{}
	if req.PurposeID != 0 {
		updates["purpose_id"] = req.PurposeID
	}
	if req.HostID != nil {
		updates["host_id"] = *req.HostID
	}
	if req.CustomPurpose != "" {
		updates["custom_purpose"] = req.CustomPurpose
	}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}

	visitService := c.Container.GetService("visit").(services.InterfaceVisitService)
	visit, err := visitService.UpdateVisit(id, updates)
	if err != nil {
		switch err.Error() {
		case "visit not found", "host not found", "purpose not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			config.Error("failed to update visit %s: %v", id, err)
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
		"message": "Visit updated successfully",
		"data":    visit,
	})
}

// DeleteVisit removes a visit record
// @Summary      Delete Visit
// @Tags         Visit
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Visit ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /visits/{id} [delete]
func (c *VisitController) DeleteVisit() {
	id := c.Ctx.Param("id")

	visitService := c.Container.GetService("visit").(services.InterfaceVisitService)
	if err := visitService.DeleteVisit(id); err != nil {
		if err.Error() == "visit not found" {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to delete visit %s: %v", id, err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Visit deleted successfully",
		"data":    nil,
	})
}

// CheckOutVisit transitions a visit to checked_out
// @Summary      Check Out Visit
// @Description  Transition a visit from checked_in to checked_out; a visit can only be checked out once
// @Tags         Visit
// @Produce      json
// @Param        id  path  string  true  "Visit ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /visits/{id}/checkout [put]
func (c *VisitController) CheckOutVisit() {
	id := c.Ctx.Param("id")

	visitService := c.Container.GetService("visit").(services.InterfaceVisitService)
	visit, err := visitService.CheckOutVisit(id)
	if err != nil {
		switch err.Error() {
		case "visit not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
		case "visit already checked out":
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			config.Error("failed to check out visit %s: %v", id, err)
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
		"message": "Visit checked out successfully",
		"data":    visit,
	})
}

// GetVisitStats returns the dashboard counters
// @Summary      Visit Statistics
// @Description  Total, today's, active and checked-out-today visit counts
// @Tags         Visit
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /visits/stats [get]
func (c *VisitController) GetVisitStats() {
	visitService := c.Container.GetService("visit").(services.InterfaceVisitService)
	stats, err := visitService.GetVisitStats()
	if err != nil {
		config.Error("failed to compute visit stats: %v", err)
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
		"data":    stats,
	})
}

// GetVisitReport returns grouped visit aggregates over a date range
// @Summary      Visit Report
// @Description  Visit counts grouped by department, purpose and day over an optional inclusive date range
// @Tags         Visit
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query  string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /visits/report [get]
func (c *VisitController) GetVisitReport() {
	startDate := c.Ctx.Query("startDate")
	endDate := c.Ctx.Query("endDate")

	visitService := c.Container.GetService("visit").(services.InterfaceVisitService)
	report, err := visitService.GetVisitReport(startDate, endDate)
	if err != nil {
		config.Error("failed to build visit report: %v", err)
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
		"data":    report,
	})
}
