package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/services"
	"visitor-http-service/services/container"
)

// InterfaceGuestController defines the guest controller interface
type InterfaceGuestController interface {
	RegisterGuest()
	GetGuests()
	SearchGuests()
	GetGuest()
	UpdateGuest()
	DeleteGuest()
	CheckOutGuest()
}

// GuestController handles guest registration and administration
type GuestController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGuestController creates a new guest controller
func NewGuestController(ctx *gin.Context, container *container.ServiceContainer) *GuestController {
	return &GuestController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterGuestRequest is the kiosk check-in payload: the guest's details
// plus the visit being opened
type RegisterGuestRequest struct {
	Name          string `json:"name" binding:"required" example:"Jane Doe"`
	Phone         string `json:"phone" binding:"required" example:"081234567890"`
	Email         string `json:"email" example:"jane@example.com"`
	Company       string `json:"company" example:"Acme Corp"`
	Role          string `json:"role" example:"Sales Manager"`
	IDNumber      string `json:"id_number" example:"3174012345678901"`
	IDPhotoPath   string `json:"id_photo_path" example:"/uploads/id-photo-1718000000-a1b2c3d4.jpg"`
	PurposeID     uint   `json:"purpose_id" binding:"required" example:"1"`
	HostID        *uint  `json:"host_id" example:"1"`
	CustomPurpose string `json:"custom_purpose" example:"Annual audit"`
	Notes         string `json:"notes" example:"Escorted to meeting room 2"`
}

// UpdateGuestRequest is the admin guest update payload
type UpdateGuestRequest struct {
	Name        string `json:"name" example:"Jane Doe"`
	Phone       string `json:"phone" example:"081234567890"`
	Email       string `json:"email" example:"jane@example.com"`
	Company     string `json:"company" example:"Acme Corp"`
	Role        string `json:"role" example:"Sales Manager"`
	IDNumber    string `json:"id_number" example:"3174012345678901"`
	IDPhotoPath string `json:"id_photo_path" example:"/uploads/id-photo-1718000000-a1b2c3d4.jpg"`
}

// HandleGuestFunc returns a Gin handler dispatching guest requests
func HandleGuestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGuestController(ctx, container)

		switch method {
		case "registerGuest":
			controller.RegisterGuest()
		case "getGuests":
			controller.GetGuests()
		case "searchGuests":
			controller.SearchGuests()
		case "getGuest":
			controller.GetGuest()
		case "updateGuest":
			controller.UpdateGuest()
		case "deleteGuest":
			controller.DeleteGuest()
		case "checkOutGuest":
			controller.CheckOutGuest()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// RegisterGuest handles the kiosk check-in
// @Summary      Register Guest
// @Description  Find or create a guest by phone number and open a new checked-in visit
// @Tags         Guest
// @Accept       json
// @Produce      json
// @Param        request body RegisterGuestRequest true "Guest registration parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /guests [post]
func (c *GuestController) RegisterGuest() {
	var req RegisterGuestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "Invalid request parameters",
			"data":    nil,
		})
		return
	}

	guest := &models.Guest{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Company:     req.Company,
		Role:        req.Role,
		IDNumber:    req.IDNumber,
		IDPhotoPath: req.IDPhotoPath,
	}
	visit := &models.Visit{
		PurposeID:     req.PurposeID,
		HostID:        req.HostID,
		CustomPurpose: req.CustomPurpose,
		Notes:         req.Notes,
	}

	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	guest, visit, err := guestService.RegisterGuest(guest, visit)
	if err != nil {
		switch err.Error() {
		case "purpose not found", "host not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			config.Error("failed to register guest: %v", err)
			c.Ctx.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "internal server error",
				"data":    nil,
			})
		}
		return
	}

	// Tell the host over WhatsApp without holding up the kiosk
	if visit.Host != nil {
		whatsAppService := c.Container.GetService("whatsapp").(services.InterfaceWhatsAppService)
		host := visit.Host
		guestCopy := *guest
		visitCopy := *visit
		go func() {
			if err := whatsAppService.NotifyHostOfVisit(host, &guestCopy, &visitCopy); err != nil {
				config.Warning("failed to notify host %d: %v", host.ID, err)
			}
		}()
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Guest registered successfully",
		"data": gin.H{
			"guest": guest,
			"visit": visit,
		},
	})
}

// GetGuests returns a paginated guest listing
// @Summary      List Guests
// @Description  List guests with pagination and free-text search over name, email, company and phone
// @Tags         Guest
// @Produce      json
// @Security     BearerAuth
// @Param        page     query  int     false  "Page number"     default(1)
// @Param        limit    query  int     false  "Items per page"  default(10)
// @Param        search   query  string  false  "Free-text search"
// @Param        sorter   query  string  false  "Sort column (name, company, created_at)"
// @Param        sortDesc query  bool    false  "Sort descending"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /guests [get]
func (c *GuestController) GetGuests() {
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

	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	guests, total, err := guestService.GetAllGuests(query)
	if err != nil {
		config.Error("failed to list guests: %v", err)
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
			"data":        guests,
		},
	})
}

// SearchGuests is the kiosk returning-visitor lookup
// @Summary      Search Guests
// @Description  Return a short list of guests matching a free-text query, for pre-filling the kiosk form
// @Tags         Guest
// @Produce      json
// @Param        query  query  string  true   "Search query"
// @Param        limit  query  int     false  "Maximum results"  default(10)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /guests/search [get]
func (c *GuestController) SearchGuests() {
	q := c.Ctx.Query("query")
	if q == "" {
		// Older kiosk builds send the short form
		q = c.Ctx.Query("q")
	}
	if q == "" {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "query parameter is required",
			"data":    nil,
		})
		return
	}
	limit := 10
	if v, err := parsePositiveInt(c.Ctx.Query("limit")); err == nil {
		limit = v
	}

	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	guests, err := guestService.SearchGuests(q, limit)
	if err != nil {
		config.Error("guest search failed: %v", err)
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
		"data":    guests,
	})
}

// GetGuest returns a single guest
// @Summary      Get Guest
// @Tags         Guest
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Guest ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /guests/{id} [get]
func (c *GuestController) GetGuest() {
	id := c.Ctx.Param("id")

	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	guest, err := guestService.GetGuestByID(id)
	if err != nil {
		if err.Error() == "guest not found" {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to get guest %s: %v", id, err)
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
		"data":    guest,
	})
}

// UpdateGuest updates a guest's details
// @Summary      Update Guest
// @Tags         Guest
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string              true  "Guest ID"
// @Param        request  body  UpdateGuestRequest  true  "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /guests/{id} [put]
func (c *GuestController) UpdateGuest() {
	id := c.Ctx.Param("id")

	var req UpdateGuestRequest
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
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Company != "" {
		updates["company"] = req.Company
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.IDNumber != "" {
		updates["id_number"] = req.IDNumber
	}
	if req.IDPhotoPath != "" {
		updates["id_photo_path"] = req.IDPhotoPath
	}

	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	guest, err := guestService.UpdateGuest(id, updates)
	if err != nil {
		switch err.Error() {
		case "guest not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		case "phone already in use":
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to update guest %s: %v", id, err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Guest updated successfully",
		"data":    guest,
	})
}

// DeleteGuest removes a guest together with their visit history
// @Summary      Delete Guest
// @Tags         Guest
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Guest ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /guests/{id} [delete]
func (c *GuestController) DeleteGuest() {
	id := c.Ctx.Param("id")

	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	if err := guestService.DeleteGuest(id); err != nil {
		if err.Error() == "guest not found" {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
			return
		}
		config.Error("failed to delete guest %s: %v", id, err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "internal server error",
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Guest deleted successfully",
		"data":    nil,
	})
}

// CheckOutGuest closes the guest's most recent active visit
// @Summary      Check Out Guest
// @Description  Check out the guest's most recent checked-in visit
// @Tags         Guest
// @Produce      json
// @Param        id  path  string  true  "Guest ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /guests/{id}/checkout [put]
func (c *GuestController) CheckOutGuest() {
	id := c.Ctx.Param("id")

	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	visit, err := guestService.CheckOutGuest(id)
	if err != nil {
		switch err.Error() {
		case "guest not found":
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": err.Error(),
				"data":    nil,
			})
		case "no active visit to check out":
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			config.Error("failed to check out guest %s: %v", id, err)
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
		"message": "Guest checked out successfully",
		"data":    visit,
	})
}
