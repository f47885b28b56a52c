package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visitor-http-service/config"
	"visitor-http-service/internal/error/code"
	"visitor-http-service/internal/error/response"
	"visitor-http-service/services"
	"visitor-http-service/services/container"
)

// InterfaceUploadController defines the upload controller interface
type InterfaceUploadController interface {
	UploadIDPhoto()
}

// UploadController handles file uploads
type UploadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUploadController creates a new upload controller
func NewUploadController(ctx *gin.Context, container *container.ServiceContainer) *UploadController {
	return &UploadController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUploadFunc returns a Gin handler dispatching upload requests
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUploadController(ctx, container)

		switch method {
		case "uploadIDPhoto":
			controller.UploadIDPhoto()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// UploadIDPhoto stores a guest ID photo
// @Summary      Upload ID photo
// @Description  Accept a single jpeg/png/gif image up to 5MB in the multipart field "idPhoto" and return its relative path
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        idPhoto formData file true "ID photo image"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /upload/id-photo [post]
func (c *UploadController) UploadIDPhoto() {
	fileHeader, err := c.Ctx.FormFile("idPhoto")
	if err != nil {
		response.Fail(c.Ctx, code.ErrUploadMissing, nil)
		return
	}

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	path, err := uploadService.SaveIDPhoto(fileHeader)
	if err != nil {
		switch err.Error() {
		case "uploaded file exceeds the size limit":
			response.Fail(c.Ctx, code.ErrUploadTooLarge, nil)
		case "uploaded file type is not allowed":
			response.Fail(c.Ctx, code.ErrUploadBadType, nil)
		default:
			config.Error("failed to store uploaded photo: %v", err)
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Success(c.Ctx, gin.H{"path": path})
}
