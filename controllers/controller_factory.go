package controllers

import (
	"github.com/gin-gonic/gin"

	"visitor-http-service/services/container"
)

// BaseController is the interface shared by all controllers
type BaseController interface {
	// GetContainer returns the service container
	GetContainer() *container.ServiceContainer
	// GetContext returns the Gin context
	GetContext() *gin.Context
}

// BaseControllerImpl is the base controller implementation
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer implements the BaseController interface
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext implements the BaseController interface
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// ControllerFactory creates controllers bound to the container
type ControllerFactory struct {
	Container *container.ServiceContainer
}

// NewControllerFactory creates a new controller factory
func NewControllerFactory(container *container.ServiceContainer) *ControllerFactory {
	return &ControllerFactory{
		Container: container,
	}
}
