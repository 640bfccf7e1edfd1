package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/services"
	"github.com/studyhub/backend/internal/middleware"
)

// ResourceController serves cached course documents fetched from the
// remote drive on first request.
type ResourceController struct {
	resourceService *services.ResourceService
	logger          zerolog.Logger
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService, logger zerolog.Logger) *ResourceController {
	return &ResourceController{resourceService: resourceService, logger: logger}
}

// DownloadByType serves a catalogued resource, e.g. the exam guide
func (c *ResourceController) DownloadByType(ctx *gin.Context) {
	resourceType := ctx.Param("resourceType")

	path, filename, err := c.resourceService.FetchByType(ctx.Request.Context(), resourceType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, filename)
}

// DownloadByID serves an arbitrary drive file by its identifier
func (c *ResourceController) DownloadByID(ctx *gin.Context) {
	fileID := ctx.Param("fileId")

	path, filename, err := c.resourceService.FetchByID(ctx.Request.Context(), fileID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, filename)
}
