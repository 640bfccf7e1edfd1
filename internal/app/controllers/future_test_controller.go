package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/services"
	"github.com/studyhub/backend/internal/middleware"
)

// FutureTestController handles upcoming-test endpoints
type FutureTestController struct {
	testService *services.FutureTestService
	logger      zerolog.Logger
}

// NewFutureTestController creates a new FutureTestController
func NewFutureTestController(testService *services.FutureTestService, logger zerolog.Logger) *FutureTestController {
	return &FutureTestController{testService: testService, logger: logger}
}

// ListAll returns every upcoming test (student view)
func (c *FutureTestController) ListAll(ctx *gin.Context) {
	tests, err := c.testService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FutureTestListResponse{
		Response: dto.OK(""),
		Tests:    orEmptyTests(tests),
	})
}

// ListMine returns the calling instructor's tests
func (c *FutureTestController) ListMine(ctx *gin.Context) {
	tests, err := c.testService.ListMine(ctx.Request.Context(), middleware.Username(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FutureTestListResponse{
		Response: dto.OK(""),
		Tests:    orEmptyTests(tests),
	})
}

// Create adds a test owned by the calling instructor
func (c *FutureTestController) Create(ctx *gin.Context) {
	var req dto.FutureTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("missing required test fields"))
		return
	}

	if _, err := c.testService.Create(ctx.Request.Context(), middleware.Username(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("Test added successfully"))
}

// Update rewrites a test; only the owning instructor may do this
func (c *FutureTestController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.FutureTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("missing required test fields"))
		return
	}

	if err := c.testService.Update(ctx.Request.Context(), middleware.Username(ctx), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Test updated successfully"))
}

// Delete removes a test; only the owning instructor may do this
func (c *FutureTestController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.testService.Delete(ctx.Request.Context(), middleware.Username(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Test deleted successfully"))
}

func orEmptyTests(tests []models.FutureTest) []models.FutureTest {
	if tests == nil {
		return []models.FutureTest{}
	}
	return tests
}
