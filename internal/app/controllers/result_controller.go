package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/services"
	"github.com/studyhub/backend/internal/middleware"
)

// ResultController handles grade endpoints for both roles
type ResultController struct {
	resultService *services.ResultService
	logger        zerolog.Logger
}

// NewResultController creates a new ResultController
func NewResultController(resultService *services.ResultService, logger zerolog.Logger) *ResultController {
	return &ResultController{resultService: resultService, logger: logger}
}

// Create adds a result for a student (instructor only)
func (c *ResultController) Create(ctx *gin.Context) {
	var req dto.CreateResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("missing required result fields"))
		return
	}

	if _, err := c.resultService.Create(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("Result added successfully"))
}

// ListAll returns every result with student names (instructor only)
func (c *ResultController) ListAll(ctx *gin.Context) {
	results, err := c.resultService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResultListResponse{
		Response: dto.OK(""),
		Results:  orEmptyResults(results),
	})
}

// Filter narrows the joined listing by query parameters (instructor only)
func (c *ResultController) Filter(ctx *gin.Context) {
	results, err := c.resultService.Filter(ctx.Request.Context(),
		ctx.Query("student"),
		ctx.Query("subject"),
		ctx.Query("year"),
		ctx.Query("semester"),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResultListResponse{
		Response: dto.OK(""),
		Results:  orEmptyResults(results),
	})
}

// ListMine returns the calling student's results for a term
func (c *ResultController) ListMine(ctx *gin.Context) {
	year := ctx.Query("year")
	semester := ctx.Query("semester")
	if year == "" || semester == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("year and semester are required"))
		return
	}

	results, student, err := c.resultService.ListForStudent(ctx.Request.Context(), middleware.Username(ctx), year, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResultsResponse{
		Response: dto.OK(""),
		Results:  orEmptyResults(results),
		StudentInfo: dto.StudentInfo{
			ID:   student.ID,
			Name: student.FullName,
		},
	})
}

// Update changes a result's marks, grade and credits (instructor only)
func (c *ResultController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("missing required fields"))
		return
	}

	if err := c.resultService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Result updated successfully"))
}

// Delete removes a result by id (instructor only)
func (c *ResultController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.resultService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Result deleted successfully"))
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid id"))
		return 0, false
	}
	return id, true
}

func orEmptyResults(results []models.Result) []models.Result {
	if results == nil {
		return []models.Result{}
	}
	return results
}
