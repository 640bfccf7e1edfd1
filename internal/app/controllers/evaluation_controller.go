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

// EvaluationController handles evaluation submission and listing
type EvaluationController struct {
	evaluationService *services.EvaluationService
	logger            zerolog.Logger
}

// NewEvaluationController creates a new EvaluationController
func NewEvaluationController(evaluationService *services.EvaluationService, logger zerolog.Logger) *EvaluationController {
	return &EvaluationController{evaluationService: evaluationService, logger: logger}
}

// Submit upserts the calling student's evaluation of an instructor
func (c *EvaluationController) Submit(ctx *gin.Context) {
	var req dto.EvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("missing or invalid evaluation fields"))
		return
	}

	if err := c.evaluationService.Submit(ctx.Request.Context(), middleware.Username(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Evaluation submitted successfully"))
}

// ListMine returns the calling instructor's received evaluations
func (c *EvaluationController) ListMine(ctx *gin.Context) {
	evals, err := c.evaluationService.ListMine(ctx.Request.Context(), middleware.Username(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if evals == nil {
		evals = []models.Evaluation{}
	}
	ctx.JSON(http.StatusOK, dto.EvaluationListResponse{
		Response:    dto.OK(""),
		Evaluations: evals,
	})
}
