package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/services"
	"github.com/studyhub/backend/internal/middleware"
)

// DirectoryController exposes account lookups used by the dashboards:
// student search for instructors, the instructor list for the
// evaluation form, and the caller's own student identity.
type DirectoryController struct {
	directoryService *services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService) *DirectoryController {
	return &DirectoryController{directoryService: directoryService}
}

// SearchStudents matches students by id, username or full name
func (c *DirectoryController) SearchStudents(ctx *gin.Context) {
	term := ctx.Query("query")
	if term == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("search query is required"))
		return
	}

	students, err := c.directoryService.SearchStudents(ctx.Request.Context(), term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summaries := make([]dto.StudentSummary, 0, len(students))
	for _, s := range students {
		summaries = append(summaries, dto.StudentSummary{
			ID:       s.ID,
			Username: s.Username,
			FullName: s.FullName,
			Email:    s.Email,
		})
	}
	ctx.JSON(http.StatusOK, dto.StudentSearchResponse{
		Response: dto.OK(""),
		Students: summaries,
	})
}

// ListInstructors returns every instructor account
func (c *DirectoryController) ListInstructors(ctx *gin.Context) {
	instructors, err := c.directoryService.ListInstructors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summaries := make([]dto.InstructorSummary, 0, len(instructors))
	for _, ins := range instructors {
		summaries = append(summaries, dto.InstructorSummary{
			ID:       ins.ID,
			Username: ins.Username,
			FullName: ins.FullName,
			Subject:  ins.Subject,
		})
	}
	ctx.JSON(http.StatusOK, dto.InstructorListResponse{
		Response:    dto.OK(""),
		Instructors: summaries,
	})
}

// StudentInfo returns the authenticated student's own identity
func (c *DirectoryController) StudentInfo(ctx *gin.Context) {
	student, err := c.directoryService.StudentInfo(ctx.Request.Context(), middleware.Username(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.StudentInfoResponse{Response: dto.OK("")}
	resp.StudentInfo.ID = student.ID
	resp.StudentInfo.Username = student.Username
	resp.StudentInfo.FullName = student.FullName
	ctx.JSON(http.StatusOK, resp)
}
