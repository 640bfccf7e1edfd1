package dto

import "github.com/studyhub/backend/internal/app/models"

// CreateResultRequest represents a new grade entry submitted by an instructor
type CreateResultRequest struct {
	StudentID    int64  `json:"student_id" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Marks        int    `json:"marks" binding:"required"`
	Grade        string `json:"grade" binding:"required"`
	Credits      int    `json:"credits" binding:"required"`
	Semester     string `json:"semester" binding:"required"`
	AcademicYear string `json:"academic_year" binding:"required"`
}

// UpdateResultRequest represents the mutable fields of a result
type UpdateResultRequest struct {
	Marks   int    `json:"marks" binding:"required"`
	Grade   string `json:"grade" binding:"required"`
	Credits int    `json:"credits" binding:"required"`
}

// ResultListResponse wraps a list of results
type ResultListResponse struct {
	Response
	Results []models.Result `json:"results"`
}

// StudentInfo is the student identity block attached to a student's
// own result listing
type StudentInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StudentResultsResponse is the student-facing result listing
type StudentResultsResponse struct {
	Response
	Results     []models.Result `json:"results"`
	StudentInfo StudentInfo     `json:"student_info"`
}
