package dto

import "github.com/studyhub/backend/internal/app/models"

// EvaluationRequest represents a student's evaluation submission.
// Ratings are 1-5; resubmitting for the same instructor and subject
// replaces the previous evaluation.
type EvaluationRequest struct {
	InstructorID    int64  `json:"instructor_id" binding:"required"`
	Subject         string `json:"subject" binding:"required"`
	TeachingQuality int    `json:"teaching_quality" binding:"required,min=1,max=5"`
	CourseContent   int    `json:"course_content" binding:"required,min=1,max=5"`
	Communication   int    `json:"communication" binding:"required,min=1,max=5"`
	OverallRating   int    `json:"overall_rating" binding:"required,min=1,max=5"`
	Comments        string `json:"comments"`
}

// EvaluationListResponse wraps an instructor's received evaluations
type EvaluationListResponse struct {
	Response
	Evaluations []models.Evaluation `json:"evaluations"`
}
