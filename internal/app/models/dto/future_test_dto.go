package dto

import "github.com/studyhub/backend/internal/app/models"

// FutureTestRequest represents a future test create/update payload.
// Location, test type and description are optional.
type FutureTestRequest struct {
	Subject     string `json:"subject" binding:"required"`
	TestDate    string `json:"test_date" binding:"required"`
	TestTime    string `json:"test_time" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	Location    string `json:"location"`
	TestType    string `json:"test_type"`
	Description string `json:"description"`
}

// FutureTestListResponse wraps a list of future tests
type FutureTestListResponse struct {
	Response
	Tests []models.FutureTest `json:"tests"`
}
