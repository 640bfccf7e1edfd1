package models

import "time"

// FutureTest defines an upcoming test based on the 'future_tests' table
type FutureTest struct {
	ID           int64     `json:"id" db:"id"`
	Subject      string    `json:"subject" db:"subject"`
	TestDate     string    `json:"testDate" db:"test_date"`
	TestTime     string    `json:"testTime" db:"test_time"`
	Duration     string    `json:"duration" db:"duration"`
	Location     string    `json:"location" db:"location"`
	TestType     string    `json:"testType" db:"test_type"`
	Description  string    `json:"description" db:"description"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// InstructorName is populated by joined queries only
	InstructorName string `json:"instructorName,omitempty" db:"-"`
}
