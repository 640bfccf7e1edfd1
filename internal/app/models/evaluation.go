package models

import "time"

// Evaluation defines a student's evaluation of an instructor.
// At most one row exists per (student, instructor, subject); re-submission
// replaces the previous ratings.
type Evaluation struct {
	ID              int64     `json:"id" db:"id"`
	StudentID       int64     `json:"studentId" db:"student_id"`
	InstructorID    int64     `json:"instructorId" db:"instructor_id"`
	Subject         string    `json:"subject" db:"subject"`
	TeachingQuality int       `json:"teachingQuality" db:"teaching_quality"`
	CourseContent   int       `json:"courseContent" db:"course_content"`
	Communication   int       `json:"communication" db:"communication"`
	OverallRating   int       `json:"overallRating" db:"overall_rating"`
	Comments        string    `json:"comments" db:"comments"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`

	// StudentName is populated by joined queries only
	StudentName string `json:"studentName,omitempty" db:"-"`
}
