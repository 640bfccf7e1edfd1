package models

import "time"

// Result defines a grade entry based on the 'results' table
type Result struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	Subject      string    `json:"subject" db:"subject"`
	Marks        int       `json:"marks" db:"marks"`
	Grade        string    `json:"grade" db:"grade"`
	Credits      int       `json:"credits" db:"credits"`
	Semester     string    `json:"semester" db:"semester"`
	AcademicYear string    `json:"academicYear" db:"academic_year"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// StudentName is populated by joined queries only
	StudentName string `json:"studentName,omitempty" db:"-"`
}
