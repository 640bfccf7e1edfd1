package models

import "time"

// Student defines the student account model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	FullName  string    `json:"fullname" db:"fullname"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // hashed, excluded from JSON
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Instructor defines the instructor account model based on the 'instructors' table
type Instructor struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	FullName  string    `json:"fullname" db:"fullname"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Subject   string    `json:"subject" db:"subject"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
