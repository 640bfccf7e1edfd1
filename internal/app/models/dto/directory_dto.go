package dto

// StudentSummary is the directory view of a student account
type StudentSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

// InstructorSummary is the directory view of an instructor account,
// used by the evaluation form
type InstructorSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
	Subject  string `json:"subject"`
}

// StudentSearchResponse wraps a student search result
type StudentSearchResponse struct {
	Response
	Students []StudentSummary `json:"students"`
}

// InstructorListResponse wraps the instructor directory
type InstructorListResponse struct {
	Response
	Instructors []InstructorSummary `json:"instructors"`
}

// StudentInfoResponse wraps the authenticated student's own identity
type StudentInfoResponse struct {
	Response
	StudentInfo struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		FullName string `json:"fullname"`
	} `json:"student_info"`
}
