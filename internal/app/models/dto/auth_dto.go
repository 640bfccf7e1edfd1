package dto

// LoginRequest represents login credentials. Username also accepts the
// account's email address.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a registration request. Subject is
// required for instructors only.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Subject  string `json:"subject"`
}

// TokenResponse carries the issued session token back to the client.
// The same token is mirrored into the role cookie.
type TokenResponse struct {
	Response
	Token string `json:"token,omitempty"`
}
