package dto

// Response is the envelope every endpoint returns:
// {"success": bool, "message": "..."} plus endpoint-specific payload
// fields on the embedding structs.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK builds a success envelope.
func OK(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail builds a failure envelope. Auth failures always use a generic
// message so the client cannot tell which validation step failed.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
