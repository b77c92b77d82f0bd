package external

// APIErrorResponse is the error body shape shared by the upstream APIs.
// BMKG and the Wonosobo services use "message", the backend uses "error".
type APIErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

// Text returns the first non-empty error text.
func (e *APIErrorResponse) Text() string {
	switch {
	case e == nil:
		return ""
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	default:
		return e.Detail
	}
}
