package handlers

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TitleResponse is returned by the title API.
type TitleResponse struct {
	// Title is the composed title, postfix included.
	Title string `json:"title"`
	// Page is the title as set, without the postfix.
	Page string `json:"page"`
	Lang string `json:"lang"`
}
