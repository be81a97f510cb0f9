package mediastore

// SignedURL a time-limited download URL for a stored object
type SignedURL struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// ErrorResponse error payload from the media store
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
