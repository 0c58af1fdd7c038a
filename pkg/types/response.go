package types

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// TokenResponse is the signup/login success payload.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// ProductCreated is the addproduct success payload.
type ProductCreated struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

// Deleted is the removeproduct success payload.
type Deleted struct {
	Success bool `json:"success"`
}

// Uploaded is the image intake success payload.
type Uploaded struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
}
