package models

// Profile is the snapshot returned by GET /auth/me/ and cached under the
// user_info storage key.
type Profile struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Registration is the register request body.
type Registration struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenPair is the login response. Only Access becomes the session credential.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
