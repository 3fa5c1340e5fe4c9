package model

// User is the profile of the currently authenticated account, as returned by
// GET /user. Role decides which extra data the profile screen loads.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Image    string `json:"image"`
	Role     string `json:"role"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Image    string `json:"image"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /auth/login: the bearer token and
// the account's role, always issued together.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
