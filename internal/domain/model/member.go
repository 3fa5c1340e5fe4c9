package model

// Member is a registered customer of the booking platform.
type Member struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Image    string `json:"image"`
	Role     string `json:"role"`
}

// CreateMemberRequest is the payload for POST /member/management.
// Password is write-only; the server never echoes it back.
type CreateMemberRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

// UpdateMemberRequest is the payload for PUT /member/management/{id}.
type UpdateMemberRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Image    string `json:"image"`
}
