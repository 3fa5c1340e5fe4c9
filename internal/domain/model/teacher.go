package model

// Package model defines the entities served by the remote booking platform
// API. Entities are server-owned: identifiers are assigned remotely and are
// immutable after creation. The admin console never persists them locally.

// Teacher is an instructor on the booking platform.
type Teacher struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Image    string `json:"image"`
	Role     string `json:"role"`
}

// CreateTeacherRequest is the payload for POST /teacher/management.
type CreateTeacherRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Image    string `json:"image"`
}

// UpdateTeacherRequest is the payload for PUT /teacher/management/{id}.
// The full draft is sent; the server treats it as a whole-record replace.
type UpdateTeacherRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Image    string `json:"image"`
}
