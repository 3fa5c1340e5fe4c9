package model

// Class is a scheduled fitness class. ClassSize and SlotLeft are a
// denormalized capacity pair maintained by the server; the client renders
// them and never recomputes one from the other.
type Class struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	ClassSize int    `json:"classSize"`
	SlotLeft  int    `json:"slotLeft"`
	Time      string `json:"time"` // "HH:mm - HH:mm"
	Date      string `json:"date"` // "MM-dd-yyyy"
	Image     string `json:"image"`
	TeacherID string `json:"teacherId"`
}

// CreateClassRequest is the payload for POST /class/management.
// Date must already be normalized to MM-dd-yyyy before the request is built.
type CreateClassRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	ClassSize int    `json:"classSize"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Image     string `json:"image"`
	TeacherID string `json:"teacherId"`
}

// UpdateClassRequest is the payload for PUT /class/management/{id}.
type UpdateClassRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	ClassSize int    `json:"classSize"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Image     string `json:"image"`
	TeacherID string `json:"teacherId"`
}
