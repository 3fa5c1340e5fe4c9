package model

// Booking is a member's reservation for a class. Bookings are read-only in
// the admin console; seat allocation happens entirely on the server.
type Booking struct {
	ID         string `json:"id"`
	ClassID    string `json:"classId"`
	ClassName  string `json:"className"`
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}
