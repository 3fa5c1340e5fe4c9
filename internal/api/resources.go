package api

import (
	"context"

	"github.com/classpoint/admin-ui/internal/domain/model"
)

// Teachers is the admin-facing teacher collection. Listing and mutation go
// through the management endpoint; single reads use the public path.
func (c *Client) Teachers() Collection[model.Teacher, model.CreateTeacherRequest, model.UpdateTeacherRequest] {
	return Collection[model.Teacher, model.CreateTeacherRequest, model.UpdateTeacherRequest]{
		client:     c,
		listPath:   "/teacher/management",
		itemPath:   "/teacher",
		managePath: "/teacher/management",
	}
}

// TeacherDirectory fetches the public teacher listing, used to populate
// teacher choices on class forms.
func (c *Client) TeacherDirectory(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	if err := c.get(ctx, "/teacher", &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// Classes is the admin-facing class collection.
func (c *Client) Classes() Collection[model.Class, model.CreateClassRequest, model.UpdateClassRequest] {
	return Collection[model.Class, model.CreateClassRequest, model.UpdateClassRequest]{
		client:     c,
		listPath:   "/class",
		itemPath:   "/class",
		managePath: "/class/management",
	}
}

// Members is the admin-facing member collection.
func (c *Client) Members() Collection[model.Member, model.CreateMemberRequest, model.UpdateMemberRequest] {
	return Collection[model.Member, model.CreateMemberRequest, model.UpdateMemberRequest]{
		client:     c,
		listPath:   "/member",
		itemPath:   "/member",
		managePath: "/member/management",
	}
}

// Bookings fetches the booking listing. Bookings are read-only on the
// platform API; there is no management endpoint for them.
func (c *Client) Bookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.get(ctx, "/booking/list", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Profile fetches the account behind the bearer token in ctx.
func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// TeacherClasses fetches the classes taught by the teacher behind the bearer
// token in ctx.
func (c *Client) TeacherClasses(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	if err := c.get(ctx, "/teacher/class", &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// Login exchanges credentials for a bearer token and the account's role.
// It requires no token in ctx.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	var resp model.LoginResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new member account. It requires no token in ctx.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) error {
	return c.post(ctx, "/auth/register", req, nil)
}
