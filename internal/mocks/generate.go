// Package mocks provides mock implementations for testing the admin console.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the auth ports. The mocks are generated using go:generate directives and
// provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockAPI := mocks.NewMockAuthenticator(ctrl)
//	mockAPI.EXPECT().Login(gomock.Any(), gomock.Any()).Return(resp, nil)
package mocks

// Generate mock for the Authenticator interface from internal/ports.
// This creates MockAuthenticator with Login, Register and Profile.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=authenticator_mock.go github.com/classpoint/admin-ui/internal/ports Authenticator

// Generate mock for the SessionStore interface from internal/ports.
// This creates MockSessionStore with Save, Get and Delete.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/classpoint/admin-ui/internal/ports SessionStore
