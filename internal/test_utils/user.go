package test_utils

import (
	"context"

	"github.com/finboard/finboard/pkg/user"
)

// TestUser returns a fixed user for tests.
func TestUser() user.User {
	return user.User{
		Id:          123,
		Uid:         "11111111-2222-3333-4444-555555555555",
		Username:    "test_user",
		DisplayName: "Test User",
		Settings: user.Settings{
			Currency:       "EUR",
			IncomeCategory: "Income",
		},
	}
}

// WithTestUser returns a context carrying the fixed test user.
func WithTestUser(ctx context.Context) context.Context {
	return user.WithUser(ctx, TestUser())
}
