package repository

import (
	"context"

	"loungeadvisor-service/internal/domain/entity"
)

// UserRepository defines the user profile gateway. GetUser returns
// (nil, nil) when the user does not exist.
type UserRepository interface {
	GetUser(ctx context.Context, userID string) (*entity.UserProfile, error)
}
