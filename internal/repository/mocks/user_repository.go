// Code generated manually in mockery style. Keep in sync with repository.UserRepository.
package mocks

import (
	"context"

	"go_huruf_practice/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	args := m.Called(ctx, db, user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) FindByDisplayName(ctx context.Context, db *gorm.DB, displayName string) (*model.User, error) {
	args := m.Called(ctx, db, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	args := m.Called(ctx, db, userID)
	return args.Error(0)
}
