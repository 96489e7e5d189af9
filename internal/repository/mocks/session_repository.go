// Code generated manually in mockery style. Keep in sync with repository.SessionRepository.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Get(ctx context.Context, db *gorm.DB, key string) (string, error) {
	args := m.Called(ctx, db, key)
	return args.String(0), args.Error(1)
}

func (m *SessionRepository) Set(ctx context.Context, db *gorm.DB, key, value string) error {
	args := m.Called(ctx, db, key, value)
	return args.Error(0)
}

func (m *SessionRepository) Remove(ctx context.Context, db *gorm.DB, key string) error {
	args := m.Called(ctx, db, key)
	return args.Error(0)
}

func (m *SessionRepository) RemoveByPrefix(ctx context.Context, db *gorm.DB, prefix string) error {
	args := m.Called(ctx, db, prefix)
	return args.Error(0)
}
