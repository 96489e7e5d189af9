// Code generated manually in mockery style. Keep in sync with the service interfaces.
package mocks

import (
	"context"
	"testing"

	"go_huruf_practice/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- AuthService ---

type MockAuthService struct {
	mock.Mock
}

func NewMockAuthService(t *testing.T) *MockAuthService {
	m := &MockAuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResponse), args.Error(1)
}

func (m *MockAuthService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- AttemptService ---

type MockAttemptService struct {
	mock.Mock
}

func NewMockAttemptService(t *testing.T) *MockAttemptService {
	m := &MockAttemptService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAttemptService) RecordAttempt(ctx context.Context, userID uuid.UUID, req *model.RecordAttemptRequest) (*model.Attempt, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attempt), args.Error(1)
}

func (m *MockAttemptService) SubmitPractice(ctx context.Context, userID uuid.UUID, req *model.SubmitPracticeRequest) (*model.Attempt, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attempt), args.Error(1)
}

func (m *MockAttemptService) ListLetters(ctx context.Context) ([]*model.Letter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Letter), args.Error(1)
}

// --- ProgressService ---

type MockProgressService struct {
	mock.Mock
}

func NewMockProgressService(t *testing.T) *MockProgressService {
	m := &MockProgressService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProgressService) LetterStats(ctx context.Context, userID uuid.UUID) ([]*model.LetterStat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LetterStat), args.Error(1)
}

func (m *MockProgressService) Totals(ctx context.Context, userID uuid.UUID) (*model.ProgressTotals, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProgressTotals), args.Error(1)
}

func (m *MockProgressService) WeeklySeries(ctx context.Context, userID uuid.UUID, letterIDs []int) ([]*model.DailyStat, error) {
	args := m.Called(ctx, userID, letterIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DailyStat), args.Error(1)
}

func (m *MockProgressService) RecentAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.RecentAttempt, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RecentAttempt), args.Error(1)
}

// --- TourService ---

type MockTourService struct {
	mock.Mock
}

func NewMockTourService(t *testing.T) *MockTourService {
	m := &MockTourService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTourService) Start(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourStateResponse), args.Error(1)
}

func (m *MockTourService) Next(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourStateResponse), args.Error(1)
}

func (m *MockTourService) MarkPracticeDone(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourStateResponse), args.Error(1)
}

func (m *MockTourService) Finish(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockTourService) Current(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourStateResponse), args.Error(1)
}

// --- LevelService ---

type MockLevelService struct {
	mock.Mock
}

func NewMockLevelService(t *testing.T) *MockLevelService {
	m := &MockLevelService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLevelService) Promote(ctx context.Context, userID uuid.UUID) (*model.UserLevel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserLevel), args.Error(1)
}

func (m *MockLevelService) GetUserLevel(ctx context.Context, userID uuid.UUID) (*model.UserLevel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserLevel), args.Error(1)
}
