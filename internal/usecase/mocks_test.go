package usecase_test

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsertResult), args.Error(1)
}

func (m *MockJobRepo) Find(ctx context.Context, q domain.JobQuery) ([]domain.Document, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockJobRepo) FindByOwner(ctx context.Context, email string) ([]domain.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockJobRepo) FindByID(ctx context.Context, id string) (domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockJobRepo) DeleteByID(ctx context.Context, id string) (*domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeleteResult), args.Error(1)
}

func (m *MockJobRepo) UpsertFields(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpdateResult), args.Error(1)
}

func (m *MockJobRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Exists(ctx context.Context, email, jobID string) (bool, error) {
	args := m.Called(ctx, email, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) Submit(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsertResult), args.Error(1)
}

func (m *MockApplicationRepo) FindByApplicant(ctx context.Context, email, category string) ([]domain.Document, error) {
	args := m.Called(ctx, email, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockApplicationRepo) FindAll(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (domain.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockUserRepo) UpsertByEmail(ctx context.Context, email string, doc domain.Document) (*domain.UpdateResult, error) {
	args := m.Called(ctx, email, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpdateResult), args.Error(1)
}

func (m *MockUserRepo) UpdateByEmail(ctx context.Context, email string, fields domain.Document) (*domain.UpdateResult, error) {
	args := m.Called(ctx, email, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpdateResult), args.Error(1)
}

func (m *MockUserRepo) FindAll(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func authed(email string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserEmail, email)
}
