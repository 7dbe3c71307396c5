package v1_test

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockJobUsecase struct {
	mock.Mock
}

func (m *MockJobUsecase) CreateJob(ctx context.Context, job domain.Document) (*domain.InsertResult, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsertResult), args.Error(1)
}

func (m *MockJobUsecase) ListJobs(ctx context.Context, page, size int, category, search string) ([]domain.Document, error) {
	args := m.Called(ctx, page, size, category, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockJobUsecase) ListJobsByOwner(ctx context.Context, email string) ([]domain.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockJobUsecase) GetJob(ctx context.Context, id string) (domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockJobUsecase) DeleteJob(ctx context.Context, id string) (*domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeleteResult), args.Error(1)
}

func (m *MockJobUsecase) PatchJob(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpdateResult), args.Error(1)
}

func (m *MockJobUsecase) CountJobs(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobUsecase) ExportJobs(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockApplicationUsecase struct {
	mock.Mock
}

func (m *MockApplicationUsecase) Apply(ctx context.Context, application domain.Document) (*domain.InsertResult, error) {
	args := m.Called(ctx, application)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsertResult), args.Error(1)
}

func (m *MockApplicationUsecase) ListByApplicant(ctx context.Context, email, category string) ([]domain.Document, error) {
	args := m.Called(ctx, email, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockApplicationUsecase) ListAll(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Login(ctx context.Context, user domain.Document) (*domain.LoginOutcome, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginOutcome), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, email string) (domain.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, email string, fields domain.Document) (*domain.UpdateResult, error) {
	args := m.Called(ctx, email, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpdateResult), args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockUserUsecase) HasRole(ctx context.Context, email, role string) (bool, error) {
	args := m.Called(ctx, email, role)
	return args.Bool(0), args.Error(1)
}

type MockHealthUsecase struct {
	mock.Mock
}

func (m *MockHealthUsecase) Check(ctx context.Context) map[string]string {
	return m.Called(ctx).Get(0).(map[string]string)
}
