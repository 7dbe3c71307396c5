package domain

import "context"

// Applied job document keys.
const (
	ApplicationEmailField    = "email"
	ApplicationJobIDField    = "jobId"
	ApplicationCategoryField = "category"
)

// AlreadyAppliedMessage is the plain-text body of a duplicate application rejection.
const AlreadyAppliedMessage = "You have already applied on this job"

// ApplicationRepository defines data access methods for applied jobs
type ApplicationRepository interface {
	Exists(ctx context.Context, email, jobID string) (bool, error)
	// Submit inserts the application and increments the job's applicant counter atomically.
	Submit(ctx context.Context, doc Document) (*InsertResult, error)
	FindByApplicant(ctx context.Context, email, category string) ([]Document, error)
	FindAll(ctx context.Context) ([]Document, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, application Document) (*InsertResult, error)
	ListByApplicant(ctx context.Context, email, category string) ([]Document, error)
	ListAll(ctx context.Context) ([]Document, error)
}
