package domain

import "context"

// Job document keys read by the service.
const (
	JobTitleField      = "jobTitle"
	JobCategoryField   = "category"
	JobOwnerEmailField = "jobOwner.email"
	JobApplicantsField = "applicants"
)

// JobQuery selects a page of jobs. Empty Category/Search are not applied; Limit 0 means no limit.
type JobQuery struct {
	Category string
	Search   string
	Skip     int64
	Limit    int64
}

type JobRepository interface {
	Insert(ctx context.Context, doc Document) (*InsertResult, error)
	Find(ctx context.Context, q JobQuery) ([]Document, error)
	FindByOwner(ctx context.Context, email string) ([]Document, error)
	FindByID(ctx context.Context, id string) (Document, error)
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
	UpsertFields(ctx context.Context, id string, fields Document) (*UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job Document) (*InsertResult, error)
	ListJobs(ctx context.Context, page, size int, category, search string) ([]Document, error)
	ListJobsByOwner(ctx context.Context, email string) ([]Document, error)
	GetJob(ctx context.Context, id string) (Document, error)
	DeleteJob(ctx context.Context, id string) (*DeleteResult, error)
	PatchJob(ctx context.Context, id string, fields Document) (*UpdateResult, error)
	CountJobs(ctx context.Context) (int64, error)
	ExportJobs(ctx context.Context) ([]byte, string, error)
}
