package domain

type CtxKey string

const (
	KeyUserEmail CtxKey = "Email"
	KeyClaims    CtxKey = "Claims"
	KeyRequestID CtxKey = "RequestID"
)
