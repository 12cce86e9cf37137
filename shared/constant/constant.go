package constant

import (
	"time"
)

const (
	Asterix = "*"
	Empty   = ""
)

// ContextSystem is recorded as the actor for writes without an authenticated user.
const ContextSystem = "system"

type contextKey string

const (
	ContextKeyUserID      contextKey = "user_id"
	ContextKeyUserEmail   contextKey = "user_email"
	ContextKeyUserRole    contextKey = "user_role"
	ContextKeyTokenID     contextKey = "token_id"
	ContextKeyTokenExpiry contextKey = "token_expiry"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Query string keys shared by list endpoints.
const (
	RequestParamID      = "id"
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamSearch  = "search"
	RequestParamFilter  = "filter"
	RequestParamDate    = "date"
	RequestParamFrom    = "from"
	RequestParamTo      = "to"

	DefaultValuePage  = 1
	DefaultValueLimit = 10

	// FilterAll is the drop-down value that disables a filter.
	FilterAll = "all"
)

// RequestMaxMemory bounds the in-memory part of a multipart body.
const RequestMaxMemory = 10 << 20

const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
	PqErrorCodeInvalidText     = "22P02"
)

const (
	DateFormat = time.RFC3339
	DayFormat  = "2006-01-02"
)

const (
	CacheKeyRoom         = "room"
	CacheKeyAvailability = "availability"
	CacheKeyDashboard    = "dashboard"
	CacheKeyRevokedToken = "auth:revoked"
	CacheKeyResetToken   = "auth:reset"
)

const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelEventScopeName      = "event"
	OtelS3ScopeName         = "s3"
	OtelQueryAttributeKey   = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"

	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)
