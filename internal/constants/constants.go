package constants

// ContextKeyUserID is the gin context key carrying the authenticated user ID.
const ContextKeyUserID = "user_id"

// Pagination bounds
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// MaxUploadSize limits uploaded image payloads (bytes).
const MaxUploadSize = 5 << 20
