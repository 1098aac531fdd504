package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Staff role claim value
	RoleStaff = "staff"

	// Database table names
	TableReleases     = "releases"
	TableNotes        = "notes"
	TableNoteReleases = "note_releases"
	TableUsers        = "users"

	// Note images live below the media root at screenshot/<note id>/<filename>.
	ScreenshotDirName = "screenshot"
)
