package contextkeys

// ContextKey is the type for values stored in gin/request contexts.
type ContextKey string

const (
	// SessionContextKey holds the *session.Session resolved by the
	// session middleware.
	SessionContextKey ContextKey = "talentlink.session"
)
