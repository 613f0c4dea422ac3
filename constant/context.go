package constant

type ContextKey string

// UserIDKey is the context key under which the auth middleware stores the
// authenticated user's ID.
const UserIDKey ContextKey = "user_id"
