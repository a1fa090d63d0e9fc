package constant

type ContextKey string

// AuthUserKey carries the authenticated user entity attached by the auth middleware.
const AuthUserKey ContextKey = "auth_user"
