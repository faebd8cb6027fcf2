package constant

type contextKey int

const (
	UserIDKey contextKey = iota
	UserRoleKey
)

const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)
