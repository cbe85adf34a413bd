package constant

const (
	DefaultHistoryDisplayLimit = 16
)

const (
	EmptyString = ""
)

// Roles as stored in the session history
const (
	RoleUser = "user"
	RoleBot  = "bot"
)
