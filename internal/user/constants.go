package user

// Log messages
const (
	LogMsgUserRegistered = "User registered"
	LogMsgRoleChanged    = "User role changed"
	LogMsgUserDeleted    = "User deleted"
)

// Error context messages
const (
	ErrContextFailedToCreateUser = "failed to create user"
	ErrContextFailedToGetUser    = "failed to get user"
	ErrContextFailedToListUsers  = "failed to list users"
	ErrContextFailedToUpdateRole = "failed to update role"
	ErrContextFailedToDeleteUser = "failed to delete user"
	ErrContextFailedToGrantStart = "failed to grant starting balance"
	ErrContextFailedToPublish    = "failed to publish event"
)
