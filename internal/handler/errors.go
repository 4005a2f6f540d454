package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgListCasesFailed    = "Failed to list cases"
	ErrMsgGetCaseFailed      = "Failed to get case"
	ErrMsgOpenCaseFailed     = "Failed to open case"
	ErrMsgResolveKeepFailed  = "Failed to keep card"
	ErrMsgResolveSellFailed  = "Failed to sell card"
	ErrMsgGetPendingFailed   = "Failed to get pending opening"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgSellItemsFailed    = "Failed to sell cards"
	ErrMsgDeleteItemsFailed  = "Failed to delete cards"
	ErrMsgRegisterFailed     = "Failed to register"
	ErrMsgGetProfileFailed   = "Failed to get profile"
	ErrMsgListCardsFailed    = "Failed to list cards"
	ErrMsgListUsersFailed    = "Failed to list users"
	ErrMsgAdjustFailed       = "Failed to adjust balance"
	ErrMsgSetRoleFailed      = "Failed to set role"
	ErrMsgDeleteUserFailed   = "Failed to delete user"
	ErrMsgCatalogWriteFailed = "Failed to write catalog entry"
)
