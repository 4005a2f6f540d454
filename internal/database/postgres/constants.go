package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgInvalidUserID        = "invalid user id"
	ErrMsgFailedToInsertUser   = "failed to insert user"
	ErrMsgFailedToGetUser      = "failed to get user"
	ErrMsgFailedToListUsers    = "failed to list users"
	ErrMsgFailedToUpdateRole   = "failed to update role"
	ErrMsgFailedToDeleteUser   = "failed to delete user"
	ErrMsgFailedToLockUserRow  = "failed to lock user row"
	ErrMsgFailedToApplyDelta   = "failed to apply balance delta"
	ErrMsgFailedToGetBalance   = "failed to get balance"
	ErrMsgFailedToDebitBalance = "failed to debit balance"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetCase          = "failed to get case"
	ErrMsgFailedToListCases        = "failed to list cases"
	ErrMsgFailedToUpsertCase       = "failed to upsert case"
	ErrMsgFailedToDeleteCase       = "failed to delete case"
	ErrMsgFailedToGetOutcomes      = "failed to get case outcomes"
	ErrMsgFailedToReplaceOutcomes  = "failed to replace case outcomes"
	ErrMsgFailedToGetCard          = "failed to get card"
	ErrMsgFailedToListCards        = "failed to list cards"
	ErrMsgFailedToUpsertCard       = "failed to upsert card"
	ErrMsgFailedToDeleteCard       = "failed to delete card"
	ErrMsgFailedToListCollections  = "failed to list collections"
	ErrMsgFailedToUpsertCollection = "failed to upsert collection"
	ErrMsgFailedToDeleteCollection = "failed to delete collection"
)

// Error Messages - Inventory Operations
const (
	ErrMsgInvalidItemID         = "invalid item id"
	ErrMsgFailedToAddItem       = "failed to add inventory item"
	ErrMsgFailedToRemoveItem    = "failed to remove inventory item"
	ErrMsgFailedToRemoveItems   = "failed to remove inventory items"
	ErrMsgFailedToGetInventory  = "failed to get inventory"
	ErrMsgFailedToGetItems      = "failed to get inventory items"
	ErrMsgFailedToScanInventory = "failed to scan inventory row"
)

// Error Messages - Opening Operations
const (
	ErrMsgInvalidTransactionID     = "invalid transaction id"
	ErrMsgFailedToGetPending       = "failed to get pending opening"
	ErrMsgFailedToInsertPending    = "failed to insert pending opening"
	ErrMsgFailedToDeletePending    = "failed to delete pending opening"
	ErrMsgFailedToCheckPending     = "failed to check pending opening"
	ErrMsgFailedToMarshalOutcome   = "failed to marshal drawn outcome"
	ErrMsgFailedToUnmarshalOutcome = "failed to unmarshal drawn outcome"
)
