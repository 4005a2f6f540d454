package opening

// Log messages
const (
	LogMsgOpeningStarted   = "Opening started"
	LogMsgOpeningKept      = "Opening resolved: kept"
	LogMsgOpeningSold      = "Opening resolved: sold"
	LogMsgAdapterNotifyErr = "Presentation adapter notification failed"
)

// Error context messages
const (
	ErrContextFailedToGetCase     = "failed to get case"
	ErrContextFailedToBeginTx     = "failed to begin transaction"
	ErrContextFailedToCheckState  = "failed to check pending state"
	ErrContextFailedToDebit       = "failed to debit case price"
	ErrContextFailedToDraw        = "failed to draw outcome"
	ErrContextFailedToPersist     = "failed to persist opening"
	ErrContextFailedToCommit      = "failed to commit transaction"
	ErrContextFailedToGetPending  = "failed to get pending opening"
	ErrContextFailedToCredit      = "failed to credit sale"
	ErrContextFailedToAddItem     = "failed to add inventory item"
	ErrContextFailedToBuildReel   = "failed to build reel"
	ErrContextFailedToPublish     = "failed to publish event"
)
