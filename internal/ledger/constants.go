package ledger

// Log messages
const (
	LogMsgBalanceAdjusted = "Balance adjusted"
	LogMsgItemsSold       = "Inventory items sold"
	LogMsgItemsDeleted    = "Inventory items deleted"
)

// Error context messages
const (
	ErrContextFailedToGetBalance    = "failed to get balance"
	ErrContextFailedToApplyDelta    = "failed to apply balance delta"
	ErrContextFailedToGetInventory  = "failed to get inventory"
	ErrContextFailedToPriceItems    = "failed to price items"
	ErrContextFailedToBeginTx       = "failed to begin transaction"
	ErrContextFailedToCreditSale    = "failed to credit sale"
	ErrContextFailedToRemoveItems   = "failed to remove items"
	ErrContextFailedToCommit        = "failed to commit transaction"
	ErrContextFailedToPublishEvent  = "failed to publish event"
)
