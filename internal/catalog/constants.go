package catalog

// Log messages
const (
	LogMsgCaseCacheMiss     = "Case cache miss"
	LogMsgCatalogSyncStart  = "Syncing catalog from JSON config"
	LogMsgCatalogSyncDone   = "Catalog synced"
	LogMsgCaseCachePurged   = "Case cache purged after catalog write"
)

// Error context messages
const (
	ErrContextFailedToGetCase       = "failed to get case"
	ErrContextFailedToGetCard       = "failed to get card"
	ErrContextFailedToListCases     = "failed to list cases"
	ErrContextFailedToReadCatalog   = "failed to read catalog file"
	ErrContextFailedToParseCatalog  = "failed to parse catalog file"
	ErrContextFailedToSyncCatalog   = "failed to sync catalog"
)
