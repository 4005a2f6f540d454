package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCasesOpened       = "cases_opened_total"
	MetricNameDropsByRarity     = "drops_by_rarity_total"
	MetricNameCardsKept         = "cards_kept_total"
	MetricNameCardsSold         = "cards_sold_total"
	MetricNameCentsDebited      = "cents_debited_total"
	MetricNameCentsCredited     = "cents_credited_total"
	MetricNameInsufficientFunds = "insufficient_funds_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCasesOpened       = "Total number of cases opened"
	HelpTextDropsByRarity     = "Total drops by rarity tier"
	HelpTextCardsKept         = "Total cards kept into inventories"
	HelpTextCardsSold         = "Total cards sold back, resolve-sell and bulk"
	HelpTextCentsDebited      = "Total cents debited for case openings"
	HelpTextCentsCredited     = "Total cents credited from sells"
	HelpTextInsufficientFunds = "Total openings rejected for insufficient funds"
)

// Metric labels
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelCaseID = "case_id"
	LabelRarity = "rarity"
	LabelSource = "source"
)

// Sell source label values
const (
	SellSourceResolve = "resolve"
	SellSourceBulk    = "bulk"
)

// HTTPLatencyBuckets covers the storefront's expected latency range.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
)
