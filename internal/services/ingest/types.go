package ingest

// CSV headers of the account export, as produced by the upstream
// billing system.
const (
	colAccountUUID         = "Account UUID"
	colAccountLabel        = "Account Label"
	colSubscriptionStatus  = "Subscription Status"
	colAdminSeats          = "Admin Seats"
	colUserSeats           = "User Seats"
	colReadOnlySeats       = "Read Only Seats"
	colTotalRecords        = "Total Records"
	colAutomationCount     = "Automation Count"
	colWorkflowTitle       = "Workflow Title"
	colMessagesProcessed   = "Messages Processed"
	colNotificationsSent   = "Notifications Sent"
	colNotificationsBilled = "Notifications Billed"
)

// requiredColumns must all be present in the header; Workflow Title is
// optional in the sense that its value may be empty, but the column
// itself is still expected.
var requiredColumns = []string{
	colAccountUUID,
	colAccountLabel,
	colSubscriptionStatus,
	colAdminSeats,
	colUserSeats,
	colReadOnlySeats,
	colTotalRecords,
	colAutomationCount,
	colMessagesProcessed,
	colNotificationsSent,
	colNotificationsBilled,
}

// LoadResult summarizes one ingest run.
type LoadResult struct {
	RunID   string `json:"run_id"`
	Loaded  int    `json:"records_loaded"`
	Invalid int    `json:"invalid_rows"`
}
