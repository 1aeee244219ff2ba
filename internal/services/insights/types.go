package insights

import (
	"insights/internal/models"
)

const dateLayout = "2006-01-02"

// Summary is the KPI payload behind the dashboard cards.
type Summary struct {
	TotalAccounts                   int64   `json:"total_accounts"`
	ActiveAccounts                  int64   `json:"active_accounts"`
	InactiveAccounts                int64   `json:"inactive_accounts"`
	TotalNotificationsBilled        int64   `json:"total_notifications_billed"`
	AvgNotificationsBilledPerActive float64 `json:"avg_notifications_billed_per_active"`
	TotalMessagesProcessed          int64   `json:"total_messages_processed"`
	AvgMessagesPerAccount           float64 `json:"avg_messages_per_account"`
	AvgHealthScore                  float64 `json:"avg_health_score"`
	AtRiskAccounts                  int64   `json:"at_risk_accounts"`
	ChurnedAccounts                 int64   `json:"churned_accounts"`
}

// AccountRecord mirrors one raw row of the CSV export.
type AccountRecord struct {
	AccountUUID         string  `json:"account_uuid"`
	AccountLabel        string  `json:"account_label"`
	SubscriptionStatus  string  `json:"subscription_status"`
	AdminSeats          int     `json:"admin_seats"`
	UserSeats           int     `json:"user_seats"`
	ReadOnlySeats       int     `json:"read_only_seats"`
	TotalRecords        int     `json:"total_records"`
	AutomationCount     int     `json:"automation_count"`
	WorkflowTitle       *string `json:"workflow_title"`
	MessagesProcessed   int     `json:"messages_processed"`
	NotificationsSent   int     `json:"notifications_sent"`
	NotificationsBilled int     `json:"notifications_billed"`
}

// AccountInsights is a raw record enriched with the derived metrics
// shown in the dashboard table.
type AccountInsights struct {
	AccountRecord
	TotalSeats         int     `json:"total_seats"`
	SeatUtilisation    float64 `json:"seat_utilisation"`
	BillingUtilisation float64 `json:"billing_utilisation"`
	HealthScore        int     `json:"health_score"`
	ChurnRisk          string  `json:"churn_risk"`
	ReportDate         string  `json:"report_date"`
}

// PaginatedRecords wraps one page of the filtered table.
type PaginatedRecords struct {
	Items      []AccountInsights `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalItems int64             `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}

// HealthByStatusItem is one bar of the churn-risk distribution chart.
type HealthByStatusItem struct {
	Status       string `json:"status"`
	AccountCount int64  `json:"account_count"`
}

// RevenueByStatusItem is one slice of the billed-by-risk chart.
type RevenueByStatusItem struct {
	Status                   string `json:"status"`
	TotalNotificationsBilled int64  `json:"total_notifications_billed"`
}

// NotificationsOverTimeItem is one bucket of the trend chart.
type NotificationsOverTimeItem struct {
	Date                     string `json:"date"`
	TotalNotificationsBilled int64  `json:"total_notifications_billed"`
}

// ListParams are the validated query parameters of the records table.
type ListParams struct {
	Page               int
	PageSize           int
	SubscriptionStatus string
	MinHealth          *int
	Search             string
}

func newAccountRecord(a *models.Account) AccountRecord {
	return AccountRecord{
		AccountUUID:         a.AccountUUID,
		AccountLabel:        a.AccountLabel,
		SubscriptionStatus:  a.SubscriptionStatus,
		AdminSeats:          a.AdminSeats,
		UserSeats:           a.UserSeats,
		ReadOnlySeats:       a.ReadOnlySeats,
		TotalRecords:        a.TotalRecords,
		AutomationCount:     a.AutomationCount,
		WorkflowTitle:       a.WorkflowTitle,
		MessagesProcessed:   a.MessagesProcessed,
		NotificationsSent:   a.NotificationsSent,
		NotificationsBilled: a.NotificationsBilled,
	}
}

func newAccountInsights(a *models.Account) AccountInsights {
	return AccountInsights{
		AccountRecord:      newAccountRecord(a),
		TotalSeats:         a.TotalSeats,
		SeatUtilisation:    a.SeatUtilisation,
		BillingUtilisation: a.BillingUtilisation,
		HealthScore:        a.HealthScore,
		ChurnRisk:          a.ChurnRisk,
		ReportDate:         a.ReportDate.Format(dateLayout),
	}
}
