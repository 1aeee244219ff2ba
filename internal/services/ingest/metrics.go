package ingest

import (
	"math"
	"time"

	"insights/internal/models"
)

// Enrich fills in the derived metrics for a validated account row.
// The health score is the sum of four sub-scores: usage 0-40,
// automation 0-20, footprint 0-20 and billing 0-20. Inactive
// subscriptions are forced to zero regardless of usage.
func Enrich(a *models.Account, reportDate time.Time) {
	a.TotalSeats = a.AdminSeats + a.UserSeats + a.ReadOnlySeats

	a.SeatUtilisation = 0
	if a.TotalSeats > 0 {
		a.SeatUtilisation = round2(float64(a.MessagesProcessed) / float64(a.TotalSeats))
	}

	a.BillingUtilisation = 0
	if a.NotificationsSent > 0 {
		a.BillingUtilisation = round2(float64(a.NotificationsBilled) / float64(a.NotificationsSent) * 100)
	}

	a.HealthScore = usageScore(a.MessagesProcessed) +
		automationScore(a.AutomationCount) +
		footprintScore(a.TotalRecords) +
		billingScore(a.BillingUtilisation)

	if a.SubscriptionStatus == models.SubscriptionInactive {
		a.HealthScore = 0
	}

	switch {
	case a.SubscriptionStatus == models.SubscriptionInactive:
		a.ChurnRisk = models.ChurnRiskChurned
	case a.HealthScore < 40:
		a.ChurnRisk = models.ChurnRiskAtRisk
	default:
		a.ChurnRisk = models.ChurnRiskHealthy
	}

	a.ReportDate = reportDate
}

func usageScore(messagesProcessed int) int {
	switch {
	case messagesProcessed < 100_000:
		return 10
	case messagesProcessed < 1_000_000:
		return 25
	default:
		return 40
	}
}

func automationScore(automationCount int) int {
	switch {
	case automationCount == 0:
		return 0
	case automationCount <= 3:
		return 10
	default:
		return 20
	}
}

func footprintScore(totalRecords int) int {
	switch {
	case totalRecords < 10_000:
		return 5
	case totalRecords < 50_000:
		return 15
	default:
		return 20
	}
}

func billingScore(billingUtilisation float64) int {
	switch {
	case billingUtilisation == 0:
		return 0
	case billingUtilisation <= 90:
		return 10
	default:
		return 20
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
