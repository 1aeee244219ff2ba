package ingest

import (
	"testing"
	"time"

	"insights/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEnrich_HealthScore(t *testing.T) {
	tests := []struct {
		name      string
		account   models.Account
		wantScore int
		wantRisk  string
	}{
		{
			name: "minimum scores",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionActive,
				MessagesProcessed:  50_000,
				AutomationCount:    0,
				TotalRecords:       5_000,
				NotificationsSent:  100,
			},
			wantScore: 15, // usage 10 + automation 0 + footprint 5 + billing 0
			wantRisk:  models.ChurnRiskAtRisk,
		},
		{
			name: "mid brackets",
			account: models.Account{
				SubscriptionStatus:  models.SubscriptionActive,
				MessagesProcessed:   500_000,
				AutomationCount:     3,
				TotalRecords:        20_000,
				NotificationsSent:   100,
				NotificationsBilled: 50,
			},
			wantScore: 60, // usage 25 + automation 10 + footprint 15 + billing 10
			wantRisk:  models.ChurnRiskHealthy,
		},
		{
			name: "maximum scores",
			account: models.Account{
				SubscriptionStatus:  models.SubscriptionActive,
				MessagesProcessed:   2_000_000,
				AutomationCount:     10,
				TotalRecords:        100_000,
				NotificationsSent:   100,
				NotificationsBilled: 95,
			},
			wantScore: 100,
			wantRisk:  models.ChurnRiskHealthy,
		},
		{
			name: "billing utilisation at 90 scores 10",
			account: models.Account{
				SubscriptionStatus:  models.SubscriptionActive,
				MessagesProcessed:   2_000_000,
				AutomationCount:     10,
				TotalRecords:        100_000,
				NotificationsSent:   100,
				NotificationsBilled: 90,
			},
			wantScore: 90,
			wantRisk:  models.ChurnRiskHealthy,
		},
		{
			name: "below 40 is at risk",
			account: models.Account{
				SubscriptionStatus:  models.SubscriptionActive,
				MessagesProcessed:   99_999,
				AutomationCount:     1,
				TotalRecords:        9_999,
				NotificationsSent:   100,
				NotificationsBilled: 10,
			},
			wantScore: 35, // usage 10 + automation 10 + footprint 5 + billing 10
			wantRisk:  models.ChurnRiskAtRisk,
		},
		{
			name: "inactive forces zero and churned",
			account: models.Account{
				SubscriptionStatus:  models.SubscriptionInactive,
				MessagesProcessed:   2_000_000,
				AutomationCount:     10,
				TotalRecords:        100_000,
				NotificationsSent:   100,
				NotificationsBilled: 95,
			},
			wantScore: 0,
			wantRisk:  models.ChurnRiskChurned,
		},
	}

	reportDate := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.account
			Enrich(&a, reportDate)

			assert.Equal(t, tt.wantScore, a.HealthScore)
			assert.Equal(t, tt.wantRisk, a.ChurnRisk)
			assert.Equal(t, reportDate, a.ReportDate)
		})
	}
}

func TestEnrich_Utilisation(t *testing.T) {
	a := models.Account{
		SubscriptionStatus:  models.SubscriptionActive,
		AdminSeats:          2,
		UserSeats:           3,
		ReadOnlySeats:       1,
		MessagesProcessed:   100,
		NotificationsSent:   3,
		NotificationsBilled: 1,
	}
	Enrich(&a, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 6, a.TotalSeats)
	assert.Equal(t, 16.67, a.SeatUtilisation)
	assert.Equal(t, 33.33, a.BillingUtilisation)
}

func TestEnrich_ZeroDenominators(t *testing.T) {
	a := models.Account{
		SubscriptionStatus: models.SubscriptionActive,
		MessagesProcessed:  100,
	}
	Enrich(&a, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 0, a.TotalSeats)
	assert.Zero(t, a.SeatUtilisation)
	assert.Zero(t, a.BillingUtilisation)
}
