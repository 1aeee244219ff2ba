// Package validation holds the business rules applied to CSV rows
// before they are admitted into the insights table.
package validation

import (
	"fmt"

	"insights/internal/errors"
	"insights/internal/models"

	"github.com/google/uuid"
)

// ValidateAccount checks one account row after type conversion has
// already succeeded. It returns the first rule violation found.
func ValidateAccount(a *models.Account) error {
	if _, err := uuid.Parse(a.AccountUUID); err != nil {
		return errors.ErrInvalidAccountUUID
	}
	if a.AccountLabel == "" {
		return errors.ErrMissingAccountLabel
	}
	if a.SubscriptionStatus != models.SubscriptionActive &&
		a.SubscriptionStatus != models.SubscriptionInactive {
		return errors.ErrUnknownSubscriptionStatus
	}

	counts := []struct {
		field string
		value int
	}{
		{"admin_seats", a.AdminSeats},
		{"user_seats", a.UserSeats},
		{"read_only_seats", a.ReadOnlySeats},
		{"total_records", a.TotalRecords},
		{"automation_count", a.AutomationCount},
		{"messages_processed", a.MessagesProcessed},
		{"notifications_sent", a.NotificationsSent},
		{"notifications_billed", a.NotificationsBilled},
	}
	for _, c := range counts {
		if c.value < 0 {
			return &errors.DomainError{
				Code:    "NEGATIVE_COUNT",
				Message: fmt.Sprintf("%s cannot be negative", c.field),
			}
		}
	}

	if a.NotificationsBilled > a.NotificationsSent {
		return errors.ErrBilledExceedsSent
	}
	return nil
}
