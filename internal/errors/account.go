package errors

var (
	ErrInvalidAccountUUID = &DomainError{
		Code:    "INVALID_ACCOUNT_UUID",
		Message: "account uuid is not a valid UUID",
	}
	ErrMissingAccountLabel = &DomainError{
		Code:    "MISSING_ACCOUNT_LABEL",
		Message: "account label is required",
	}
	ErrUnknownSubscriptionStatus = &DomainError{
		Code:    "UNKNOWN_SUBSCRIPTION_STATUS",
		Message: "subscription status must be 'active' or 'inactive'",
	}
	ErrBilledExceedsSent = &DomainError{
		Code:    "BILLED_EXCEEDS_SENT",
		Message: "notifications billed cannot exceed notifications sent",
	}
)
