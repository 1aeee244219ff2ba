package errors

// DomainError carries a stable machine-readable code alongside the
// human-readable message surfaced to API clients.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
