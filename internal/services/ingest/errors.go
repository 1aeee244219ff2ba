package ingest

import (
	"fmt"

	"insights/internal/errors"
)

var ErrDataFileMissing = &errors.DomainError{
	Code:    "DATA_FILE_MISSING",
	Message: "account data file not found",
}

func errMissingColumn(name string) error {
	return &errors.DomainError{
		Code:    "MISSING_COLUMN",
		Message: fmt.Sprintf("data file is missing required column %q", name),
	}
}
