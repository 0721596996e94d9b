package implementation

import (
	"context"
	"errors"
	"strings"

	"ai-assistant-be/internal/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	reasonInvalidRole     = "role must be one of system, user, assistant, tool"
	reasonConstraint      = "constraint violated"
	reasonRequiredMissing = "required value missing"
	reasonDuplicate       = "duplicate message"
	reasonUnavailable     = "store unavailable"
	reasonCancelled       = "store request cancelled"
	reasonFailed          = "store operation failed"
)

// classifyStoreError turns a driver error into a storage error whose reason
// is safe to return to callers. The driver error stays wrapped for logs.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.As(err); ok {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Storage(reasonForPgError(pgErr), err)
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperror.Storage(reasonCancelled, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apperror.Storage(reasonConstraint, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Storage(reasonDuplicate, err)
	}

	// SQLite reports constraint failures only through the message text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "CHECK constraint failed"):
		if strings.Contains(msg, "role") {
			return apperror.Storage(reasonInvalidRole, err)
		}
		return apperror.Storage(reasonConstraint, err)
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return apperror.Storage(reasonRequiredMissing, err)
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return apperror.Storage(reasonDuplicate, err)
	}

	return apperror.Storage(reasonFailed, err)
}

// classifyReadError is classifyStoreError for queries; the result reports
// a failed read rather than a failed store.
func classifyReadError(err error) error {
	classified := classifyStoreError(err)
	appErr, ok := apperror.As(classified)
	if !ok || appErr.Kind != apperror.KindStorage || appErr.Op == apperror.OpRead {
		return classified
	}
	return apperror.StorageRead(appErr.Reason, appErr.Err)
}

func reasonForPgError(pgErr *pgconn.PgError) string {
	switch {
	case pgErr.Code == "23514":
		if strings.Contains(pgErr.ConstraintName, "role") {
			return reasonInvalidRole
		}
		return reasonConstraint
	case pgErr.Code == "23502":
		return reasonRequiredMissing
	case pgErr.Code == "23505":
		return reasonDuplicate
	case strings.HasPrefix(pgErr.Code, "08"):
		return reasonUnavailable
	default:
		return reasonFailed
	}
}
