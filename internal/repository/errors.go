package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
	"gorm.io/gorm"
)

// classifyStorageError wraps a driver error in the matching domain kind.
// The original error stays reachable through errors.Unwrap.
func classifyStorageError(op, entity string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.NewDuplicateKeyError(entity, err)
	case errors.Is(err, context.Canceled):
		return domain.NewCanceledError(op, err)
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return domain.NewStorageUnavailableError(op, err)
	default:
		return domain.NewQueryFailedError(op, err)
	}
}
