package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
)

// ErrStoreUnavailable помечает любые ошибки связи с БД. Такие ошибки не глотаются.
var ErrStoreUnavailable = errors.New("roster store unavailable")

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// wrapStoreError classifies connection-level failures as ErrStoreUnavailable
// and passes everything else through unchanged.
func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// 08xxx: connection_exception, 57P01..57P03: admin/crash shutdown, cannot_connect_now
		switch pqErr.Code.Class() {
		case "08":
			return true
		case "57":
			return pqErr.Code == "57P01" || pqErr.Code == "57P02" || pqErr.Code == "57P03"
		}
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
