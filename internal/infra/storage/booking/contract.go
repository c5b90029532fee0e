package booking

import (
	"context"
	"database/sql"

	"github.com/syednazrin/Amresearch-platform-sub000/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so repositories work unchanged
// inside and outside transactions, with or without metrics.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB via the wrappers and
// by *dbmetrics.DB directly.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
