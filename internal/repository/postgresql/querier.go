package postgresql

import (
	"context"

	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction carried by the context when one is
// open, the shared pool otherwise.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx
	}
	return db.Pool
}
