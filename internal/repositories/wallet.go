package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
)

// WalletReaderRepository reads the simulated wallet's balances
type WalletReaderRepository struct {
	db *sqlx.DB
}

func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

// GetBalance returns the balance held in asset. An asset without a row has zero balance.
func (r *WalletReaderRepository) GetBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	const query = `
		SELECT balance
		FROM wallets
		WHERE currency = $1
	`

	var balance decimal.Decimal
	err := r.db.GetContext(ctx, &balance, query, asset)
	if errors.Is(err, sql.ErrNoRows) {
		balance, err = decimal.Zero, nil
	}

	logger.Log.Infow("wallet balance query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{asset},
		"result", balance.String(),
		"error", err,
	)

	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
