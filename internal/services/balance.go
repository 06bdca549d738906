package services

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=services

import (
	"context"

	"github.com/shopspring/decimal"
)

// DefaultWalletBalance is the simulated balance of every asset.
var DefaultWalletBalance = decimal.RequireFromString("10.00")

// BalanceProvider reports how much of an asset the wallet holds.
type BalanceProvider interface {
	GetBalance(ctx context.Context, asset string) (decimal.Decimal, error)
}

// FixedBalanceProvider reports the same balance for every asset.
type FixedBalanceProvider struct {
	balance decimal.Decimal
}

// NewFixedBalanceProvider creates a provider that always reports balance.
func NewFixedBalanceProvider(balance decimal.Decimal) *FixedBalanceProvider {
	return &FixedBalanceProvider{balance: balance}
}

// GetBalance returns the fixed balance regardless of asset.
func (p *FixedBalanceProvider) GetBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	return p.balance, nil
}
