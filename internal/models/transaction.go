package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle stage of a simulated swap.
type TransactionStatus string

const (
	StatusIdle    TransactionStatus = "IDLE"
	StatusPending TransactionStatus = "PENDING"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// Terminal reports whether the status is SUCCESS or FAILED.
func (s TransactionStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// TransactionErrorKind distinguishes why an attempt failed.
type TransactionErrorKind string

const (
	ErrorKindNone                TransactionErrorKind = ""
	ErrorKindInsufficientBalance TransactionErrorKind = "insufficient_balance"
	ErrorKindChainFailure        TransactionErrorKind = "chain_failure"
)

// TransactionAttempt is the single swap attempt currently on display.
type TransactionAttempt struct {
	ID              string               `json:"id,omitempty"`
	RequestedAmount decimal.Decimal      `json:"requested_amount"`
	SourceAsset     string               `json:"source_asset,omitempty"`
	Status          TransactionStatus    `json:"status"`
	ErrorKind       TransactionErrorKind `json:"error_kind,omitempty"`
	ErrorMessage    string               `json:"error_message,omitempty"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// TransactionEvent is what gets published to the event bus when an attempt changes status.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"` // TransactionID is the attempt identifier.
	Timestamp     int64   `json:"timestamp"`      // Timestamp is the Unix time (seconds) of the status change.
	Amount        string  `json:"amount"`         // Amount is the requested source amount.
	Asset         string  `json:"asset"`          // Asset is the source asset symbol.
	Status        string  `json:"status"`         // Status is the new lifecycle stage.
	Error         *string `json:"error,omitempty"` // Error is the failure message for FAILED attempts.
}
