package handlers

//go:generate mockgen -source=transaction.go -destination=mock_transaction.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
)

// TransactionSubmitter starts simulated swaps and reports the one on display.
type TransactionSubmitter interface {
	Submit(ctx context.Context) (models.TransactionAttempt, error)
	Transaction(ctx context.Context) (models.TransactionAttempt, error)
}

// TransactionResponse represents a swap attempt
// swagger:model TransactionResponse
type TransactionResponse struct {
	// Attempt ID, empty while idle
	ID string `json:"id,omitempty"`

	// IDLE, PENDING, SUCCESS or FAILED
	// default: PENDING
	Status string `json:"status"`

	// Amount of the source asset
	// default: 1.5
	Amount string `json:"amount,omitempty"`

	// Source asset
	// default: ETH
	Asset string `json:"asset,omitempty"`

	// insufficient_balance or chain_failure
	ErrorKind string `json:"error_kind,omitempty"`

	// Message to display
	Error string `json:"error,omitempty"`

	// Time of the last status change
	UpdatedAt time.Time `json:"updated_at"`
}

func newTransactionResponse(attempt models.TransactionAttempt) TransactionResponse {
	resp := TransactionResponse{
		ID:        attempt.ID,
		Status:    string(attempt.Status),
		Asset:     attempt.SourceAsset,
		ErrorKind: string(attempt.ErrorKind),
		Error:     attempt.ErrorMessage,
		UpdatedAt: attempt.UpdatedAt,
	}
	if attempt.Status != models.StatusIdle {
		resp.Amount = attempt.RequestedAmount.String()
	}
	return resp
}

// NewSubmitSwapHandler submits the current source amount.
// @Summary Submit swap
// @Description Starts a simulated swap of the current source amount. The result settles asynchronously.
// @Tags swap
// @Produce json
// @Success 202 {object} handlers.TransactionResponse "Swap pending"
// @Failure 400 {object} handlers.TransactionResponse "Insufficient balance"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 409 {object} handlers.ErrorResponse "Transaction already pending"
// @Router /swap/submit [post]
func NewSubmitSwapHandler(submitter TransactionSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attempt, err := submitter.Submit(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrInsufficientBalance):
				writeJSON(w, http.StatusBadRequest, newTransactionResponse(attempt))
			case errors.Is(err, services.ErrTransactionPending):
				writeError(w, http.StatusConflict, err.Error())
			case errors.Is(err, services.ErrEngineStopped):
				writeError(w, http.StatusServiceUnavailable, "Service unavailable")
			default:
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusAccepted, newTransactionResponse(attempt))
	}
}

// NewGetTransactionHandler returns the attempt on display.
// @Summary Get transaction
// @Tags swap
// @Produce json
// @Success 200 {object} handlers.TransactionResponse "Current attempt"
// @Router /swap/transaction [get]
func NewGetTransactionHandler(submitter TransactionSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attempt, err := submitter.Transaction(r.Context())
		if err != nil {
			if errors.Is(err, services.ErrEngineStopped) {
				writeError(w, http.StatusServiceUnavailable, "Service unavailable")
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, newTransactionResponse(attempt))
	}
}
