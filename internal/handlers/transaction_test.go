package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
)

func TestSubmitSwapHandler(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		setupMock      func(s *MockTransactionSubmitter)
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name: "pending",
			setupMock: func(s *MockTransactionSubmitter) {
				s.EXPECT().Submit(gomock.Any()).Return(models.TransactionAttempt{
					ID:              "tx-1",
					RequestedAmount: decimal.RequireFromString("5"),
					SourceAsset:     "ETH",
					Status:          models.StatusPending,
					UpdatedAt:       at,
				}, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody: TransactionResponse{
				ID:        "tx-1",
				Status:    "PENDING",
				Amount:    "5",
				Asset:     "ETH",
				UpdatedAt: at,
			},
		},
		{
			name: "insufficient balance",
			setupMock: func(s *MockTransactionSubmitter) {
				s.EXPECT().Submit(gomock.Any()).Return(models.TransactionAttempt{
					ID:              "tx-2",
					RequestedAmount: decimal.RequireFromString("15"),
					SourceAsset:     "ETH",
					Status:          models.StatusFailed,
					ErrorKind:       models.ErrorKindInsufficientBalance,
					ErrorMessage:    "Insufficient balance. You only have 10.00 ETH",
					UpdatedAt:       at,
				}, services.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: TransactionResponse{
				ID:        "tx-2",
				Status:    "FAILED",
				Amount:    "15",
				Asset:     "ETH",
				ErrorKind: "insufficient_balance",
				Error:     "Insufficient balance. You only have 10.00 ETH",
				UpdatedAt: at,
			},
		},
		{
			name: "invalid amount",
			setupMock: func(s *MockTransactionSubmitter) {
				s.EXPECT().Submit(gomock.Any()).Return(models.TransactionAttempt{}, services.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Error: "amount must be a positive number"},
		},
		{
			name: "already pending",
			setupMock: func(s *MockTransactionSubmitter) {
				s.EXPECT().Submit(gomock.Any()).Return(models.TransactionAttempt{Status: models.StatusPending}, services.ErrTransactionPending)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrorResponse{Error: "a transaction is already pending"},
		},
		{
			name: "balance lookup failed",
			setupMock: func(s *MockTransactionSubmitter) {
				s.EXPECT().Submit(gomock.Any()).Return(models.TransactionAttempt{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			submitter := NewMockTransactionSubmitter(ctrl)
			tt.setupMock(submitter)

			req := httptest.NewRequest(http.MethodPost, "/swap/submit", nil)
			rec := httptest.NewRecorder()
			NewSubmitSwapHandler(submitter).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			switch expected := tt.expectedBody.(type) {
			case TransactionResponse:
				var got TransactionResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, expected, got)
			case ErrorResponse:
				var got ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, expected, got)
			}
		})
	}
}

func TestGetTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := NewMockTransactionSubmitter(ctrl)

	t.Run("idle", func(t *testing.T) {
		submitter.EXPECT().Transaction(gomock.Any()).Return(models.TransactionAttempt{Status: models.StatusIdle}, nil)

		rec := httptest.NewRecorder()
		NewGetTransactionHandler(submitter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swap/transaction", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got TransactionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "IDLE", got.Status)
		assert.Empty(t, got.ID)
		assert.Empty(t, got.Amount)
	})

	t.Run("engine stopped", func(t *testing.T) {
		submitter.EXPECT().Transaction(gomock.Any()).Return(models.TransactionAttempt{}, services.ErrEngineStopped)

		rec := httptest.NewRecorder()
		NewGetTransactionHandler(submitter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swap/transaction", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
