package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
)

func quoteOf(sourceAmount, destAmount string, side models.Side) models.Quote {
	return models.Quote{
		ConversionState: models.ConversionState{
			SourceAsset:    "ETH",
			DestAsset:      "USDC",
			SourceAmount:   sourceAmount,
			DestAmount:     destAmount,
			LastEditedSide: side,
		},
		Rate:        decimal.RequireFromString("1645.93"),
		SourcePrice: decimal.RequireFromString("1645.93"),
		DestPrice:   decimal.RequireFromString("1"),
	}
}

func TestSwapHandlers(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		reqBody        interface{}
		handler        func(ctrl SwapController) http.HandlerFunc
		setupMock      func(ctrl *MockSwapController)
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:    "get swap",
			method:  http.MethodGet,
			path:    "/swap",
			handler: NewGetSwapHandler,
			setupMock: func(ctrl *MockSwapController) {
				ctrl.EXPECT().Quote(gomock.Any()).Return(quoteOf("", "", models.SideSource), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: QuoteResponse{
				SourceAsset:    "ETH",
				DestAsset:      "USDC",
				LastEditedSide: "source",
				Rate:           "1645.93",
				SourcePrice:    "1645.93",
				DestPrice:      "1",
			},
		},
		{
			name:    "edit source amount",
			method:  http.MethodPut,
			path:    "/swap/source-amount",
			reqBody: AmountRequest{Amount: "1.5"},
			handler: NewSetSourceAmountHandler,
			setupMock: func(ctrl *MockSwapController) {
				ctrl.EXPECT().EditSourceAmount(gomock.Any(), "1.5").
					Return(quoteOf("1.5", "2468.895000", models.SideSource), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: QuoteResponse{
				SourceAsset:    "ETH",
				DestAsset:      "USDC",
				SourceAmount:   "1.5",
				DestAmount:     "2468.895000",
				LastEditedSide: "source",
				Rate:           "1645.93",
				SourcePrice:    "1645.93",
				DestPrice:      "1",
			},
		},
		{
			name:    "edit dest amount cleared",
			method:  http.MethodPut,
			path:    "/swap/dest-amount",
			reqBody: AmountRequest{Amount: ""},
			handler: NewSetDestAmountHandler,
			setupMock: func(ctrl *MockSwapController) {
				ctrl.EXPECT().EditDestAmount(gomock.Any(), "").
					Return(quoteOf("", "", models.SideDest), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: QuoteResponse{
				SourceAsset:    "ETH",
				DestAsset:      "USDC",
				LastEditedSide: "dest",
				Rate:           "1645.93",
				SourcePrice:    "1645.93",
				DestPrice:      "1",
			},
		},
		{
			name:           "edit amount invalid json",
			method:         http.MethodPut,
			path:           "/swap/source-amount",
			reqBody:        `invalid-json`,
			handler:        NewSetSourceAmountHandler,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Error: "invalid request body"},
		},
		{
			name:    "set source asset",
			method:  http.MethodPut,
			path:    "/swap/source-asset",
			reqBody: AssetRequest{Asset: "ETH"},
			handler: NewSetSourceAssetHandler,
			setupMock: func(ctrl *MockSwapController) {
				ctrl.EXPECT().SetSourceAsset(gomock.Any(), "ETH").
					Return(quoteOf("", "", models.SideSource), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "set dest asset unknown",
			method:  http.MethodPut,
			path:    "/swap/dest-asset",
			reqBody: AssetRequest{Asset: "DOGE"},
			handler: NewSetDestAssetHandler,
			setupMock: func(ctrl *MockSwapController) {
				ctrl.EXPECT().SetDestAsset(gomock.Any(), "DOGE").
					Return(models.Quote{}, fmt.Errorf("%w: DOGE", services.ErrUnknownAsset))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Error: "unknown asset: DOGE"},
		},
		{
			name:           "set asset empty",
			method:         http.MethodPut,
			path:           "/swap/dest-asset",
			reqBody:        AssetRequest{},
			handler:        NewSetDestAssetHandler,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Error: "invalid request body"},
		},
		{
			name:    "flip",
			method:  http.MethodPost,
			path:    "/swap/flip",
			handler: NewFlipSwapHandler,
			setupMock: func(ctrl *MockSwapController) {
				ctrl.EXPECT().SwapAssets(gomock.Any()).
					Return(quoteOf("1", "1645.930000", models.SideDest), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "engine stopped",
			method:  http.MethodGet,
			path:    "/swap",
			handler: NewGetSwapHandler,
			setupMock: func(ctrl *MockSwapController) {
				ctrl.EXPECT().Quote(gomock.Any()).Return(models.Quote{}, services.ErrEngineStopped)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrorResponse{Error: "Service unavailable"},
		},
		{
			name:    "internal error",
			method:  http.MethodPost,
			path:    "/swap/flip",
			handler: NewFlipSwapHandler,
			setupMock: func(ctrl *MockSwapController) {
				ctrl.EXPECT().SwapAssets(gomock.Any()).Return(models.Quote{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			swap := NewMockSwapController(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(swap)
			}

			var bodyBytes []byte
			switch v := tt.reqBody.(type) {
			case nil:
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()
			tt.handler(swap).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			switch expected := tt.expectedBody.(type) {
			case QuoteResponse:
				var got QuoteResponse
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
