package transaction

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func doJSONRequest(t *testing.T, router *echo.Echo, method, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		body = new(bytes.Buffer)
		require.NoError(t, json.NewEncoder(body).Encode(payload))
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func submitRequest() models.SubmitTransactionRequest {
	amount, _ := models.NewDecimal("250.00")
	return models.SubmitTransactionRequest{
		AccountNumber: "SA-0001",
		Type:          "deposit",
		Amount:        amount,
		EffectiveDate: "2024-02-10",
		Description:   "cash deposit",
	}
}

func Test_Handler_submitTransaction(t *testing.T) {
	tests := []struct {
		name         string
		req          any
		doMock       func(h testTransactionHelper)
		wantCode     int
		wantContains []string
	}{
		{
			name: "success",
			req:  submitRequest(),
			doMock: func(h testTransactionHelper) {
				h.mockTrxService.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req models.SubmitTransactionRequest) (models.Transaction, error) {
						require.Equal(t, "SA-0001", req.AccountNumber)
						require.Equal(t, "deposit", req.Type)
						return models.Transaction{
							TransactionID: "TRX-001",
							AccountNumber: req.AccountNumber,
							Type:          models.TransactionTypeDeposit,
							Amount:        decimal.RequireFromString("250.00"),
							Seq:           3,
						}, nil
					})
			},
			wantCode:     http.StatusCreated,
			wantContains: []string{`"transactionId":"TRX-001"`, `"seq":3`},
		},
		{
			name:         "error validating required",
			req:          models.SubmitTransactionRequest{},
			wantCode:     http.StatusUnprocessableEntity,
			wantContains: []string{`"accountNumber"`, `"type"`, `"effectiveDate"`},
		},
		{
			name: "error insufficient funds",
			req: func() models.SubmitTransactionRequest {
				r := submitRequest()
				r.Type = "withdrawal"
				return r
			}(),
			doMock: func(h testTransactionHelper) {
				h.mockTrxService.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(models.Transaction{}, common.ErrInsufficientFunds)
			},
			wantCode:     http.StatusUnprocessableEntity,
			wantContains: []string{`"code":"SVE-1002"`, "insufficient funds"},
		},
		{
			name: "error account not eligible",
			req:  submitRequest(),
			doMock: func(h testTransactionHelper) {
				h.mockTrxService.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(models.Transaction{}, common.ErrAccountNotEligible)
			},
			wantCode:     http.StatusUnprocessableEntity,
			wantContains: []string{`"code":"SVE-1004"`},
		},
		{
			name: "error backdated behind ledger tail",
			req:  submitRequest(),
			doMock: func(h testTransactionHelper) {
				h.mockTrxService.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(models.Transaction{}, common.ErrOutOfOrderTransaction)
			},
			wantCode:     http.StatusConflict,
			wantContains: []string{`"code":"SVE-1007"`},
		},
		{
			name: "error account not exists",
			req:  submitRequest(),
			doMock: func(h testTransactionHelper) {
				h.mockTrxService.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(models.Transaction{}, common.ErrAccountNotExists)
			},
			wantCode:     http.StatusNotFound,
			wantContains: []string{`"code":"SVE-0404"`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			testHelper := transactionTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper)
			}

			rec := doJSONRequest(t, testHelper.router, http.MethodPost, "/api/v1/transactions", tt.req)

			require.Equal(t, tt.wantCode, rec.Code)
			for _, want := range tt.wantContains {
				require.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func Test_Handler_getAllTransaction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		testHelper := transactionTestHelper(t)
		testHelper.mockTrxService.EXPECT().
			GetList(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, opts models.TransactionFilterOptions) ([]models.Transaction, int, error) {
				require.Equal(t, "SA-0001", opts.AccountNumber)
				require.Equal(t, models.TransactionTypeDeposit, opts.Type)
				require.NotNil(t, opts.From)
				require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *opts.From)
				return []models.Transaction{{TransactionID: "TRX-001"}}, 1, nil
			})

		rec := doJSONRequest(t, testHelper.router, http.MethodGet,
			"/api/v1/transactions?accountNumber=SA-0001&type=deposit&from=2024-02-01", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total_rows":1`)
	})

	t.Run("error missing account number", func(t *testing.T) {
		testHelper := transactionTestHelper(t)

		rec := doJSONRequest(t, testHelper.router, http.MethodGet, "/api/v1/transactions", nil)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Contains(t, rec.Body.String(), `"accountNumber"`)
	})
}

func Test_Handler_getBalance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		testHelper := transactionTestHelper(t)
		asOf := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		testHelper.mockTrxService.EXPECT().
			GetBalanceAsOf(gomock.Any(), "SA-0001", asOf).
			Return(decimal.RequireFromString("1250.50"), nil)

		rec := doJSONRequest(t, testHelper.router, http.MethodGet,
			"/api/v1/transactions/balance?accountNumber=SA-0001&asOf=2024-03-01", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"accountNumber":"SA-0001","asOf":"2024-03-01","balance":1250.5}`, rec.Body.String())
	})

	t.Run("error account not exists", func(t *testing.T) {
		testHelper := transactionTestHelper(t)
		testHelper.mockTrxService.EXPECT().
			GetBalanceAsOf(gomock.Any(), "SA-9999", gomock.Any()).
			Return(decimal.Decimal{}, common.ErrAccountNotExists)

		rec := doJSONRequest(t, testHelper.router, http.MethodGet,
			"/api/v1/transactions/balance?accountNumber=SA-9999&asOf=2024-03-01", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
