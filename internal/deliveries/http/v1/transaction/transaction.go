package transaction

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/http"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/validation"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
	"bitbucket.org/Amartha/go-savings-engine/internal/services"

	"github.com/labstack/echo/v4"
)

type transactionHandler struct {
	transactionService services.TransactionService
}

// New transaction handler will initialize the transaction/ resources endpoint
func New(g *echo.Group, transactionSrv services.TransactionService) {
	th := transactionHandler{transactionService: transactionSrv}

	transaction := g.Group("/transactions")
	transaction.POST("", th.submitTransaction())
	transaction.GET("", th.getAllTransaction())
	transaction.GET("/balance", th.getBalance())
}

type DoGetBalanceResponse struct {
	AccountNumber string         `json:"accountNumber"`
	AsOf          string         `json:"asOf"`
	Balance       models.Decimal `json:"balance"`
}

// @Summary 	Submit Transaction
// @Description Append one deposit, withdrawal or fee to an account ledger
// @Tags 		Transactions
// @Accept		json
// @Produce		json
// @Param 	payload body models.SubmitTransactionRequest true "A JSON object containing the transaction payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 201 {object} models.Transaction "Response indicates that the request succeeded and the transaction has been appended"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the payload is invalid or the account rejects the transaction"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while appending the transaction"
// @Router /v1/transactions [post]
func (th transactionHandler) submitTransaction() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.SubmitTransactionRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		result, err := th.transactionService.Submit(c.Request().Context(), *req)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusCreated, result)
	}
}

// @Summary 	Get All transactions
// @Description Get the ledger entries of one account, newest first
// @Tags 		Transactions
// @Accept		json
// @Produce		json
// @Param   params query models.DoGetListTransactionRequest true "Get all transactions query parameters"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestTotalRowResponseModel "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the query parameters cannot be parsed"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while listing transactions"
// @Router /v1/transactions [get]
func (th transactionHandler) getAllTransaction() echo.HandlerFunc {
	return func(c echo.Context) error {
		var queryFilter models.DoGetListTransactionRequest

		if err := c.Bind(&queryFilter); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(queryFilter); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		opts, err := queryFilter.ToFilterOpts()
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		transactions, total, err := th.transactionService.GetList(c.Request().Context(), *opts)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponseListWithTotalRows(c, transactions, total)
	}
}

// @Summary 	Get account balance
// @Description Get the balance of one account as of a given date
// @Tags 		Transactions
// @Accept		json
// @Produce		json
// @Param 	accountNumber query string true "account identifier"
// @Param 	asOf query string false "balance date, defaults to today"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} DoGetBalanceResponse "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the query parameters cannot be parsed"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while reading the balance"
// @Router /v1/transactions/balance [get]
func (th transactionHandler) getBalance() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			AccountNumber string `query:"accountNumber" json:"accountNumber" validate:"required,noStartEndSpaces"`
			models.DoGetBalanceRequest
		}

		if err := c.Bind(&req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		asOf, err := req.AsOfOrNow()
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		balance, err := th.transactionService.GetBalanceAsOf(c.Request().Context(), req.AccountNumber, asOf)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, DoGetBalanceResponse{
			AccountNumber: req.AccountNumber,
			AsOf:          asOf.Format(common.DateFormatYYYYMMDD),
			Balance:       models.NewDecimalFromExternal(balance),
		})
	}
}
