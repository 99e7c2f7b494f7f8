package account

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/http"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/validation"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
	"bitbucket.org/Amartha/go-savings-engine/internal/services"

	"github.com/labstack/echo/v4"
)

type accountHandler struct {
	accountService services.AccountService
}

// New account handler will initialize the account/ resources endpoint
func New(g *echo.Group, accountSrv services.AccountService) {
	ah := accountHandler{accountService: accountSrv}

	account := g.Group("/accounts")
	account.POST("", ah.createAccount())
	account.GET("", ah.getAllAccount())
	account.GET("/:accountNumber", ah.getOneAccount())
	account.GET("/:accountNumber/summary", ah.getAccountSummary())
	account.POST("/:accountNumber/approve", ah.approveAccount())
	account.POST("/:accountNumber/reject", ah.rejectAccount())
	account.POST("/:accountNumber/withdraw", ah.withdrawAccount())
	account.POST("/:accountNumber/activate", ah.activateAccount())
	account.POST("/:accountNumber/close", ah.closeAccount())

	owner := g.Group("/owners")
	owner.POST("", ah.registerOwner())
}

// @Summary 	Create Account
// @Description Create a new savings account with its interest policy
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param 	payload body models.DoCreateAccountRequest true "A JSON object containing create account payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 201 {object} models.CreateAccount "Response indicates that the request succeeded and the resource has been created"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict error. This can happen if the account number already exists"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the payload or the policy is invalid"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while creating the account"
// @Router /v1/accounts [post]
func (ah accountHandler) createAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DoCreateAccountRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		in, err := req.ToCreateAccount()
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		res, err := ah.accountService.Create(c.Request().Context(), in)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
	}
}

// @Summary 	Register Owner
// @Description Register or refresh the demographic projection of an account owner
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param 	payload body models.DoRegisterOwnerRequest true "A JSON object containing owner payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 204 "Empty response"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the payload is invalid"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while storing the owner"
// @Router /v1/owners [post]
func (ah accountHandler) registerOwner() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DoRegisterOwnerRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		in, err := req.ToOwner()
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := ah.accountService.RegisterOwner(c.Request().Context(), in); err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusNoContent, nil)
	}
}

// @Summary 	Get All accounts
// @Description Get all accounts matching the given filters
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param   params query models.DoGetListAccountRequest true "Get all accounts query parameters"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestTotalRowResponseModel "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the query parameters cannot be parsed"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while listing accounts"
// @Router /v1/accounts [get]
func (ah accountHandler) getAllAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		var queryFilter models.DoGetListAccountRequest

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

		accounts, total, err := ah.accountService.GetList(c.Request().Context(), *opts)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponseListWithTotalRows(c, accounts, total)
	}
}

// @Summary 	Get one account by account number
// @Description Get one account detail by account number
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param 	accountNumber path string true "account identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.Account "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while fetching the account"
// @Router /v1/accounts/{accountNumber} [get]
func (ah accountHandler) getOneAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := ah.accountService.GetOneByAccountNumber(c.Request().Context(), c.Param("accountNumber"))
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, result)
	}
}

// @Summary 	Get account summary
// @Description Get the cached balance and posting summary of one account
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param 	accountNumber path string true "account identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.AccountSummary "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while building the summary"
// @Router /v1/accounts/{accountNumber}/summary [get]
func (ah accountHandler) getAccountSummary() echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := ah.accountService.GetSummary(c.Request().Context(), c.Param("accountNumber"))
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, result)
	}
}

// @Summary 	Approve account
// @Description Move a submitted account to approved
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param 	accountNumber path string true "account identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.Account "Response indicates that the request succeeded and the account lifecycle has advanced"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 422 {object} http.RestErrorResponseModel "Lifecycle error. This can happen if the account is not in a state that can be approved"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while updating the account"
// @Router /v1/accounts/{accountNumber}/approve [post]
func (ah accountHandler) approveAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := ah.accountService.Approve(c.Request().Context(), c.Param("accountNumber"))
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, result)
	}
}

// @Summary 	Reject account
// @Description Move a submitted account to rejected
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param 	accountNumber path string true "account identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.Account "Response indicates that the request succeeded and the account lifecycle has advanced"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 422 {object} http.RestErrorResponseModel "Lifecycle error. This can happen if the account is not in a state that can be rejected"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while updating the account"
// @Router /v1/accounts/{accountNumber}/reject [post]
func (ah accountHandler) rejectAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := ah.accountService.Reject(c.Request().Context(), c.Param("accountNumber"))
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, result)
	}
}

// @Summary 	Withdraw account application
// @Description Withdraw a submitted or approved account application by client request
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param 	accountNumber path string true "account identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.Account "Response indicates that the request succeeded and the account lifecycle has advanced"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 422 {object} http.RestErrorResponseModel "Lifecycle error. This can happen if the account is not in a state that can be withdrawn"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while updating the account"
// @Router /v1/accounts/{accountNumber}/withdraw [post]
func (ah accountHandler) withdrawAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := ah.accountService.WithdrawByClient(c.Request().Context(), c.Param("accountNumber"))
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, result)
	}
}

// @Summary 	Activate account
// @Description Activate an approved account so it can take transactions and accrue interest
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param 	accountNumber path string true "account identifier"
// @Param 	payload body models.DoActivateAccountRequest true "A JSON object containing the activation date"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.Account "Response indicates that the request succeeded and the account is now active"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the activation date is invalid"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while updating the account"
// @Router /v1/accounts/{accountNumber}/activate [post]
func (ah accountHandler) activateAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DoActivateAccountRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		activationDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.ActivationDate)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		result, err := ah.accountService.Activate(c.Request().Context(), c.Param("accountNumber"), activationDate)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, result)
	}
}

// @Summary 	Close account
// @Description Close an active account, posting all accrued interest up to the closure date
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param 	accountNumber path string true "account identifier"
// @Param 	payload body models.DoCloseAccountRequest true "A JSON object containing the closure date"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.Account "Response indicates that the request succeeded and the account is now closed"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the closure date is invalid"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while closing the account"
// @Router /v1/accounts/{accountNumber}/close [post]
func (ah accountHandler) closeAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DoCloseAccountRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		closureDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.ClosureDate)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		result, err := ah.accountService.Close(c.Request().Context(), c.Param("accountNumber"), closureDate)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, result)
	}
}
