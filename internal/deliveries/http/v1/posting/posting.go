package posting

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/http"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/validation"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
	"bitbucket.org/Amartha/go-savings-engine/internal/services"

	"github.com/labstack/echo/v4"
)

type postingHandler struct {
	postingService services.PostingService
}

// New posting handler will initialize the posting/ resources endpoint
func New(g *echo.Group, postingSrv services.PostingService) {
	ph := postingHandler{postingService: postingSrv}

	posting := g.Group("/postings")
	posting.POST("/run", ph.runPostingBatch())
	posting.POST("/accounts/:accountNumber", ph.postAccount())
	posting.GET("", ph.getAllPosting())
}

// @Summary 	Run posting batch
// @Description Post all due interest periods across every active account
// @Tags 		Postings
// @Accept		json
// @Produce		json
// @Param 	payload body models.DoRunPostingBatchRequest true "A JSON object containing the posting date"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.PostingReport "Response indicates that the batch ran and carries the per-account outcomes"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the posting date is invalid"
// @Failure 503 {object} http.RestErrorResponseModel "Service unavailable. This can happen if the ledger cannot be reached at all"
// @Router /v1/postings/run [post]
func (ph postingHandler) runPostingBatch() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DoRunPostingBatchRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		asOf, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.AsOfDate)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		report, err := ph.postingService.RunPostingBatch(c.Request().Context(), asOf)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, report)
	}
}

// @Summary 	Post one account
// @Description Post all due interest periods of a single account
// @Tags 		Postings
// @Accept		json
// @Produce		json
// @Param 	accountNumber path string true "account identifier"
// @Param 	payload body models.DoPostAccountRequest true "A JSON object containing the posting date"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.AccountPostingResult "Response indicates that the account was processed and carries the posting outcome"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict error. This can happen if the period was already posted by a concurrent run"
// @Failure 422 {object} http.RestErrorResponseModel "Eligibility error. This can happen if the account cannot take postings"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while posting"
// @Router /v1/postings/accounts/{accountNumber} [post]
func (ph postingHandler) postAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DoPostAccountRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		asOf, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.AsOfDate)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		result, err := ph.postingService.PostAccount(c.Request().Context(), c.Param("accountNumber"), asOf)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, result)
	}
}

// @Summary 	Get All postings
// @Description Get the posting history of one account, newest first
// @Tags 		Postings
// @Accept		json
// @Produce		json
// @Param   params query models.DoGetListPostingRequest true "Get all postings query parameters"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestTotalRowResponseModel "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the query parameters cannot be parsed"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the account does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while listing postings"
// @Router /v1/postings [get]
func (ph postingHandler) getAllPosting() echo.HandlerFunc {
	return func(c echo.Context) error {
		var queryFilter models.DoGetListPostingRequest

		if err := c.Bind(&queryFilter); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(queryFilter); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		postings, err := ph.postingService.GetList(c.Request().Context(), queryFilter.AccountNumber, queryFilter.Limit)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}

		return http.RestSuccessResponseListWithTotalRows(c, postings, len(postings))
	}
}
