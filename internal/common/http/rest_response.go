package http

import (
	"errors"
	"net/http"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = echoErr.Message.(string)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, errs interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errs.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// RestDomainErrorResponse maps sentinel domain errors onto the HTTP status
// and error-code table, falling back to 500.
func RestDomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrAccountNotExists), errors.Is(err, common.ErrDataNotFound):
		return RestErrorResponse(c, http.StatusNotFound, models.GetErrMap(models.ErrKeyAccountNotFound))
	case errors.Is(err, common.ErrAccountAlreadyExists), errors.Is(err, common.ErrDataExist):
		return RestErrorResponse(c, http.StatusConflict, models.GetErrMap(models.ErrKeyAccountExists))
	case errors.Is(err, common.ErrInvalidPolicy):
		return RestErrorResponse(c, http.StatusUnprocessableEntity, models.GetErrMap(models.ErrKeyInvalidPolicy, err.Error()))
	case errors.Is(err, common.ErrInsufficientFunds):
		return RestErrorResponse(c, http.StatusUnprocessableEntity, models.GetErrMap(models.ErrKeyInsufficientFunds))
	case errors.Is(err, common.ErrAccountNotEligible):
		return RestErrorResponse(c, http.StatusUnprocessableEntity, models.GetErrMap(models.ErrKeyAccountNotEligible))
	case errors.Is(err, common.ErrInvalidLifecycleChange):
		return RestErrorResponse(c, http.StatusUnprocessableEntity, models.GetErrMap(models.ErrKeyInvalidLifecycle, err.Error()))
	case errors.Is(err, common.ErrInvalidTransactionType), errors.Is(err, common.ErrInvalidAmount):
		return RestErrorResponse(c, http.StatusUnprocessableEntity, models.GetErrMap(models.ErrKeyInvalidTransaction, err.Error()))
	case errors.Is(err, common.ErrPostingConflict):
		return RestErrorResponse(c, http.StatusConflict, models.GetErrMap(models.ErrKeyPostingConflict))
	case errors.Is(err, common.ErrOutOfOrderTransaction), errors.Is(err, common.ErrLastPostedDateRegressed):
		return RestErrorResponse(c, http.StatusConflict, models.GetErrMap(models.ErrKeyOutOfOrder))
	case errors.Is(err, common.ErrLedgerUnreachable):
		return RestErrorResponse(c, http.StatusServiceUnavailable, models.GetErrMap(models.ErrKeyLedgerUnreachable))
	case errors.Is(err, common.ErrValidation):
		return RestErrorResponse(c, http.StatusUnprocessableEntity, models.GetErrMap(models.ErrKeyValidation, err.Error()))
	default:
		return RestErrorResponse(c, http.StatusInternalServerError, models.GetErrMap(models.ErrKeyInternalServerError))
	}
}
