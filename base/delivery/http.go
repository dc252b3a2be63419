package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{query.ErrNotFound, http.StatusNotFound},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidCommitment, http.StatusBadRequest},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
	{domain.ErrNotCompliant, http.StatusForbidden},
	{domain.ErrAuctionClosed, http.StatusConflict},
	{domain.ErrAuctionOpen, http.StatusConflict},
	{domain.ErrAlreadyResolved, http.StatusConflict},
	{domain.ErrStatusConflict, http.StatusConflict},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrRateLimited, http.StatusTooManyRequests},
}

// StatusOf maps a domain error to its http status, 500 when unknown
func StatusOf(err error) int {
	for _, es := range errStatus {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if s := StatusOf(err); s != http.StatusInternalServerError {
			status = s
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
