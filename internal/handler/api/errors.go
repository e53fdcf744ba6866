package api

import (
	"net/http"

	"billboard-booking/internal/handler/httperr"
	"billboard-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	marker error
	status int
	code   string
	msg    string
}

// First match wins.
var useCaseErrors = []errorMapping{
	{errs.ErrValidation, http.StatusBadRequest, httperr.CodeValidation, "Validation failed"},
	{errs.ErrHourOutOfRange, http.StatusBadRequest, httperr.CodeValidation, "Hour is outside the operating window"},
	{errs.ErrDateNotSelected, http.StatusBadRequest, httperr.CodeValidation, "Date is not selected"},
	{errs.ErrSessionNotFound, http.StatusNotFound, httperr.CodeNotFound, "Campaign not found"},
	{errs.ErrResourceNotFound, http.StatusNotFound, httperr.CodeNotFound, "Resource not found"},
	{errs.ErrInvalidTransition, http.StatusConflict, httperr.CodeInvalidTransition, "Action not allowed in the current step"},
	{errs.ErrAvailabilityPending, http.StatusUnprocessableEntity, httperr.CodeAvailabilityPending, "Availability is still loading"},
	{errs.ErrAvailabilityConflict, http.StatusConflict, httperr.CodeAvailabilityConflict, "Selected time is no longer available"},
	{errs.ErrSystemUnavailable, http.StatusServiceUnavailable, httperr.CodeSystemUnavailable, "Booking system is unavailable"},
	{errs.ErrPersistence, http.StatusBadGateway, httperr.CodePersistence, "Booking could not be saved"},
}

// abortWithUseCaseError maps the error markers of the usecase layer to a
// status code and a public message.
func abortWithUseCaseError(c *gin.Context, err error, detail any) {
	if errs.Is(err, errs.ErrValidation) && detail == nil {
		if fields := errs.ValidationFields(err); fields != nil {
			detail = fields
		}
	}
	for _, m := range useCaseErrors {
		if errs.Is(err, m.marker) {
			httperr.AbortWithCode(c, m.status, m.code, err, m.msg, detail)
			return
		}
	}
	httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", detail)
}
