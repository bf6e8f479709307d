package vacationerrors

import (
	"net/http"

	"go-hcm/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start date must be before the end date!",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found!",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidState,
		"Insufficient vacation days!",
		http.StatusUnprocessableEntity,
	)
	ErrVacationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vacation record not found",
		http.StatusNotFound,
	)
)
