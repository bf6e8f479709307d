package remunerationerrors

import (
	"net/http"

	"go-hcm/internal/shared/apperror"
)

var (
	ErrRemunerationNotFound = apperror.New(
		apperror.CodeNotFound,
		"remuneration not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"invalid monetary amount",
		http.StatusBadRequest,
	)
	ErrRemunerationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a remuneration line already exists for this employee",
		http.StatusConflict,
	)
)
