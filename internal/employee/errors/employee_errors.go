package employeeerrors

import (
	"go-employees/internal/shared/apperror"
	"net/http"
)

// Sentinels carry distinct statuses on purpose: 404 for a missing employee,
// 409 for a duplicate email and 400 for input that cannot be parsed or
// points at a missing department, role or manager. HTML responses still
// render the same generic error page; only the status differs.
var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid numeric value",
		http.StatusBadRequest,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Department, role or manager does not exist",
		http.StatusBadRequest,
	)
)
