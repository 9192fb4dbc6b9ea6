package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the common domain errors of the
shoppable-video surface: videos, product tags, widget settings, uploads.
*/

// =========================================================================
// Factory functions (wrap repository / upstream errors)
// =========================================================================

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError. A record owned by another shop is reported the
// same way: not found, never "forbidden", so tenants cannot probe each
// other's ids.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrUpstream wraps a failure of an external collaborator (storage,
// commerce platform API).
func ErrUpstream(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusInternalServerError)
}

// =========================================================================
// Predefined variables (frequent, static errors)
// =========================================================================

// ErrVideoURLRequired - a video cannot be created without a source URL.
var ErrVideoURLRequired = New(
	CodeValidationFailed,
	"video",
	"URL is required",
	http.StatusBadRequest,
)

// ErrMissingSignParams - the sign endpoint needs both filename and filetype.
var ErrMissingSignParams = New(
	CodeValidationFailed,
	"storage",
	"Filename and filetype are required",
	http.StatusBadRequest,
)

// ErrMissingShopParam - the public videos endpoint needs a shop parameter.
var ErrMissingShopParam = New(
	CodeValidationFailed,
	"request",
	"Missing shop parameter",
	http.StatusBadRequest,
)

// ErrInvalidLayout - widget layout outside the closed enumeration.
var ErrInvalidLayout = New(
	CodeValidationFailed,
	"widget",
	"Layout must be one of: BUBBLE, CAROUSEL, GRID",
	http.StatusBadRequest,
)

// ErrSignFailed - the storage signer could not produce a credential.
var ErrSignFailed = New(
	CodeExternalServiceError,
	"storage",
	"Failed to generate upload URL",
	http.StatusInternalServerError,
)
