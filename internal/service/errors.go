package service

import (
	"blogs/internal/apperr"
	"blogs/internal/model"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var errStale = apperr.New(apperr.StaleWrite, apperr.CodeStaleWrite, "resource was modified by another request, please retry")

// storeError classifies repository failures. Missing rows become NotFound
// with the given code and message, version conflicts become StaleWrite and
// anything else is wrapped with op for the logs.
func storeError(err error, op, notFoundCode, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFoundCode != "":
		return apperr.New(apperr.NotFound, notFoundCode, notFoundMsg)
	case errors.Is(err, model.ErrStaleRecord):
		return errStale
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func invalid(message string) error {
	return apperr.New(apperr.Invalid, apperr.CodeInvalidRequest, message)
}

func notAuthorized() error {
	return apperr.New(apperr.Forbidden, apperr.CodeNotAuthorized, "not authorized")
}
