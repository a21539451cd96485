package service

import (
	"errors"
	"fmt"

	"github.com/ncobase/catalog/ecode"
)

// NotFoundError reports that a referenced item does not exist.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return ecode.NotExist(fmt.Sprintf("item %d", e.ID))
}

// ValidationError reports bad or missing required input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
