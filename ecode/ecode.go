// Package ecode provides shared human-readable message helpers used in
// service errors and response envelopes.
package ecode

import (
	"fmt"
)

const (
	requiredMsg = "required"
	invalidMsg  = "invalid"
	successMsg  = "Success"
	failedMsg   = "failed"
	notExistMsg = "does not exist"
)

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], requiredMsg)
	}
	return requiredMsg
}

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], invalidMsg)
	}
	return invalidMsg
}

// Success returns success message
func Success(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], successMsg)
	}
	return successMsg
}

// Failed returns failed message
func Failed(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], failedMsg)
	}
	return failedMsg
}

// NotExist returns not exist message
func NotExist(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], notExistMsg)
	}
	return notExistMsg
}
