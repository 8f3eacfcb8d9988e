// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package exceptions provides error types used throughout postore
package exceptions

// UserError is an error that must stop the current command and be
// displayed to the user. Debug holds the details (stack trace) that
// are only printed in debug mode.
type UserError struct {
	Message string
	Debug   string
}

// Error method for the UserError type.
// Returns the message.
func (u UserError) Error() string {
	return u.Message
}
