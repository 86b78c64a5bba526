// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package wizard

import "errors"

// ValidationFailure is returned when a submitted answer is rejected. The step
// pointer stays where it was and Message is shown next to the input.
type ValidationFailure struct {
	Step    Step
	Field   Field
	Message string
}

func (e *ValidationFailure) Error() string {
	return e.Message
}

// AsValidationFailure unwraps err into a *ValidationFailure if it is one.
func AsValidationFailure(err error) (*ValidationFailure, bool) {
	var vf *ValidationFailure
	if errors.As(err, &vf) {
		return vf, true
	}
	return nil, false
}
