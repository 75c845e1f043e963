// Copyright (c) 2026 dotandev
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrConfigError       = errors.New("configuration error")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrMarshalFailed     = errors.New("failed to marshal output")
)

// Wrap functions for consistent error wrapping
func WrapInvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func WrapConfigError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrConfigError, msg, err)
}

func WrapUnsupportedFormat(format string) error {
	return fmt.Errorf("%w: %s. Must be one of: text, markdown, json", ErrUnsupportedFormat, format)
}

func WrapMarshalFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrMarshalFailed, err)
}
