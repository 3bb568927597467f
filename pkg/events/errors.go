/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package events

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownEvent    = errors.New("unknown event")
)

// InvalidArgumentError is returned when a caller passes a value the bus cannot
// use: a non-function callback, an empty event name, arguments that do not fit
// a callback's parameters or an unsupported forwarding direction.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

type UnknownEventError struct {
	Name string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("event %q is not declared", e.Name)
}

func (e *UnknownEventError) Is(target error) bool {
	return target == ErrUnknownEvent
}

// CallbackError reports the callback that stopped a fire pass.
type CallbackError struct {
	Event string
	Index int
	Cause error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("event %q callback #%d: %s", e.Event, e.Index, e.Cause.Error())
}

func (e *CallbackError) Unwrap() error {
	return e.Cause
}
