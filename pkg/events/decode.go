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
	"fmt"

	"github.com/mitchellh/mapstructure"
)

type payloadCarrier interface {
	Data() map[string]any
}

// Decode copies the payload of e into out, a pointer to a struct or a map.
func Decode(e Event, out any) error {
	carrier, ok := e.(payloadCarrier)
	if !ok {
		return &InvalidArgumentError{
			Argument: "event",
			Reason:   fmt.Sprintf("%T does not expose its payload", e),
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})

	if err != nil {
		return &InvalidArgumentError{
			Argument: "out",
			Reason:   err.Error(),
		}
	}

	return decoder.Decode(carrier.Data())
}
