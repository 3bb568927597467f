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
	"strings"
	"unicode"
	"unicode/utf8"
)

var separators = strings.NewReplacer("_", " ", "-", " ")

// ValidateEventName turns an event name into a camel-cased member name:
// "foo_bar" becomes "fooBar" and "on foo-bar-baz" becomes "onFooBarBaz".
func ValidateEventName(name string) string {
	name = separators.Replace(name)

	var sb strings.Builder
	sb.Grow(len(name))

	cased := false
	for _, r := range name {
		letter := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		if letter {
			if cased {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
		}
		cased = letter

		if r != ' ' {
			sb.WriteRune(r)
		}
	}

	res := sb.String()
	first, size := utf8.DecodeRuneInString(res)
	if size == 0 {
		return res
	}

	return string(unicode.ToLower(first)) + res[size:]
}
