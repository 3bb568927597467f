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

type Event interface {
	Name() string
	Get(key string) any
	Add(key string, val any)
	Abort(bool)
	IsAborted() bool
}

type Listener interface {
	Handle(e Event) error
}

type ListenerFunc func(e Event) error

func (fn ListenerFunc) Handle(e Event) error {
	return fn(e)
}

// Emitter delivers payload events to listeners by name.
type Emitter interface {
	On(name string, listener Listener)
	Fire(name string, payload map[string]any)
}
