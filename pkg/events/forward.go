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
	"sort"
)

const (
	DirectionOn     = "on"
	DirectionOnce   = "once"
	DirectionFire   = "fire"
	DirectionRemove = "remove"
	DirectionClear  = "clear"
)

// Delegate is a bus operation bound to a single event.
type Delegate func(args ...any) error

// Installer receives the delegates created by Bus.Forward.
type Installer interface {
	Install(name string, fn Delegate)
}

// Delegates is a map-backed Installer.
type Delegates map[string]Delegate

func NewDelegates() Delegates {
	return make(Delegates)
}

func (d Delegates) Install(name string, fn Delegate) {
	d[name] = fn
}

func (d Delegates) Has(name string) bool {
	_, ok := d[name]
	return ok
}

func (d Delegates) Get(name string) (Delegate, bool) {
	fn, ok := d[name]
	return fn, ok
}

// Names returns the installed delegate names sorted.
func (d Delegates) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (d Delegates) Call(name string, args ...any) error {
	fn, ok := d[name]
	if !ok {
		return &InvalidArgumentError{
			Argument: "delegate",
			Reason:   fmt.Sprintf("%s is not installed", name),
		}
	}

	return fn(args...)
}

// Forward installs on target one delegate per declared event and direction,
// named by ValidateEventName(direction + " " + event). Directions default to
// "on" and "fire". Every delegate is bound to its own event name:
//
//	bus.Add("foo bar")
//	bus.Forward(delegates)
//	delegates.Call("onFooBar", callback) // bus.On("foo bar", callback)
//	delegates.Call("fireFooBar", 42)     // bus.Fire("foo bar", 42)
//
// Events declared after Forward are not forwarded.
func (b *Bus) Forward(target Installer, directions ...string) error {
	if len(directions) == 0 {
		directions = []string{DirectionOn, DirectionFire}
	}

	type entry struct {
		name string
		fn   Delegate
	}

	entries := make([]entry, 0, len(b.names)*len(directions))
	for _, name := range b.names {
		for _, direction := range directions {
			fn, err := b.delegate(direction, name)
			if err != nil {
				return err
			}

			entries = append(entries, entry{
				name: ValidateEventName(direction + " " + name),
				fn:   fn,
			})
		}
	}

	for _, e := range entries {
		target.Install(e.name, e.fn)
	}

	b.logger.Debugf("forwarded %d delegates", len(entries))

	return nil
}

func (b *Bus) delegate(direction, name string) (Delegate, error) {
	register := func(once bool) Delegate {
		return func(args ...any) error {
			if len(args) == 0 {
				return &InvalidArgumentError{
					Argument: "callback",
					Reason:   "a callback is required",
				}
			}

			return b.on(name, args[0], args[1:], once)
		}
	}

	switch direction {
	case DirectionOn:
		return register(false), nil
	case DirectionOnce:
		return register(true), nil
	case DirectionFire:
		return func(args ...any) error {
			_, err := b.Fire(name, args...)
			return err
		}, nil
	case DirectionRemove:
		return func(args ...any) error {
			b.Remove(name)
			return nil
		}, nil
	case DirectionClear:
		return func(args ...any) error {
			b.Clear(name, false)
			return nil
		}, nil
	default:
		return nil, &InvalidArgumentError{
			Argument: "direction",
			Reason:   fmt.Sprintf("%q can not be forwarded", direction),
		}
	}
}
