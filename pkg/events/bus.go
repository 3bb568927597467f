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

	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/log"
)

// Bus is a synchronous named-event emitter.
//
// Callbacks run inline on the goroutine that calls Fire, in registration order.
// Bus does no locking: callers sharing a bus between goroutines must serialize
// every call themselves. Callbacks may call back into the bus while it fires.
type Bus struct {
	names         []string
	registrations map[string][]*registration
	binding       any
	aliases       bool
	logger        log.Logger
	observer      Observer
}

func NewBus(opts ...Option) *Bus {
	options := NewOptions(opts...)
	bus := &Bus{
		registrations: make(map[string][]*registration),
		binding:       options.Binding,
		aliases:       options.Aliases,
		logger:        options.Logger,
		observer:      options.Observer,
	}

	if err := bus.Add(options.Events...); err != nil {
		bus.logger.Warnf("skipping initial events: %s", err.Error())
	}

	return bus
}

// Add declares every name that is not declared yet, keeping the given order.
// Empty names are not declared; they are reported as an *InvalidArgumentError
// once the other names of the call have been declared.
func (b *Bus) Add(names ...string) error {
	var err error
	for _, name := range names {
		if name == "" {
			if err == nil {
				err = &InvalidArgumentError{
					Argument: "name",
					Reason:   "event name should not be empty",
				}
			}
			continue
		}

		b.add(name)
	}

	return err
}

func (b *Bus) add(name string) {
	if b.IsEvent(name) {
		return
	}

	b.names = append(b.names, name)
	b.registrations[name] = []*registration{}
	b.logger.Debugf("declared event %s", name)
}

func (b *Bus) IsEvent(name string) bool {
	_, ok := b.registrations[name]
	return ok
}

// Names returns the declared event names in declaration order.
func (b *Bus) Names() []string {
	names := make([]string, len(b.names))
	copy(names, b.names)
	return names
}

// Len returns the number of callbacks registered for name.
func (b *Bus) Len(name string) int {
	return len(b.registrations[name])
}

func (b *Bus) Binding() any {
	return b.binding
}

func (b *Bus) Aliases() bool {
	return b.aliases
}

// On registers callback for name, declaring name if needed. args are passed
// to the callback ahead of the arguments given to Fire.
func (b *Bus) On(name string, callback any, args ...any) error {
	return b.on(name, callback, args, false)
}

// Once is On for a callback that is dropped after the next fire of name.
func (b *Bus) Once(name string, callback any, args ...any) error {
	return b.on(name, callback, args, true)
}

func (b *Bus) on(name string, callback any, args []any, once bool) error {
	if name == "" {
		return &InvalidArgumentError{
			Argument: "name",
			Reason:   "event name should not be empty",
		}
	}

	b.add(name)

	fn, ok := function(callback)
	if !ok {
		return &InvalidArgumentError{
			Argument: "callback",
			Reason:   fmt.Sprintf("%T is not a function", callback),
		}
	}

	prefix := make([]any, 0, len(args)+1)
	if b.binding != nil && !carriesReceiver(callback) {
		prefix = append(prefix, b.binding)
	}
	prefix = append(prefix, args...)

	b.registrations[name] = append(b.registrations[name], &registration{
		callback: callback,
		fn:       fn,
		args:     prefix,
		once:     once,
	})

	b.logger.Debugf("registered %s callback for event %s (once: %t)", fn.Type(), name, once)
	b.observer.Registered(name)

	return nil
}

// Fire calls every callback of name in registration order and reports whether
// name is declared. The first callback error stops the pass and is returned
// as a *CallbackError.
//
// Callbacks registered with Once are dropped after the pass if they were
// called, and are never called twice, even by a nested Fire of the same
// event. Callbacks registered while the pass runs are not called by it.
func (b *Bus) Fire(name string, args ...any) (bool, error) {
	current, ok := b.registrations[name]
	if !ok {
		b.logger.Debugf("skipping fire of undeclared event %s", name)
		return false, nil
	}

	snapshot := make([]*registration, len(current))
	copy(snapshot, current)

	var (
		err    error
		called []*registration
	)

	for i, reg := range snapshot {
		if reg.once {
			if reg.spent {
				continue
			}
			reg.spent = true
		}

		called = append(called, reg)
		if cerr := reg.call(args); cerr != nil {
			err = &CallbackError{
				Event: name,
				Index: i,
				Cause: cerr,
			}
			break
		}
	}

	b.sweep(name, called)
	b.observer.Fired(name, len(called), err)

	if err != nil {
		b.logger.Warnf("event %s stopped after %d of %d callbacks: %s", name, len(called), len(snapshot), err.Error())
	}

	return true, err
}

// sweep drops the once registrations among called.
func (b *Bus) sweep(name string, called []*registration) {
	spent := make(map[*registration]struct{})
	for _, reg := range called {
		if reg.once {
			spent[reg] = struct{}{}
		}
	}

	current, ok := b.registrations[name]
	if len(spent) == 0 || !ok {
		return
	}

	kept := make([]*registration, 0, len(current))
	for _, reg := range current {
		if _, ok := spent[reg]; !ok {
			kept = append(kept, reg)
		}
	}

	b.registrations[name] = kept
}

// Remove clears name and removes its declaration.
func (b *Bus) Remove(name string) {
	b.Clear(name, true)
}

// Clear drops every callback of name. With remove set, name is undeclared too.
func (b *Bus) Clear(name string, remove bool) {
	if !b.IsEvent(name) {
		return
	}

	if !remove {
		b.registrations[name] = []*registration{}
		b.logger.Debugf("cleared event %s", name)
		return
	}

	delete(b.registrations, name)
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			break
		}
	}

	b.logger.Debugf("removed event %s", name)
}

// ClearAll applies Clear to every declared event.
func (b *Bus) ClearAll(remove bool) {
	for _, name := range b.Names() {
		b.Clear(name, remove)
	}
}

// RemoveCallback drops every registration of name made with callback,
// whatever arguments were bound to it.
func (b *Bus) RemoveCallback(name string, callback any) error {
	current, ok := b.registrations[name]
	if !ok {
		return &UnknownEventError{Name: name}
	}

	kept := make([]*registration, 0, len(current))
	for _, reg := range current {
		if !sameFunction(reg.callback, callback) {
			kept = append(kept, reg)
		}
	}

	b.registrations[name] = kept
	b.logger.Debugf("removed %d callbacks from event %s", len(current)-len(kept), name)

	return nil
}
