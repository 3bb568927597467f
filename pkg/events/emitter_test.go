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

package events_test

import (
	"errors"
	"testing"

	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	log.EmptyLogger
	errors []string
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, format)
}

type fileCreated struct {
	ID   string `mapstructure:"id"`
	Size int    `mapstructure:"size"`
}

func TestEmitter(t *testing.T) {
	t.Run("deliver payload", func(t *testing.T) {
		bus := events.NewBus()
		emitter := events.NewEmitter(bus, log.NewEmptyLogger())

		var got fileCreated
		var name string
		emitter.On("file:created", events.ListenerFunc(func(e events.Event) error {
			name = e.Name()
			return events.Decode(e, &got)
		}))

		emitter.Fire("file:created", map[string]any{"id": "mock", "size": "42"})
		assert.Equal(t, "file:created", name)
		assert.Equal(t, fileCreated{ID: "mock", Size: 42}, got)
	})

	t.Run("ignore the bus binding", func(t *testing.T) {
		bus := events.NewBus(events.WithBinding(&counter{}))
		emitter := events.NewEmitter(bus, log.NewEmptyLogger())

		called := false
		emitter.On("foo", events.ListenerFunc(func(e events.Event) error {
			called = true
			return nil
		}))

		emitter.Fire("foo", nil)
		assert.True(t, called)
	})

	t.Run("listeners share the event", func(t *testing.T) {
		bus := events.NewBus()
		emitter := events.NewEmitter(bus, log.NewEmptyLogger())

		emitter.On("foo", events.ListenerFunc(func(e events.Event) error {
			e.Add("seen", true)
			return nil
		}))

		var seen any
		emitter.On("foo", events.ListenerFunc(func(e events.Event) error {
			seen = e.Get("seen")
			return nil
		}))

		emitter.Fire("foo", map[string]any{})
		assert.Equal(t, true, seen)
	})

	t.Run("stop on abort", func(t *testing.T) {
		bus := events.NewBus()
		emitter := events.NewEmitter(bus, log.NewEmptyLogger())

		var calls []string
		emitter.On("foo", events.ListenerFunc(func(e events.Event) error {
			calls = append(calls, "first")
			e.Abort(true)
			return nil
		}))
		emitter.On("foo", events.ListenerFunc(func(e events.Event) error {
			calls = append(calls, "second")
			return nil
		}))

		emitter.Fire("foo", nil)
		assert.Equal(t, []string{"first"}, calls)
	})

	t.Run("log listener errors and keep delivering", func(t *testing.T) {
		bus := events.NewBus()
		logger := &recordingLogger{}
		emitter := events.NewEmitter(bus, logger)

		calls := 0
		emitter.On("foo", events.ListenerFunc(func(e events.Event) error {
			calls++
			return errors.New("boom")
		}))
		emitter.On("foo", events.ListenerFunc(func(e events.Event) error {
			calls++
			return nil
		}))

		emitter.Fire("foo", nil)
		assert.Equal(t, 2, calls)
		assert.Len(t, logger.errors, 1)
	})

	t.Run("fire without listeners", func(t *testing.T) {
		bus := events.NewBus()
		emitter := events.NewEmitter(bus, log.NewEmptyLogger())
		assert.NotPanics(t, func() {
			emitter.Fire("foo", map[string]any{"id": 1})
		})
		assert.False(t, bus.IsEvent("foo"))
	})
}

type plainEvent struct{}

func (plainEvent) Name() string          { return "plain" }
func (plainEvent) Get(key string) any    { return nil }
func (plainEvent) Add(key string, v any) {}
func (plainEvent) Abort(bool)            {}
func (plainEvent) IsAborted() bool       { return false }

func TestDecode(t *testing.T) {
	t.Run("event without payload", func(t *testing.T) {
		var out fileCreated
		assert.ErrorIs(t, events.Decode(plainEvent{}, &out), events.ErrInvalidArgument)
	})

	t.Run("invalid target", func(t *testing.T) {
		bus := events.NewBus()
		emitter := events.NewEmitter(bus, log.NewEmptyLogger())

		var err error
		emitter.On("foo", events.ListenerFunc(func(e events.Event) error {
			err = events.Decode(e, fileCreated{})
			return nil
		}))

		emitter.Fire("foo", map[string]any{"id": "mock"})
		require.Error(t, err)
	})
}
