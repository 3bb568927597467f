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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	value int
}

func (c *counter) increment() {
	c.value++
}

func incrementOther(c *counter) {
	c.value++
}

func TestBusAdd(t *testing.T) {
	bus := events.NewBus()

	t.Run("declare a single event", func(t *testing.T) {
		require.NoError(t, bus.Add("foo"))
		assert.True(t, bus.IsEvent("foo"))
		assert.Equal(t, []string{"foo"}, bus.Names())
	})

	t.Run("declare events in order", func(t *testing.T) {
		require.NoError(t, bus.Add("foo", "bar", "baz"))
		assert.Equal(t, []string{"foo", "bar", "baz"}, bus.Names())
	})

	t.Run("keep callbacks when declared again", func(t *testing.T) {
		require.NoError(t, bus.On("foo", func() {}))
		require.NoError(t, bus.Add("foo"))
		assert.Equal(t, 1, bus.Len("foo"))
		assert.Len(t, bus.Names(), 3)
	})

	t.Run("reject an empty name", func(t *testing.T) {
		err := bus.Add("qux", "", "quux")
		assert.ErrorIs(t, err, events.ErrInvalidArgument)
		assert.True(t, bus.IsEvent("qux"))
		assert.True(t, bus.IsEvent("quux"))
	})

	t.Run("unknown event", func(t *testing.T) {
		assert.False(t, bus.IsEvent("missing"))
		assert.Zero(t, bus.Len("missing"))
	})
}

func TestBusConstruction(t *testing.T) {
	c := &counter{}
	bus := events.NewBus(events.WithEvents("foo", "bar"), events.WithBinding(c), events.WithAliases(true))

	assert.Equal(t, []string{"foo", "bar"}, bus.Names())
	assert.Equal(t, c, bus.Binding())
	assert.True(t, bus.Aliases())

	require.NoError(t, bus.On("foo", incrementOther))
	fired, err := bus.Fire("foo")
	require.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, 1, c.value)
}

func TestBusFire(t *testing.T) {
	t.Run("call callbacks in registration order", func(t *testing.T) {
		bus := events.NewBus()
		var calls []int
		for i := 0; i < 3; i++ {
			i := i
			require.NoError(t, bus.On("foo", func() { calls = append(calls, i) }))
		}

		fired, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.True(t, fired)
		assert.Equal(t, []int{0, 1, 2}, calls)
	})

	t.Run("declare on registration", func(t *testing.T) {
		bus := events.NewBus()
		require.NoError(t, bus.On("foo", func() {}))
		assert.True(t, bus.IsEvent("foo"))
	})

	t.Run("report undeclared events", func(t *testing.T) {
		bus := events.NewBus()
		fired, err := bus.Fire("foo")
		assert.NoError(t, err)
		assert.False(t, fired)
	})

	t.Run("reject callbacks that are not functions", func(t *testing.T) {
		bus := events.NewBus()
		err := bus.On("foo", 42)
		assert.ErrorIs(t, err, events.ErrInvalidArgument)
		assert.True(t, bus.IsEvent("foo"))
		assert.Zero(t, bus.Len("foo"))

		var nilFunc func()
		assert.Error(t, bus.On("foo", nilFunc))
		assert.Error(t, bus.On("foo", nil))
	})

	t.Run("reject an empty name", func(t *testing.T) {
		bus := events.NewBus()
		assert.ErrorIs(t, bus.On("", func() {}), events.ErrInvalidArgument)
		assert.Empty(t, bus.Names())
	})
}

func TestBusBinding(t *testing.T) {
	c := &counter{}
	bus := events.NewBus(events.WithBinding(c))

	require.NoError(t, bus.Add("foo"))
	require.NoError(t, bus.On("foo", events.Method(c, c.increment)))
	require.NoError(t, bus.On("foo", incrementOther))
	require.NoError(t, bus.On("foo", func(self *counter, step int) {
		self.value += step
	}, 10))

	_, err := bus.Fire("foo")
	require.NoError(t, err)
	assert.Equal(t, 12, c.value)
}

func TestBusArguments(t *testing.T) {
	t.Run("arguments from on", func(t *testing.T) {
		bus := events.NewBus()
		var got int
		require.NoError(t, bus.On("foo", func(a int) { got = a }, 42))
		_, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("arguments from fire", func(t *testing.T) {
		bus := events.NewBus()
		var got int
		require.NoError(t, bus.On("foo", func(a int) { got = a }))
		_, err := bus.Fire("foo", 42)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("arguments from both sources", func(t *testing.T) {
		bus := events.NewBus()
		var (
			a int
			b float64
		)
		require.NoError(t, bus.On("foo", func(x int, y float64) { a, b = x, y }, 42))
		_, err := bus.Fire("foo", 3.14)
		require.NoError(t, err)
		assert.Equal(t, 42, a)
		assert.Equal(t, 3.14, b)
	})

	t.Run("binding comes first", func(t *testing.T) {
		c := &counter{}
		bus := events.NewBus(events.WithBinding(c))
		var got []any
		require.NoError(t, bus.On("foo", func(args ...any) { got = args }, "bound"))
		_, err := bus.Fire("foo", "fired")
		require.NoError(t, err)
		assert.Equal(t, []any{c, "bound", "fired"}, got)
	})

	t.Run("nil arguments", func(t *testing.T) {
		bus := events.NewBus()
		called := false
		require.NoError(t, bus.On("foo", func(err error, m map[string]any) {
			called = err == nil && m == nil
		}))
		_, err := bus.Fire("foo", nil, nil)
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("argument count mismatch", func(t *testing.T) {
		bus := events.NewBus()
		require.NoError(t, bus.On("foo", func(a, b int) {}))
		_, err := bus.Fire("foo", 1)
		assert.ErrorIs(t, err, events.ErrInvalidArgument)

		var cerr *events.CallbackError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "foo", cerr.Event)
	})

	t.Run("argument type mismatch", func(t *testing.T) {
		bus := events.NewBus()
		require.NoError(t, bus.On("foo", func(a int) {}))
		_, err := bus.Fire("foo", "42")
		assert.ErrorIs(t, err, events.ErrInvalidArgument)
	})

	t.Run("fresh arguments per registration", func(t *testing.T) {
		bus := events.NewBus()
		var got [][]any
		record := func(args ...any) { got = append(got, args) }
		require.NoError(t, bus.On("foo", record, 1))
		require.NoError(t, bus.On("foo", record))
		_, err := bus.Fire("foo", 2)
		require.NoError(t, err)
		assert.Equal(t, [][]any{{1, 2}, {2}}, got)
	})
}

func TestBusOnce(t *testing.T) {
	t.Run("call once across fires", func(t *testing.T) {
		c := &counter{}
		bus := events.NewBus(events.WithBinding(c))
		require.NoError(t, bus.Add("foo"))
		require.NoError(t, bus.Once("foo", events.Method(c, c.increment)))

		for i := 0; i < 5; i++ {
			_, err := bus.Fire("foo")
			require.NoError(t, err)
		}

		assert.Equal(t, 1, c.value)
		assert.Zero(t, bus.Len("foo"))
	})

	t.Run("keep other callbacks", func(t *testing.T) {
		bus := events.NewBus()
		var calls []string
		require.NoError(t, bus.On("foo", func() { calls = append(calls, "a") }))
		require.NoError(t, bus.Once("foo", func() { calls = append(calls, "b") }))
		require.NoError(t, bus.Once("foo", func() { calls = append(calls, "c") }))
		require.NoError(t, bus.On("foo", func() { calls = append(calls, "d") }))

		_, err := bus.Fire("foo")
		require.NoError(t, err)
		_, err = bus.Fire("foo")
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "c", "d", "a", "d"}, calls)
		assert.Equal(t, 2, bus.Len("foo"))
	})

	t.Run("once registered while firing", func(t *testing.T) {
		bus := events.NewBus()
		inner := 0
		require.NoError(t, bus.Once("foo", func() {
			require.NoError(t, bus.Once("foo", func() { inner++ }))
		}))

		_, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.Zero(t, inner)
		assert.Equal(t, 1, bus.Len("foo"))

		_, err = bus.Fire("foo")
		require.NoError(t, err)
		assert.Equal(t, 1, inner)
		assert.Zero(t, bus.Len("foo"))
	})

	t.Run("once across nested fires", func(t *testing.T) {
		bus := events.NewBus()
		nested := false
		calls := 0
		require.NoError(t, bus.On("foo", func() error {
			if nested {
				return nil
			}
			nested = true
			_, err := bus.Fire("foo")
			return err
		}))
		require.NoError(t, bus.Once("foo", func() { calls++ }))

		_, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, bus.Len("foo"))

		_, err = bus.Fire("foo")
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("clear while firing", func(t *testing.T) {
		bus := events.NewBus()
		calls := 0
		require.NoError(t, bus.Once("foo", func() { bus.Remove("foo") }))
		require.NoError(t, bus.Once("foo", func() { calls++ }))

		_, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.False(t, bus.IsEvent("foo"))
	})
}

func TestBusCallbackErrors(t *testing.T) {
	bus := events.NewBus()
	cause := errors.New("boom")
	var calls []string

	require.NoError(t, bus.On("foo", func() error {
		calls = append(calls, "first")
		return nil
	}))
	require.NoError(t, bus.Once("foo", func() error {
		calls = append(calls, "second")
		return cause
	}))
	require.NoError(t, bus.On("foo", func() {
		calls = append(calls, "third")
	}))

	fired, err := bus.Fire("foo")
	assert.True(t, fired)
	assert.ErrorIs(t, err, cause)

	var cerr *events.CallbackError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 1, cerr.Index)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 2, bus.Len("foo"))

	_, err = bus.Fire("foo")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "first", "third"}, calls)
}

func TestBusRemoveCallback(t *testing.T) {
	t.Run("remove callbacks", func(t *testing.T) {
		c := &counter{}
		bus := events.NewBus(events.WithBinding(c))
		cb1 := func(self *counter) { self.value++ }
		cb2 := func(self *counter) { self.value++ }

		require.NoError(t, bus.Add("foo"))
		require.NoError(t, bus.On("foo", cb1))
		require.NoError(t, bus.On("foo", cb2))

		_, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.Equal(t, 2, c.value)

		require.NoError(t, bus.RemoveCallback("foo", cb1))
		require.NoError(t, bus.RemoveCallback("foo", cb2))

		_, err = bus.Fire("foo")
		require.NoError(t, err)
		assert.Equal(t, 2, c.value)
	})

	t.Run("remove every registration with bound arguments", func(t *testing.T) {
		bus := events.NewBus()
		calls := 0
		cb := func(n int) { calls += n }
		other := func() { calls += 100 }

		require.NoError(t, bus.On("foo", cb, 1))
		require.NoError(t, bus.On("foo", other))
		require.NoError(t, bus.Once("foo", cb, 2))
		require.NoError(t, bus.RemoveCallback("foo", cb))

		assert.Equal(t, 1, bus.Len("foo"))
		_, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.Equal(t, 100, calls)
	})

	t.Run("remove methods", func(t *testing.T) {
		c := &counter{}
		bus := events.NewBus()
		require.NoError(t, bus.On("foo", events.Method(c, c.increment)))
		require.NoError(t, bus.RemoveCallback("foo", events.Method(c, c.increment)))
		assert.Zero(t, bus.Len("foo"))
	})

	t.Run("remove methods of one receiver", func(t *testing.T) {
		c1, c2 := &counter{}, &counter{}
		bus := events.NewBus()
		require.NoError(t, bus.On("foo", events.Method(c1, c1.increment)))
		require.NoError(t, bus.On("foo", events.Method(c2, c2.increment)))

		require.NoError(t, bus.RemoveCallback("foo", c1.increment))
		assert.Equal(t, 2, bus.Len("foo"))

		require.NoError(t, bus.RemoveCallback("foo", events.Method(c1, c1.increment)))
		assert.Equal(t, 1, bus.Len("foo"))

		_, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.Zero(t, c1.value)
		assert.Equal(t, 1, c2.value)
	})

	t.Run("remove closures by receiver", func(t *testing.T) {
		bus := events.NewBus()
		calls := map[string]int{}
		handler := func(key string) func() {
			return func() { calls[key]++ }
		}

		a, b := handler("a"), handler("b")
		require.NoError(t, bus.On("foo", events.Method("a", a)))
		require.NoError(t, bus.On("foo", events.Method("b", b)))
		require.NoError(t, bus.RemoveCallback("foo", events.Method("a", a)))

		_, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"b": 1}, calls)
	})

	t.Run("unknown event", func(t *testing.T) {
		bus := events.NewBus()
		err := bus.RemoveCallback("foo", func() {})
		assert.ErrorIs(t, err, events.ErrUnknownEvent)

		var uerr *events.UnknownEventError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "foo", uerr.Name)
	})
}

func TestBusClear(t *testing.T) {
	t.Run("clear callbacks", func(t *testing.T) {
		c := &counter{}
		bus := events.NewBus(events.WithBinding(c))
		require.NoError(t, bus.Add("foo"))
		require.NoError(t, bus.On("foo", events.Method(c, c.increment)))
		require.NoError(t, bus.On("foo", events.Method(c, c.increment)))

		bus.Clear("foo", false)
		_, err := bus.Fire("foo")
		require.NoError(t, err)
		assert.Zero(t, c.value)
		assert.True(t, bus.IsEvent("foo"))
	})

	t.Run("clear and remove", func(t *testing.T) {
		bus := events.NewBus(events.WithEvents("foo", "bar", "baz"))
		bus.Clear("bar", true)
		assert.False(t, bus.IsEvent("bar"))
		assert.Equal(t, []string{"foo", "baz"}, bus.Names())
	})

	t.Run("remove", func(t *testing.T) {
		bus := events.NewBus(events.WithEvents("foo"))
		require.NoError(t, bus.On("foo", func() {}))
		bus.Remove("foo")
		assert.False(t, bus.IsEvent("foo"))

		fired, err := bus.Fire("foo")
		assert.NoError(t, err)
		assert.False(t, fired)
	})

	t.Run("ignore undeclared events", func(t *testing.T) {
		bus := events.NewBus(events.WithEvents("foo"))
		bus.Clear("bar", true)
		bus.Remove("bar")
		assert.Equal(t, []string{"foo"}, bus.Names())
	})

	t.Run("clear all", func(t *testing.T) {
		bus := events.NewBus(events.WithEvents("foo", "bar"))
		require.NoError(t, bus.On("foo", func() {}))
		require.NoError(t, bus.On("bar", func() {}))

		bus.ClearAll(false)
		assert.Equal(t, []string{"foo", "bar"}, bus.Names())
		assert.Zero(t, bus.Len("foo"))
		assert.Zero(t, bus.Len("bar"))

		bus.ClearAll(true)
		assert.Empty(t, bus.Names())
	})
}
