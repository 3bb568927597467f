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
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ReceiverCarrier is implemented by callbacks that already carry their own
// receiver. The bus binding is never prepended to such callbacks.
type ReceiverCarrier interface {
	CarriesReceiver() bool
}

type method struct {
	recv any
	fn   any
}

func (m method) CarriesReceiver() bool {
	return true
}

// Method marks fn (usually a method value such as s.Handle) as bound to recv.
// RemoveCallback matches such a callback only with the same function and the
// same receiver, so c1.Handle and c2.Handle stay distinct.
func Method(recv any, fn any) ReceiverCarrier {
	if m, ok := fn.(method); ok {
		fn = m.fn
	}

	return method{recv: recv, fn: fn}
}

func carriesReceiver(callback any) bool {
	rc, ok := callback.(ReceiverCarrier)
	return ok && rc.CarriesReceiver()
}

func unwrap(callback any) any {
	if m, ok := callback.(method); ok {
		return m.fn
	}

	return callback
}

func receiver(callback any) any {
	if m, ok := callback.(method); ok {
		return m.recv
	}

	return nil
}

// function resolves callback to a callable value.
func function(callback any) (reflect.Value, bool) {
	fn := reflect.ValueOf(unwrap(callback))
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return reflect.Value{}, false
	}

	return fn, true
}

// sameFunction reports whether both callbacks resolve to the same function code
// bound to the same receiver. Plain functions have no receiver. Closures created
// from one function literal share their code; wrap them with Method to tell
// them apart.
func sameFunction(a, b any) bool {
	fa, ok := function(a)
	if !ok {
		return false
	}

	fb, ok := function(b)
	if !ok {
		return false
	}

	return fa.Pointer() == fb.Pointer() && sameReceiver(receiver(a), receiver(b))
}

func sameReceiver(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}

	if !va.Type().Comparable() {
		return false
	}

	// structs holding interfaces may still hold uncomparable values
	defer func() {
		if recover() != nil {
			same = false
		}
	}()

	return a == b
}

type registration struct {
	callback any
	fn       reflect.Value
	args     []any
	once     bool
	spent    bool
}

func (r *registration) call(args []any) error {
	merged := make([]any, 0, len(r.args)+len(args))
	merged = append(merged, r.args...)
	merged = append(merged, args...)

	in, err := arguments(r.fn.Type(), merged)
	if err != nil {
		return err
	}

	out := r.fn.Call(in)
	if n := len(out); n > 0 && r.fn.Type().Out(n-1) == errorType && !out[n-1].IsNil() {
		return out[n-1].Interface().(error)
	}

	return nil
}

func arguments(t reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, &InvalidArgumentError{
				Argument: "args",
				Reason:   fmt.Sprintf("callback %s expects at least %d arguments, got %d", t, fixed, len(args)),
			}
		}
	} else if len(args) != fixed {
		return nil, &InvalidArgumentError{
			Argument: "args",
			Reason:   fmt.Sprintf("callback %s expects %d arguments, got %d", t, fixed, len(args)),
		}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var param reflect.Type
		if i < fixed {
			param = t.In(i)
		} else {
			param = t.In(fixed).Elem()
		}

		val, ok := argument(param, arg)
		if !ok {
			return nil, &InvalidArgumentError{
				Argument: fmt.Sprintf("args[%d]", i),
				Reason:   fmt.Sprintf("%T is not assignable to %s", arg, param),
			}
		}

		in[i] = val
	}

	return in, nil
}

func argument(param reflect.Type, arg any) (reflect.Value, bool) {
	if arg == nil {
		switch param.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(param), true
		default:
			return reflect.Value{}, false
		}
	}

	val := reflect.ValueOf(arg)
	if !val.Type().AssignableTo(param) {
		return reflect.Value{}, false
	}

	return val, true
}
