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
	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/log"
)

type Option func(*Options)

type Options struct {
	Events   []string
	Binding  any
	Aliases  bool
	Logger   log.Logger
	Observer Observer
}

func NewOptions(opts ...Option) Options {
	opt := Options{
		Logger:   log.NewEmptyLogger(),
		Observer: noopObserver{},
	}

	for _, o := range opts {
		o(&opt)
	}

	return opt
}

// WithEvents declares names when the bus is created.
func WithEvents(names ...string) Option {
	return func(o *Options) {
		o.Events = append(o.Events, names...)
	}
}

// WithBinding sets the receiver prepended to callbacks that do not carry one.
func WithBinding(val any) Option {
	return func(o *Options) {
		o.Binding = val
	}
}

func WithAliases(val bool) Option {
	return func(o *Options) {
		o.Aliases = val
	}
}

func WithLogger(val log.Logger) Option {
	return func(o *Options) {
		if val != nil {
			o.Logger = val
		}
	}
}

func WithObserver(val Observer) Option {
	return func(o *Options) {
		if val != nil {
			o.Observer = val
		}
	}
}
