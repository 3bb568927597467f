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

package pkg

import (
	"os"

	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type option func(*options)

type options struct {
	invokables []interface{}
	modules    []interface{}
	registerer prometheus.Registerer
}

func newOptions(opts ...option) options {
	opt := options{
		registerer: prometheus.DefaultRegisterer,
	}

	for _, o := range opts {
		o(&opt)
	}

	return opt
}

func WithInvokables(val ...interface{}) option {
	return func(o *options) {
		o.invokables = val
	}
}

func WithModules(val ...interface{}) option {
	return func(o *options) {
		o.modules = val
	}
}

// WithRegisterer sets where bus metrics are registered.
func WithRegisterer(val prometheus.Registerer) option {
	return func(o *options) {
		if val != nil {
			o.registerer = val
		}
	}
}

type bootstrapper struct {
	path       string
	invokables []interface{}
	modules    []interface{}
	registerer prometheus.Registerer
}

func NewBootstrapper(path string, opts ...option) bootstrapper {
	options := newOptions(opts...)
	return bootstrapper{
		path:       path,
		invokables: options.invokables,
		modules:    options.modules,
		registerer: options.registerer,
	}
}

func newObserver(registerer prometheus.Registerer) func(*config.EventsConfig) (events.Observer, error) {
	return func(conf *config.EventsConfig) (events.Observer, error) {
		return events.NewMetrics(conf.Events.MetricsNamespace, registerer)
	}
}

func newBus(conf *config.EventsConfig, logger log.Logger, observer events.Observer) *events.Bus {
	return events.NewBus(
		events.WithEvents(conf.Events.Names...),
		events.WithAliases(conf.Events.Aliases),
		events.WithLogger(logger),
		events.WithObserver(observer),
	)
}

// Bootstrap builds an fx application providing the configuration, the logger,
// the event bus and its payload emitter to the configured modules.
func (b bootstrapper) Bootstrap() *fx.App {
	builder := config.BuildNewServerConfig(b.path)
	sconf, err := builder()
	if err != nil {
		return fx.New(fx.Error(err), fx.NopLogger)
	}

	var logger fx.Option = fx.NopLogger
	if sconf.Debug {
		logger = fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		})
	}

	return fx.New(
		fx.Supply(sconf),
		fx.Provide(config.BuildNewLoggerConfig(b.path)),
		fx.Provide(config.BuildNewEventsConfig(b.path)),
		fx.Provide(log.NewLogrusLogger),
		fx.Provide(newObserver(b.registerer)),
		fx.Provide(newBus),
		fx.Provide(events.NewEmitter),
		fx.Provide(b.modules...),
		fx.Invoke(b.invokables...),
		logger,
	)
}
