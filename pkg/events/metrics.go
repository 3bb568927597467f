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
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer is notified of bus activity.
type Observer interface {
	Registered(name string)
	Fired(name string, invoked int, err error)
}

type noopObserver struct{}

func (noopObserver) Registered(name string)                    {}
func (noopObserver) Fired(name string, invoked int, err error) {}

// Metrics is a prometheus Observer.
type Metrics struct {
	registrations *prometheus.CounterVec
	fires         *prometheus.CounterVec
	invocations   *prometheus.CounterVec
	errors        *prometheus.CounterVec
}

func NewMetrics(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, []string{"event"})
	}

	m := &Metrics{
		registrations: counter("event_registrations_total", "Callbacks registered per event."),
		fires:         counter("event_fires_total", "Fires of declared events."),
		invocations:   counter("event_invocations_total", "Callbacks called per event."),
		errors:        counter("event_errors_total", "Fires stopped by a callback error."),
	}

	for _, c := range []**prometheus.CounterVec{&m.registrations, &m.fires, &m.invocations, &m.errors} {
		if err := registerer.Register(*c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}

			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}

			*c = existing
		}
	}

	return m, nil
}

func (m *Metrics) Registered(name string) {
	m.registrations.WithLabelValues(name).Inc()
}

func (m *Metrics) Fired(name string, invoked int, err error) {
	m.fires.WithLabelValues(name).Inc()
	m.invocations.WithLabelValues(name).Add(float64(invoked))
	if err != nil {
		m.errors.WithLabelValues(name).Inc()
	}
}
