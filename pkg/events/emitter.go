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
	"github.com/gookit/event"
)

type busEmitter struct {
	bus    *Bus
	logger log.Logger
}

// NewEmitter creates a payload Emitter on top of bus. Listener errors are
// logged and do not stop delivery; a listener aborting the event does.
func NewEmitter(bus *Bus, logger log.Logger) Emitter {
	return busEmitter{
		bus:    bus,
		logger: logger,
	}
}

func (b busEmitter) On(name string, listener Listener) {
	callback := func(e Event) {
		if e.IsAborted() {
			return
		}

		if err := listener.Handle(e); err != nil {
			b.logger.Errorf("event %s listener error: %s", e.Name(), err.Error())
		}
	}

	if err := b.bus.On(name, Method(listener, callback)); err != nil {
		b.logger.Errorf("could not register %s listener: %s", name, err.Error())
	}
}

func (b busEmitter) Fire(name string, payload map[string]any) {
	data := make(map[string]any, len(payload))
	for key, val := range payload {
		data[key] = val
	}

	e := event.NewBasic(name, data)
	if _, err := b.bus.Fire(name, e); err != nil {
		b.logger.Errorf("could not fire event %s: %s", name, err.Error())
	}
}
