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

package config

import (
	"strings"
)

// EventsConfig describes the events a bus declares on startup and the
// directions forwarded onto delegate tables.
type EventsConfig struct {
	Events struct {
		Names            []string `yaml:"names" env:"EVENTS_NAMES,overwrite"`
		Aliases          bool     `yaml:"aliases" env:"EVENTS_ALIASES,overwrite"`
		Forward          []string `yaml:"forward" env:"EVENTS_FORWARD,overwrite"`
		MetricsNamespace string   `yaml:"metrics_namespace" env:"EVENTS_METRICS_NAMESPACE,overwrite"`
	} `yaml:"events"`
}

func (ec *EventsConfig) Validate() error {
	seen := make(map[string]struct{}, len(ec.Events.Names))
	for i, name := range ec.Events.Names {
		name = strings.TrimSpace(name)
		if name == "" {
			return &InvalidConfigurationParameterError{
				Parameter: "Events names",
				Reason:    "Should not contain empty names",
			}
		}

		if _, ok := seen[name]; ok {
			return &InvalidConfigurationParameterError{
				Parameter: "Events names",
				Reason:    "Should not contain duplicates (" + name + ")",
			}
		}

		seen[name] = struct{}{}
		ec.Events.Names[i] = name
	}

	for _, direction := range ec.Events.Forward {
		switch strings.TrimSpace(direction) {
		case "on", "once", "fire", "remove", "clear":
		default:
			return &InvalidConfigurationParameterError{
				Parameter: "Events forward",
				Reason:    "Unsupported direction " + direction,
			}
		}
	}

	ec.Events.MetricsNamespace = strings.TrimSpace(ec.Events.MetricsNamespace)

	return nil
}

func BuildNewEventsConfig(path string) func() (*EventsConfig, error) {
	return func() (*EventsConfig, error) {
		var config EventsConfig
		config.Events.Forward = []string{"on", "fire"}
		config.Events.MetricsNamespace = "eventbus"
		if err := load(path, &config); err != nil {
			return nil, err
		}

		return &config, nil
	}
}
