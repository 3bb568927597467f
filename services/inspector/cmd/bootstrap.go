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

package cmd

import (
	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg"
	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config_path",
		Usage:   "sets custom configuration path",
		Aliases: []string{"config", "conf", "c"},
	}
}

type environment struct {
	bus     *events.Bus
	emitter events.Emitter
	config  *config.EventsConfig
}

// bootstrap builds the configured bus without starting the fx application.
func bootstrap(path string) (environment, error) {
	var env environment
	app := pkg.NewBootstrapper(path,
		pkg.WithRegisterer(prometheus.NewRegistry()),
		pkg.WithInvokables(func(bus *events.Bus, emitter events.Emitter, conf *config.EventsConfig) {
			env = environment{
				bus:     bus,
				emitter: emitter,
				config:  conf,
			}
		}),
	).Bootstrap()

	return env, app.Err()
}
