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
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/events"
	"github.com/urfave/cli/v2"
)

func Fire() *cli.Command {
	return &cli.Command{
		Name:      "fire",
		Usage:     "fires a configured event with key=value payload entries and prints what listeners receive",
		ArgsUsage: "NAME [KEY=VALUE...]",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("an event name is required")
			}

			env, err := bootstrap(c.String("config_path"))
			if err != nil {
				return err
			}

			name := c.Args().First()
			if !env.bus.IsEvent(name) {
				return fmt.Errorf("event %q is not configured", name)
			}

			payload, err := parsePayload(c.Args().Tail())
			if err != nil {
				return err
			}

			env.emitter.On(name, events.ListenerFunc(func(e events.Event) error {
				var data map[string]any
				if err := events.Decode(e, &data); err != nil {
					return err
				}

				keys := make([]string, 0, len(data))
				for key := range data {
					keys = append(keys, key)
				}
				sort.Strings(keys)

				fmt.Fprintf(c.App.Writer, "%s\n", e.Name())
				for _, key := range keys {
					fmt.Fprintf(c.App.Writer, "  %s=%v\n", key, data[key])
				}

				return nil
			}))

			env.emitter.Fire(name, payload)

			return nil
		},
	}
}

func parsePayload(entries []string) (map[string]any, error) {
	payload := make(map[string]any, len(entries))
	for _, entry := range entries {
		key, val, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid payload entry %q, expected KEY=VALUE", entry)
		}

		payload[key] = val
	}

	return payload, nil
}
