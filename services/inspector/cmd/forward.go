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
	"fmt"

	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/events"
	"github.com/urfave/cli/v2"
)

func Forward() *cli.Command {
	return &cli.Command{
		Name:  "forward",
		Usage: "lists the delegates forwarded for the configured events",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringSliceFlag{
				Name:    "direction",
				Usage:   "forwarded direction (on, once, fire, remove, clear), defaults to the configured ones",
				Aliases: []string{"d"},
			},
		},
		Action: func(c *cli.Context) error {
			env, err := bootstrap(c.String("config_path"))
			if err != nil {
				return err
			}

			directions := c.StringSlice("direction")
			if len(directions) == 0 {
				directions = env.config.Events.Forward
			}

			delegates := events.NewDelegates()
			if err := env.bus.Forward(delegates, directions...); err != nil {
				return err
			}

			for _, name := range delegates.Names() {
				fmt.Fprintln(c.App.Writer, name)
			}

			return nil
		},
	}
}
