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

	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/events"
	"github.com/urfave/cli/v2"
)

func Normalize() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "prints the member name generated for each event name",
		ArgsUsage: "NAME...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("at least one event name is required")
			}

			for _, name := range c.Args().Slice() {
				fmt.Fprintf(c.App.Writer, "%s\t%s\n", name, events.ValidateEventName(name))
			}

			return nil
		},
	}
}
