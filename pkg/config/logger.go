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

import "strings"

type LoggerConfig struct {
	Logger struct {
		Name  string        `yaml:"name" env:"LOGGER_NAME,overwrite"`
		Level int           `yaml:"level" env:"LOGGER_LEVEL,overwrite"`
		Color bool          `yaml:"color" env:"LOGGER_COLOR,overwrite"`
		File  FileLogConfig `yaml:"file"`
	} `yaml:"logger"`
}

type FileLogConfig struct {
	Filename   string `yaml:"filename" env:"FILELOG_NAME,overwrite"`
	MaxSize    int    `yaml:"maxsize" env:"FILELOG_MAX_SIZE,overwrite"`
	MaxAge     int    `yaml:"maxage" env:"FILELOG_MAX_AGE,overwrite"`
	MaxBackups int    `yaml:"maxbackups" env:"FILELOG_MAX_BACKUPS,overwrite"`
	LocalTime  bool   `yaml:"localtime"`
	Compress   bool   `yaml:"compress" env:"FILELOG_COMPRESS,overwrite"`
}

func (lc *LoggerConfig) Validate() error {
	lc.Logger.Name = strings.TrimSpace(lc.Logger.Name)
	if lc.Logger.Level < 1 || lc.Logger.Level > 6 {
		return &InvalidConfigurationParameterError{
			Parameter: "Logger level",
			Reason:    "Should be between 1 (trace) and 6 (fatal)",
		}
	}

	return nil
}

func BuildNewLoggerConfig(path string) func() (*LoggerConfig, error) {
	return func() (*LoggerConfig, error) {
		var config LoggerConfig
		config.Logger.Name = "eventbus"
		config.Logger.Level = 4
		if err := load(path, &config); err != nil {
			return nil, err
		}

		return &config, nil
	}
}
