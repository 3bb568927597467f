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

package log

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ONLYOFFICE/onlyoffice-eventbus/pkg/config"
)

type LogLevel int

const (
	LEVEL_TRACE   LogLevel = 1
	LEVEL_DEBUG   LogLevel = 2
	LEVEL_INFO    LogLevel = 3
	LEVEL_WARNING LogLevel = 4
	LEVEL_ERROR   LogLevel = 5
	LEVEL_FATAL   LogLevel = 6
)

// Logger is a generic logger interface.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
}

// EmptyLogger is an empty Logger implementation.
type EmptyLogger struct{}

// NewEmptyLogger is an empty logger constructor.
func NewEmptyLogger() Logger {
	return EmptyLogger{}
}

func (l EmptyLogger) Debugf(format string, args ...interface{}) {}
func (l EmptyLogger) Infof(format string, args ...interface{})  {}
func (l EmptyLogger) Warnf(format string, args ...interface{})  {}
func (l EmptyLogger) Errorf(format string, args ...interface{}) {}
func (l EmptyLogger) Fatalf(format string, args ...interface{}) {}
func (l EmptyLogger) Debug(args ...interface{})                 {}
func (l EmptyLogger) Info(args ...interface{})                  {}
func (l EmptyLogger) Warn(args ...interface{})                  {}
func (l EmptyLogger) Error(args ...interface{})                 {}
func (l EmptyLogger) Fatal(args ...interface{})                 {}

// DefaultLogger is a golang log package Logger implementation.
// It is used before the logrus logger can be configured.
type DefaultLogger struct {
	loggers map[LogLevel]*log.Logger
	level   LogLevel
}

// NewDefaultLogger is a golang log package Logger constructor.
func NewDefaultLogger(config *config.LoggerConfig) Logger {
	return newDefaultLogger(os.Stdout, os.Stderr, config)
}

func newDefaultLogger(out, fatal io.Writer, config *config.LoggerConfig) DefaultLogger {
	prefix := func(level string) string {
		return fmt.Sprintf("[%s - Default %s]: ", level, config.Logger.Name)
	}

	return DefaultLogger{
		loggers: map[LogLevel]*log.Logger{
			LEVEL_DEBUG:   log.New(out, prefix("DEBUG"), log.Ldate|log.Ltime|log.Lshortfile),
			LEVEL_INFO:    log.New(out, prefix("INFO"), log.Ldate|log.Ltime|log.Lshortfile),
			LEVEL_WARNING: log.New(out, prefix("WARN"), log.Ldate|log.Ltime|log.Lshortfile),
			LEVEL_ERROR:   log.New(out, prefix("ERROR"), log.Ldate|log.Ltime|log.Lshortfile),
			LEVEL_FATAL:   log.New(fatal, prefix("FATAL"), log.Ldate|log.Ltime|log.Llongfile),
		},
		level: LogLevel(config.Logger.Level),
	}
}

func (l DefaultLogger) enabled(level LogLevel) bool {
	return l.level <= level
}

func (l DefaultLogger) printf(level LogLevel, format string, args ...interface{}) {
	if l.enabled(level) {
		l.loggers[level].Output(3, fmt.Sprintf(format, args...))
	}
}

func (l DefaultLogger) println(level LogLevel, args ...interface{}) {
	if l.enabled(level) {
		l.loggers[level].Output(3, fmt.Sprintln(args...))
	}
}

func (l DefaultLogger) Debugf(format string, args ...interface{}) {
	l.printf(LEVEL_DEBUG, format, args...)
}

func (l DefaultLogger) Infof(format string, args ...interface{}) {
	l.printf(LEVEL_INFO, format, args...)
}

func (l DefaultLogger) Warnf(format string, args ...interface{}) {
	l.printf(LEVEL_WARNING, format, args...)
}

func (l DefaultLogger) Errorf(format string, args ...interface{}) {
	l.printf(LEVEL_ERROR, format, args...)
}

func (l DefaultLogger) Fatalf(format string, args ...interface{}) {
	l.printf(LEVEL_FATAL, format, args...)
	os.Exit(1)
}

func (l DefaultLogger) Debug(args ...interface{}) {
	l.println(LEVEL_DEBUG, args...)
}

func (l DefaultLogger) Info(args ...interface{}) {
	l.println(LEVEL_INFO, args...)
}

func (l DefaultLogger) Warn(args ...interface{}) {
	l.println(LEVEL_WARNING, args...)
}

func (l DefaultLogger) Error(args ...interface{}) {
	l.println(LEVEL_ERROR, args...)
}

func (l DefaultLogger) Fatal(args ...interface{}) {
	l.println(LEVEL_FATAL, args...)
	os.Exit(1)
}
