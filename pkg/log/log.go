// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/repath/pkg/status"
)

// 🎯 Logger writes user facing lines to a console and mirrors them to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
	verbose   bool
}

// 🏭 New creates a new logger. Unchanged files are only printed when verbose is set.
func New(console io.Writer, zlog zerolog.Logger, verbose bool) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
		verbose:   verbose,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogFileOperation prints the outcome of a single file
func (l *Logger) LogFileOperation(ctx context.Context, info status.FileInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if info.Status != status.StatusUnchanged || l.verbose {
		fmt.Fprintln(l.console, l.formatter.FormatFileOperation(info))
	}

	evt := l.zlog.Debug()
	switch info.Status {
	case status.StatusFailed:
		evt = l.zlog.Error().Err(info.Error)
	case status.StatusUpdated, status.StatusWouldUpdate:
		evt = l.zlog.Info()
	}
	evt.Str("file", info.Path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg("file operation")
}

// 📝 LogDiff prints a diff preview below a file line
func (l *Logger) LogDiff(diff string) {
	if diff == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case len(line) > 0 && line[0] == '-':
			fmt.Fprintf(l.console, "      %s\n", color.RedString("%s", line))
		case len(line) > 0 && line[0] == '+':
			fmt.Fprintf(l.console, "      %s\n", color.GreenString("%s", line))
		default:
			fmt.Fprintf(l.console, "      %s\n", line)
		}
	}
}

// 📝 Summary prints the final "Updated X/Y files" line
func (l *Logger) Summary(updated, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := l.formatter.FormatSummary(updated, total)
	fmt.Fprintf(l.console, "\n✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Int("updated", updated).Int("total", total).Msg(msg)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔄", Style: pterm.NewStyle(pterm.FgCyan)}).
		WithWriter(l.console).
		Println(msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error through the file formatter
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, color.New(color.FgRed).Sprint(l.formatter.FormatError(err)))
	l.zlog.Error().Err(err).Msg("command failed")
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
