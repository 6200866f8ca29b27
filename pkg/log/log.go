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
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/textfix/pkg/text"
)

// 🎨 Fixed report text
const (
	scanningMessage = "🔍 Scanning for hardcoded Chinese text..."
	closingMessage  = "✨ All hardcoded Chinese text has been replaced with English!"
	dryRunMessage   = "🔎 Dry run, no files were written."
	summaryIndent   = 3
)

// 🎯 Reporter prints the fix report to the console and mirrors each event
// to zerolog at debug level
type Reporter struct {
	zlog    zerolog.Logger
	console io.Writer
	dryRun  bool
}

// 🏭 New creates a new reporter
func New(console io.Writer, zlog zerolog.Logger, dryRun bool) *Reporter {
	return &Reporter{
		zlog:    zlog,
		console: console,
		dryRun:  dryRun,
	}
}

// 📝 Header prints the scan banner
func (r *Reporter) Header(root string) {
	fmt.Fprintf(r.console, "%s\n\n", scanningMessage)
	r.zlog.Debug().Str("root", root).Bool("dry_run", r.dryRun).Msg("scan started")
}

// 📝 FileFixed prints a changed file followed by one line per change
func (r *Reporter) FileFixed(path string, changes []text.Change) {
	label := "✅ Fixed:"
	if r.dryRun {
		label = "📝 Would fix:"
	}
	fmt.Fprintf(r.console, "%s %s\n", color.New(color.FgGreen).Sprint(label), path)
	for _, c := range changes {
		fmt.Fprintln(r.console, c.String())
	}
	fmt.Fprintln(r.console)

	replacements := 0
	for _, c := range changes {
		replacements += c.Count
	}
	r.zlog.Debug().
		Str("file", path).
		Int("rules", len(changes)).
		Int("replacements", replacements).
		Msg("file fixed")
}

// 📝 FileFailed prints a file whose read or write failed. The error is
// printed in place of the change lines.
func (r *Reporter) FileFailed(path string, err error) {
	fmt.Fprintf(r.console, "%s %s\n", color.New(color.FgRed).Sprint("❌ Failed:"), path)
	fmt.Fprintf(r.console, "Error: %s\n\n", err)
	r.zlog.Debug().Err(err).Str("file", path).Msg("file failed")
}

// 📊 Summary prints the fixed-file count and the closing message
func (r *Reporter) Summary(fixed int) {
	label := "Total files fixed"
	closing := closingMessage
	if r.dryRun {
		label = "Total files to fix"
		closing = dryRunMessage
	}

	fmt.Fprintf(r.console, "\n%s\n", color.New(color.Bold).Sprint("📊 Summary:"))
	fmt.Fprintf(r.console, "%*s%s: %d\n", summaryIndent, "", label, fixed)
	fmt.Fprintf(r.console, "\n%s\n", color.New(color.FgCyan).Sprint(closing))
	r.zlog.Debug().Int("fixed", fixed).Msg("scan complete")
}
