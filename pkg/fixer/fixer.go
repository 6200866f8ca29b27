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

// Package fixer rewrites hardcoded UI strings across a source tree using an
// ordered replacement table.
package fixer

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/textfix/pkg/config"
	"github.com/walteh/textfix/pkg/log"
	"github.com/walteh/textfix/pkg/table"
	"github.com/walteh/textfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the fixer
type Options struct {
	// Table is the replacement table, applied in order
	Table *table.Table
	// Filter selects eligible files
	Filter Filter
	// DryRun reports changes without writing them
	DryRun bool
	// Reporter prints the console report; output is discarded when nil
	Reporter *log.Reporter
	// Replacer applies the rules; defaults to a SimpleTextReplacer
	Replacer text.TextReplacer
}

// 📄 FileResult is the outcome of processing one file
type FileResult struct {
	Path    string
	Changed bool
	Changes []text.Change
	// Err is set when the file could not be read, decoded or written. The
	// file then counts as unchanged.
	Err error
}

// 📊 Summary accumulates the outcome of a run
type Summary struct {
	Root    string
	Scanned int
	Fixed   []string
	Failed  []string
}

// 🎮 Fixer applies a replacement table to files
type Fixer struct {
	rules    []text.ReplacementRule
	filter   Filter
	dryRun   bool
	reporter *log.Reporter
	replacer text.TextReplacer
}

// 🏭 New creates a fixer with the given options
func New(opts Options) (*Fixer, error) {
	if opts.Table == nil {
		return nil, errors.Errorf("table is required")
	}
	if err := opts.Table.Validate(); err != nil {
		return nil, errors.Errorf("invalid table: %w", err)
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = log.New(io.Discard, zerolog.Nop(), opts.DryRun)
	}
	replacer := opts.Replacer
	if replacer == nil {
		replacer = text.NewSimpleTextReplacer()
	}

	return &Fixer{
		rules:    opts.Table.Rules(),
		filter:   opts.Filter,
		dryRun:   opts.DryRun,
		reporter: reporter,
		replacer: replacer,
	}, nil
}

// 🏭 NewFromConfig builds the table from cfg and creates a fixer for it
func NewFromConfig(cfg *config.Config, reporter *log.Reporter) (*Fixer, error) {
	tbl, err := cfg.BuildTable()
	if err != nil {
		return nil, errors.Errorf("building table: %w", err)
	}

	return New(Options{
		Table: tbl,
		Filter: Filter{
			SkipDirs:   cfg.SkipDirs,
			SkipFiles:  cfg.SkipFiles,
			Extensions: cfg.Extensions,
			Ignore:     cfg.Ignore,
		},
		DryRun:   cfg.DryRun,
		Reporter: reporter,
	})
}

// 📄 ProcessFile applies the table to one file and rewrites it if anything
// changed. Failures are returned in the result, never as a panic or error.
func (f *Fixer) ProcessFile(ctx context.Context, path string) FileResult {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	result := FileResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		result.Err = errors.Errorf("reading file: %w", err)
		return result
	}

	if err := validateUTF8(content); err != nil {
		result.Err = errors.Errorf("decoding file: %w", err)
		return result
	}

	replaced, err := f.replacer.ReplaceText(ctx, bytes.NewReader(content), f.rules)
	if err != nil {
		result.Err = errors.Errorf("replacing text: %w", err)
		return result
	}

	if !replaced.WasModified {
		logger.Trace().Msg("no changes")
		return result
	}

	if f.dryRun {
		logger.Debug().Int("replacements", replaced.ReplacementCount).Msg("dry run, not writing")
	} else if err := writeFileInPlace(path, replaced.ModifiedContent); err != nil {
		result.Err = errors.Errorf("writing file: %w", err)
		return result
	}

	result.Changed = true
	result.Changes = replaced.Changes
	return result
}

// 🏃 Run walks root in lexical order and processes every eligible file.
// Per-file failures are reported and counted in Summary.Failed; only a
// cancelled context stops the walk early.
func (f *Fixer) Run(ctx context.Context, root string) (*Summary, error) {
	logger := zerolog.Ctx(ctx)
	summary := &Summary{Root: root}

	f.reporter.Header(root)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == root {
				logger.Warn().Err(err).Str("root", root).Msg("cannot read root")
			} else {
				logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
			}
			return nil
		}

		if d.IsDir() {
			if f.filter.SkipDir(root, path) {
				logger.Debug().Str("dir", path).Msg("skipping directory")
				return filepath.SkipDir
			}
			return nil
		}

		if !f.filter.Eligible(root, path) {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return nil
			}
		}

		summary.Scanned++
		res := f.ProcessFile(ctx, path)
		switch {
		case res.Err != nil:
			f.reporter.FileFailed(path, res.Err)
			summary.Failed = append(summary.Failed, path)
		case res.Changed:
			f.reporter.FileFixed(path, res.Changes)
			summary.Fixed = append(summary.Fixed, path)
		}
		return nil
	})
	if err != nil {
		return summary, errors.Errorf("walking %s: %w", root, err)
	}

	f.reporter.Summary(len(summary.Fixed))

	logger.Debug().
		Int("scanned", summary.Scanned).
		Int("fixed", len(summary.Fixed)).
		Int("failed", len(summary.Failed)).
		Msg("run complete")

	return summary, nil
}
