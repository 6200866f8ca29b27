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

package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/textfix/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Defaults for an unconfigured run
const DefaultRoot = "src"

var (
	DefaultSkipDirs   = []string{"node_modules", "i18n"}
	DefaultSkipFiles  = []string{"LanguageSelector.jsx"}
	DefaultExtensions = []string{".jsx", ".js", ".tsx", ".ts"}
)

// 🔄 Replacement is an inline table entry
type Replacement struct {
	From string `json:"from" yaml:"from" hcl:"from"`
	To   string `json:"to" yaml:"to" hcl:"to"`
}

// 📚 Config represents the complete configuration
type Config struct {
	// Root is the directory to scan
	Root string `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	// SkipDirs are directory path substrings never descended into
	SkipDirs []string `json:"skip_dirs,omitempty" yaml:"skip_dirs,omitempty" hcl:"skip_dirs,optional"`
	// SkipFiles are file names never touched, wherever they are
	SkipFiles []string `json:"skip_files,omitempty" yaml:"skip_files,omitempty" hcl:"skip_files,optional"`
	// Extensions are the eligible file name suffixes
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	// Ignore holds doublestar globs matched against paths relative to Root
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
	// Table is a table file used instead of the built-in table
	Table string `json:"table,omitempty" yaml:"table,omitempty" hcl:"table,optional"`
	// Replacements are set on top of the table, in order
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" hcl:"replacement,block"`
	// DryRun reports changes without writing them
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
}

// 🏭 Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills unset fields. An explicitly empty list stays empty.
func (cfg *Config) applyDefaults() {
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	if cfg.SkipDirs == nil {
		cfg.SkipDirs = append([]string(nil), DefaultSkipDirs...)
	}
	if cfg.SkipFiles == nil {
		cfg.SkipFiles = append([]string(nil), DefaultSkipFiles...)
	}
	if cfg.Extensions == nil {
		cfg.Extensions = append([]string(nil), DefaultExtensions...)
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Root) == "" {
		return errors.Errorf("root is required")
	}
	if len(cfg.Extensions) == 0 {
		return errors.Errorf("at least one extension is required")
	}
	for i, ext := range cfg.Extensions {
		if ext == "" {
			return errors.Errorf("extensions[%d] is empty", i)
		}
	}
	for i, dir := range cfg.SkipDirs {
		if dir == "" {
			return errors.Errorf("skip_dirs[%d] is empty", i)
		}
	}
	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}
	for i, r := range cfg.Replacements {
		if r.From == "" {
			return errors.Errorf("replacements[%d]: from is required", i)
		}
	}
	return nil
}

// 📋 BuildTable returns the table to apply: the table file, or the built-in
// table when none is configured, with inline replacements set on top
func (cfg *Config) BuildTable() (*table.Table, error) {
	tbl := table.Default()
	if cfg.Table != "" {
		loaded, err := table.Load(cfg.Table)
		if err != nil {
			return nil, errors.Errorf("loading table %s: %w", cfg.Table, err)
		}
		tbl = loaded
	}

	overlay := table.New()
	for _, r := range cfg.Replacements {
		overlay.Set(r.From, r.To)
	}
	tbl.Merge(overlay)

	if err := tbl.Validate(); err != nil {
		return nil, errors.Errorf("building table: %w", err)
	}

	return tbl, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	tbl := cfg.Table
	if tbl == "" {
		tbl = "built-in"
	}
	return fmt.Sprintf("%s [%s] table=%s", cfg.Root, strings.Join(cfg.Extensions, ","), tbl)
}
