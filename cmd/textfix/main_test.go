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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textfix/cmd/textfix/commands"
	"gitlab.com/tozd/go/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		args        func(dir string) []string
		errContains string
		check       func(t *testing.T, dir, out string)
	}{
		{
			name: "missing_config_file",
			files: map[string]string{
				"src/App.jsx": "<h1>技术服务</h1>",
			},
			args: func(dir string) []string {
				return []string{"--root", filepath.Join(dir, "src"), "--config", filepath.Join(dir, "none.yaml")}
			},
			errContains: "reading config file",
		},
		{
			name: "fixes_files_with_discovered_defaults",
			files: map[string]string{
				"src/App.jsx":    "<h1>技术服务</h1><button>关闭</button>",
				"src/i18n/zh.js": "'关闭'",
			},
			args: func(dir string) []string {
				return []string{"--root", filepath.Join(dir, "src")}
			},
			check: func(t *testing.T, dir, out string) {
				assert.Equal(t, "<h1>Technology</h1><button>Close</button>", readFile(t, filepath.Join(dir, "src", "App.jsx")))
				assert.Equal(t, "'关闭'", readFile(t, filepath.Join(dir, "src", "i18n", "zh.js")))
				assert.Contains(t, out, "✅ Fixed: "+filepath.Join(dir, "src", "App.jsx"))
				assert.Contains(t, out, "Total files fixed: 1")
				assert.Contains(t, out, "✨ All hardcoded Chinese text has been replaced with English!")
			},
		},
		{
			name: "config_file_with_inline_replacements",
			files: map[string]string{
				"web/a.vue":    "<b>保存</b><i>关闭</i>",
				"web/b.js":     "'保存'",
				"textfix.yaml": "extensions: [.vue]\nreplacements:\n  - from: 保存\n    to: Save\n",
			},
			args: func(dir string) []string {
				return []string{"-c", filepath.Join(dir, "textfix.yaml"), "-r", filepath.Join(dir, "web")}
			},
			check: func(t *testing.T, dir, out string) {
				assert.Equal(t, "<b>Save</b><i>Close</i>", readFile(t, filepath.Join(dir, "web", "a.vue")))
				assert.Equal(t, "'保存'", readFile(t, filepath.Join(dir, "web", "b.js")))
			},
		},
		{
			name: "table_flag",
			files: map[string]string{
				"src/a.ts":   "关闭 你好",
				"table.json": `{"你好": "Hello"}`,
			},
			args: func(dir string) []string {
				return []string{"-r", filepath.Join(dir, "src"), "-t", filepath.Join(dir, "table.json")}
			},
			check: func(t *testing.T, dir, out string) {
				assert.Equal(t, "关闭 Hello", readFile(t, filepath.Join(dir, "src", "a.ts")))
			},
		},
		{
			name: "dry_run_flag",
			files: map[string]string{
				"src/a.js": "关闭",
			},
			args: func(dir string) []string {
				return []string{"--dry-run", "-r", filepath.Join(dir, "src")}
			},
			check: func(t *testing.T, dir, out string) {
				assert.Equal(t, "关闭", readFile(t, filepath.Join(dir, "src", "a.js")))
				assert.Contains(t, out, "📝 Would fix:")
			},
		},
		{
			name: "failed_files_do_not_fail_the_command",
			files: map[string]string{
				"src/bad.js": "\xff\xfe",
				"src/ok.js":  "关闭",
			},
			args: func(dir string) []string {
				return []string{"-r", filepath.Join(dir, "src")}
			},
			check: func(t *testing.T, dir, out string) {
				assert.Contains(t, out, "❌ Failed: "+filepath.Join(dir, "src", "bad.js"))
				assert.Contains(t, out, "Total files fixed: 1")
			},
		},
		{
			name:  "rejects_positional_args",
			files: map[string]string{},
			args: func(dir string) []string {
				return []string{"src"}
			},
			errContains: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for rel, content := range tt.files {
				writeFile(t, filepath.Join(dir, filepath.FromSlash(rel)), content)
			}

			out, err := execute(t, tt.args(dir)...)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, dir, out)
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	t.Run("pending_changes", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "src", "a.jsx"), "关闭")

		out, err := execute(t, "check", "-r", filepath.Join(dir, "src"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, commands.ErrChangesPending))
		assert.Contains(t, err.Error(), "1 to fix, 0 failed")
		assert.Contains(t, out, "📝 Would fix:")
		assert.Equal(t, "关闭", readFile(t, filepath.Join(dir, "src", "a.jsx")))
	})

	t.Run("clean_tree", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "src", "a.jsx"), "Close")

		out, err := execute(t, "check", "-r", filepath.Join(dir, "src"))
		require.NoError(t, err)
		assert.Contains(t, out, "No hardcoded text left to fix")
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "textfix version info")
	assert.Contains(t, out, "Go:")
}
