package fixer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/textfix/pkg/config"
)

func defaultFilter() Filter {
	cfg := config.Default()
	return Filter{
		SkipDirs:   cfg.SkipDirs,
		SkipFiles:  cfg.SkipFiles,
		Extensions: cfg.Extensions,
	}
}

func TestFilter_SkipDir(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		path   string
		want   bool
	}{
		{name: "plain_dir", filter: defaultFilter(), path: "src/components", want: false},
		{name: "node_modules", filter: defaultFilter(), path: "src/node_modules", want: true},
		{name: "i18n", filter: defaultFilter(), path: "src/i18n", want: true},
		{name: "substring_anywhere", filter: defaultFilter(), path: "src/old_i18n_files", want: true},
		{name: "root_itself", filter: defaultFilter(), path: "src", want: false},
		{
			name:   "ignore_glob",
			filter: Filter{Ignore: []string{"legacy"}},
			path:   filepath.Join("src", "legacy"),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.SkipDir("src", filepath.FromSlash(tt.path)))
		})
	}
}

func TestFilter_Eligible(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		path   string
		want   bool
	}{
		{name: "jsx", filter: defaultFilter(), path: "src/App.jsx", want: true},
		{name: "js", filter: defaultFilter(), path: "src/main.js", want: true},
		{name: "tsx", filter: defaultFilter(), path: "src/pages/Home.tsx", want: true},
		{name: "ts", filter: defaultFilter(), path: "src/utils/api.ts", want: true},
		{name: "declaration_file", filter: defaultFilter(), path: "src/types.d.ts", want: true},
		{name: "css", filter: defaultFilter(), path: "src/index.css", want: false},
		{name: "json", filter: defaultFilter(), path: "src/data.json", want: false},
		{name: "case_sensitive", filter: defaultFilter(), path: "src/LOUD.JS", want: false},
		{name: "skip_list", filter: defaultFilter(), path: "src/components/LanguageSelector.jsx", want: false},
		{name: "skip_list_needs_exact_name", filter: defaultFilter(), path: "src/components/LanguageSelector.test.jsx", want: true},
		{
			name: "ignore_glob",
			filter: Filter{
				Extensions: []string{".js"},
				Ignore:     []string{"**/*.test.js"},
			},
			path: "src/a/b.test.js",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Eligible("src", filepath.FromSlash(tt.path)))
		})
	}
}
