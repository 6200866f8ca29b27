package opts

import (
	"context"

	"github.com/walteh/textfix/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains the flags shared by all commands
type RootOpts struct {
	ConfigFile string
	ConfigDir  string
	Root       string
	Table      string
	Debug      bool
}

// LoadConfig loads the config file, or discovers one in ConfigDir, then
// applies flag overrides on top of it
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigFile != "" {
		cfg, err = config.LoadConfig(ctx, o.ConfigFile)
	} else {
		dir := o.ConfigDir
		if dir == "" {
			dir = "."
		}
		cfg, err = config.Discover(ctx, dir)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if o.Root != "" {
		cfg.Root = o.Root
	}
	if o.Table != "" {
		cfg.Table = o.Table
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
