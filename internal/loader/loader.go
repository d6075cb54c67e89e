// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/cfgctl/internal/backend"
	"github.com/tfctl/cfgctl/internal/config"
	"github.com/tfctl/cfgctl/internal/document"
	"github.com/tfctl/cfgctl/internal/environment"
	"github.com/tfctl/cfgctl/internal/log"
	"github.com/tfctl/cfgctl/internal/overlay"
	"github.com/tfctl/cfgctl/internal/settings"
)

var (
	instanceMu sync.Mutex
	instance   *Loader
)

// Loader memoizes the resolved configuration for the process.
type Loader struct {
	env         string
	defaults    map[string]any
	backend     backend.Backend
	parser      document.Parser
	environFunc func() []string

	mu    sync.Mutex
	cache *config.Config
}

// New returns the process-wide Loader, creating it on the first call. When an
// instance already exists, defaults and opts are ignored.
//
// Creation resolves the environment indicator and selects the backend. It
// fails with environment.ErrEnvironmentUnavailable when the indicator cannot
// be read and backend.ErrUnknownEnvironment when it is neither "test" nor
// "prod". A failed creation leaves no instance behind.
func New(defaults map[string]any, opts ...Option) (*Loader, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		log.Debugf("loader exists: env=%s backend=%s", instance.env, instance.backend)
		return instance, nil
	}

	ld, err := build(context.Background(), defaults, opts...)
	if err != nil {
		return nil, err
	}

	instance = ld
	return instance, nil
}

// MustNew is New for process entry points. It logs the error and exits.
func MustNew(defaults map[string]any, opts ...Option) *Loader {
	ld, err := New(defaults, opts...)
	if err != nil {
		log.Fatalf("failed to initialize config loader: %v", err)
	}
	return ld
}

// ResetInstance discards the process-wide Loader so the next New builds a new
// one. It exists for tests and for embedders that must rebuild.
func ResetInstance() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
}

func build(ctx context.Context, defaults map[string]any, opts ...Option) (*Loader, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s, err := loadSettings(o.settings)
	if err != nil {
		return nil, err
	}

	resolver := o.resolver
	if resolver == nil {
		resolver = environment.NewFileResolver(s.EnvFile)
	}

	env, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}
	log.Infof("current environment is %q", env)

	be := o.backend
	if be == nil {
		be, err = backend.NewBackend(ctx, env, s)
		if err != nil {
			return nil, err
		}
	} else if env != environment.Test && env != environment.Prod {
		return nil, fmt.Errorf("%w: %q", backend.ErrUnknownEnvironment, env)
	}

	environFunc := o.environFunc
	if environFunc == nil {
		environFunc = os.Environ
	}

	ld := &Loader{
		env:         env,
		defaults:    config.CloneValues(defaults),
		backend:     be,
		parser:      o.parser,
		environFunc: environFunc,
	}

	log.Debugf("loader created: env=%s backend=%s defaults=%d", env, be, len(ld.defaults))
	return ld, nil
}

func loadSettings(s *settings.Settings) (settings.Settings, error) {
	if s != nil {
		return *s, nil
	}
	return settings.FromEnv()
}

// Load returns the resolved configuration for path.
//
// After the first successful Load, the cached Config is returned for every
// path until Reset. Otherwise the document is fetched from the backend,
// parsed, overlaid with the current process environment and then with the
// defaults. Fetch and parse failures are returned as a *config.SourceError
// (errors.Is config.ErrSourceUnavailable) and nothing is cached.
func (ld *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	ld.mu.Lock()
	defer ld.mu.Unlock()

	if ld.cache != nil {
		log.Debugf("config cache hit: source=%s requested=%s", ld.cache.Source(), path)
		return ld.cache, nil
	}

	data, err := ld.backend.Fetch(ctx, path)
	if err != nil {
		return nil, config.NewSourceError(path, err)
	}
	log.Debugf("fetched %s from %s: %s", path, ld.backend, humanize.Bytes(uint64(len(data))))

	parser := ld.parser
	if parser == nil {
		parser = document.ForPath(path)
	}

	base, err := parser.Parse(data)
	if err != nil {
		return nil, config.NewSourceError(path, err)
	}

	values, origins := overlay.Resolve(base, overlay.Environ(ld.environFunc()), ld.defaults)
	ld.cache = config.New(values, path, origins)

	log.Debugf("config loaded: source=%s keys=%d", path, ld.cache.Len())
	return ld.cache, nil
}

// Reset clears the cached Config. The backend and defaults are kept.
func (ld *Loader) Reset() {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.cache = nil
}

// Loaded reports whether a Config is cached.
func (ld *Loader) Loaded() bool {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.cache != nil
}

// Defaults returns a copy of the defaults fixed at construction.
func (ld *Loader) Defaults() map[string]any {
	return config.CloneValues(ld.defaults)
}

// Backend returns the backend selected at construction.
func (ld *Loader) Backend() backend.Backend {
	return ld.backend
}

// Environment returns the indicator resolved at construction.
func (ld *Loader) Environment() string {
	return ld.env
}
