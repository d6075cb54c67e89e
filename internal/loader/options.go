// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"github.com/tfctl/cfgctl/internal/backend"
	"github.com/tfctl/cfgctl/internal/document"
	"github.com/tfctl/cfgctl/internal/environment"
	"github.com/tfctl/cfgctl/internal/settings"
)

// options collects construction overrides. Zero values mean "use the
// default".
type options struct {
	resolver    environment.Resolver
	settings    *settings.Settings
	backend     backend.Backend
	parser      document.Parser
	environFunc func() []string
}

// Option customizes the first construction of the Loader. Options passed to a
// New call that returns an existing instance have no effect.
type Option func(*options)

// WithResolver replaces the environment descriptor file resolver.
func WithResolver(r environment.Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithSettings replaces the settings otherwise parsed from CFGCTL_*
// variables.
func WithSettings(s settings.Settings) Option {
	return func(o *options) { o.settings = &s }
}

// WithBackend injects a prebuilt backend. The indicator is still resolved and
// validated.
func WithBackend(be backend.Backend) Option {
	return func(o *options) { o.backend = be }
}

// WithParser forces one parser for every document instead of choosing by
// extension.
func WithParser(p document.Parser) Option {
	return func(o *options) { o.parser = p }
}

// WithEnviron replaces os.Environ as the source of the env overlay. fn is
// called on every uncached Load.
func WithEnviron(fn func() []string) Option {
	return func(o *options) { o.environFunc = fn }
}
