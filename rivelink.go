// rivelink.go
package rivelink

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/arc-language/rivelink/pkg/catalog"
	"github.com/arc-language/rivelink/pkg/core"
	"github.com/arc-language/rivelink/pkg/plan"
	"github.com/arc-language/rivelink/pkg/target"
)

// Re-export types for convenience
type (
	Descriptor    = target.Descriptor
	Platform      = target.Platform
	Architecture  = target.Architecture
	Configuration = target.Configuration
	BuildPlan     = plan.BuildPlan
	Library       = plan.Library
	Config        = core.Config
)

// Re-export target constants
const (
	Windows     = target.Windows
	Mac         = target.Mac
	IOS         = target.IOS
	Android     = target.Android
	Unix        = target.Unix
	Unsupported = target.Unsupported

	X64       = target.X64
	Arm64     = target.Arm64
	Simulator = target.Simulator

	Debug       = target.Debug
	DebugGame   = target.DebugGame
	Development = target.Development
	Test        = target.Test
	Shipping    = target.Shipping
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Resolver resolves build plans against one installed SDK module
type Resolver struct {
	assembler *plan.Assembler
	logger    *slog.Logger
}

// NewResolver creates a Resolver for the module and project directories of
// config. A nil logger disables logging.
func NewResolver(config *Config, logger *slog.Logger) *Resolver {
	if config == nil {
		config = core.DefaultConfig()
	}
	opts := []plan.Option{
		plan.WithModuleDir(config.ModuleDir),
		plan.WithProjectDir(config.ProjectDir),
	}
	if logger != nil {
		opts = append(opts, plan.WithLogger(logger))
	}
	r := &Resolver{assembler: plan.New(opts...), logger: logger}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Resolve assembles the plan of d. Unsupported targets yield a plan with
// Supported() == false and no error.
func (r *Resolver) Resolve(d Descriptor) (*BuildPlan, error) {
	p, err := r.assembler.Assemble(d)
	if err != nil {
		return nil, &Error{Op: "resolve", Target: d.String(), Err: err}
	}
	return p, nil
}

// ResolveStrict is Resolve with unsupported targets reported as ErrUnsupportedPlatform
func (r *Resolver) ResolveStrict(d Descriptor) (*BuildPlan, error) {
	p, err := r.Resolve(d)
	if err != nil {
		return nil, err
	}
	if !p.Supported() {
		return nil, &Error{Op: "resolve", Target: d.String(), Err: ErrUnsupportedPlatform}
	}
	return p, nil
}

// ResolveAll resolves targets concurrently and returns the plans sorted by
// target. The first error cancels the remaining work.
func (r *Resolver) ResolveAll(ctx context.Context, targets []Descriptor) ([]*BuildPlan, error) {
	plans := make([]*BuildPlan, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, d := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := r.Resolve(d)
			if err != nil {
				return err
			}
			plans[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].Target().String() < plans[j].Target().String()
	})
	r.logger.Debug("resolved matrix", "plans", len(plans))
	return plans, nil
}

// Targets lists every shipped platform/architecture pair in every
// configuration, with the given debug policy
func Targets(debugCRT bool) []Descriptor {
	var out []Descriptor
	for _, p := range catalog.Supported() {
		e, _ := catalog.Lookup(p)
		for _, a := range e.SortedArchs() {
			for _, c := range target.Configurations {
				out = append(out, Descriptor{Platform: p, Arch: a, Configuration: c, DebugCRT: debugCRT})
			}
		}
	}
	return out
}
