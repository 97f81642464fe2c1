// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"context"
	"os"
	"os/exec"

	"jmvdev-cli/internal/config"
	"jmvdev-cli/pkg/platform"

	"github.com/charmbracelet/log"
)

// DefaultCompilerName is the external compiler executable resolved through
// PATH when no explicit path is configured.
const DefaultCompilerName = "jmc"

// Client invokes the external jamovi compiler. Construct via NewClient;
// every invocation re-derives its arguments from the Config, so a Client
// carries no state between calls beyond its wiring.
type Client struct {
	cfg      *config.Config
	family   platform.Family
	exec     Execer
	lookPath func(string) (string, error)
	logger   *log.Logger
}

// Option customizes a Client. Used by tests to inject a fake compiler.
type Option func(*Client)

// WithExecer replaces the process-spawning Execer.
func WithExecer(e Execer) Option {
	return func(c *Client) { c.exec = e }
}

// WithFamily overrides host platform detection.
func WithFamily(f platform.Family) Option {
	return func(c *Client) { c.family = f }
}

// WithLookPath replaces PATH lookup for the R runtime binary.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(c *Client) { c.lookPath = fn }
}

// NewClient creates a Client for the given configuration.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		cfg:      cfg,
		family:   platform.Detect(),
		exec:     processExecer{},
		lookPath: exec.LookPath,
		logger:   log.Default(),
	}
	if cfg.Debug {
		c.logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.DebugLevel,
			Prefix: "jmc",
		})
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// executable returns the compiler executable path or name.
func (c *Client) executable() string {
	if c.cfg.Compiler != "" {
		return c.cfg.Compiler
	}
	return DefaultCompilerName
}

// withTimeout derives a bounded context when an invoke timeout is
// configured. The default (zero) keeps the historical contract: the call
// blocks until the external process exits.
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.InvokeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.cfg.InvokeTimeout)
}

// commonArgs assembles the environment-dependent tail arguments shared by
// all passthrough invocations: home, rpath, and the debug flag.
func (c *Client) commonArgs() []string {
	var args []string
	args = append(args, HomeArgs("", c.cfg.Home, c.family)...)
	args = append(args, RPathArgs(c.cfg.RHome, c.family, c.lookPath)...)
	if c.cfg.Debug {
		args = append(args, FlagDebug)
	}
	return args
}

// run performs a passthrough invocation, mirroring the child's exit status:
// launch failures surface as errors, non-zero exits as ExitStatusError.
func (c *Client) run(ctx context.Context, args []string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	args = append(args, c.commonArgs()...)
	c.logger.Debug("invoking external compiler", "compiler", c.executable(), "args", args)

	code, err := c.exec.Run(ctx, c.executable(), args)
	if err != nil {
		return err
	}
	if !code.IsSuccess() {
		return &ExitStatusError{Code: code}
	}
	return nil
}

// Check runs the compiler's --check operation in passthrough mode so its
// report lands on the caller's streams.
func (c *Client) Check(ctx context.Context) error {
	return c.run(ctx, []string{FlagCheck})
}

// Prepare regenerates and validates a module's derived scaffolding via
// --prepare. Client satisfies jmvmod.Preparer through this method.
func (c *Client) Prepare(ctx context.Context, modulePath string) error {
	return c.run(ctx, []string{FlagPrepare, quotePath(modulePath)})
}

// Install builds and installs a module via --install. The minimum-version
// gate runs first: an incompatible declared minApp aborts before the
// compiler is ever invoked for the install itself.
func (c *Client) Install(ctx context.Context, modulePath string) error {
	if err := c.CheckMinVersion(ctx, modulePath); err != nil {
		return err
	}
	return c.run(ctx, []string{FlagInstall, quotePath(modulePath)})
}
