// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervisor

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"runtime"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/matt-FFFFFF/prun/internal/ctxlog"
	"github.com/matt-FFFFFF/prun/internal/logline"
	"github.com/matt-FFFFFF/prun/internal/palette"
	"golang.org/x/sync/errgroup"
)

// NoCommandsMessage is printed when RunParallel is called with an empty command list.
const NoCommandsMessage = "No commands to run. Use --config to specify a configuration file."

// Options configures a Supervisor. The zero value is usable.
type Options struct {
	MinLength int              // Minimum name column width, 0 means logline.DefaultMinLength
	MaxLength int              // Maximum name column width, 0 means logline.DefaultMaxLength
	Out       io.Writer        // Destination of the multiplexed stream, nil means os.Stdout
	Styler    color.Styler     // Zero value prints without escape codes
	Palette   []color.Style    // Colours handed out round-robin, nil means palette.DefaultPalette
	Shell     string           // Shell used to run commands, empty means $SHELL, /bin/sh or cmd.exe
	Now       func() time.Time // Clock used for line timestamps
}

type runningProcess struct {
	service string
	process *os.Process
	color   color.Style
}

// Supervisor launches commands in parallel and multiplexes their output.
// A Supervisor is safe for concurrent use. Once stopped it cannot be reused.
type Supervisor struct {
	minLength int
	maxLength int
	out       io.Writer
	outMu     sync.Mutex
	styler    color.Styler
	colors    *palette.Assigner
	shell     string
	now       func() time.Time

	mu        sync.Mutex
	processes map[string]*runningProcess
	halted    bool // set by Stop under mu, no child may register afterwards

	stopOnce sync.Once
	stopped  chan struct{}
}

// New validates opts and returns a Supervisor.
// It returns ErrInvalidWidth if a bound is negative or MinLength exceeds MaxLength.
func New(opts Options) (*Supervisor, error) {
	if opts.MinLength < 0 || opts.MaxLength < 0 {
		return nil, fmt.Errorf("%w: min %d, max %d must not be negative", ErrInvalidWidth, opts.MinLength, opts.MaxLength)
	}

	opts.MinLength, opts.MaxLength = logline.EffectiveLengths(opts.MinLength, opts.MaxLength)

	if opts.MinLength > opts.MaxLength {
		return nil, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidWidth, opts.MinLength, opts.MaxLength)
	}

	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Supervisor{
		minLength: opts.MinLength,
		maxLength: opts.MaxLength,
		out:       opts.Out,
		styler:    opts.Styler,
		colors:    palette.New(opts.Palette...),
		shell:     opts.Shell,
		now:       opts.Now,
		processes: make(map[string]*runningProcess),
		stopped:   make(chan struct{}),
	}, nil
}

// RunParallel starts every command at once and blocks until all of them have terminated.
//
// With no commands it prints a notice and returns nil, nil. If any command cannot be started the
// remaining children are killed and a *SpawnError is returned without a summary. A command exiting
// non-zero does not affect its siblings; it is recorded in the returned Results.
// If Stop is called, RunParallel returns ErrStopped at once. Cancelling ctx kills every child.
func (s *Supervisor) RunParallel(ctx context.Context, specs []CommandSpec) (Results, error) {
	if s.isStopped() {
		return nil, ErrStopped
	}

	if len(specs) == 0 {
		s.println(s.styler.Wrap(NoCommandsMessage, color.Yellow))
		return nil, nil
	}

	s.println(s.styler.Wrap("🚀 Starting parallel execution...", color.BoldText, color.Blue))
	s.println("")

	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}

	width := logline.DisplayWidth(names, s.minLength, s.maxLength)
	f := logline.New(width, s.styler)
	f.Now = s.now

	ctxlog.Debug(ctx, "starting parallel execution", "commands", len(specs), "width", width)

	start := time.Now()
	results := make(Results, len(specs))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, spec := range specs {
		c := s.colors.Next()
		if spec.Color != nil {
			c = *spec.Color
		}

		eg.Go(func() error {
			res, err := s.runCommand(egCtx, spec, c, f)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	waitCh := make(chan error, 1)

	go func() {
		waitCh <- eg.Wait()
	}()

	var err error

	select {
	case err = <-waitCh:
	case <-s.stopped:
		ctxlog.Debug(ctx, "supervisor stopped, not waiting for children")
		return nil, ErrStopped
	}

	if err != nil {
		s.println(s.styler.Wrap("Fatal error during execution:", color.Red) + " " + err.Error())
		return nil, err
	}

	s.writeSummary(results, width, time.Since(start))

	return results, nil
}

// Stop terminates every running child and unblocks RunParallel.
// It does not wait for the children to exit. Calling Stop more than once has no further effect.
func (s *Supervisor) Stop(ctx context.Context) {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.halted = true
		procs := s.sortedLocked()
		s.mu.Unlock()

		s.println("")
		s.println(s.styler.Wrap("🛑 Stopping all processes...", color.Yellow))

		for _, p := range procs {
			s.terminate(ctx, p)
		}

		close(s.stopped)
	})
}

func (s *Supervisor) isStopped() bool {
	select {
	case <-s.stopped:
		return true
	default:
		return false
	}
}

// halting reports whether Stop has begun. Children not yet spawned must not be started.
func (s *Supervisor) halting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.halted
}

// register records p as running. It returns false if Stop has already taken its snapshot,
// in which case the caller owns terminating p.
func (s *Supervisor) register(p *runningProcess) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.halted {
		return false
	}

	s.processes[p.service] = p

	return true
}

// deregister removes p, unless a later process registered under the same name replaced it.
func (s *Supervisor) deregister(p *runningProcess) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.processes[p.service] == p {
		delete(s.processes, p.service)
	}
}

// snapshot returns the registered processes sorted by name.
func (s *Supervisor) snapshot() []*runningProcess {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked()
}

// sortedLocked must be called with mu held.
func (s *Supervisor) sortedLocked() []*runningProcess {
	out := make([]*runningProcess, 0, len(s.processes))
	for _, name := range slices.Sorted(maps.Keys(s.processes)) {
		out = append(out, s.processes[name])
	}

	return out
}

// running returns the names of the registered processes.
func (s *Supervisor) running() []string {
	ps := s.snapshot()
	names := make([]string, len(ps))

	for i, p := range ps {
		names[i] = p.service
	}

	return names
}

func (s *Supervisor) println(line string) {
	s.outMu.Lock()
	defer s.outMu.Unlock()

	_, _ = fmt.Fprintln(s.out, line)
}

func (s *Supervisor) terminate(ctx context.Context, p *runningProcess) {
	s.println(s.styler.Wrap(fmt.Sprintf("Terminating %s...", p.service), color.Yellow))
	terminateProcess(ctx, p.process)
}

// terminateProcess asks the process to exit. Windows has no SIGTERM so the process is killed.
func terminateProcess(ctx context.Context, ps *os.Process) {
	if runtime.GOOS == goosWindows {
		killPs(ctx, ps)
		return
	}

	if err := ps.Signal(syscall.SIGTERM); err != nil {
		ctxlog.Debug(ctx, "failed to send signal", "pid", ps.Pid, "signal", syscall.SIGTERM.String(), "error", err)
		return
	}

	ctxlog.Debug(ctx, "signal sent", "pid", ps.Pid, "signal", syscall.SIGTERM.String())
}
