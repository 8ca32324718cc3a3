// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/matt-FFFFFF/prun/internal/ctxlog"
	"github.com/matt-FFFFFF/prun/internal/linesplit"
	"github.com/matt-FFFFFF/prun/internal/logline"
)

// runCommand spawns one child, streams its output and waits for it to terminate.
// Only a failure to start the child is returned as an error.
func (s *Supervisor) runCommand(
	ctx context.Context,
	spec CommandSpec,
	c color.Style,
	f *logline.Formatter,
) (ExecutionResult, error) {
	logger := ctxlog.Logger(ctx).With("service", spec.Name)
	emit := func(msg string, sev logline.Severity) {
		s.println(f.Format(spec.Name, msg, c, sev))
	}

	spawnErr := func(err error) (ExecutionResult, error) {
		emit("Error: "+err.Error(), logline.SeverityError)
		return newResult(spec.Name, NoExitCode), &SpawnError{Service: spec.Name, Err: err}
	}

	// A sibling failed to spawn before we got going.
	if err := ctx.Err(); err != nil {
		return newResult(spec.Name, NoExitCode), err //nolint:wrapcheck
	}

	if s.halting() {
		logger.Debug("supervisor stopped, not starting")
		return newResult(spec.Name, NoExitCode), nil
	}

	emit("Starting: "+spec.Command, logline.SeverityInfo)

	shell := s.shell
	if shell == "" {
		shell = defaultShell(ctx)
	}

	logger.Debug("command info", "shell", shell, "cwd", spec.Cwd, "command", spec.Command)

	devNull, err := os.Open(os.DevNull)
	if err != nil {
		return spawnErr(err)
	}
	defer devNull.Close() //nolint:errcheck

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return spawnErr(errors.Join(ErrFailedToCreatePipe, err))
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		_ = rOut.Close()
		_ = wOut.Close()

		return spawnErr(errors.Join(ErrFailedToCreatePipe, err))
	}

	ps, err := os.StartProcess(shell, shellArgv(shell, spec.Command), &os.ProcAttr{
		Dir:   spec.Cwd,
		Env:   os.Environ(),
		Files: []*os.File{devNull, wOut, wErr},
	})

	// The child holds its own copies of the write ends.
	_ = wOut.Close()
	_ = wErr.Close()

	if err != nil {
		_ = rOut.Close()
		_ = rErr.Close()

		logger.Debug("process failed to start", "error", err)

		return spawnErr(err)
	}

	proc := &runningProcess{service: spec.Name, process: ps, color: c}

	logger.Debug("process started", "pid", ps.Pid)

	// Stop raced the spawn and missed this child.
	if !s.register(proc) {
		s.terminate(ctx, proc)
	}

	streams := &sync.WaitGroup{}
	streams.Add(2) //nolint:mnd

	go s.stream(streams, rOut, func(line string) {
		emit(line, logline.SeverityInfo)
	})
	go s.stream(streams, rErr, func(line string) {
		emit(s.styler.Wrap(line, color.Red), logline.SeverityError)
	})

	done := make(chan struct{})

	// watchdog for context cancellation
	go func() {
		select {
		case <-ctx.Done():
			logger.Debug("context done, killing process", "pid", ps.Pid)
			killPs(ctx, ps)
		case <-done:
		}
	}()

	state, psErr := ps.Wait()
	close(done)

	streamsDone := make(chan struct{})

	go func() {
		streams.Wait()
		close(streamsDone)
	}()

	// Grandchildren may keep the pipes open after the child has gone.
	select {
	case <-streamsDone:
	case <-ctx.Done():
		_ = rOut.Close()
		_ = rErr.Close()

		<-streamsDone
	}

	s.deregister(proc)

	exitCode := NoExitCode
	if psErr == nil {
		exitCode = state.ExitCode()
	}

	logger.Debug("process finished", "pid", ps.Pid, "exitCode", exitCode, "error", psErr)

	if exitCode == 0 {
		emit("Completed successfully", logline.SeveritySuccess)
	} else {
		emit(fmt.Sprintf("Failed with code %d", exitCode), logline.SeverityError)
	}

	return newResult(spec.Name, exitCode), nil
}

// stream copies r into a line splitter until EOF or until r is closed.
func (s *Supervisor) stream(wg *sync.WaitGroup, r *os.File, emit func(string)) {
	defer wg.Done()

	w := linesplit.NewWriter(emit)
	_, _ = io.Copy(w, r)
	w.Flush()

	_ = r.Close()
}

// killPs kills the process.
func killPs(ctx context.Context, ps *os.Process) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Debug(ctx, "process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Error(ctx, "process kill error", "pid", ps.Pid, "error", err)

		return
	}

	ctxlog.Debug(ctx, "process killed", "pid", ps.Pid)
}
