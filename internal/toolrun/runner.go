// Package toolrun invokes external compiler executables and streams
// their output.
package toolrun

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cenkalti/backoff/v4"
)

// Runner invokes external tools synchronously. The zero value is ready
// to use.
type Runner struct {
	// Retries is the number of extra attempts made when a tool fails to
	// start (missing binary, fork failure). A tool that starts and exits
	// non-zero is never retried.
	Retries uint64
}

// Lookup verifies that the configured executable exists and is runnable.
// Bare names are resolved on PATH; paths containing a separator are
// checked directly.
func Lookup(path string) (string, error) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("tool %s: %w", path, err)
	}
	return resolved, nil
}

// Invoke runs the executable with args, blocking until it exits. Stdout
// and stderr are streamed line-by-line into sink as the tool produces
// them. A missing executable or a non-zero exit is reported as an error.
func (r *Runner) Invoke(ctx context.Context, exe string, args []string, sink LogSink) error {
	if sink == nil {
		sink = Discard
	}

	op := func() error {
		return r.run(ctx, exe, args, sink)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), r.Retries), ctx)
	return backoff.Retry(op, policy)
}

func (r *Runner) run(ctx context.Context, exe string, args []string, sink LogSink) error {
	name := filepath.Base(exe)
	cmd := exec.CommandContext(ctx, exe, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return backoff.Permanent(fmt.Errorf("%s: stdout pipe: %w", name, err))
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return backoff.Permanent(fmt.Errorf("%s: stderr pipe: %w", name, err))
	}

	if err := cmd.Start(); err != nil {
		// Start failures are the only retryable class.
		return fmt.Errorf("starting %s: %w", name, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go pump(stdout, sink.Stdout, &wg)
	go pump(stderr, sink.Stderr, &wg)
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		return backoff.Permanent(fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err))
	}
	return nil
}

// pump forwards one stream line-by-line so long-running tools give live
// progress feedback instead of a buffered dump at exit.
func pump(r io.Reader, emit func(string), wg *sync.WaitGroup) {
	defer wg.Done()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		emit(sc.Text())
	}
}
