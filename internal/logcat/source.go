package logcat

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Source streams live log lines from a device via adb.
type Source struct {
	// AdbPath is the adb binary to invoke. Empty means "adb" from PATH.
	AdbPath string

	// Serial selects a device when more than one is attached (adb -s).
	Serial string
}

func (s *Source) adb() string {
	if s.AdbPath != "" {
		return s.AdbPath
	}
	return "adb"
}

func (s *Source) args(extra ...string) []string {
	var args []string
	if s.Serial != "" {
		args = append(args, "-s", s.Serial)
	}
	return append(args, extra...)
}

// ResolvePID looks up the PID of a running package via `adb shell pidof`.
// Returns an error when the package is not running or adb is unreachable.
func (s *Source) ResolvePID(ctx context.Context, pkg string) (int, error) {
	out, err := exec.CommandContext(ctx, s.adb(), s.args("shell", "pidof", "-s", pkg)...).Output()
	if err != nil {
		return 0, fmt.Errorf("pidof %s: %w (is the app running?)", pkg, err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("pidof %s: unexpected output %q", pkg, strings.TrimSpace(string(out)))
	}
	return pid, nil
}

// Clear flushes the device log buffer so a watch session starts fresh.
func (s *Source) Clear(ctx context.Context) error {
	if err := exec.CommandContext(ctx, s.adb(), s.args("logcat", "-c")...).Run(); err != nil {
		return fmt.Errorf("logcat -c: %w", err)
	}
	return nil
}

// Stream spawns `adb logcat -v threadtime` and sends each output line to the
// returned channel. The channel closes when the process exits or ctx is
// cancelled; the error channel delivers at most one error after that.
func (s *Source) Stream(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string, 256)
	errc := make(chan error, 1)

	cmd := exec.CommandContext(ctx, s.adb(), s.args("logcat", "-v", "threadtime")...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		close(lines)
		errc <- fmt.Errorf("logcat pipe: %w", err)
		return lines, errc
	}
	if err := cmd.Start(); err != nil {
		close(lines)
		errc <- fmt.Errorf("start %s logcat: %w", s.adb(), err)
		return lines, errc
	}

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				_ = cmd.Wait()
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- err
			_ = cmd.Wait()
			return
		}
		errc <- cmd.Wait()
	}()

	return lines, errc
}
