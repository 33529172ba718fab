// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"jvmkit/pkg/java"
	"jvmkit/pkg/types"
)

var (
	execFlags constraintFlags
	// execTimeout bounds the launcher run; zero falls back to the
	// configured exec timeout.
	execTimeout time.Duration

	execCmd = &cobra.Command{
		Use:   "exec [flags] -- [java arguments]",
		Short: "Run the resolved Java launcher with the given arguments",
		Long: `Resolve the best installation matching the given constraints and run
its launcher with the arguments after --.

The child's stdout and stderr are captured and replayed, and its exit
code becomes jvmkit's exit code. The run is bounded by --timeout
(config exec_timeout when omitted).

Examples:
  jvmkit exec --min 17 -- -jar app.jar
  jvmkit exec --vendor temurin --kind jdk -- -version`,
		RunE: runExec,
	}
)

func init() {
	execFlags.register(execCmd)
	execCmd.Flags().DurationVar(&execTimeout, "timeout", 0, "maximum run time (e.g. 30s, 5m)")
}

func runExec(cmd *cobra.Command, args []string) error {
	constraint, err := execFlags.constraint()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	inst := runScan(ctx).Registry.Resolve(constraint)
	if inst == nil {
		return &ExitError{Code: 1, Err: errors.New("no installation matches the given constraints")}
	}
	loggerFromContext(ctx).Debug("running launcher", "exec", inst.Exec, "args", args)

	timeout := execTimeout
	if timeout == 0 {
		timeout = activeConfig().ExecTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := inst.Execute(ctx, args...)
	if err != nil {
		var execErr *java.ExecError
		if errors.As(err, &execErr) && execErr.Timeout {
			return &ExitError{Code: types.ExitCodeTimeout, Err: fmt.Errorf("launcher exceeded %s: %w", timeout, err)}
		}
		return err
	}

	io.WriteString(cmd.OutOrStdout(), out.Stdout)
	io.WriteString(cmd.ErrOrStderr(), out.Stderr)
	if out.ExitCode != 0 {
		return launcherExitError(out.ExitCode)
	}
	return nil
}

// launcherExitError maps a launcher's exit status to the ExitError this
// process exits with. A signal-killed child reports a negative status,
// which os.Exit would mangle, so that becomes a plain failure.
func launcherExitError(code int) *ExitError {
	if code < 0 {
		return &ExitError{Code: 1, Err: errors.New("launcher was killed by a signal")}
	}
	return &ExitError{Code: types.ExitCode(code)}
}
