package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/ludo-technologies/datestamp/domain"
	"go.uber.org/zap"
)

// ExecCommandRunner runs external programs with os/exec
type ExecCommandRunner struct {
	logger *zap.Logger

	// teeStderr mirrors the program's stderr to os.Stderr while capturing it
	teeStderr bool
}

// NewCommandRunner creates a runner. When verbose is set, stderr of the
// child is shown live in addition to being captured for error reports.
func NewCommandRunner(logger *zap.Logger, verbose bool) *ExecCommandRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecCommandRunner{logger: logger, teeStderr: verbose}
}

// Run executes argv and waits for it to finish
func (r *ExecCommandRunner) Run(ctx context.Context, stdout io.Writer, argv ...string) error {
	if len(argv) == 0 {
		return domain.NewInvalidInputError("empty command", nil)
	}

	r.logger.Debug("running command", zap.Strings("argv", argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if stdout != nil {
		cmd.Stdout = stdout
	}

	var stderrBuf bytes.Buffer
	if r.teeStderr {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return domain.NewExternalCommandError(argv, stderrBuf.String(), err)
	}
	return nil
}

// LookPath resolves name on PATH
func (r *ExecCommandRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", domain.NewExternalCommandError([]string{name}, "", err)
	}
	return path, nil
}
