// Package runtime executes plugin source units through an interpreter
// subprocess.
package runtime

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runtime = (*Interpreter)(nil)

// Interpreter implements ports.Runtime by running each source unit as the
// last argument of a configured interpreter command.
type Interpreter struct {
	argv   []string
	logger ports.Logger
}

// NewInterpreter creates an Interpreter from the interpreter argv prefix.
func NewInterpreter(argv []string, logger ports.Logger) *Interpreter {
	return &Interpreter{
		argv:   argv,
		logger: logger,
	}
}

// Execute runs the file at absPath to completion. Failures are mapped onto
// the load taxonomy: a missing file is domain.ErrSourceNotFound, a parse
// diagnostic is domain.ErrMalformedSource, everything else is
// domain.ErrRuntimeFailure.
func (i *Interpreter) Execute(ctx context.Context, absPath string) error {
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "path", absPath)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStatFailed.Error()), "path", absPath)
	}

	name := i.argv[0]
	args := append(slices.Clone(i.argv[1:]), absPath)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // interpreter comes from config
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return zerr.With(zerr.Wrap(err, "interpreter not found"), "interpreter", name)
		}

		diag := strings.TrimSpace(stderr.String())
		wrapped := zerr.Wrap(err, classify(diag).Error())
		if diag != "" {
			wrapped = zerr.With(wrapped, "stderr", diag)
		}
		return zerr.With(wrapped, "path", absPath)
	}
	return nil
}

// classify maps interpreter stderr output onto the failure taxonomy. A parse
// diagnostic means the source itself is malformed; anything else is a failure
// raised by the executed code.
func classify(diag string) error {
	lower := strings.ToLower(diag)
	for _, marker := range []string{"syntax error", "parse error", "unexpected symbol"} {
		if strings.Contains(lower, marker) {
			return domain.ErrMalformedSource
		}
	}
	return domain.ErrRuntimeFailure
}
