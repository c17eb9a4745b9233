// Package wasmpack invokes the external wasm-pack compiler. The pipeline
// depends only on the Builder interface so control flow is testable with a
// fake that records calls instead of spawning processes.
package wasmpack

import (
	"context"
	"log/slog"
	"os"
	"os/exec"

	"github.com/squidCatx/big-react-wasm/internal/errors"
	"github.com/squidCatx/big-react-wasm/internal/logfields"
)

// Target selects the compilation target passed to wasm-pack.
type Target string

const (
	// TargetDefault leaves wasm-pack on its bundler (browser) target.
	TargetDefault Target = ""
	// TargetNodeJS produces a host-runtime-loadable artifact for the test runner.
	TargetNodeJS Target = "nodejs"
)

// BuildSpec describes one (package, output-name) compiler invocation.
type BuildSpec struct {
	SourceDir string
	OutDir    string
	OutName   string
	Target    Target
}

// Builder runs the external compiler for one build spec.
type Builder interface {
	Build(ctx context.Context, spec BuildSpec) error
}

// ExecBuilder invokes the wasm-pack binary synchronously, inheriting the
// parent's stdout and stderr so compiler diagnostics reach the operator.
type ExecBuilder struct {
	Bin string
}

// NewExecBuilder creates a builder invoking the given binary.
func NewExecBuilder(bin string) *ExecBuilder {
	return &ExecBuilder{Bin: bin}
}

func (b *ExecBuilder) args(spec BuildSpec) []string {
	args := []string{"build", spec.SourceDir, "--out-dir", spec.OutDir, "--out-name", spec.OutName}
	if spec.Target != TargetDefault {
		args = append(args, "--target", string(spec.Target))
	}
	return args
}

// Build runs one compiler invocation and blocks until it exits. A nonzero
// exit aborts the whole pipeline; there is no retry.
func (b *ExecBuilder) Build(ctx context.Context, spec BuildSpec) error {
	cmd := exec.CommandContext(ctx, b.Bin, b.args(spec)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	slog.Info("Running wasm-pack",
		logfields.Package(spec.SourceDir),
		logfields.OutName(spec.OutName),
		logfields.Target(string(spec.Target)))
	if err := cmd.Run(); err != nil {
		return errors.ToolFailed(spec.SourceDir, err)
	}
	return nil
}
