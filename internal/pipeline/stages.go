package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/squidCatx/big-react-wasm/internal/logfields"
)

// Stage is a discrete unit of work in the distribution build.
type Stage func(ctx context.Context, st *State) error

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Build must abort.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying category and underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage string, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}
func newCanceledStageError(stage string, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

type namedStage struct {
	name string
	fn   Stage
}

// runStages executes stages in order, recording timing and stopping on the
// first error. There is no recovery path: a failed run leaves the output
// workspace for the next run's reset to clear.
func runStages(ctx context.Context, st *State, stages []namedStage) error {
	for _, stage := range stages {
		select {
		case <-ctx.Done():
			return newCanceledStageError(stage.name, ctx.Err())
		default:
		}
		t0 := time.Now()
		err := stage.fn(ctx, st)
		dur := time.Since(t0)
		st.Timings[stage.name] = dur
		if st.Report != nil {
			st.Report.RecordStage(stage.name, dur)
		}
		if err != nil {
			return newFatalStageError(stage.name, err)
		}
		slog.Debug("Stage complete",
			logfields.Stage(stage.name),
			logfields.DurationMS(float64(dur.Milliseconds())))
	}
	return nil
}
