// Package report records what a build run did: which packages were built, how
// long each stage took, and which source commit the artifacts came from.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/google/uuid"

	"github.com/squidCatx/big-react-wasm/internal/config"
	"github.com/squidCatx/big-react-wasm/internal/errors"
)

// BuiltPackage records one completed compiler invocation.
type BuiltPackage struct {
	Package string `json:"package"`
	OutName string `json:"out_name"`
	Target  string `json:"target,omitempty"`
}

// Report is the persisted record of a single build run.
type Report struct {
	RunID     string    `json:"run_id"`
	Mode      string    `json:"mode"`
	Commit    string    `json:"commit,omitempty"`
	StartedAt time.Time `json:"started_at"`
	Duration  int64     `json:"duration_ms"`

	StageDurations map[string]int64 `json:"stage_durations_ms"`
	Packages       []BuiltPackage   `json:"packages"`
}

// New creates a report for a run starting now.
func New(mode config.BuildMode) *Report {
	return &Report{
		RunID:          uuid.NewString(),
		Mode:           mode.String(),
		StartedAt:      time.Now().UTC(),
		StageDurations: make(map[string]int64),
	}
}

// RecordStage records a stage's duration.
func (r *Report) RecordStage(name string, d time.Duration) {
	r.StageDurations[name] = d.Milliseconds()
}

// RecordBuild records a completed compiler invocation.
func (r *Report) RecordBuild(pkg, outName, target string) {
	r.Packages = append(r.Packages, BuiltPackage{Package: pkg, OutName: outName, Target: target})
}

// StampCommit resolves the source tree's HEAD commit and records it.
// Best effort: a directory that is not a git repository leaves the commit
// field empty rather than failing the build.
func (r *Report) StampCommit(dir string) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return
	}
	head, err := repo.Head()
	if err != nil {
		return
	}
	r.Commit = head.Hash().String()
}

// Save finalizes the duration and writes the report to path.
func (r *Report) Save(path string) error {
	r.Duration = time.Since(r.StartedAt).Milliseconds()
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.InternalError("report serialization failed", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WriteFailed(path, err)
	}
	return nil
}
