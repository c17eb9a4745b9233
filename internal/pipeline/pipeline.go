// Package pipeline sequences the distribution build: workspace reset,
// per-package compiler invocations, then the fixed post-processing patches
// that reconcile the generated output with the packages' public contracts.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/squidCatx/big-react-wasm/internal/config"
	"github.com/squidCatx/big-react-wasm/internal/logfields"
	"github.com/squidCatx/big-react-wasm/internal/manifest"
	"github.com/squidCatx/big-react-wasm/internal/patch"
	"github.com/squidCatx/big-react-wasm/internal/report"
	"github.com/squidCatx/big-react-wasm/internal/wasmpack"
	"github.com/squidCatx/big-react-wasm/internal/workspace"
)

// manifestExtraFiles are appended to the react package's declared output
// files: the wasm artifacts and loader scripts wasm-pack emits for the
// jsx-dev-runtime out-name but does not declare in the manifest.
var manifestExtraFiles = []string{
	"jsx-dev-runtime.wasm",
	"jsx-dev-runtime.js",
	"jsx-dev-runtime_bg.wasm",
	"jsx-dev-runtime_bg.js",
}

// State carries mutable state across stages.
type State struct {
	Cfg     *config.Config
	Mode    config.BuildMode
	Report  *report.Report
	Timings map[string]time.Duration
}

// Pipeline drives one build run to completion.
type Pipeline struct {
	cfg     *config.Config
	mode    config.BuildMode
	builder wasmpack.Builder
	ws      *workspace.Manager
}

// New creates a pipeline for the mode using the given builder.
func New(cfg *config.Config, mode config.BuildMode, builder wasmpack.Builder) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		mode:    mode,
		builder: builder,
		ws:      workspace.NewManager(cfg.OutputRoot),
	}
}

// Run executes the whole pipeline. The first failing stage aborts the run;
// no partial-output cleanup happens, the next run's reset clears the tree.
func (p *Pipeline) Run(ctx context.Context) error {
	st := &State{
		Cfg:     p.cfg,
		Mode:    p.mode,
		Timings: make(map[string]time.Duration),
	}
	if p.cfg.WriteReport {
		st.Report = report.New(p.mode)
		st.Report.StampCommit(p.cfg.PackagesDir)
		slog.Info("Starting distribution build",
			logfields.RunID(st.Report.RunID),
			logfields.Mode(p.mode.String()))
	} else {
		slog.Info("Starting distribution build", logfields.Mode(p.mode.String()))
	}

	stages := []namedStage{
		{"reset_workspace", p.stageResetWorkspace},
		{"build_packages", p.stageBuildPackages},
		{"patch_manifest", p.stagePatchManifest},
		{"inject_shims", p.stageInjectShims},
		{"augment_exports", p.stageAugmentExports},
		{"write_report", p.stageWriteReport},
	}
	return runStages(ctx, st, stages)
}

func (p *Pipeline) stageResetWorkspace(ctx context.Context, st *State) error {
	return p.ws.Reset()
}

// stageBuildPackages runs the fixed invocation sequence for the mode. The
// compiler is synchronous; a nonzero exit aborts without retry.
func (p *Pipeline) stageBuildPackages(ctx context.Context, st *State) error {
	for _, spec := range Plan(p.cfg, p.mode) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := p.builder.Build(ctx, spec); err != nil {
			return err
		}
		if st.Report != nil {
			st.Report.RecordBuild(spec.SourceDir, spec.OutName, string(spec.Target))
		}
	}
	return nil
}

// stagePatchManifest appends the jsx-dev-runtime artifact files to react's
// package.json. The list is not deduplicated; the preceding workspace reset
// guarantees a freshly generated manifest.
func (p *Pipeline) stagePatchManifest(ctx context.Context, st *State) error {
	path := filepath.Join(p.ws.PackageDir(PackageReact), "package.json")
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	m.AppendFiles(manifestExtraFiles...)
	if err := m.Save(); err != nil {
		return err
	}
	slog.Info("Patched package manifest", logfields.Path(path))
	return nil
}

// entryFileName is the generated entry module the shim is prepended to. The
// nodejs target emits a loadable index.js; the default target keeps the glue
// in the internal index_bg.js module.
func entryFileName(mode config.BuildMode) string {
	if mode.IsTest() {
		return "index.js"
	}
	return "index_bg.js"
}

// stageInjectShims prepends the dispatcher linkage statement to each renderer
// package's entry file so it can reach react's dispatch table at load time.
func (p *Pipeline) stageInjectShims(ctx context.Context, st *State) error {
	for _, pkg := range shimTargets(p.mode) {
		path := filepath.Join(p.ws.PackageDir(pkg), entryFileName(p.mode))
		if err := patch.PrependLinkageFile(path, p.mode); err != nil {
			return err
		}
		slog.Info("Injected dispatcher shim", logfields.Package(pkg), logfields.Path(path))
	}
	return nil
}

// stageAugmentExports appends the Fragment export to react's jsx-dev-runtime
// entry file and its companion type declarations.
func (p *Pipeline) stageAugmentExports(ctx context.Context, st *State) error {
	dir := p.ws.PackageDir(PackageReact)
	entry := filepath.Join(dir, OutNameJSXDevRuntime+".js")
	if err := patch.AppendExportFile(entry); err != nil {
		return err
	}
	types := filepath.Join(dir, OutNameJSXDevRuntime+".d.ts")
	if err := patch.AppendExportTypeFile(types); err != nil {
		return err
	}
	slog.Info("Augmented jsx-dev-runtime exports", logfields.Path(entry))
	return nil
}

func (p *Pipeline) stageWriteReport(ctx context.Context, st *State) error {
	if st.Report == nil {
		return nil
	}
	path := filepath.Join(p.ws.Root(), "build-report.json")
	if err := st.Report.Save(path); err != nil {
		return err
	}
	slog.Info("Wrote build report", logfields.Path(path))
	return nil
}
