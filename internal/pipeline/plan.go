package pipeline

import (
	"github.com/squidCatx/big-react-wasm/internal/config"
	"github.com/squidCatx/big-react-wasm/internal/wasmpack"
)

// The package topology is fixed, not a configurable dependency graph.
const (
	PackageReact     = "react"
	PackageReactNoop = "react-noop-renderer"
	PackageReactDOM  = "react-dom"

	// Output base names for the react package's two artifact sets.
	OutNameJSXDevRuntime = "jsx-dev-runtime"
	OutNameIndex         = "index"
)

// shimTargets lists the renderer packages that receive the dispatcher linkage
// statement. The noop renderer only exists in test builds.
func shimTargets(mode config.BuildMode) []string {
	targets := []string{PackageReactDOM}
	if mode.IsTest() {
		targets = append(targets, PackageReactNoop)
	}
	return targets
}

// Plan returns the ordered compiler invocations for the mode. Order matters:
// the patch stages assume earlier builds completed and their outputs exist.
func Plan(cfg *config.Config, mode config.BuildMode) []wasmpack.BuildSpec {
	target := wasmpack.TargetDefault
	if mode.IsTest() {
		target = wasmpack.TargetNodeJS
	}

	spec := func(pkg, outName string) wasmpack.BuildSpec {
		return wasmpack.BuildSpec{
			SourceDir: cfg.PackageSourceDir(pkg),
			OutDir:    cfg.PackageOutputDir(pkg),
			OutName:   outName,
			Target:    target,
		}
	}

	specs := []wasmpack.BuildSpec{
		spec(PackageReact, OutNameJSXDevRuntime),
		spec(PackageReact, OutNameIndex),
	}
	if mode.IsTest() {
		specs = append(specs, spec(PackageReactNoop, OutNameIndex))
	}
	return append(specs, spec(PackageReactDOM, OutNameIndex))
}
