package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squidCatx/big-react-wasm/internal/config"
	"github.com/squidCatx/big-react-wasm/internal/wasmpack"
)

func planConfig() *config.Config {
	return &config.Config{OutputRoot: "dist", PackagesDir: "packages", WasmPackBin: "wasm-pack"}
}

func TestPlan_Production(t *testing.T) {
	specs := Plan(planConfig(), config.ModeProduction)

	require.Len(t, specs, 3)
	require.Equal(t, filepath.Join("packages", "react"), specs[0].SourceDir)
	require.Equal(t, OutNameJSXDevRuntime, specs[0].OutName)
	require.Equal(t, filepath.Join("packages", "react"), specs[1].SourceDir)
	require.Equal(t, OutNameIndex, specs[1].OutName)
	require.Equal(t, filepath.Join("packages", "react-dom"), specs[2].SourceDir)
	require.Equal(t, OutNameIndex, specs[2].OutName)

	// No spec targets the noop renderer and none carries the node target flag.
	for _, s := range specs {
		require.NotContains(t, s.SourceDir, PackageReactNoop)
		require.Equal(t, wasmpack.TargetDefault, s.Target)
	}
}

func TestPlan_Test(t *testing.T) {
	specs := Plan(planConfig(), config.ModeTest)

	require.Len(t, specs, 4)
	require.Equal(t, filepath.Join("packages", "react"), specs[0].SourceDir)
	require.Equal(t, filepath.Join("packages", "react"), specs[1].SourceDir)
	require.Equal(t, filepath.Join("packages", "react-noop-renderer"), specs[2].SourceDir)
	require.Equal(t, filepath.Join("packages", "react-dom"), specs[3].SourceDir)

	// The node target flag applies to every invocation in test mode.
	for _, s := range specs {
		require.Equal(t, wasmpack.TargetNodeJS, s.Target)
	}
}

func TestPlan_OutputDirsAbsolute(t *testing.T) {
	for _, s := range Plan(planConfig(), config.ModeTest) {
		require.True(t, filepath.IsAbs(s.OutDir), "out dir %s should be absolute", s.OutDir)
	}
}

func TestShimTargets(t *testing.T) {
	require.Equal(t, []string{PackageReactDOM}, shimTargets(config.ModeProduction))
	require.Equal(t, []string{PackageReactDOM, PackageReactNoop}, shimTargets(config.ModeTest))
}
