package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squidCatx/big-react-wasm/internal/config"
)

func TestPrependLinkage_TestMode(t *testing.T) {
	original := []byte("function render() {}\n")

	out := PrependLinkage(original, config.ModeTest)

	require.Equal(t, "const {updateDispatcher} = require('react');\nfunction render() {}\n", string(out))
}

func TestPrependLinkage_ProductionMode(t *testing.T) {
	original := []byte("function render() {}\n")

	out := PrependLinkage(original, config.ModeProduction)

	require.Equal(t, "import {updateDispatcher} from 'react';\nfunction render() {}\n", string(out))
}

func TestPrependLinkage_PreservesOriginalBytes(t *testing.T) {
	// Content is never parsed; every original byte must survive untouched.
	original := []byte("\x00\xffweird // import {x} from 'y'\n\t ")

	out := PrependLinkage(original, config.ModeProduction)

	stmt := LinkageStatement(config.ModeProduction)
	require.True(t, strings.HasPrefix(string(out), stmt))
	require.Equal(t, original, out[len(stmt):])
}

func TestPrependLinkage_NotIdempotent(t *testing.T) {
	// Re-applying stacks a second linkage line. Current behavior, preserved
	// deliberately; safe only because every run starts from a workspace reset.
	out := PrependLinkage(PrependLinkage([]byte("x"), config.ModeTest), config.ModeTest)

	stmt := LinkageStatement(config.ModeTest)
	require.Equal(t, stmt+stmt+"x", string(out))
}

func TestAppendExport(t *testing.T) {
	original := []byte("export function jsxDEV() {}\n")

	out := AppendExport(original)

	require.Equal(t, string(original)+"export const Fragment = 'react.fragment';\n", string(out))
}

func TestAppendExport_DoesNotMutateInput(t *testing.T) {
	original := []byte("abc")
	saved := string(original)

	_ = AppendExport(original)

	require.Equal(t, saved, string(original))
}

func TestAppendExportType(t *testing.T) {
	original := []byte("export function jsxDEV(type: any): any;\n")

	out := AppendExportType(original)

	require.Equal(t, string(original)+"export const Fragment: string;\n", string(out))
}

func TestLinkageStatement_ModeVariants(t *testing.T) {
	require.Contains(t, LinkageStatement(config.ModeTest), "require(")
	require.Contains(t, LinkageStatement(config.ModeProduction), "import ")
	// Both variants resolve the same hook from the react package.
	require.Contains(t, LinkageStatement(config.ModeTest), "updateDispatcher")
	require.Contains(t, LinkageStatement(config.ModeProduction), "updateDispatcher")
}
