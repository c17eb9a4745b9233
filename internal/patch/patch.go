// Package patch holds the fixed text patches applied to generated entry
// files. The content transforms are pure functions over bytes so they can be
// unit-tested without touching the filesystem.
package patch

import (
	"github.com/squidCatx/big-react-wasm/internal/config"
)

const (
	// The renderer packages resolve react's mutable dispatch table at load
	// time. Under the node test runtime the artifact is CommonJS, so the hook
	// is pulled in with require; the default artifact uses a static import.
	linkageRequire = "const {updateDispatcher} = require('react');\n"
	linkageImport  = "import {updateDispatcher} from 'react';\n"

	// wasm-pack does not emit the Fragment constant react's public contract
	// requires, so it is appended after the build.
	fragmentExport   = "export const Fragment = 'react.fragment';\n"
	fragmentTypeDecl = "export const Fragment: string;\n"
)

// LinkageStatement returns the cross-package linkage line for the mode.
func LinkageStatement(mode config.BuildMode) string {
	if mode.IsTest() {
		return linkageRequire
	}
	return linkageImport
}

// PrependLinkage returns the linkage statement followed by content, byte for
// byte. Not idempotent: applying twice stacks two linkage lines.
func PrependLinkage(content []byte, mode config.BuildMode) []byte {
	stmt := LinkageStatement(mode)
	out := make([]byte, 0, len(stmt)+len(content))
	out = append(out, stmt...)
	return append(out, content...)
}

// AppendExport returns content followed by the supplemental Fragment export.
func AppendExport(content []byte) []byte {
	return append(append([]byte{}, content...), fragmentExport...)
}

// AppendExportType returns content followed by the Fragment type declaration.
func AppendExportType(content []byte) []byte {
	return append(append([]byte{}, content...), fragmentTypeDecl...)
}
