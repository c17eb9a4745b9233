package patch

import (
	"os"

	"github.com/squidCatx/big-react-wasm/internal/config"
	"github.com/squidCatx/big-react-wasm/internal/errors"
)

// rewrite applies a pure content transform to the file at path in place.
func rewrite(path string, fn func([]byte) []byte) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.ReadFailed(path, err)
	}
	if err := os.WriteFile(path, fn(content), 0o644); err != nil {
		return errors.WriteFailed(path, err)
	}
	return nil
}

// PrependLinkageFile prepends the mode's linkage statement to the entry file.
func PrependLinkageFile(path string, mode config.BuildMode) error {
	return rewrite(path, func(content []byte) []byte {
		return PrependLinkage(content, mode)
	})
}

// AppendExportFile appends the supplemental export to the entry file.
func AppendExportFile(path string) error {
	return rewrite(path, AppendExport)
}

// AppendExportTypeFile appends the type declaration to the companion .d.ts.
func AppendExportTypeFile(path string) error {
	return rewrite(path, AppendExportType)
}
