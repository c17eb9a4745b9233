package workspace

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/squidCatx/big-react-wasm/internal/errors"
	"github.com/squidCatx/big-react-wasm/internal/logfields"
)

// Manager owns the output root directory for a build run.
type Manager struct {
	root string
}

// NewManager creates a workspace manager for the given output root.
func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// Root returns the path to the output root directory.
func (m *Manager) Root() string {
	return m.root
}

// PackageDir returns the output directory for a named package.
func (m *Manager) PackageDir(name string) string {
	return filepath.Join(m.root, name)
}

// Reset removes the entire output root and recreates it empty, so every build
// starts from a deterministic state. A nonexistent root is a silent no-op for
// the removal step.
func (m *Manager) Reset() error {
	if err := os.RemoveAll(m.root); err != nil {
		return errors.WorkspaceError("remove", err)
	}
	if err := os.MkdirAll(m.root, 0o750); err != nil {
		return errors.WorkspaceError("create", err)
	}
	slog.Info("Reset output workspace", logfields.Path(m.root))
	return nil
}
