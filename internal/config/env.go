package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/squidCatx/big-react-wasm/internal/logfields"
)

// loadEnvFile loads environment variables from .env/.env.local files.
// It attempts each supported filename in order and stops at the first
// successfully parsed file. Existing process environment is not overwritten.
func loadEnvFile() {
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment file", logfields.Path(envPath))
			return
		}
	}
}

// applyEnvOverrides lets DISTBUILD_* variables override file-provided values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DISTBUILD_OUTPUT_ROOT"); v != "" {
		cfg.OutputRoot = v
	}
	if v := os.Getenv("DISTBUILD_PACKAGES_DIR"); v != "" {
		cfg.PackagesDir = v
	}
	if v := os.Getenv("DISTBUILD_WASM_PACK"); v != "" {
		cfg.WasmPackBin = v
	}
}
