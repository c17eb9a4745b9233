package errors

// Convenience functions for common error patterns

// Config errors

func ConfigInvalid(field, reason string) *BuildError {
	return New(CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

// External toolchain errors

func ToolFailed(pkg string, cause error) *BuildError {
	return Wrap(cause, CategoryTool, SeverityFatal, "compiler invocation failed").
		WithContext("package", pkg)
}

func ToolNotFound(bin string, cause error) *BuildError {
	return Wrap(cause, CategoryTool, SeverityFatal, "compiler binary not found").
		WithContext("binary", bin)
}

// Filesystem errors

func ReadFailed(path string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "file read failed").
		WithContext("path", path)
}

func WriteFailed(path string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "file write failed").
		WithContext("path", path)
}

func WorkspaceError(operation string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "workspace operation failed").
		WithContext("operation", operation)
}

// Format errors

func ManifestInvalid(path string, cause error) *BuildError {
	return Wrap(cause, CategoryFormat, SeverityFatal, "manifest is not valid JSON").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *BuildError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
