package rules

import (
	"fmt"
	"strings"
)

// ValidationError is a configuration problem tied to the key that caused it.
type ValidationError struct {
	Field      string
	Message    string
	Path       string
	Suggestion string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Configuration error at %s: %s", e.Path, e.Message))
	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\nSuggestion: %s", e.Suggestion))
	}
	return sb.String()
}

// UndefinedVariable reports a ${VAR} reference with no matching environment variable.
func UndefinedVariable(varName, path string) *ValidationError {
	return &ValidationError{
		Field:      "env variable",
		Message:    fmt.Sprintf("undefined environment variable referenced: %s", varName),
		Path:       path,
		Suggestion: fmt.Sprintf("Set the environment variable %s before running syntaxdemo", varName),
	}
}

// MissingRequired reports an empty value for a key that must be set.
func MissingRequired(fieldName, path, suggestion string) *ValidationError {
	return &ValidationError{
		Field:      fieldName,
		Message:    fmt.Sprintf("'%s' is required", fieldName),
		Path:       path,
		Suggestion: suggestion,
	}
}

// UnsupportedFormat reports a config file whose extension has no decoder.
func UnsupportedFormat(ext, path string) *ValidationError {
	return &ValidationError{
		Field:      "format",
		Message:    fmt.Sprintf("unsupported config file extension '%s'", ext),
		Path:       path,
		Suggestion: "Use a .toml, .yaml or .yml file",
	}
}

// FileName rejects log file names that would escape the log directory.
func FileName(name, path string) *ValidationError {
	if strings.ContainsAny(name, `/\`) {
		return &ValidationError{
			Field:      "file",
			Message:    fmt.Sprintf("log file name must not contain path separators, got '%s'", name),
			Path:       path,
			Suggestion: "Put the directory in log.dir and only the file name in log.file",
		}
	}
	return nil
}
