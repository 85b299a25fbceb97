package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ludo-technologies/datestamp/domain"
)

// ErrorCategorizerImpl implements the ErrorCategorizer interface
type ErrorCategorizerImpl struct {
	codes    map[string]domain.ErrorCategory
	patterns []categoryPatterns
}

type categoryPatterns struct {
	category domain.ErrorCategory
	patterns []string
}

// NewErrorCategorizer creates a new error categorizer
func NewErrorCategorizer() domain.ErrorCategorizer {
	return &ErrorCategorizerImpl{
		codes: map[string]domain.ErrorCategory{
			domain.ErrCodeInvalidInput:    domain.ErrorCategoryInput,
			domain.ErrCodeFileNotFound:    domain.ErrorCategoryNotFound,
			domain.ErrCodeIO:              domain.ErrorCategoryFilesystem,
			domain.ErrCodeExternalCommand: domain.ErrorCategoryCommand,
			domain.ErrCodeConfigError:     domain.ErrorCategoryConfig,
			domain.ErrCodeOutputError:     domain.ErrorCategoryOutput,
		},
		patterns: initializeErrorPatterns(),
	}
}

// initializeErrorPatterns maps message fragments of errors that did not
// come from the domain layer, such as cobra argument errors
func initializeErrorPatterns() []categoryPatterns {
	return []categoryPatterns{
		{domain.ErrorCategoryInput, []string{
			"accepts",
			"requires at least",
			"unknown flag",
			"unknown command",
			"invalid argument",
		}},
		{domain.ErrorCategoryNotFound, []string{
			"no such file",
			"not found",
		}},
		{domain.ErrorCategoryFilesystem, []string{
			"permission denied",
			"file exists",
			"read-only file system",
		}},
		{domain.ErrorCategoryConfig, []string{
			"config",
			"toml",
			"yaml",
		}},
	}
}

// Categorize determines the category of an error. Domain error codes take
// precedence over message patterns.
func (ec *ErrorCategorizerImpl) Categorize(err error) *domain.CategorizedError {
	if err == nil {
		return nil
	}

	category := domain.ErrorCategoryUnknown
	var de domain.DomainError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		category = domain.ErrorCategoryCancelled
	case errors.As(err, &de):
		if c, ok := ec.codes[de.Code]; ok {
			category = c
		}
	default:
		errMsg := strings.ToLower(err.Error())
		for _, cp := range ec.patterns {
			if containsAnyPattern(errMsg, cp.patterns) {
				category = cp.category
				break
			}
		}
	}

	return &domain.CategorizedError{
		Category: category,
		Message:  ec.getCategoryMessage(category),
		Original: err,
	}
}

// GetRecoverySuggestions returns recovery suggestions for an error category
func (ec *ErrorCategorizerImpl) GetRecoverySuggestions(category domain.ErrorCategory) []string {
	suggestions := map[domain.ErrorCategory][]string{
		domain.ErrorCategoryInput: {
			"Check the command arguments: datestamp <command> --help",
			"Use only one of --gzip, --bzip2, --xz, --zstd",
		},
		domain.ErrorCategoryNotFound: {
			"Check that the file or directory exists",
			"Quote glob patterns so the shell does not expand them",
		},
		domain.ErrorCategoryFilesystem: {
			"Check permissions of the source and the output directory",
			"A file with the stamped name may already exist; try --time",
		},
		domain.ErrorCategoryCommand: {
			"Ensure tar and the selected compressor are installed and on PATH",
			"Run with --verbose to see the command output",
		},
		domain.ErrorCategoryConfig: {
			"Verify configuration file format and values",
			"Try: datestamp init to generate a valid config file",
		},
		domain.ErrorCategoryOutput: {
			"Use --format text, json or yaml",
		},
		domain.ErrorCategoryUnknown: {
			"Run with --verbose for detailed error information",
		},
	}

	if sug, ok := suggestions[category]; ok {
		return sug
	}
	return []string{"Check the error message for more details"}
}

// getCategoryMessage returns a user-friendly message for an error category
func (ec *ErrorCategorizerImpl) getCategoryMessage(category domain.ErrorCategory) string {
	messages := map[domain.ErrorCategory]string{
		domain.ErrorCategoryInput:      "Invalid arguments",
		domain.ErrorCategoryNotFound:   "File or directory not found",
		domain.ErrorCategoryFilesystem: "Filesystem operation failed",
		domain.ErrorCategoryCommand:    "External command failed",
		domain.ErrorCategoryConfig:     "Configuration file or settings error",
		domain.ErrorCategoryOutput:     "Failed to write output",
		domain.ErrorCategoryCancelled:  "Operation cancelled",
		domain.ErrorCategoryUnknown:    "An unexpected error occurred",
	}

	if msg, ok := messages[category]; ok {
		return msg
	}
	return "An error occurred"
}

// containsAnyPattern checks if a string contains any of the given patterns
func containsAnyPattern(str string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(str, pattern) {
			return true
		}
	}
	return false
}
