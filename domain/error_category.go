package domain

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	ErrorCategoryInput      ErrorCategory = "Input Error"
	ErrorCategoryNotFound   ErrorCategory = "Not Found"
	ErrorCategoryFilesystem ErrorCategory = "Filesystem Error"
	ErrorCategoryCommand    ErrorCategory = "External Command Error"
	ErrorCategoryConfig     ErrorCategory = "Configuration Error"
	ErrorCategoryOutput     ErrorCategory = "Output Error"
	ErrorCategoryCancelled  ErrorCategory = "Cancelled"
	ErrorCategoryUnknown    ErrorCategory = "Unknown Error"
)

// CategorizedError represents an error with category information
type CategorizedError struct {
	Category ErrorCategory
	Message  string
	Original error
}

// Error implements the error interface
func (e *CategorizedError) Error() string {
	if e.Original != nil {
		return e.Original.Error()
	}
	return e.Message
}

// Unwrap returns the original error
func (e *CategorizedError) Unwrap() error {
	return e.Original
}

// ErrorCategorizer categorizes errors for better reporting
type ErrorCategorizer interface {
	// Categorize determines the category of an error
	Categorize(err error) *CategorizedError

	// GetRecoverySuggestions returns recovery suggestions for an error category
	GetRecoverySuggestions(category ErrorCategory) []string
}
