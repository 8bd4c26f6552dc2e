package text

import (
	"context"
	"io"

	"github.com/walteh/repath/pkg/rules"
)

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates the modified content differs from the original
	WasModified bool

	// ReplacementCount is the number of pattern matches replaced across all rules
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a rule set to the content
	// Returns a ReplacementResult containing the modified content and metadata
	ReplaceText(ctx context.Context, content io.Reader, set *rules.Set) (*ReplacementResult, error)
}
