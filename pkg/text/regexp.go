package text

import (
	"bytes"
	"context"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/repath/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// ErrDecode is returned when content is not valid UTF-8 text
var ErrDecode = errors.Base("content is not valid utf-8")

// RegexpTextReplacer implements TextReplacer using an ordered regexp rule set
type RegexpTextReplacer struct{}

// NewRegexpTextReplacer creates a new RegexpTextReplacer
func NewRegexpTextReplacer() *RegexpTextReplacer {
	return &RegexpTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *RegexpTextReplacer) ReplaceText(ctx context.Context, content io.Reader, set *rules.Set) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result, err := Transform(originalContent, set)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Trace().
		Int("rules", set.Len()).
		Int("replacements", result.ReplacementCount).
		Bool("modified", result.WasModified).
		Msg("applied rules")

	return result, nil
}

// Transform applies every rule of set, in order, to content.
// Content is never mutated; the result is computed entirely in memory.
func Transform(content []byte, set *rules.Set) (*ReplacementResult, error) {
	if !utf8.Valid(content) {
		return nil, errors.WithStack(ErrDecode)
	}

	modified, count := set.Apply(content)

	return &ReplacementResult{
		WasModified:      !bytes.Equal(content, modified),
		ReplacementCount: count,
		OriginalContent:  content,
		ModifiedContent:  modified,
	}, nil
}
