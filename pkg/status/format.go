package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent = 2 // spaces to indent file entries
)

// FileFormatter defines how file outcomes and the run summary are formatted
type FileFormatter interface {
	// FormatFileOperation formats the outcome of a single file
	FormatFileOperation(info FileInfo) string

	// FormatSummary formats the final updated/total line
	FormatSummary(updated, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file outcome, e.g. "  ✓ client/Client.ts"
func (f *DefaultFileFormatter) FormatFileOperation(info FileInfo) string {
	var prefix string
	switch info.Status {
	case StatusUpdated:
		prefix = color.GreenString("✓")
	case StatusWouldUpdate:
		prefix = color.YellowString("⟳")
	case StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	line := fmt.Sprintf("%s%s %s", strings.Repeat(" ", fileIndent), prefix, info.Path)
	if info.Status == StatusFailed && info.Error != nil {
		line += " " + color.RedString("(%v)", info.Error)
	}
	return line
}

// FormatSummary formats the run summary, e.g. "Updated 3/10 files"
func (f *DefaultFileFormatter) FormatSummary(updated, total int) string {
	return fmt.Sprintf("Updated %d/%d files", updated, total)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
