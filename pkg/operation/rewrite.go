package operation

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/repath/pkg/status"
	"github.com/walteh/repath/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Rewrite implements Operator.Rewrite
func (o *operator) Rewrite(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	root := o.opts.Root
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %w", ErrRootNotFound, root, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	logger.Debug().
		Str("root", root).
		Strs("include", o.opts.Include).
		Strs("exclude", o.opts.Exclude).
		Int("rules", o.opts.Rules.Len()).
		Bool("dry_run", o.opts.DryRun).
		Msg("rewriting files")

	summary := &Summary{}
	tracker := status.NewManager(root, nil)
	files := o.opts.Files
	if files == nil {
		files = tracker
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// unreadable directory: nothing under it can be selected
			logger.Warn().Err(walkErr).Str("path", path).Msg("skipping unreadable path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if !o.selected(rel) {
			return nil
		}

		fileInfo, result := o.processFile(ctx, files, rel)
		tracker.TrackFile(ctx, fileInfo)
		o.opts.Reporter.LogFileOperation(ctx, fileInfo)
		if o.opts.Diff && fileInfo.Status != status.StatusFailed {
			o.opts.Reporter.LogDiff(text.Diff(result))
		}

		summary.Total++
		switch fileInfo.Status {
		case status.StatusUpdated, status.StatusWouldUpdate:
			summary.Updated++
			summary.Changed = append(summary.Changed, rel)
		case status.StatusFailed:
			summary.Failures = append(summary.Failures, FileFailure{Path: rel, Err: fileInfo.Error})
		}

		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	summary.Files = tracker.ListFiles()

	logger.Debug().
		Int("total", summary.Total).
		Int("updated", summary.Updated).
		Int("failed", len(summary.Failures)).
		Msg("rewrite complete")

	return summary, nil
}

// selected reports whether a slash separated relative path passes the include/exclude globs
func (o *operator) selected(rel string) bool {
	return matchAny(o.opts.Include, rel) && !matchAny(o.opts.Exclude, rel)
}

// processFile reads, transforms and conditionally writes back a single file.
// Errors are returned inside the FileInfo so the walk can continue.
func (o *operator) processFile(ctx context.Context, files status.FileManager, rel string) (status.FileInfo, *text.ReplacementResult) {
	fileInfo := status.FileInfo{Path: rel, Status: status.StatusUnchanged}

	content, err := files.ReadFile(ctx, rel)
	if err != nil {
		fileInfo.Status = status.StatusFailed
		fileInfo.Error = errors.Errorf("%w: %w", ErrFileRead, err)
		return fileInfo, nil
	}

	result, err := o.opts.Replacer.ReplaceText(ctx, bytes.NewReader(content), o.opts.Rules)
	if err != nil {
		fileInfo.Status = status.StatusFailed
		fileInfo.Error = errors.Errorf("transforming: %w", err)
		return fileInfo, nil
	}
	fileInfo.Replacements = result.ReplacementCount

	if !result.WasModified {
		return fileInfo, result
	}

	if o.opts.DryRun {
		fileInfo.Status = status.StatusWouldUpdate
	} else {
		if err := files.WriteFile(ctx, rel, result.ModifiedContent); err != nil {
			fileInfo.Status = status.StatusFailed
			fileInfo.Error = errors.Errorf("%w: %w", ErrFileWrite, err)
			return fileInfo, nil
		}
		fileInfo.Status = status.StatusUpdated
	}

	return fileInfo, result
}

// matchAny reports whether path matches any of the doublestar patterns
func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		// patterns are validated in New, so Match cannot fail here
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
