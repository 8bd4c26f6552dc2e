// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of processing a file
type FileStatus int

const (
	StatusUnknown     FileStatus = iota
	StatusUnchanged              // No rule changed the content
	StatusUpdated                // Content changed and was written back
	StatusWouldUpdate            // Content would change (dry run)
	StatusFailed                 // Reading, decoding or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusUpdated:
		return "updated"
	case StatusWouldUpdate:
		return "would update"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the outcome for a single file
type FileInfo struct {
	Path         string     // Path relative to the base directory
	Status       FileStatus // Outcome
	Replacements int        // Number of matches replaced
	Error        error      // Any error associated with this file
}

// 💾 FileManager handles the file system reads and writes of a run
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 🔧 Manager reads and writes files under a base directory and records their outcome
type Manager struct {
	baseDir   string
	formatter FileFormatter
	files     map[string]FileInfo
}

// 🏭 NewManager creates a new status manager rooted at baseDir
func NewManager(baseDir string, formatter FileFormatter) *Manager {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		formatter: formatter,
		files:     make(map[string]FileInfo),
	}
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

// ReadFile reads a file relative to the base directory
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile overwrites an existing file in place, keeping its permissions.
// The new content must be fully computed before calling; the write is not atomic.
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	info, err := os.Stat(absPath)
	if err != nil {
		return errors.Errorf("checking file: %w", err)
	}

	if err := os.WriteFile(absPath, content, info.Mode().Perm()); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

// TrackFile records the outcome for a file
func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.files[info.Path] = info

	evt := zerolog.Ctx(ctx).Debug()
	if info.Error != nil {
		evt = zerolog.Ctx(ctx).Warn().Err(info.Error)
	}
	evt.Str("path", info.Path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg(m.formatter.FormatFileOperation(info))
}

// ListFiles returns every recorded outcome sorted by path
func (m *Manager) ListFiles() []FileInfo {
	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}
