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
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestFileStatus_String(t *testing.T) {
	assert.Equal(t, "unchanged", StatusUnchanged.String())
	assert.Equal(t, "updated", StatusUpdated.String())
	assert.Equal(t, "would update", StatusWouldUpdate.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
}

func TestManager_ReadWrite(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "client"), 0o755))
	path := filepath.Join(dir, "client", "Client.ts")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	mgr := NewManager(dir, nil)

	content, err := mgr.ReadFile(ctx, "client/Client.ts")
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))

	require.NoError(t, mgr.WriteFile(ctx, "client/Client.ts", []byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestManager_WriteFileMissing(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	dir := t.TempDir()
	mgr := NewManager(dir, nil)

	err := mgr.WriteFile(ctx, "missing.ts", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking file")

	_, statErr := os.Stat(filepath.Join(dir, "missing.ts"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestManager_TrackFile(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	mgr := NewManager(t.TempDir(), nil)

	mgr.TrackFile(ctx, FileInfo{Path: "b.ts", Status: StatusUpdated, Replacements: 2})
	mgr.TrackFile(ctx, FileInfo{Path: "a.ts", Status: StatusFailed, Error: errors.New("boom")})

	files := mgr.ListFiles()
	require.Len(t, files, 2)
	assert.Equal(t, "a.ts", files[0].Path)
	assert.Equal(t, "b.ts", files[1].Path)
	assert.Equal(t, StatusUpdated, files[1].Status)
	assert.Equal(t, 2, files[1].Replacements)
	assert.Equal(t, StatusFailed, files[0].Status)
}

func TestDefaultFileFormatter(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	f := NewDefaultFileFormatter()

	tests := []struct {
		name string
		info FileInfo
		want string
	}{
		{"updated", FileInfo{Path: "client/Client.ts", Status: StatusUpdated}, "  ✓ client/Client.ts"},
		{"would_update", FileInfo{Path: "a.ts", Status: StatusWouldUpdate}, "  ⟳ a.ts"},
		{"unchanged", FileInfo{Path: "a.ts", Status: StatusUnchanged}, "  - a.ts"},
		{"failed", FileInfo{Path: "a.ts", Status: StatusFailed, Error: errors.New("boom")}, "  ✗ a.ts (boom)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatFileOperation(tt.info))
		})
	}

	assert.Equal(t, "Updated 3/10 files", f.FormatSummary(3, 10))
	assert.Equal(t, "❌ Error: boom", f.FormatError(errors.New("boom")))
	assert.Empty(t, f.FormatError(nil))
}
