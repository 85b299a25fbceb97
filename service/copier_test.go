package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/datestamp/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProgress captures calls made by the copier
type recordingProgress struct {
	total  int64
	added  int64
	closed bool
}

func (p *recordingProgress) Initialize(total int64) { p.total = total }
func (p *recordingProgress) Add(n int64)            { p.added += n }
func (p *recordingProgress) SetWriter(io.Writer)    {}
func (p *recordingProgress) IsInteractive() bool    { return false }
func (p *recordingProgress) Close()                 { p.closed = true }

func createTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestFileCopier_CopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o600))
	dest := filepath.Join(dir, "2024-03-05_report.txt")

	progress := &recordingProgress{}
	n, err := NewFileCopier(progress, nil).Copy(context.Background(), src, dest, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	assert.Equal(t, int64(5), progress.total)
	assert.Equal(t, int64(5), progress.added)
	assert.True(t, progress.closed)
}

func TestFileCopier_CopyTree(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "project")
	createTree(t, src, map[string]string{
		"main.go":          "package main",
		"docs/readme.md":   "docs",
		"build/out.bin":    "binary",
		"cache/a.tmp":      "tmp",
		"nested/deep/b.go": "b",
		".DS_Store":        "junk",
	})
	require.NoError(t, os.Symlink("main.go", filepath.Join(src, "link.go")))

	dest := filepath.Join(dir, "2024-03-05_project")
	progress := &recordingProgress{}
	exclude := []string{"build/**", "**/*.tmp", "**/.DS_Store"}

	n, err := NewFileCopier(progress, nil).Copy(context.Background(), src, dest, exclude)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dest, "main.go"))
	assert.FileExists(t, filepath.Join(dest, "docs", "readme.md"))
	assert.FileExists(t, filepath.Join(dest, "nested", "deep", "b.go"))
	assert.NoFileExists(t, filepath.Join(dest, "build", "out.bin"))
	assert.NoFileExists(t, filepath.Join(dest, "cache", "a.tmp"))
	assert.NoFileExists(t, filepath.Join(dest, ".DS_Store"))

	link, err := os.Readlink(filepath.Join(dest, "link.go"))
	require.NoError(t, err)
	assert.Equal(t, "main.go", link)

	want := int64(len("package main") + len("docs") + len("b"))
	assert.Equal(t, want, n)
	assert.Equal(t, want, progress.total)
	assert.Equal(t, want, progress.added)
}

func TestFileCopier_Errors(t *testing.T) {
	dir := t.TempDir()
	copier := NewFileCopier(nil, nil)

	t.Run("missing source", func(t *testing.T) {
		_, err := copier.Copy(context.Background(), filepath.Join(dir, "missing"), filepath.Join(dir, "out"), nil)
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrCodeFileNotFound))
	})

	t.Run("existing destination", func(t *testing.T) {
		src := filepath.Join(dir, "a.txt")
		dest := filepath.Join(dir, "b.txt")
		require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
		require.NoError(t, os.WriteFile(dest, []byte("old"), 0o644))

		_, err := copier.Copy(context.Background(), src, dest, nil)
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrCodeIO))

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := copier.Copy(context.Background(), dir, filepath.Join(dir, "x"), []string{"[unclosed"})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput))
	})

	t.Run("destination inside source", func(t *testing.T) {
		src := filepath.Join(dir, "nested")
		createTree(t, src, map[string]string{"a": "1"})

		for _, dest := range []string{src, filepath.Join(src, "copy"), filepath.Join(src, "deep", "copy")} {
			_, err := copier.Copy(context.Background(), src, dest, nil)
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput), dest)
		}
		assert.NoDirExists(t, filepath.Join(src, "copy"))
		assert.NoDirExists(t, filepath.Join(src, "deep"))
	})

	t.Run("sibling with shared prefix is allowed", func(t *testing.T) {
		src := filepath.Join(dir, "proj")
		createTree(t, src, map[string]string{"a": "1"})

		_, err := copier.Copy(context.Background(), src, filepath.Join(dir, "proj-copy"), nil)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "proj-copy", "a"))
	})

	t.Run("cancelled context removes partial tree", func(t *testing.T) {
		src := filepath.Join(dir, "tree")
		createTree(t, src, map[string]string{"a": "1", "b/c": "2"})
		dest := filepath.Join(dir, "tree-copy")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := copier.Copy(ctx, src, dest, nil)
		require.Error(t, err)
		assert.NoDirExists(t, dest)
	})
}
