package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackupUseCase(t *testing.T) *BackupUseCase {
	t.Helper()
	uc, err := NewBackupUseCaseBuilder().
		WithFileSystem(service.NewFileSystem()).
		WithCopier(service.NewFileCopier(nil, nil)).
		WithClock(fixedClock).
		Build()
	require.NoError(t, err)
	return uc
}

func TestBackupUseCase_Directory(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "project")
	writeTestFile(t, filepath.Join(src, "main.go"), "package main")
	writeTestFile(t, filepath.Join(src, "tmp", "x.log"), "log")

	report, err := newBackupUseCase(t).Execute(context.Background(), domain.BackupRequest{
		Path:    src,
		Stamp:   domain.StampOptions{Suffix: true},
		Exclude: []string{"**/*.log"},
	})
	require.NoError(t, err)

	target := filepath.Join(root, "project_2024-03-05")
	result := report.Results[0]
	assert.Equal(t, target, result.Target)
	assert.True(t, result.IsDir)
	assert.Equal(t, int64(len("package main")), result.Bytes)
	assert.FileExists(t, filepath.Join(target, "main.go"))
	assert.NoFileExists(t, filepath.Join(target, "tmp", "x.log"))
}

func TestBackupUseCase_FileIntoOutputDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "db.sqlite")
	writeTestFile(t, src, "data")
	outDir := t.TempDir()

	report, err := newBackupUseCase(t).Execute(context.Background(), domain.BackupRequest{Path: src, OutputDir: outDir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "2024-03-05_db.sqlite"), report.Results[0].Target)
	assert.FileExists(t, report.Results[0].Target)
}

func TestBackupUseCase_DryRun(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.txt")
	writeTestFile(t, src, "a")

	report, err := newBackupUseCase(t).Execute(context.Background(), domain.BackupRequest{Path: src, DryRun: true})
	require.NoError(t, err)
	assert.True(t, report.Results[0].DryRun)
	assert.NoFileExists(t, filepath.Join(root, "2024-03-05_a.txt"))
}

func TestBackupUseCase_Errors(t *testing.T) {
	root := t.TempDir()
	uc := newBackupUseCase(t)

	_, err := uc.Execute(context.Background(), domain.BackupRequest{})
	assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput))

	_, err = uc.Execute(context.Background(), domain.BackupRequest{Path: filepath.Join(root, "missing")})
	assert.True(t, domain.IsCode(err, domain.ErrCodeFileNotFound))

	src := filepath.Join(root, "a.txt")
	writeTestFile(t, src, "a")
	writeTestFile(t, filepath.Join(root, "2024-03-05_a.txt"), "old")
	_, err = uc.Execute(context.Background(), domain.BackupRequest{Path: src})
	assert.True(t, domain.IsCode(err, domain.ErrCodeIO))

	notDir := filepath.Join(root, "file")
	writeTestFile(t, notDir, "")
	_, err = uc.Execute(context.Background(), domain.BackupRequest{Path: src, OutputDir: notDir})
	assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput))
}

func TestBackupUseCase_CurrentDirectory(t *testing.T) {
	src := filepath.Join(t.TempDir(), "project")
	writeTestFile(t, filepath.Join(src, "a.txt"), "a")
	t.Chdir(src)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	report, err := newBackupUseCase(t).Execute(context.Background(), domain.BackupRequest{Path: "."})
	require.NoError(t, err)

	target := filepath.Join(filepath.Dir(cwd), "2024-03-05_project")
	assert.Equal(t, target, report.Results[0].Target)
	assert.Equal(t, ".", report.Results[0].Source)
	assert.FileExists(t, filepath.Join(target, "a.txt"))

	entries, err := os.ReadDir(cwd)
	require.NoError(t, err)
	require.Len(t, entries, 1, "the source must not receive its own copy")
	assert.Equal(t, "a.txt", entries[0].Name())
}

func TestBackupUseCase_OutputDirInsideSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "project")
	writeTestFile(t, filepath.Join(src, "a.txt"), "a")
	inside := filepath.Join(src, "backups")
	require.NoError(t, os.MkdirAll(inside, 0o755))

	for _, outDir := range []string{src, inside} {
		_, err := newBackupUseCase(t).Execute(context.Background(), domain.BackupRequest{Path: src, OutputDir: outDir})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput), outDir)
	}

	entries, err := os.ReadDir(inside)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoDirExists(t, filepath.Join(src, "2024-03-05_project"))
}
