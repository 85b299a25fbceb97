package app

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockArchiver keeps the real argv construction and records what would run
type mockArchiver struct {
	*service.TarArchiver
	dirCalls  []string
	fileCalls []string
	toolsErr  error
	err       error
}

func newMockArchiver() *mockArchiver {
	return &mockArchiver{TarArchiver: service.NewTarArchiver(nil, nil, "tar")}
}

func (m *mockArchiver) CheckTools(bool, domain.Compression) error {
	return m.toolsErr
}

func (m *mockArchiver) ArchiveDirectory(_ context.Context, src, dest string, _ domain.Compression) error {
	m.dirCalls = append(m.dirCalls, dest)
	if m.err != nil {
		return m.err
	}
	return os.WriteFile(dest, []byte("tar"), 0o644)
}

func (m *mockArchiver) CompressFile(_ context.Context, src, dest string, _ domain.Compression) error {
	m.fileCalls = append(m.fileCalls, dest)
	if m.err != nil {
		return m.err
	}
	return os.WriteFile(dest, []byte("compressed"), 0o644)
}

func newArchiveUseCase(t *testing.T, archiver domain.Archiver) *ArchiveUseCase {
	t.Helper()
	uc, err := NewArchiveUseCaseBuilder().
		WithFileSystem(service.NewFileSystem()).
		WithArchiver(archiver).
		WithCopier(service.NewFileCopier(nil, nil)).
		WithClock(fixedClock).
		Build()
	require.NoError(t, err)
	return uc
}

func TestArchiveUseCase_Directory(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "photos")
	writeTestFile(t, filepath.Join(src, "a.jpg"), "jpg")

	tests := []struct {
		name        string
		compression domain.Compression
		opts        domain.StampOptions
		wantName    string
		wantOption  string
	}{
		{"plain", domain.CompressionNone, domain.StampOptions{}, "2024-03-05_photos.tar", ""},
		{"gzip", domain.CompressionGzip, domain.StampOptions{}, "2024-03-05_photos.tar.gz", "-z"},
		{"zstd suffix", domain.CompressionZstd, domain.StampOptions{Suffix: true}, "photos_2024-03-05.tar.zst", "--zstd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archiver := newMockArchiver()
			report, err := newArchiveUseCase(t, archiver).Execute(context.Background(), domain.ArchiveRequest{
				Path:        src,
				Stamp:       tt.opts,
				Compression: tt.compression,
			})
			require.NoError(t, err)

			result := report.Results[0]
			want := filepath.Join(root, tt.wantName)
			assert.Equal(t, want, result.Target)
			assert.True(t, result.IsDir)
			assert.Equal(t, []string{want}, archiver.dirCalls)
			assert.Equal(t, "tar", result.Command[0])
			if tt.wantOption != "" {
				assert.Equal(t, tt.wantOption, result.Command[2])
			}
			assert.Equal(t, []string{"-C", root, "photos"}, result.Command[len(result.Command)-3:])
		})
	}
}

func TestArchiveUseCase_FileCopy(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "report.txt")
	writeTestFile(t, src, "hello")
	archiver := newMockArchiver()

	report, err := newArchiveUseCase(t, archiver).Execute(context.Background(), domain.ArchiveRequest{Path: src})
	require.NoError(t, err)

	target := filepath.Join(root, "2024-03-05_report.txt")
	assert.Equal(t, target, report.Results[0].Target)
	assert.Equal(t, int64(5), report.Results[0].Bytes)
	assert.Empty(t, report.Results[0].Command)
	assert.Empty(t, archiver.fileCalls)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestArchiveUseCase_FileCompressed(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "report.txt")
	writeTestFile(t, src, "hello")
	archiver := newMockArchiver()

	report, err := newArchiveUseCase(t, archiver).Execute(context.Background(), domain.ArchiveRequest{
		Path:        src,
		Compression: domain.CompressionXZ,
		Stamp:       domain.StampOptions{IncludeTime: true},
	})
	require.NoError(t, err)

	target := filepath.Join(root, "2024-03-05_14.07.09_report.txt.xz")
	assert.Equal(t, target, report.Results[0].Target)
	assert.Equal(t, []string{"xz", "-c", src}, report.Results[0].Command)
	assert.Equal(t, []string{target}, archiver.fileCalls)
}

func TestArchiveUseCase_DryRunDoesNotMutate(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "photos")
	writeTestFile(t, filepath.Join(src, "a.jpg"), "jpg")
	archiver := newMockArchiver()

	report, err := newArchiveUseCase(t, archiver).Execute(context.Background(), domain.ArchiveRequest{
		Path:        src,
		Compression: domain.CompressionBzip2,
		DryRun:      true,
	})
	require.NoError(t, err)
	assert.True(t, report.Results[0].DryRun)
	assert.Empty(t, archiver.dirCalls)
	assert.NoFileExists(t, filepath.Join(root, "2024-03-05_photos.tar.bz2"))
	assert.Contains(t, report.Results[0].Command, "-j")
}

func TestArchiveUseCase_Errors(t *testing.T) {
	root := t.TempDir()
	uc := newArchiveUseCase(t, newMockArchiver())

	t.Run("missing path", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), domain.ArchiveRequest{})
		assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput))
	})

	t.Run("nonexistent path", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), domain.ArchiveRequest{Path: filepath.Join(root, "nope")})
		assert.True(t, domain.IsCode(err, domain.ErrCodeFileNotFound))
	})

	t.Run("unknown compression", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), domain.ArchiveRequest{Path: root, Compression: "lz4"})
		assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput))
	})

	t.Run("existing target", func(t *testing.T) {
		src := filepath.Join(root, "a.txt")
		writeTestFile(t, src, "new")
		writeTestFile(t, filepath.Join(root, "2024-03-05_a.txt"), "old")

		_, err := uc.Execute(context.Background(), domain.ArchiveRequest{Path: src})
		assert.True(t, domain.IsCode(err, domain.ErrCodeIO))
	})

	t.Run("command failure", func(t *testing.T) {
		archiver := newMockArchiver()
		archiver.err = domain.NewExternalCommandError([]string{"tar"}, "tar: boom", nil)
		dir := filepath.Join(root, "d")
		require.NoError(t, os.MkdirAll(dir, 0o755))

		_, err := newArchiveUseCase(t, archiver).Execute(context.Background(), domain.ArchiveRequest{Path: dir})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrCodeExternalCommand))
		assert.Contains(t, err.Error(), "tar: boom")
	})
}

func TestArchiveUseCase_CurrentDirectory(t *testing.T) {
	src := filepath.Join(t.TempDir(), "photos")
	writeTestFile(t, filepath.Join(src, "a.jpg"), "jpg")
	t.Chdir(src)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	parent := filepath.Dir(cwd)

	archiver := newMockArchiver()
	report, err := newArchiveUseCase(t, archiver).Execute(context.Background(), domain.ArchiveRequest{
		Path:        ".",
		Compression: domain.CompressionGzip,
	})
	require.NoError(t, err)

	want := filepath.Join(parent, "2024-03-05_photos.tar.gz")
	assert.Equal(t, want, report.Results[0].Target)
	assert.Equal(t, []string{"-C", parent, "photos"}, report.Results[0].Command[len(report.Results[0].Command)-3:])
	assert.Equal(t, []string{want}, archiver.dirCalls)
}

func TestArchiveUseCase_OutputDirInsideSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "photos")
	writeTestFile(t, filepath.Join(src, "a.jpg"), "jpg")
	archiver := newMockArchiver()

	_, err := newArchiveUseCase(t, archiver).Execute(context.Background(), domain.ArchiveRequest{Path: src, OutputDir: src})
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput))
	assert.Empty(t, archiver.dirCalls)
}

func TestArchiveUseCase_MissingToolCreatesNothing(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "report.txt")
	writeTestFile(t, src, "hello")

	archiver := newMockArchiver()
	archiver.toolsErr = domain.NewExternalCommandError([]string{"zstd"}, "", exec.ErrNotFound)

	_, err := newArchiveUseCase(t, archiver).Execute(context.Background(), domain.ArchiveRequest{
		Path:        src,
		Compression: domain.CompressionZstd,
	})
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeExternalCommand))
	assert.Empty(t, archiver.fileCalls)
	assert.NoFileExists(t, filepath.Join(root, "2024-03-05_report.txt.zst"))

	t.Run("dry run skips the lookup", func(t *testing.T) {
		report, err := newArchiveUseCase(t, archiver).Execute(context.Background(), domain.ArchiveRequest{
			Path:        src,
			Compression: domain.CompressionZstd,
			DryRun:      true,
		})
		require.NoError(t, err)
		assert.True(t, report.Results[0].DryRun)
	})
}
