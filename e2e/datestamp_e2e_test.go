package e2e

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"
)

var stampedPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_`)

// TestCreateE2E creates a stamped file and leaves it alone on a second run
func TestCreateE2E(t *testing.T) {
	binaryPath := buildDatestampBinary(t)
	testDir := t.TempDir()

	stdout, stderr, err := runDatestamp(t, binaryPath, testDir, "create", "notes.md")
	if err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "was created.") {
		t.Errorf("Unexpected output: %q", stdout)
	}

	names := listNames(t, testDir)
	if len(names) != 1 || !stampedPrefix.MatchString(names[0]) || !strings.HasSuffix(names[0], "_notes.md") {
		t.Fatalf("Expected one stamped notes.md, got %v", names)
	}

	created := filepath.Join(testDir, names[0])
	if err := os.WriteFile(created, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err = runDatestamp(t, binaryPath, testDir, "create", "notes.md")
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	if !strings.Contains(stdout, "already exists.") {
		t.Errorf("Expected 'already exists.', got %q", stdout)
	}
	data, _ := os.ReadFile(created)
	if string(data) != "keep me" {
		t.Error("Existing file must not be truncated")
	}
}

// TestErrorExitCodeE2E checks failures exit non-zero with a categorized message
func TestErrorExitCodeE2E(t *testing.T) {
	binaryPath := buildDatestampBinary(t)
	testDir := t.TempDir()

	_, stderr, err := runDatestamp(t, binaryPath, testDir, "archive", "missing-dir")
	if err == nil {
		t.Fatal("Expected archive of a missing path to fail")
	}
	if !strings.Contains(stderr, "Error: File or directory not found") {
		t.Errorf("Unexpected stderr: %q", stderr)
	}

	_, stderr, err = runDatestamp(t, binaryPath, testDir, "-v", "archive", "--gzip", "--xz", testDir)
	if err == nil {
		t.Fatal("Expected conflicting compression flags to fail")
	}
	if !strings.Contains(stderr, "Suggestions:") {
		t.Errorf("Verbose errors should include suggestions, got %q", stderr)
	}
}

// TestArchiveDirectoryE2E archives a directory with tar and gzip
func TestArchiveDirectoryE2E(t *testing.T) {
	requireTools(t, "tar", "gzip")
	binaryPath := buildDatestampBinary(t)
	testDir := t.TempDir()
	createTestFile(t, testDir, "photos/a.jpg", "a")
	createTestFile(t, testDir, "photos/sub/b.jpg", "b")

	_, stderr, err := runDatestamp(t, binaryPath, testDir, "archive", "--gzip", "photos")
	if err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr)
	}

	var archive string
	for _, name := range listNames(t, testDir) {
		if strings.HasSuffix(name, "_photos.tar.gz") {
			archive = filepath.Join(testDir, name)
		}
	}
	if archive == "" {
		t.Fatalf("No archive created, entries: %v", listNames(t, testDir))
	}

	f, err := os.Open(archive)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("Archive is not gzip: %v", err)
	}
	tr := tar.NewReader(gz)

	var members []string
	for {
		hdr, err := tr.Next()
		if err != nil {
			break
		}
		members = append(members, strings.TrimSuffix(hdr.Name, "/"))
	}
	sort.Strings(members)

	for _, want := range []string{"photos", "photos/a.jpg", "photos/sub/b.jpg"} {
		found := false
		for _, m := range members {
			if m == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Archive missing %s, members: %v", want, members)
		}
	}
}

// TestConfigFileE2E uses a discovered .datestamp.toml for suffix mode and
// output placement
func TestConfigFileE2E(t *testing.T) {
	binaryPath := buildDatestampBinary(t)
	testDir := t.TempDir()
	outputDir := filepath.Join(testDir, "out")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		t.Fatal(err)
	}
	createTestConfigFile(t, testDir, outputDir)
	createTestFile(t, testDir, "db.sql", "select 1;")

	_, stderr, err := runDatestamp(t, binaryPath, testDir, "backup", "db.sql")
	if err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr)
	}

	names := listNames(t, outputDir)
	if len(names) != 1 || !regexp.MustCompile(`^db_\d{4}-\d{2}-\d{2}\.sql$`).MatchString(names[0]) {
		t.Fatalf("Expected suffix-stamped backup in output dir, got %v", names)
	}
}

// TestTouchJSONE2E restamps files matched by a glob and reports in JSON
func TestTouchJSONE2E(t *testing.T) {
	binaryPath := buildDatestampBinary(t)
	testDir := t.TempDir()
	createTestFile(t, testDir, "1999-12-31_a.txt", "a")
	createTestFile(t, testDir, "1999-12-31_b.txt", "b")

	stdout, stderr, err := runDatestamp(t, binaryPath, testDir, "touch", "--format", "json", "*.txt")
	if err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr)
	}

	var report struct {
		Results []struct {
			Operation string `json:"operation"`
			Target    string `json:"target"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, stdout)
	}
	if len(report.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(report.Results))
	}

	for _, name := range listNames(t, testDir) {
		if strings.HasPrefix(name, "1999-12-31_") {
			t.Errorf("File %s was not restamped", name)
		}
	}
}
