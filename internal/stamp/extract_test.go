package stamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStamp(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedName  string
		expectedFound bool
	}{
		{"prefix stamp", "2024-03-05_report.txt", "report.txt", true},
		{"suffix stamp", "report_2024-03-05.txt", "report.txt", true},
		{"prefix stamp with time", "2024-03-05_14.07.09_report.txt", "report.txt", true},
		{"suffix stamp with time", "report_2024-03-05_14.07.09.txt", "report.txt", true},
		{"stamp only", "2024-03-05.tar", ".tar", true},
		{"no stamp", "plainfile.txt", "plainfile.txt", false},
		{"partial date", "report_2024-03.txt", "report_2024-03.txt", false},
		{"invalid calendar values still match", "9999-99-99_notes.md", "notes.md", true},
		{"first stamp only", "2024-03-05_report_2023-01-01.txt", "report_2023-01-01.txt", true},
		{"stamp inside name", "a_2024-03-05_b.txt", "ab.txt", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stripped, found := ExtractStamp(tt.input)
			assert.Equal(t, tt.expectedName, stripped)
			assert.Equal(t, tt.expectedFound, found)
		})
	}
}

func TestExtractStamp_RepeatedCallsAreIndependent(t *testing.T) {
	// A scanner carrying state between calls would miss the second match.
	for i := 0; i < 3; i++ {
		stripped, found := ExtractStamp("2024-03-05_report.txt")
		require.True(t, found)
		assert.Equal(t, "report.txt", stripped)
	}
}

func TestFindStamp(t *testing.T) {
	m, ok := FindStamp("report_2024-03-05_14.07.09.txt")
	require.True(t, ok)
	assert.Equal(t, 6, m.Start)
	assert.Equal(t, 26, m.End)
	assert.Equal(t, "_2024-03-05_14.07.09", m.Text)

	_, ok = FindStamp("report.txt")
	assert.False(t, ok)
}

func TestExtractStamp_RoundTrip(t *testing.T) {
	d := date(2024, time.March, 5, 14, 7, 9)

	for _, opts := range []Options{
		{},
		{Suffix: true},
		{IncludeTime: true},
		{Suffix: true, IncludeTime: true},
	} {
		for _, name := range []string{"report.txt", "notes", "archive.tar.gz", ".gitignore", "my_file.md"} {
			stamped := Compose(d, SplitFilename(name), opts)
			stripped, found := ExtractStamp(stamped)
			assert.True(t, found, "stamp not found in %q", stamped)
			assert.Equal(t, name, stripped, "round trip of %q via %q", name, stamped)
		}
	}
}

func TestRestamp(t *testing.T) {
	now := date(2024, time.April, 1, 9, 30, 0)

	tests := []struct {
		name          string
		input         string
		opts          Options
		expected      string
		expectedFound bool
	}{
		{"prefix restamp", "2024-03-05_report.txt", Options{}, "2024-04-01_report.txt", true},
		{"suffix restamp", "report_2024-03-05.txt", Options{Suffix: true}, "report_2024-04-01.txt", true},
		{"switch to suffix", "2024-03-05_report.txt", Options{Suffix: true}, "report_2024-04-01.txt", true},
		{"add time", "2024-03-05_report.txt", Options{IncludeTime: true}, "2024-04-01_09.30.00_report.txt", true},
		{"drop time", "2024-03-05_14.07.09_report.txt", Options{}, "2024-04-01_report.txt", true},
		{"unstamped", "report.txt", Options{}, "2024-04-01_report.txt", false},
		{"stamp only", "2024-03-05.tar", Options{}, "2024-04-01.tar", true},
		{"directory ignored", "2023-01-01_dir/report.txt", Options{}, "2024-04-01_report.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Restamp(now, tt.input, tt.opts)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expectedFound, found)
		})
	}
}

func TestStamper(t *testing.T) {
	now := date(2024, time.March, 5, 14, 7, 9)
	s := NewStamperAt(now, Options{IncludeTime: true})

	assert.Equal(t, now, s.Now())
	assert.Equal(t, "2024-03-05_14.07.09", s.Stamp())
	assert.Equal(t, "2024-03-05_14.07.09_report.txt", s.Name("dir/report.txt"))
	assert.Equal(t, "2024-03-05_14.07.09_photos.tar.gz", s.WithExtension("photos", ".tar.gz"))

	renamed, found := s.Restamp("2020-01-01_report.txt")
	assert.True(t, found)
	assert.Equal(t, "2024-03-05_14.07.09_report.txt", renamed)
}

func TestNewStamper_UsesCurrentTime(t *testing.T) {
	before := time.Now()
	s := NewStamper(Options{})
	after := time.Now()

	assert.False(t, s.Now().Before(before))
	assert.False(t, s.Now().After(after))
}
