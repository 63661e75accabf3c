package rpmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsRPMDetectsLeadMagic(t *testing.T) {
	path := writeFile(t, "tiny.rpm", append([]byte{0xED, 0xAB, 0xEE, 0xDB}, []byte("rest of lead")...))
	if !IsRPM(path) {
		t.Error("file with RPM lead magic not detected")
	}
}

func TestIsRPMRejectsOtherFiles(t *testing.T) {
	cases := map[string][]byte{
		"garbage.rpm": []byte("this is not an rpm at all"),
		"empty.rpm":   {},
		"gzip.rpm":    {0x1F, 0x8B, 0x08, 0x00},
	}
	for name, data := range cases {
		if IsRPM(writeFile(t, name, data)) {
			t.Errorf("%s wrongly detected as RPM", name)
		}
	}
	if IsRPM(filepath.Join(t.TempDir(), "does-not-exist.rpm")) {
		t.Error("missing file wrongly detected as RPM")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	path := writeFile(t, "garbage.rpm", []byte("not an rpm"))
	if _, err := Parse(path); err == nil {
		t.Error("expected error parsing a non-RPM file")
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "missing.rpm")); err == nil {
		t.Error("expected error for missing file")
	}
}
