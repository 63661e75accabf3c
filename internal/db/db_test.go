package db

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dnflite/internal/models"
)

func testPackage(name, version string) models.Package {
	return models.Package{
		Name:    models.PackageName{Name: name, Arch: models.DefaultArch},
		Version: models.Version{Version: version, Release: "1.fc39"},
		Summary: "test package",
	}
}

func TestAddGetRoundTrip(t *testing.T) {
	dir := t.TempDir()

	d, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	record, err := d.Add(testPackage("nano", "2.9.8"), []string{"/usr/bin/nano"}, "abc123")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if record.InstallID == "" {
		t.Error("Add should assign an install id")
	}
	if record.InstallTime.IsZero() {
		t.Error("Add should assign an install time")
	}

	// A fresh handle sees the persisted record.
	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := reopened.Get(models.PackageName{Name: "nano", Arch: models.DefaultArch})
	if !ok {
		t.Fatal("nano should be installed after reopen")
	}
	if got.InstallID != record.InstallID {
		t.Errorf("InstallID = %q, want %q", got.InstallID, record.InstallID)
	}
	if got.Checksum != "abc123" {
		t.Errorf("Checksum = %q", got.Checksum)
	}
	if len(got.Files) != 1 || got.Files[0] != "/usr/bin/nano" {
		t.Errorf("Files = %v", got.Files)
	}
	if !got.InstallTime.Equal(record.InstallTime) {
		t.Errorf("InstallTime = %v, want %v", got.InstallTime, record.InstallTime)
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()

	d, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := d.Add(testPackage("vim", "8.2"), nil, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	name := models.PackageName{Name: "vim", Arch: models.DefaultArch}
	if err := d.Remove(name); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := d.Get(name); ok {
		t.Error("vim should be gone after Remove")
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok := reopened.Get(name); ok {
		t.Error("removal should be persisted")
	}
}

func TestRemoveMissingLeavesStoreUntouched(t *testing.T) {
	dir := t.TempDir()

	d, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := d.Add(testPackage("git", "2.43.0"), nil, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	before, err := os.ReadFile(filepath.Join(dir, storeName))
	if err != nil {
		t.Fatal(err)
	}

	err = d.Remove(models.PackageName{Name: "ghost", Arch: models.DefaultArch})
	if err == nil {
		t.Fatal("removing an uninstalled package should fail")
	}
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("err = %v, want ErrNotInstalled", err)
	}
	var notInstalled *NotInstalledError
	if !errors.As(err, &notInstalled) {
		t.Fatalf("err = %v, want *NotInstalledError", err)
	}
	if notInstalled.Name.Name != "ghost" {
		t.Errorf("error names %q", notInstalled.Name.Name)
	}

	after, err := os.ReadFile(filepath.Join(dir, storeName))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("a failed remove must not rewrite the store file")
	}
}

func TestListSorted(t *testing.T) {
	d, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	for _, name := range []string{"vim", "curl", "nano"} {
		if _, err := d.Add(testPackage(name, "1.0"), nil, ""); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}

	records := d.List()
	if len(records) != 3 {
		t.Fatalf("len(records) = %d", len(records))
	}
	want := []string{"curl", "nano", "vim"}
	for i, record := range records {
		if record.Package.Name.Name != want[i] {
			t.Errorf("records[%d] = %s, want %s", i, record.Package.Name.Name, want[i])
		}
	}
}

func TestOpenCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, storeName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(dir); err == nil {
		t.Fatal("a corrupt store file must not be silently discarded")
	}
}
