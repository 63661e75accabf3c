package models

import (
	"errors"
	"testing"
)

func TestParsePackageName(t *testing.T) {
	tests := []struct {
		in   string
		name string
		arch string
	}{
		{"vim", "vim", "x86_64"},
		{"vim.aarch64", "vim", "aarch64"},
		{"git.noarch", "git", "noarch"},
		// The split happens at the first dot only.
		{"python3.11.x86_64", "python3", "11.x86_64"},
	}

	for _, tt := range tests {
		got, err := ParsePackageName(tt.in)
		if err != nil {
			t.Fatalf("ParsePackageName(%q) returned error: %v", tt.in, err)
		}
		if got.Name != tt.name || got.Arch != tt.arch {
			t.Errorf("ParsePackageName(%q) = %s/%s, want %s/%s",
				tt.in, got.Name, got.Arch, tt.name, tt.arch)
		}
	}
}

func TestParsePackageNameEmpty(t *testing.T) {
	var verr *InvalidPackageError

	if _, err := ParsePackageName(""); !errors.As(err, &verr) {
		t.Fatalf("empty identifier: want InvalidPackageError, got %v", err)
	}
	if _, err := ParsePackageName(".x86_64"); !errors.As(err, &verr) {
		t.Fatalf("dot-leading identifier: want InvalidPackageError, got %v", err)
	}
}

func TestPackageNameString(t *testing.T) {
	n, err := NewPackageName("curl", "")
	if err != nil {
		t.Fatalf("NewPackageName failed: %v", err)
	}
	if n.String() != "curl.x86_64" {
		t.Errorf("String() = %q, want curl.x86_64", n.String())
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		version string
		release string
	}{
		{"1.0-2.fc39", "1.0", "2.fc39"},
		{"8.2", "8.2", "1"},
		{"7.61.1-1.fc39", "7.61.1", "1.fc39"},
		// Only the first dash splits; the rest belongs to the release.
		{"2.43.0-1.fc39-custom", "2.43.0", "1.fc39-custom"},
	}

	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if err != nil {
			t.Fatalf("ParseVersion(%q) returned error: %v", tt.in, err)
		}
		if got.Version != tt.version || got.Release != tt.release {
			t.Errorf("ParseVersion(%q) = %s/%s, want %s/%s",
				tt.in, got.Version, got.Release, tt.version, tt.release)
		}
		if got.Epoch != 0 {
			t.Errorf("ParseVersion(%q) epoch = %d, epochs are never parsed from text", tt.in, got.Epoch)
		}
	}
}

func TestParseVersionEmpty(t *testing.T) {
	var verr *InvalidPackageError

	if _, err := ParseVersion(""); !errors.As(err, &verr) {
		t.Fatalf("empty version: want InvalidPackageError, got %v", err)
	}
	if _, err := ParseVersion("-1.fc39"); !errors.As(err, &verr) {
		t.Fatalf("dash-leading version: want InvalidPackageError, got %v", err)
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{0, "1.0", "1"}, Version{0, "1.0", "1"}, 0},
		{Version{0, "1.0", "1"}, Version{0, "1.0", "2"}, -1},
		{Version{0, "2.0", "1"}, Version{0, "1.9", "9"}, 1},
		// Epoch dominates everything else.
		{Version{1, "0.1", "1"}, Version{0, "9.9", "9"}, 1},
		// Plain string ordering: "1.9" sorts above "1.10".
		{Version{0, "1.9", "1"}, Version{0, "1.10", "1"}, 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Compare(tt.a); got != -tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Version: "8.2", Release: "1.fc39"}
	if v.String() != "8.2-1.fc39" {
		t.Errorf("String() = %q, want 8.2-1.fc39", v.String())
	}

	v.Epoch = 2
	if v.String() != "2:8.2-1.fc39" {
		t.Errorf("String() with epoch = %q, want 2:8.2-1.fc39", v.String())
	}
}

func TestPackageMatches(t *testing.T) {
	pkg := Package{
		Name:        PackageName{Name: "vim", Arch: "x86_64"},
		Summary:     "Vi Improved",
		Description: "The ubiquitous text editor",
	}

	for _, q := range []string{"vim", "VIM", "improved", "TEXT EDITOR"} {
		if !pkg.Matches(q) {
			t.Errorf("Matches(%q) = false, want true", q)
		}
	}
	if pkg.Matches("emacs") {
		t.Error("Matches(emacs) = true, want false")
	}
}
