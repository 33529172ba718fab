// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseReleaseFile(t *testing.T) {
	content := `# build metadata
IMPLEMENTOR="Eclipse Adoptium"
IMPLEMENTOR_VERSION="Temurin-17.0.2+8"
JAVA_VERSION="17.0.2"

OS_ARCH="x86_64"
IMAGE_TYPE="JDK"
MODULES="java.base java.compiler"
garbage line without separator
`
	path := filepath.Join(t.TempDir(), releaseFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := parseReleaseFile(path)
	if err != nil {
		t.Fatalf("parseReleaseFile() error: %v", err)
	}

	want := map[string]string{
		releaseKeyVersion:     "17.0.2",
		releaseKeyImplementor: "Eclipse Adoptium",
		releaseKeyArch:        "x86_64",
		releaseKeyImageType:   "JDK",
	}
	for key, value := range want {
		if got := entries[key]; got != value {
			t.Errorf("entries[%q] = %q, want %q", key, got, value)
		}
	}
	if _, ok := entries["garbage line without separator"]; ok {
		t.Error("separator-less line should be ignored")
	}
}

func TestParseReleaseFileMissing(t *testing.T) {
	if _, err := parseReleaseFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSplitReleaseLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		key   string
		value string
		ok    bool
	}{
		{"quoted equals", `JAVA_VERSION="17.0.2"`, "JAVA_VERSION", "17.0.2", true},
		{"bare equals", `OS_NAME=Linux`, "OS_NAME", "Linux", true},
		{"colon form", `Implementation-Vendor: Oracle`, "Implementation-Vendor", "Oracle", true},
		{"equals wins before colon", `SOURCE=".:git:abc"`, "SOURCE", ".:git:abc", true},
		{"empty value", `BUILD_INFO=""`, "BUILD_INFO", "", true},
		{"no separator", `just words`, "", "", false},
		{"empty key", `="orphan"`, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := splitReleaseLine(tt.line)
			if key != tt.key || value != tt.value || ok != tt.ok {
				t.Errorf("splitReleaseLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.line, key, value, ok, tt.key, tt.value, tt.ok)
			}
		})
	}
}
