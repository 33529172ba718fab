// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"sync"
	"testing"

	"jvmkit/pkg/java"
)

func testInstall(root, version string, kind java.Kind) *java.Installation {
	return &java.Installation{
		Root:    root,
		Exec:    root + "/bin/java",
		Version: java.MustParseVersion(version),
		Vendor:  "OpenJDK",
		Kind:    kind,
		Arch:    java.ArchX8664,
	}
}

func TestRegistryInsertDedup(t *testing.T) {
	reg := NewRegistry()

	first := testInstall("/opt/jdk-17", "17.0.2", java.KindJDK)
	second := testInstall("/opt/jdk-17", "17.0.9", java.KindJRE)

	if !reg.Insert(first) {
		t.Fatal("first insert rejected")
	}
	if reg.Insert(second) {
		t.Fatal("duplicate root accepted")
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	if got := reg.All()[0]; got != first {
		t.Errorf("registry kept %v, want the first-inserted entry", got)
	}
}

func TestRegistryScanID(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	if a.ScanID == "" || a.ScanID == b.ScanID {
		t.Errorf("scan IDs must be unique and non-empty, got %q and %q", a.ScanID, b.ScanID)
	}
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	jre21 := testInstall("/opt/jre-21", "21.0.1", java.KindJRE)
	jdk21 := testInstall("/opt/jdk-21", "21.0.1", java.KindJDK)
	jdk17 := testInstall("/opt/jdk-17", "17.0.2", java.KindJDK)
	jdk8 := testInstall("/opt/jdk-8", "1.8.0_345", java.KindJDK)
	for _, inst := range []*java.Installation{jre21, jdk21, jdk17, jdk8} {
		reg.Insert(inst)
	}

	minVersion := func(raw string) *java.Version {
		v := java.MustParseVersion(raw)
		return &v
	}

	tests := []struct {
		name       string
		constraint java.Constraint
		want       *java.Installation
	}{
		{"unconstrained picks highest, JDK over JRE", java.Constraint{}, jdk21},
		{"min version", java.Constraint{MinVersion: minVersion("18")}, jdk21},
		{"max version", java.Constraint{MaxVersion: minVersion("17.999")}, jdk17},
		{"kind restricts", java.Constraint{Kind: java.KindJRE}, jre21},
		{"legacy version satisfies range", java.Constraint{MaxVersion: minVersion("9")}, jdk8},
		{"nothing matches", java.Constraint{MinVersion: minVersion("30")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Resolve(tt.constraint); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistryResolveTieGoesToEarlier(t *testing.T) {
	reg := NewRegistry()
	first := testInstall("/opt/a", "17.0.2", java.KindJDK)
	second := testInstall("/opt/b", "17.0.2", java.KindJDK)
	reg.Insert(first)
	reg.Insert(second)

	if got := reg.Resolve(java.Constraint{}); got != first {
		t.Errorf("Resolve() = %v, want first-discovered %v", got, first)
	}
}

func TestRegistrySummary(t *testing.T) {
	reg := NewRegistry()
	reg.Insert(testInstall("/opt/jdk-17a", "17.0.2", java.KindJDK))
	reg.Insert(testInstall("/opt/jdk-17b", "17.0.9", java.KindJDK))
	reg.Insert(testInstall("/opt/jdk-8", "1.8.0_345", java.KindJDK))

	summary := reg.Summary()
	if summary[17] != 2 || summary[8] != 1 {
		t.Errorf("Summary() = %v, want {17:2, 8:1}", summary)
	}

	by17 := reg.AllByMajor(17)
	if len(by17) != 2 || by17[0].Root != "/opt/jdk-17a" {
		t.Errorf("AllByMajor(17) = %v, want both 17s in discovery order", by17)
	}
}

func TestRegistryConcurrentInsert(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root := fmt.Sprintf("/opt/jdk-%d", i%8)
			reg.Insert(testInstall(root, "17.0.2", java.KindJDK))
		}(i)
	}
	wg.Wait()

	if reg.Len() != 8 {
		t.Errorf("Len() = %d, want 8 distinct roots", reg.Len())
	}
}
