// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"testing"

	"jvmkit/pkg/java"
)

const temurinBanner = `openjdk version "17.0.2" 2022-01-18
OpenJDK Runtime Environment Temurin-17.0.2+8 (build 17.0.2+8)
OpenJDK 64-Bit Server VM Temurin-17.0.2+8 (build 17.0.2+8, mixed mode)`

func TestVendorFromOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"temurin", temurinBanner, "Eclipse Adoptium"},
		{"zulu", `openjdk version "11.0.15" 2022-04-19 LTS
OpenJDK Runtime Environment Zulu11.56+19-CA (build 11.0.15+10-LTS)`, "Azul Zulu"},
		{"corretto", `OpenJDK Runtime Environment Corretto-17.0.3.6.1`, "Amazon Corretto"},
		{"microsoft", `OpenJDK Runtime Environment Microsoft-32931 (build 17.0.3+7-LTS)`, "Microsoft"},
		{"graalvm", `OpenJDK Runtime Environment GraalVM CE 22.1.0`, "GraalVM"},
		{"liberica", `OpenJDK Runtime Environment (build 17.0.2+9) BellSoft`, "BellSoft Liberica"},
		{"semeru", `IBM Semeru Runtime Open Edition 17.0.2.0 (build 17.0.2+8)
Eclipse OpenJ9 VM 17.0.2.0`, "IBM Semeru"},
		{"sapmachine", `OpenJDK Runtime Environment SapMachine (build 17.0.2+8)`, "SAP SapMachine"},
		{"oracle", `java version "1.8.0_345"
Java(TM) SE Runtime Environment (build 1.8.0_345-b01)
Java HotSpot(TM) 64-Bit Server VM`, "Oracle"},
		{"plain openjdk", `openjdk version "21" 2023-09-19
OpenJDK Runtime Environment (build 21+35-2513)`, "OpenJDK"},
		{"unrecognized", "not a java banner at all", UnknownVendor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vendorFromOutput(tt.output); got != tt.want {
				t.Errorf("vendorFromOutput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionFromOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		ok     bool
	}{
		{"quoted modern", temurinBanner, "17.0.2", true},
		{"quoted legacy", `java version "1.8.0_345"`, "1.8.0_345", true},
		{"unquoted fallback", "openjdk version 21.0.1 2023-10-17", "21.0.1", true},
		{"version on later line", "Picked up JAVA_TOOL_OPTIONS\nopenjdk version \"11.0.15\"", "11.0.15", true},
		{"no version line", "Segmentation fault", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := versionFromOutput(tt.output)
			if got != tt.want || ok != tt.ok {
				t.Errorf("versionFromOutput() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestArchFromOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   java.Architecture
	}{
		{"os.arch property", "    os.arch = amd64\n", java.ArchX8664},
		{"os.arch arm", "os.arch = aarch64", java.ArchAArch64},
		{"aarch64 banner", "OpenJDK 64-Bit Server VM (build 17+35, aarch64)", java.ArchAArch64},
		{"64-bit marker", temurinBanner, java.ArchX8664},
		{"nothing", `openjdk version "17"`, java.ArchUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := archFromOutput(tt.output); got != tt.want {
				t.Errorf("archFromOutput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArchFromPath(t *testing.T) {
	tests := []struct {
		path string
		want java.Architecture
	}{
		{"/usr/lib/jvm/java-17-openjdk-amd64", java.ArchX8664},
		{"/usr/lib/jvm/java-11-openjdk-arm64", java.ArchAArch64},
		{"/opt/jdk-x86_64", java.ArchX8664},
		{"/usr/lib/jvm/java-8-openjdk-armhf", java.ArchARM32},
		{"/usr/lib/jvm/java-8-openjdk-i386", java.ArchX86},
		{"/Library/Java/JavaVirtualMachines/temurin-17.jdk", java.ArchUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := archFromPath(tt.path); got != tt.want {
				t.Errorf("archFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
