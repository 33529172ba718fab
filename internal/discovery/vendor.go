// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"strings"

	"jvmkit/pkg/java"
)

// UnknownVendor is reported when no pattern recognizes the output.
// Unrecognized vendors degrade here instead of failing the probe.
const UnknownVendor = "unknown"

// vendorPattern recognizes one supplier's -version output by lowercase
// substring tokens. Patterns are tried in order; new vendors are
// supported by appending a pattern, not by editing existing ones.
type vendorPattern struct {
	vendor string
	tokens []string
}

func (p vendorPattern) match(lower string) bool {
	for _, tok := range p.tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// vendorPatterns in matching order: specific distributions before the
// generic OpenJDK fallback, since most distributions embed "openjdk" in
// their banner too.
var vendorPatterns = []vendorPattern{
	{"Eclipse Adoptium", []string{"temurin", "adoptium", "adoptopenjdk"}},
	{"Azul Zulu", []string{"zulu", "azul"}},
	{"Amazon Corretto", []string{"corretto", "amazon"}},
	{"Microsoft", []string{"microsoft"}},
	{"GraalVM", []string{"graalvm"}},
	{"BellSoft Liberica", []string{"bellsoft", "liberica"}},
	{"IBM Semeru", []string{"ibm", "semeru", "j9"}},
	{"SAP SapMachine", []string{"sapmachine", "sap se"}},
	{"Oracle", []string{"java(tm)", "oracle", "hotspot(tm)"}},
	{"OpenJDK", []string{"openjdk"}},
}

// vendorFromOutput identifies the supplier from -version output.
func vendorFromOutput(output string) string {
	lower := strings.ToLower(output)
	for _, p := range vendorPatterns {
		if p.match(lower) {
			return p.vendor
		}
	}
	return UnknownVendor
}

// versionFromOutput extracts the raw version string from -version output.
// Launchers print a line like:
//
//	openjdk version "17.0.2" 2022-01-18
//	java version "1.8.0_345"
//
// The quoted token is preferred; a whitespace token following the word
// "version" is the fallback for formats without quotes.
func versionFromOutput(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "version") {
			continue
		}
		if start := strings.Index(line, `"`); start >= 0 {
			if end := strings.Index(line[start+1:], `"`); end > 0 {
				return line[start+1 : start+1+end], true
			}
		}
		fields := strings.Fields(line)
		for i, f := range fields {
			if strings.Contains(f, "version") && i+1 < len(fields) {
				return strings.Trim(fields[i+1], `"`), true
			}
		}
	}
	return "", false
}

// archFromOutput extracts the architecture from -XshowSettings style
// output (an "os.arch = amd64" property line) or from 64-bit/32-bit
// markers in the version banner.
func archFromOutput(output string) java.Architecture {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "os.arch") {
			continue
		}
		if _, value, ok := strings.Cut(line, "="); ok {
			if arch := java.ParseArchitecture(value); arch != java.ArchUnknown {
				return arch
			}
		}
	}
	lower := strings.ToLower(output)
	switch {
	case strings.Contains(lower, "aarch64"):
		return java.ArchAArch64
	case strings.Contains(lower, "64-bit"):
		return java.ArchX8664
	}
	return java.ArchUnknown
}

// archFromPath guesses the architecture from tokens embedded in an
// installation path, e.g. /usr/lib/jvm/java-17-openjdk-amd64.
func archFromPath(path string) java.Architecture {
	lower := strings.ToLower(path)
	for _, probe := range []struct {
		token string
		arch  java.Architecture
	}{
		{"x86_64", java.ArchX8664},
		{"amd64", java.ArchX8664},
		{"aarch64", java.ArchAArch64},
		{"arm64", java.ArchAArch64},
		{"armhf", java.ArchARM32},
		{"armv7", java.ArchARM32},
		{"i386", java.ArchX86},
		{"i586", java.ArchX86},
		{"i686", java.ArchX86},
	} {
		if strings.Contains(lower, probe.token) {
			return probe.arch
		}
	}
	return java.ArchUnknown
}
