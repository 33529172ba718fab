// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"strings"

	"jvmkit/pkg/platform"
)

// JavaHomeEnv is the environment variable naming the preferred Java
// installation root.
const JavaHomeEnv = "JAVA_HOME"

// conventionalRoots maps a platform to the directories whose immediate
// subdirectories are candidate installation roots. Windows entries use
// ${NAME} environment references expanded at scan time. The table is data
// rather than branching logic so tests can inject their own.
var conventionalRoots = map[string][]string{
	platform.Linux: {
		"/usr/lib/jvm",
		"/usr/java",
		"/opt/java",
		"/usr/local/java",
		"/opt",
	},
	platform.Darwin: {
		"/Library/Java/JavaVirtualMachines",
		"/System/Library/Java/JavaVirtualMachines",
		"/usr/local/opt",
		"/opt/homebrew/opt",
		"/opt",
	},
	platform.Windows: {
		`${ProgramFiles}\Java`,
		`${ProgramFiles(x86)}\Java`,
		`C:\Java`,
		`C:\jdk`,
		`C:\jre`,
	},
}

// launcherName returns the Java launcher file name for a platform.
func launcherName(goos string) string {
	if goos == platform.Windows {
		return "java.exe"
	}
	return "java"
}

// launcherRelPaths lists the relative locations under an installation
// root where the launcher may live, most common first. The macOS bundle
// layout (Contents/Home) is normalized away by the scanner but kept here
// for roots handed directly to the prober.
func launcherRelPaths(goos string) [][]string {
	name := launcherName(goos)
	return [][]string{
		{"bin", name},
		{"jre", "bin", name},
		{"Contents", "Home", "bin", name},
	}
}

// expandEnvRefs expands ${NAME} references using lookup. Unlike
// os.ExpandEnv it tolerates names containing parentheses, which Windows
// uses ("ProgramFiles(x86)"). References to unset variables expand to the
// empty string, which makes the whole root unusable and skipped.
func expandEnvRefs(s string, lookup func(string) string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.Index(s[start:], "}")
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		b.WriteString(lookup(s[start+2 : start+end]))
		s = s[start+end+1:]
	}
}
