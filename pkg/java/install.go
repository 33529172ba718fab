// SPDX-License-Identifier: MPL-2.0

package java

import (
	"fmt"
	"os"
	"strings"
)

// Architecture identifies the CPU architecture a runtime was built for.
type Architecture string

// Architecture constants. ArchUnknown is a valid result, not an error:
// probing frequently cannot determine the architecture.
const (
	ArchX86     Architecture = "x86"
	ArchX8664   Architecture = "x86_64"
	ArchARM32   Architecture = "arm32"
	ArchAArch64 Architecture = "aarch64"
	ArchUnknown Architecture = "unknown"
)

// ParseArchitecture normalizes an architecture token as reported by
// release files, probe output or path segments. Unrecognized tokens map
// to ArchUnknown.
func ParseArchitecture(token string) Architecture {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "x86_64", "amd64", "x64", "x8664":
		return ArchX8664
	case "x86", "i386", "i486", "i586", "i686":
		return ArchX86
	case "aarch64", "arm64":
		return ArchAArch64
	case "arm", "arm32", "armv7", "armv7l", "armhf":
		return ArchARM32
	default:
		return ArchUnknown
	}
}

// Kind distinguishes full development kits from bare runtimes.
type Kind string

// Kind constants.
const (
	KindJDK     Kind = "jdk"
	KindJRE     Kind = "jre"
	KindUnknown Kind = "unknown"
)

// kindRank orders kinds for resolution tie-breaking: JDK beats JRE beats
// Unknown.
func kindRank(k Kind) int {
	switch k {
	case KindJDK:
		return 2
	case KindJRE:
		return 1
	default:
		return 0
	}
}

// Installation is one discovered Java runtime. The root path is the
// identity key: no two installations in a registry share a root. Values
// are created by probing and never mutated afterwards.
type Installation struct {
	// Root is the symlink-resolved installation root (JAVA_HOME).
	Root string
	// Exec is the path to the launcher binary under Root.
	Exec string
	// Version is the parsed runtime version.
	Version Version
	// Vendor is the supplier name as reported ("OpenJDK", "Eclipse
	// Adoptium", ...). Comparison is case-insensitive; "unknown" when
	// the probe could not identify one.
	Vendor string
	// Kind reports whether this is a JDK or a JRE.
	Kind Kind
	// Arch is the runtime's CPU architecture.
	Arch Architecture
}

// String renders a one-line human-readable summary.
func (i *Installation) String() string {
	return fmt.Sprintf("%s %s (%s, %s) at %s", i.Vendor, i.Version, i.Arch, i.Kind, i.Root)
}

// Valid reports whether the launcher binary still exists on disk.
func (i *Installation) Valid() bool {
	if i.Exec == "" {
		return false
	}
	_, err := os.Stat(i.Exec)
	return err == nil
}

// Constraint describes the installation a caller wants resolved. Zero
// fields match anything; it is a transient query value, never stored.
type Constraint struct {
	// MinVersion is an inclusive lower version bound.
	MinVersion *Version
	// MaxVersion is an inclusive upper version bound.
	MaxVersion *Version
	// Vendor is matched case-insensitively as a substring of the
	// installation's vendor name.
	Vendor string
	// Arch restricts the architecture when not empty.
	Arch Architecture
	// Kind restricts the installation kind when not empty.
	Kind Kind
}

// Matches reports whether inst satisfies every specified field.
func (c Constraint) Matches(inst *Installation) bool {
	if c.MinVersion != nil && inst.Version.Compare(*c.MinVersion) < 0 {
		return false
	}
	if c.MaxVersion != nil && inst.Version.Compare(*c.MaxVersion) > 0 {
		return false
	}
	if c.Vendor != "" && !strings.Contains(strings.ToLower(inst.Vendor), strings.ToLower(c.Vendor)) {
		return false
	}
	if c.Arch != "" && inst.Arch != c.Arch {
		return false
	}
	if c.Kind != "" && inst.Kind != c.Kind {
		return false
	}
	return true
}

// Better reports whether a should be preferred over b during resolution:
// higher version first, then JDK over JRE over Unknown. Equal candidates
// report false so earlier discovery order wins.
func Better(a, b *Installation) bool {
	if cmp := a.Version.Compare(b.Version); cmp != 0 {
		return cmp > 0
	}
	return kindRank(a.Kind) > kindRank(b.Kind)
}
