// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"jvmkit/pkg/java"
	"jvmkit/pkg/platform"
)

// DefaultProbeTimeout bounds a single launcher invocation during
// probing. A hung installation must not stall the whole scan.
const DefaultProbeTimeout = 5 * time.Second

// ProbeErrorKind classifies why a candidate could not be characterized.
type ProbeErrorKind int

const (
	// ProbeNotAJavaInstallation means the candidate has no launcher
	// binary and is not a Java root at all.
	ProbeNotAJavaInstallation ProbeErrorKind = iota
	// ProbeExecutionFailed means the launcher exists but invoking it
	// failed (spawn error or timeout) without recoverable metadata.
	ProbeExecutionFailed
	// ProbeUnparseableOutput means the launcher produced text but
	// nothing recognizable could be extracted from it.
	ProbeUnparseableOutput
)

// ProbeError is the per-candidate failure produced by Prober.Probe. The
// scan pipeline recovers from it by skipping the candidate.
type ProbeError struct {
	// Path is the candidate root that failed.
	Path string
	// Kind classifies the failure.
	Kind ProbeErrorKind
	// Err is the underlying cause, when there is one.
	Err error
}

// Error implements the error interface.
func (e *ProbeError) Error() string {
	switch e.Kind {
	case ProbeNotAJavaInstallation:
		return fmt.Sprintf("%s is not a Java installation", e.Path)
	case ProbeExecutionFailed:
		return fmt.Sprintf("probing %s failed: %v", e.Path, e.Err)
	case ProbeUnparseableOutput:
		return fmt.Sprintf("version output of %s is unrecognizable", e.Path)
	default:
		return fmt.Sprintf("probing %s failed", e.Path)
	}
}

// Unwrap returns the underlying cause.
func (e *ProbeError) Unwrap() error { return e.Err }

// Prober characterizes candidate roots as Java installations.
type Prober struct {
	// GOOS selects launcher naming, runtime.GOOS by default.
	GOOS string
	// Timeout bounds each launcher invocation, DefaultProbeTimeout
	// when zero.
	Timeout time.Duration
}

// NewProber returns a Prober for the current platform with the default
// timeout.
func NewProber() *Prober {
	return &Prober{GOOS: runtime.GOOS, Timeout: DefaultProbeTimeout}
}

// Probe inspects root and returns the characterized Installation.
// Metadata comes from the release file when present (no process spawned),
// falling back to invoking the launcher with -version under a bounded
// timeout. Architecture and kind degrade to Unknown rather than failing
// the probe; only the absence of a launcher, a failed invocation, or
// fully unrecognizable output produce a *ProbeError.
func (p *Prober) Probe(ctx context.Context, root string) (*java.Installation, error) {
	launcher, kind := p.findLauncher(root)
	if launcher == "" {
		return nil, &ProbeError{Path: root, Kind: ProbeNotAJavaInstallation}
	}

	inst := &java.Installation{
		Root: root,
		Exec: launcher,
		Kind: kind,
		Arch: archFromPath(root),
	}

	if ok := p.probeReleaseFile(inst); ok {
		return inst, nil
	}
	if err := p.probeLauncher(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// probeReleaseFile fills inst from the release metadata file. It reports
// false when the file is missing or carries no usable version, leaving
// the launcher invocation as the fallback.
func (p *Prober) probeReleaseFile(inst *java.Installation) bool {
	entries, err := parseReleaseFile(filepath.Join(inst.Root, releaseFileName))
	if err != nil {
		return false
	}

	version, err := java.ParseVersion(entries[releaseKeyVersion])
	if err != nil {
		return false
	}
	inst.Version = version

	if vendor := entries[releaseKeyImplementor]; vendor != "" {
		inst.Vendor = vendor
	} else {
		inst.Vendor = UnknownVendor
	}
	if arch := java.ParseArchitecture(entries[releaseKeyArch]); arch != java.ArchUnknown {
		inst.Arch = arch
	}
	if inst.Kind == java.KindUnknown {
		switch entries[releaseKeyImageType] {
		case "JDK", "jdk":
			inst.Kind = java.KindJDK
		case "JRE", "jre":
			inst.Kind = java.KindJRE
		}
	}
	return true
}

// probeLauncher fills inst by running the launcher with -version. A
// nonzero exit still counts when its output carries metadata, since
// stderr frequently survives partial failures. The same applies to a
// timeout: launchers print the banner before anything else, so output
// captured before the kill is still worth parsing.
func (p *Prober) probeLauncher(ctx context.Context, inst *java.Installation) error {
	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := inst.Execute(ctx, "-version")
	if err != nil {
		var execErr *java.ExecError
		if errors.As(err, &execErr) && execErr.Timeout && execErr.Output != nil {
			if fillFromOutput(inst, execErr.Output.Combined()) == nil {
				return nil
			}
		}
		return &ProbeError{Path: inst.Root, Kind: ProbeExecutionFailed, Err: err}
	}

	text := out.Combined()
	if text == "" {
		return &ProbeError{Path: inst.Root, Kind: ProbeExecutionFailed,
			Err: fmt.Errorf("launcher exited with code %d and no output", out.ExitCode)}
	}
	return fillFromOutput(inst, text)
}

// fillFromOutput fills inst from -version text.
func fillFromOutput(inst *java.Installation, text string) error {
	raw, ok := versionFromOutput(text)
	if !ok {
		return &ProbeError{Path: inst.Root, Kind: ProbeUnparseableOutput}
	}
	version, err := java.ParseVersion(raw)
	if err != nil {
		return &ProbeError{Path: inst.Root, Kind: ProbeUnparseableOutput, Err: err}
	}

	inst.Version = version
	inst.Vendor = vendorFromOutput(text)
	if arch := archFromOutput(text); arch != java.ArchUnknown {
		inst.Arch = arch
	}
	return nil
}

// findLauncher locates the launcher binary under root and classifies the
// installation kind from the tools next to it: a javac sibling makes it
// a JDK, a launcher found under jre/ makes it a JRE.
func (p *Prober) findLauncher(root string) (string, java.Kind) {
	goos := p.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	for _, rel := range launcherRelPaths(goos) {
		candidate := filepath.Join(append([]string{root}, rel...)...)
		if !isExecutable(candidate, goos) {
			continue
		}

		kind := java.KindJRE
		if rel[0] == "jre" {
			return candidate, kind
		}
		javac := "javac"
		if goos == platform.Windows {
			javac = "javac.exe"
		}
		if isExecutable(filepath.Join(filepath.Dir(candidate), javac), goos) {
			kind = java.KindJDK
		}
		return candidate, kind
	}
	return "", java.KindUnknown
}

// isExecutable reports whether path is a regular file the current user
// may execute. Windows has no execute bit, so existence suffices there.
func isExecutable(path, goos string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if goos == platform.Windows {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
