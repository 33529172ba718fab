// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"sync"

	"github.com/google/uuid"

	"jvmkit/pkg/java"
)

// Registry aggregates the installations found during one scan. Order is
// discovery order. Identity is the installation root path: inserting a
// duplicate root is a no-op (first-wins, so a more authoritative
// discovery source is never overwritten by a later duplicate).
//
// Insert is safe for concurrent use so probes may run in parallel; the
// read methods are meant for use after the scan completes.
type Registry struct {
	// ScanID correlates log lines and diagnostics of one scan run.
	ScanID string

	mu       sync.Mutex
	installs []*java.Installation
	byRoot   map[string]struct{}
}

// NewRegistry returns an empty registry with a fresh scan identifier.
func NewRegistry() *Registry {
	return &Registry{
		ScanID: uuid.NewString(),
		byRoot: make(map[string]struct{}),
	}
}

// Insert adds inst unless an installation with the same root is already
// present. It reports whether the installation was added.
func (r *Registry) Insert(inst *java.Installation) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byRoot[inst.Root]; dup {
		return false
	}
	r.byRoot[inst.Root] = struct{}{}
	r.installs = append(r.installs, inst)
	return true
}

// All returns a snapshot of the installations in discovery order.
func (r *Registry) All() []*java.Installation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*java.Installation, len(r.installs))
	copy(out, r.installs)
	return out
}

// Len returns the number of installations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.installs)
}

// Resolve returns the best installation satisfying c, or nil when none
// does — an expected outcome, not an error. Best means highest version;
// version ties prefer JDK over JRE over Unknown; remaining ties go to
// the first-discovered installation.
func (r *Registry) Resolve(c java.Constraint) *java.Installation {
	var best *java.Installation
	for _, inst := range r.All() {
		if !c.Matches(inst) {
			continue
		}
		if best == nil || java.Better(inst, best) {
			best = inst
		}
	}
	return best
}

// AllByMajor returns the installations whose feature release equals
// major, in discovery order.
func (r *Registry) AllByMajor(major int) []*java.Installation {
	var out []*java.Installation
	for _, inst := range r.All() {
		if inst.Version.MajorFeature() == major {
			out = append(out, inst)
		}
	}
	return out
}

// Summary counts installations per feature release.
func (r *Registry) Summary() map[int]int {
	summary := make(map[int]int)
	for _, inst := range r.All() {
		summary[inst.Version.MajorFeature()]++
	}
	return summary
}
