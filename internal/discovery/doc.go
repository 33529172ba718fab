// SPDX-License-Identifier: MPL-2.0

// Package discovery implements the scan pipeline that finds Java
// installations on the host: platform-aware candidate enumeration,
// per-candidate probing (release file fast path, launcher invocation
// fallback), and aggregation into a deduplicated, queryable registry.
//
// Per-candidate failures never abort a scan; they are recorded as
// diagnostics and the remaining candidates are still probed. A scan that
// finds nothing is a valid, empty result.
package discovery
