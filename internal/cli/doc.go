// SPDX-License-Identifier: MPL-2.0

// Package cli implements the jvmkit command-line interface.
//
// Commands cover scanning the host for Java installations (list),
// resolving the best installation for a constraint (resolve), running a
// resolved launcher (exec), searching an installation's tree (find), and
// managing configuration (config). The CLI is built on cobra with
// charmbracelet/fang for execution and supports --verbose debug logging
// via charmbracelet/log; loggers travel through context.Context.
package cli
