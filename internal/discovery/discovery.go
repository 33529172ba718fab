// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"jvmkit/internal/config"
	"jvmkit/pkg/java"
)

// DefaultWorkers is the number of concurrent probes during a scan.
// Probing independent candidates is embarrassingly parallel; the registry
// insert is the only synchronization point.
const DefaultWorkers = 4

// Discovery runs the full scan pipeline: candidate enumeration, probing,
// and registry aggregation.
type Discovery struct {
	// Scanner enumerates candidate roots.
	Scanner *Scanner
	// Prober characterizes candidates.
	Prober *Prober
	// Workers bounds concurrent probes, DefaultWorkers when zero.
	Workers int
	// Logger receives per-candidate scan events at debug level.
	Logger *log.Logger
}

// New builds a Discovery wired from cfg. A nil logger discards output.
func New(cfg *config.Config, logger *log.Logger) *Discovery {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scanner := NewScanner()
	prober := NewProber()
	workers := DefaultWorkers
	if cfg != nil {
		scanner.ExtraRoots = cfg.ScanRoots
		if cfg.ProbeTimeout > 0 {
			prober.Timeout = cfg.ProbeTimeout
		}
		if cfg.ScanWorkers > 0 {
			workers = cfg.ScanWorkers
		}
	}

	return &Discovery{
		Scanner: scanner,
		Prober:  prober,
		Workers: workers,
		Logger:  logger,
	}
}

// probeOutcome holds one candidate's probe result, slot-addressed so
// concurrent workers never contend.
type probeOutcome struct {
	inst *java.Installation
	err  error
}

// ScanAll scans the host and returns the populated registry together
// with per-candidate diagnostics. Probe failures skip the candidate and
// never abort the scan; an empty registry is a valid result. The scan is
// atomic per invocation: ctx cancellation is only observed by the probes
// still running, there is no partial-result contract.
func (d *Discovery) ScanAll(ctx context.Context) *ScanResult {
	reg := NewRegistry()
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("scan", reg.ScanID)

	candidates := d.Scanner.Candidates()
	logger.Debug("enumerated candidates", "count", len(candidates))

	workers := d.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	outcomes := make([]probeOutcome, len(candidates))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, root := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(slot int, root string) {
			defer wg.Done()
			defer func() { <-sem }()
			inst, err := d.Prober.Probe(ctx, root)
			outcomes[slot] = probeOutcome{inst: inst, err: err}
		}(i, root)
	}
	wg.Wait()

	// Aggregate sequentially so registry order stays discovery order
	// even though probes ran concurrently.
	result := &ScanResult{Registry: reg}
	for i, root := range candidates {
		outcome := outcomes[i]
		if outcome.err != nil {
			result.Diagnostics = append(result.Diagnostics, diagnose(root, outcome.err, logger)...)
			continue
		}
		if reg.Insert(outcome.inst) {
			logger.Debug("registered installation",
				"root", outcome.inst.Root,
				"version", outcome.inst.Version.String(),
				"vendor", outcome.inst.Vendor)
		} else {
			logger.Debug("duplicate root skipped", "root", outcome.inst.Root)
		}
	}

	logger.Debug("scan complete", "installations", reg.Len(), "diagnostics", len(result.Diagnostics))
	return result
}

// diagnose converts a probe failure into diagnostics. Candidates that
// are simply not Java roots are routine (every subdirectory of /opt gets
// probed) and only logged at debug level; genuine probe failures become
// warning diagnostics for the caller to render.
func diagnose(root string, err error, logger *log.Logger) []Diagnostic {
	var probeErr *ProbeError
	if errors.As(err, &probeErr) && probeErr.Kind == ProbeNotAJavaInstallation {
		logger.Debug("candidate is not a Java installation", "root", root)
		return nil
	}

	code := "probe_failed"
	if errors.As(err, &probeErr) && probeErr.Kind == ProbeUnparseableOutput {
		code = "unparseable_version_output"
	}
	logger.Warn("candidate skipped", "root", root, "err", err)
	return []Diagnostic{{
		Severity: SeverityWarning,
		Code:     code,
		Message:  err.Error(),
		Path:     root,
		Cause:    err,
	}}
}
