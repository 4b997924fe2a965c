package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/devfolio"
	loamadapter "github.com/aretw0/devfolio/pkg/adapters/loam"
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/loader"
	"github.com/aretw0/devfolio/pkg/ports"
)

// ValidateOptions selects the documents to check and how to report them.
type ValidateOptions struct {
	// Paths are files to validate; loader.Stdin reads standard input.
	Paths []string
	// Dir validates every JSON/YAML document of a directory.
	Dir string
	// StdinFormat is the encoding of standard input.
	StdinFormat loader.Format
	// Stats adds per-collection counts to valid documents.
	Stats bool
	// JSON prints one JSON report per document instead of text.
	JSON bool
	// Stdin is read when a path is loader.Stdin.
	Stdin io.Reader
}

// Report is the outcome of validating one document.
type Report struct {
	Name    string        `json:"name"`
	Success bool          `json:"success"`
	Errors  []string      `json:"errors,omitempty"`
	Stats   *domain.Stats `json:"stats,omitempty"`
}

// RunValidate validates the selected documents, writes one report per
// document to out and returns the number of invalid ones. I/O failures
// (unreadable file, undecodable content) count as invalid documents and are
// reported the same way.
func RunValidate(ctx context.Context, v *devfolio.Validator, opts ValidateOptions, out io.Writer) (int, error) {
	reports, err := collect(ctx, v, opts)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, r := range reports {
		if !r.Success {
			failed++
		}
		if err := writeReport(out, r, opts.JSON); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func collect(ctx context.Context, v *devfolio.Validator, opts ValidateOptions) ([]Report, error) {
	var reports []Report

	for _, path := range opts.Paths {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		var data any
		var err error
		if path == loader.Stdin {
			format := opts.StdinFormat
			if format == "" {
				format = loader.FormatJSON
			}
			data, err = loader.Decode(opts.Stdin, format)
		} else {
			data, err = loader.Load(path)
		}
		if err != nil {
			reports = append(reports, Report{Name: path, Errors: []string{err.Error()}})
			continue
		}
		reports = append(reports, check(v, path, data, opts.Stats))
	}

	if opts.Dir != "" {
		source, err := loamadapter.Open(opts.Dir)
		if err != nil {
			return nil, err
		}
		dirReports, err := validateSource(ctx, v, source, opts.Stats)
		if err != nil {
			return nil, err
		}
		reports = append(reports, dirReports...)
	}
	return reports, nil
}

func validateSource(ctx context.Context, v *devfolio.Validator, src ports.DocumentSource, stats bool) ([]Report, error) {
	ids, err := src.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	reports := make([]Report, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		data, err := src.Get(id)
		if err != nil {
			reports = append(reports, Report{Name: id, Errors: []string{err.Error()}})
			continue
		}
		reports = append(reports, check(v, id, data, stats))
	}
	return reports, nil
}

func check(v *devfolio.Validator, name string, data any, withStats bool) Report {
	res := v.Validate(data)
	r := Report{Name: name, Success: res.Success, Errors: res.Errors}
	if res.Success && withStats {
		s := res.Data.Stats()
		r.Stats = &s
	}
	return r
}

func writeReport(w io.Writer, r Report, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(r)
	}

	var sb strings.Builder
	if r.Success {
		fmt.Fprintf(&sb, "✓ %s\n", r.Name)
		if r.Stats != nil {
			fmt.Fprintf(&sb, "  %d entries", r.Stats.Total())
			if parts := statsParts(*r.Stats); len(parts) > 0 {
				fmt.Fprintf(&sb, " (%s)", strings.Join(parts, ", "))
			}
			sb.WriteString("\n")
		}
	} else {
		fmt.Fprintf(&sb, "✗ %s\n", r.Name)
		for _, line := range strings.Split(devfolio.FormatErrors(r.Errors), "\n") {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func statsParts(s domain.Stats) []string {
	var parts []string
	for _, c := range s.Counts() {
		if c.N > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", c.Collection, c.N))
		}
	}
	return parts
}
