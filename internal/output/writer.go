// Package output provides perft report formatting.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Report is the outcome of one perft run.
type Report struct {
	Moves   []string           // Line played before counting
	Depth   int                // Plies counted
	Divide  []engine.MoveCount // Per-root-move counts; empty unless divided
	Nodes   uint64             // Total move paths
	Elapsed time.Duration      // Wall time of the count
	Board   string             // Start position diagram; empty unless requested
	Status  string             // Game state of the start position
}

// ReportWriter is the interface for writing perft reports.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured format.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as "e2e4: 20" lines followed by a total.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteReport writes a report in text form.
func (tw *TextWriter) WriteReport(r Report) error {
	if r.Board != "" {
		if _, err := fmt.Fprintln(tw.w, r.Board); err != nil {
			return err
		}
	}
	for _, c := range r.Divide {
		if _, err := fmt.Fprintf(tw.w, "%s: %d\n", c.Label, c.Nodes); err != nil {
			return err
		}
	}
	if len(r.Divide) > 0 {
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(tw.w, "perft(%d) = %d\n", r.Depth, r.Nodes); err != nil {
		return err
	}
	if tw.cfg.Verbosity > 0 {
		_, err := fmt.Fprintf(tw.w, "status %s, %s\n", r.Status, r.Elapsed.Round(time.Millisecond))
		return err
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONReport represents a report in JSON format.
type JSONReport struct {
	Moves     []string        `json:"moves,omitempty"`
	Depth     int             `json:"depth"`
	Nodes     uint64          `json:"nodes"`
	Status    string          `json:"status,omitempty"`
	ElapsedMS int64           `json:"elapsedMs,omitempty"`
	Divide    []JSONMoveCount `json:"divide,omitempty"`
}

// JSONMoveCount represents one root move count in JSON format.
type JSONMoveCount struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r Report, cfg *config.Config) *JSONReport {
	jr := &JSONReport{
		Moves:  r.Moves,
		Depth:  r.Depth,
		Nodes:  r.Nodes,
		Status: r.Status,
	}
	if cfg.Verbosity > 0 {
		jr.ElapsedMS = r.Elapsed.Milliseconds()
	}
	for _, c := range r.Divide {
		jr.Divide = append(jr.Divide, JSONMoveCount{Move: c.Label, Nodes: c.Nodes})
	}
	return jr
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	reports []*JSONReport
}

// NewJSONWriter creates a JSON writer that batches reports and writes
// them as one document on Flush or Close.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteReport buffers a report until the next Flush.
func (jw *JSONWriter) WriteReport(r Report) error {
	jw.reports = append(jw.reports, ReportToJSON(r, jw.cfg))
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
