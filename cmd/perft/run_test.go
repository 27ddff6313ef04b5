package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/memory"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/config"
	cerrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

var quietLogger = &log.Logger{Handler: discard.New(), Level: log.InfoLevel}

func testConfig(buf *bytes.Buffer) *config.ConfigBuilder {
	return config.NewConfigBuilder().
		WithOutput(buf).
		WithVerbosity(0).
		WithWorkers(2)
}

func TestRun_Total(t *testing.T) {
	for _, workers := range []int{1, 2} {
		var buf bytes.Buffer
		cfg := testConfig(&buf).WithDepth(2).WithWorkers(workers).Build()

		if err := run(context.Background(), cfg, quietLogger); err != nil {
			t.Fatalf("run(workers=%d) error = %v", workers, err)
		}
		if diff := cmp.Diff("perft(2) = 400\n", buf.String()); diff != "" {
			t.Errorf("workers=%d output mismatch (-want +got):\n%s", workers, diff)
		}
	}
}

func TestRun_SingleWorkerDivideMatchesPool(t *testing.T) {
	outputs := make([]string, 0, 2)
	for _, workers := range []int{1, 4} {
		var buf bytes.Buffer
		cfg := testConfig(&buf).WithDepth(2).WithDivide(true).WithWorkers(workers).Build()
		if err := run(context.Background(), cfg, quietLogger); err != nil {
			t.Fatalf("run(workers=%d) error = %v", workers, err)
		}
		outputs = append(outputs, buf.String())
	}
	if diff := cmp.Diff(outputs[0], outputs[1]); diff != "" {
		t.Errorf("single worker and pool disagree (-single +pool):\n%s", diff)
	}
}

func TestRun_DivideAfterLine(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf).WithDepth(1).WithDivide(true).WithMoves("e2e4", "e7e5").Build()

	if err := run(context.Background(), cfg, quietLogger); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 31 {
		t.Fatalf("got %d lines; want 29 moves, a blank line and a total:\n%s", len(lines), buf.String())
	}
	if lines[0] != "a2a3: 1" {
		t.Errorf("first line = %q; want %q", lines[0], "a2a3: 1")
	}
	if lines[30] != "perft(1) = 29" {
		t.Errorf("total = %q; want %q", lines[30], "perft(1) = 29")
	}
}

func TestRun_JSONAfterMate(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf).
		WithDepth(3).
		WithOutputFormat(config.JSON).
		WithMoves("f2f3", "e7e5", "g2g4", "d8h4").
		Build()

	if err := run(context.Background(), cfg, quietLogger); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	var got output.JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	want := output.JSONOutput{Reports: []*output.JSONReport{{
		Moves:  []string{"f2f3", "e7e5", "g2g4", "d8h4"},
		Depth:  3,
		Nodes:  0,
		Status: "Checkmate",
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ShowBoard(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf).WithDepth(1).WithShowBoard(true).Build()

	if err := run(context.Background(), cfg, quietLogger); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "perft(1) = 20\n") {
		t.Errorf("missing total in:\n%s", buf.String())
	}
	if len(buf.String()) <= len("perft(1) = 20\n") {
		t.Error("board diagram not written")
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(*bytes.Buffer) *config.Config
		wantErr error
	}{
		{
			name:    "depth out of range",
			cfg:     func(b *bytes.Buffer) *config.Config { return testConfig(b).WithDepth(0).Build() },
			wantErr: cerrors.ErrInvalidConfig,
		},
		{
			name:    "bad log level",
			cfg:     func(b *bytes.Buffer) *config.Config { return testConfig(b).WithLogLevel("loud").Build() },
			wantErr: cerrors.ErrInvalidConfig,
		},
		{
			name:    "illegal line",
			cfg:     func(b *bytes.Buffer) *config.Config { return testConfig(b).WithMoves("e2e4", "e2e5").Build() },
			wantErr: cerrors.ErrIllegalMove,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(context.Background(), tt.cfg(&buf), quietLogger)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v; want %v", err, tt.wantErr)
			}
			if buf.Len() != 0 {
				t.Errorf("output written on error: %q", buf.String())
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 2} {
		var buf bytes.Buffer
		err := run(ctx, testConfig(&buf).WithDepth(3).WithWorkers(workers).Build(), quietLogger)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("run(workers=%d) error = %v; want context.Canceled", workers, err)
		}
		if buf.Len() != 0 {
			t.Errorf("run(workers=%d) wrote %q after cancellation", workers, buf.String())
		}
	}
}

func TestRun_LogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	h := memory.New()
	logger := &log.Logger{Handler: h, Level: log.InfoLevel}

	if err := run(context.Background(), testConfig(&buf).WithDepth(1).Build(), logger); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if len(h.Entries) != 1 {
		t.Fatalf("logged %d entries; want 1", len(h.Entries))
	}
	e := h.Entries[0]
	if e.Message != "perft complete" {
		t.Errorf("message = %q; want %q", e.Message, "perft complete")
	}
	if e.Fields["nodes"] != uint64(20) {
		t.Errorf("nodes = %v; want 20", e.Fields["nodes"])
	}
}
