package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
	"github.com/cwbudde/algo-peaks/internal/config"
	"github.com/cwbudde/algo-peaks/internal/recording"
	"github.com/cwbudde/algo-peaks/internal/report"
	"github.com/cwbudde/algo-peaks/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		Input:  config.InputConfig{Delimiter: ","},
		Detect: config.DetectConfig{Mode: config.ModeFixed, Threshold: 5, Sigmas: 1, Channels: []string{"x"}},
		Output: config.OutputConfig{Format: config.FormatText, Precision: 1},
		Plot:   config.PlotConfig{Width: 320, Height: 200},
	}
}

// writeRecording stores a recording whose x axis is a train of four pulses
// and whose y and z axes are flat.
func writeRecording(t *testing.T) string {
	t.Helper()

	x := testutil.TrianglePulses(0, 10, 5, 3, 4)
	var b strings.Builder
	for i, v := range x {
		fmt.Fprintf(&b, "%d, %g, 0, 0\n", 1000+10*i, v)
	}

	path := filepath.Join(t.TempDir(), "pulses.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func ptr[T any](v T) *T { return &v }

func TestStrategy(t *testing.T) {
	a := NewApp(testConfig(), zerolog.Nop(), &bytes.Buffer{})

	s, err := a.Strategy(ThresholdOptions{})
	if err != nil || s != peaks.Fixed(5) {
		t.Fatalf("config fallback: got %v, %v", s, err)
	}

	s, err = a.Strategy(ThresholdOptions{Threshold: ptr(2.0)})
	if err != nil || s != peaks.Fixed(2) {
		t.Fatalf("explicit threshold: got %v, %v", s, err)
	}

	s, err = a.Strategy(ThresholdOptions{Sigmas: ptr(1.5)})
	if err != nil || s != (peaks.StdDev{Sigmas: 1.5}) {
		t.Fatalf("explicit sigmas: got %v, %v", s, err)
	}

	if _, err := a.Strategy(ThresholdOptions{Threshold: ptr(1.0), Sigmas: ptr(1.0)}); !errors.Is(err, ErrConflictingThreshold) {
		t.Fatalf("expected ErrConflictingThreshold, got %v", err)
	}

	for _, opts := range []ThresholdOptions{
		{Threshold: ptr(math.Inf(1))},
		{Threshold: ptr(math.NaN())},
		{Sigmas: ptr(math.Inf(-1))},
	} {
		if _, err := a.Strategy(opts); !errors.Is(err, ErrNonFinite) {
			t.Fatalf("expected ErrNonFinite, got %v", err)
		}
	}

	a.Config.Detect.Mode = config.ModeStdDev
	s, err = a.Strategy(ThresholdOptions{})
	if err != nil || s != (peaks.StdDev{Sigmas: 1}) {
		t.Fatalf("stddev mode: got %v, %v", s, err)
	}
}

func TestDetectText(t *testing.T) {
	var out bytes.Buffer
	a := NewApp(testConfig(), zerolog.Nop(), &out)

	if err := a.Detect(context.Background(), DetectOptions{CSVPath: writeRecording(t)}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out.String())
	}
	if lines[0] != "X-Axis Peaks" {
		t.Fatalf("heading = %q", lines[0])
	}
	if lines[1] != "{ (5, 4.0), (8, 10.0), (16, 0.0), 46.0 }" {
		t.Fatalf("first region = %q", lines[1])
	}
}

func TestDetectJSONAllChannels(t *testing.T) {
	var out bytes.Buffer
	a := NewApp(testConfig(), zerolog.Nop(), &out)

	opts := DetectOptions{
		CSVPath:  writeRecording(t),
		Channels: recording.Channels,
		Format:   config.FormatJSON,
	}
	if err := a.Detect(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	var reports []report.ChannelReport
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(reports) != len(recording.Channels) {
		t.Fatalf("got %d reports, want %d", len(reports), len(recording.Channels))
	}

	counts := map[string]int{}
	for _, r := range reports {
		counts[r.Channel] = len(r.Regions)
	}
	// The magnitude of a non-negative x axis with flat y and z equals x.
	if counts["x"] != 3 || counts["magnitude"] != 3 || counts["y"] != 0 || counts["z"] != 0 {
		t.Fatalf("unexpected region counts %v", counts)
	}
}

func TestDetectStdDev(t *testing.T) {
	var out bytes.Buffer
	a := NewApp(testConfig(), zerolog.Nop(), &out)

	opts := DetectOptions{
		ThresholdOptions: ThresholdOptions{Sigmas: ptr(1.0)},
		CSVPath:          writeRecording(t),
		Precision:        ptr(0),
	}
	if err := a.Detect(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "threshold 7, 3 peaks") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestDetectErrors(t *testing.T) {
	path := writeRecording(t)

	tests := []struct {
		name string
		opts DetectOptions
		want error
	}{
		{"unknown channel", DetectOptions{CSVPath: path, Channels: []string{"w"}}, recording.ErrUnknownChannel},
		{"conflicting threshold", DetectOptions{CSVPath: path, ThresholdOptions: ThresholdOptions{Threshold: ptr(1.0), Sigmas: ptr(1.0)}}, ErrConflictingThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewApp(testConfig(), zerolog.Nop(), &bytes.Buffer{})
			if err := a.Detect(context.Background(), tt.opts); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	a := NewApp(testConfig(), zerolog.Nop(), &bytes.Buffer{})
	if err := a.Detect(context.Background(), DetectOptions{}); err == nil {
		t.Fatal("expected error without input path")
	}
	if err := a.Detect(context.Background(), DetectOptions{CSVPath: path, Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestDetectMalformedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("1,2,3,4\n2,x,3,4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	a := NewApp(testConfig(), zerolog.Nop(), &out)
	err := a.Detect(context.Background(), DetectOptions{CSVPath: path})
	if !errors.Is(err, recording.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestDetectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewApp(testConfig(), zerolog.Nop(), &bytes.Buffer{})
	if err := a.Detect(ctx, DetectOptions{CSVPath: writeRecording(t)}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPlot(t *testing.T) {
	a := NewApp(testConfig(), zerolog.Nop(), &bytes.Buffer{})
	png := filepath.Join(t.TempDir(), "out", "x.png")

	opts := PlotOptions{CSVPath: writeRecording(t), PNGPath: png, Channel: "x"}
	if err := a.Plot(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(png)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestPlotRequiresPaths(t *testing.T) {
	a := NewApp(testConfig(), zerolog.Nop(), &bytes.Buffer{})
	if err := a.Plot(context.Background(), PlotOptions{Channel: "x"}); err == nil {
		t.Fatal("expected error without --png")
	}
	if err := a.Plot(context.Background(), PlotOptions{PNGPath: "x.png"}); err == nil {
		t.Fatal("expected error without --channel")
	}
}
