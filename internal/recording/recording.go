// Package recording loads three-axis sensor recordings from CSV.
package recording

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrMalformedRecord matches every *MalformedRecordError.
	ErrMalformedRecord = errors.New("recording: malformed record")
	// ErrUnknownChannel is returned for channel names outside Channels.
	ErrUnknownChannel = errors.New("recording: unknown channel")
)

const columns = 4 // timestamp, x, y, z

// Channel names accepted by [Recording.Channel].
const (
	ChannelX         = "x"
	ChannelY         = "y"
	ChannelZ         = "z"
	ChannelMagnitude = "magnitude"
)

// Channels lists the selectable channels in presentation order.
var Channels = []string{ChannelX, ChannelY, ChannelZ, ChannelMagnitude}

// MalformedRecordError reports the first row that could not be parsed.
// Row is the 1-based input line and Column the 1-based field; Column is 0
// when the row as a whole is bad.
type MalformedRecordError struct {
	Row    int
	Column int
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("recording: malformed record at row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("recording: malformed record at row %d, column %d: %v", e.Row, e.Column, e.Err)
}

// Unwrap exposes both ErrMalformedRecord and the underlying cause.
func (e *MalformedRecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}

// Recording holds the columns of a three-axis recording.
type Recording struct {
	Timestamps []float64
	X          []float64
	Y          []float64
	Z          []float64
}

// Len returns the number of rows.
func (r *Recording) Len() int {
	return len(r.Timestamps)
}

// Channel returns the samples of the named channel. The magnitude channel is
// derived on each call.
func (r *Recording) Channel(name string) ([]float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ChannelX:
		return r.X, nil
	case ChannelY:
		return r.Y, nil
	case ChannelZ:
		return r.Z, nil
	case ChannelMagnitude:
		return r.Magnitude(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
}

// Magnitude returns the Euclidean norm sqrt(x²+y²+z²) of every row.
func (r *Recording) Magnitude() []float64 {
	n := r.Len()
	if n == 0 {
		return nil
	}

	xy := make([]float64, n)
	vecmath.Magnitude(xy, r.X, r.Y)

	out := make([]float64, n)
	vecmath.Magnitude(out, xy, r.Z)

	return out
}

type options struct {
	comma  rune
	header bool
}

// Option configures how a recording is read.
type Option func(*options)

// WithComma sets the field delimiter. The default is ','.
func WithComma(comma rune) Option {
	return func(o *options) {
		if comma != 0 {
			o.comma = comma
		}
	}
}

// WithHeader skips the first row.
func WithHeader() Option {
	return func(o *options) {
		o.header = true
	}
}

// Load reads the recording stored at path.
func Load(path string, opts ...Option) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recording: open %s: %w", path, err)
	}
	defer f.Close()

	rec, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rec, nil
}

// Read parses rows of "timestamp, x, y, z" from r. Parsing stops at the first
// malformed row; no partial recording is returned.
func Read(r io.Reader, opts ...Option) (*Recording, error) {
	o := options{comma: ','}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	rec := &Recording{}
	first := true

	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &MalformedRecordError{Row: perr.StartLine, Column: perr.Column, Err: perr.Err}
			}
			return nil, fmt.Errorf("recording: read: %w", err)
		}

		row, _ := cr.FieldPos(0)
		if first {
			first = false
			if o.header {
				continue
			}
		}

		if len(fields) < columns {
			return nil, &MalformedRecordError{
				Row: row,
				Err: fmt.Errorf("want %d fields, got %d", columns, len(fields)),
			}
		}

		var values [columns]float64
		for i := range values {
			v, err := parseField(fields[i])
			if err != nil {
				return nil, &MalformedRecordError{Row: row, Column: i + 1, Err: err}
			}
			values[i] = v
		}

		rec.Timestamps = append(rec.Timestamps, values[0])
		rec.X = append(rec.X, values[1])
		rec.Y = append(rec.Y, values[2])
		rec.Z = append(rec.Z, values[3])
	}

	return rec, nil
}

func parseField(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", field)
	}
	return v, nil
}
