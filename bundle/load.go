package bundle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgeo/geom"
)

// segmentRecord is one LineSegments line, kept until the skeleton is known.
type segmentRecord struct {
	index    int
	endpoint geom.Point
	line     int
}

// Parse reads the sectioned bundle description format:
//
//	Radius: <float>
//	Vertices:
//	<x> <y>          # one skeleton vertex per line, in order
//	LineSegments:
//	<index> <x> <y>  # outer endpoint (x, y) for skeleton[index]
//
// Blank lines and #-prefixed lines are ignored. Missing radius or an empty
// vertex list, malformed data lines, and out-of-range segment indices are
// fatal: the partial structure is discarded and only the error returned.
// Per-segment validation failures (sector violations, duplicates, over-length
// segments without clamping) do not abort the load; they are collected and
// returned so callers can report them while keeping the rest of the sequence.
func Parse(r io.Reader, opts ...Option) (*Sequence, []error, error) {
	var (
		radius    float64
		hasRadius bool
		vertices  []geom.Point
		segments  []segmentRecord
		section   string
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Radius:"):
			section = "Radius"
			v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(line, "Radius:")), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
			}
			radius = v
			hasRadius = true
		case strings.HasPrefix(line, "Vertices:"):
			section = "Vertices"
		case strings.HasPrefix(line, "LineSegments:"):
			section = "LineSegments"
		default:
			fields := strings.Fields(line)
			switch section {
			case "Vertices":
				if len(fields) != 2 {
					return nil, nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
				}
				x, errX := strconv.ParseFloat(fields[0], 64)
				y, errY := strconv.ParseFloat(fields[1], 64)
				if errX != nil || errY != nil {
					return nil, nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
				}
				vertices = append(vertices, geom.Point{X: x, Y: y})
			case "LineSegments":
				if len(fields) != 3 {
					return nil, nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
				}
				idx, errI := strconv.Atoi(fields[0])
				x, errX := strconv.ParseFloat(fields[1], 64)
				y, errY := strconv.ParseFloat(fields[2], 64)
				if errI != nil || errX != nil || errY != nil {
					return nil, nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
				}
				segments = append(segments, segmentRecord{index: idx, endpoint: geom.Point{X: x, Y: y}, line: lineNo})
			default:
				return nil, nil, fmt.Errorf("%w: line %d: data outside any section: %q", ErrMalformedLine, lineNo, line)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	if !hasRadius {
		return nil, nil, ErrMissingRadius
	}
	if len(vertices) == 0 {
		return nil, nil, ErrMissingVertices
	}

	seq, err := New(vertices, radius, opts...)
	if err != nil {
		return nil, nil, err
	}

	var skipped []error
	for _, rec := range segments {
		if rec.index < 0 || rec.index >= len(vertices) {
			return nil, nil, fmt.Errorf("%w: line %d: index %d with %d vertices",
				ErrSegmentIndex, rec.line, rec.index, len(vertices))
		}
		if err := seq.AddSegmentAt(rec.index, rec.endpoint); err != nil {
			skipped = append(skipped, fmt.Errorf("line %d: %w", rec.line, err))
		}
	}

	return seq, skipped, nil
}

// Load reads a bundle description file. With preprocess set, the sequence is
// built in clamp mode and the global min-clearance clamp runs after loading,
// matching the rule that over-length segments are never rejected once
// preprocessing is requested.
func Load(path string, preprocess bool) (*Sequence, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var opts []Option
	if preprocess {
		opts = append(opts, WithClamping())
	}

	seq, skipped, err := Parse(f, opts...)
	if err != nil {
		return nil, nil, err
	}
	if preprocess {
		seq.Preprocess()
	}

	return seq, skipped, nil
}
