package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CK6170/vectors-go/vectors"
	gojson "github.com/goccy/go-json"
)

// inputFile is the JSON layout read by the inspect command.
type inputFile struct {
	Vectors [][]float64 `json:"vectors"`
}

func parseFile(data []byte) ([]vectors.Vector, error) {
	var in inputFile
	if err := gojson.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if len(in.Vectors) == 0 {
		return nil, errors.New("no vectors in input")
	}
	out := make([]vectors.Vector, len(in.Vectors))
	for i, vals := range in.Vectors {
		out[i] = build(vals)
	}
	return out, nil
}

// parseVector reads a comma-separated list such as "1, 2.5,-3".
func parseVector(s string) (vectors.Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty vector")
	}
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vector format: %w", err)
		}
		vals[i] = val
	}
	return build(vals), nil
}

// build picks the named fixed-size type for up to five components and an
// Array beyond that.
func build(vals []float64) vectors.Vector {
	switch len(vals) {
	case vectors.Size1D:
		return vectors.NewVector1D(vals[0])
	case vectors.Size2D:
		return vectors.NewVector2D(vals[0], vals[1])
	case vectors.Size3D:
		return vectors.NewVector3D(vals[0], vals[1], vals[2])
	case vectors.Size4D:
		return vectors.NewVector4D(vals[0], vals[1], vals[2], vals[3])
	case vectors.Size5D:
		return vectors.NewVector5D(vals[0], vals[1], vals[2], vals[3], vals[4])
	}
	return vectors.NewArray(vals...)
}

func distance(a, b vectors.Vector, strict bool) (float64, error) {
	if strict {
		return vectors.StrictDistance(a, b)
	}
	return a.Distance(b)
}

func inspect(w io.Writer, vs []vectors.Vector, format string, strict bool) error {
	for i, v := range vs {
		fmt.Fprintln(w, vectors.Format(v, fmt.Sprintf("vector %d %s", i, v), format))
		fmt.Fprintf(w, "size:       %d\n", v.Size())
		fmt.Fprintf(w, "length:     %g\n", v.Length())
		fmt.Fprintf(w, "normalized: %s\n", v.ToNormalized())
	}
	if len(vs) < 2 {
		return nil
	}
	fmt.Fprintln(w, vectors.Line)
	fmt.Fprintln(w, "distances")
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			d, err := distance(vs[i], vs[j], strict)
			if err != nil {
				return fmt.Errorf("distance %d -> %d: %w", i, j, err)
			}
			fmt.Fprintf(w, "[%03d] -> [%03d] %g\n", i, j, d)
		}
	}
	fmt.Fprintln(w, vectors.Line)
	return nil
}

func calc(w io.Writer, a, b vectors.Vector, format string, strict bool) error {
	d, err := distance(a, b, strict)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, vectors.Format(a.VectorTo(b), fmt.Sprintf("%s -> %s", a, b), format))
	fmt.Fprintf(w, "distance:  %g\n", d)
	fmt.Fprintf(w, "direction: %s\n", a.DirectionTo(b))
	fmt.Fprintf(w, "equal:     %t\n", a.Equal(b))

	if p, ok := a.(*vectors.Vector2D); ok && b.Size() == vectors.Size2D {
		fmt.Fprintf(w, "heading:   %g deg\n", p.AngleDegrees())
		fmt.Fprintf(w, "angle to:  %g deg\n", p.AngleDegreesTo(b))
	}
	return nil
}
