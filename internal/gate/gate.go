// Package gate resolves which fields of a record are always present and
// which are gated behind a later format revision, and with what runtime test.
package gate

import (
	"fmt"

	"github.com/alexhholmes/rawgen/internal/spec"
)

// Strategy selects how conditional presence is decided at decode time.
type Strategy int

const (
	// None marks every field always present.
	None Strategy = iota
	// ByLength gates fields past the core size on the buffer length.
	ByLength
	// ByDeterminant gates fields past the core size on a decoded or
	// caller-supplied extra-size value.
	ByDeterminant
	// ByMarker gates fields after the spec's extra_size marker on the
	// marker's decoded value, measured in bytes past the marker.
	ByMarker
)

func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case ByLength:
		return "length"
	case ByDeterminant:
		return "determinant"
	case ByMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Policy is the per-record gating configuration supplied by the driver.
type Policy struct {
	Strategy Strategy
	CoreSize int // ByLength, ByDeterminant

	// Determinant names the field holding the extra size (ByDeterminant
	// internal variant) or, with External set, the decode-function parameter
	// that stands in for it.
	Determinant string
	External    bool

	// Peek lists fields that get a narrow single-field decoder.
	Peek []string
}

// Field is a spec field with its resolved presence.
//
// For conditional fields Threshold is the buffer-length cutoff (ByLength) or
// the extra-byte count the determinant must reach (ByDeterminant, ByMarker).
type Field struct {
	spec.Field
	Conditional bool
	Threshold   int
}

// Record is a fully resolved record: fields with presence, the decode
// precondition, and the lifted determinant (decoded ahead of declaration
// order because later fields test its value).
type Record struct {
	Name        string
	Policy      Policy
	Fields      []Field
	MinSize     int
	Determinant *Field // nil for None, ByLength, and the external variant
}

// Resolve applies a gating policy to a parsed record. All validation happens
// here, before any code is emitted.
func Resolve(name string, rec *spec.Record, pol Policy) (*Record, error) {
	if rec.Marker != "" && pol.Strategy != ByMarker {
		return nil, fmt.Errorf("%s: spec declares %s marker %q but policy is %s",
			name, spec.MarkerToken, rec.Marker, pol.Strategy)
	}

	out := &Record{Name: name, Policy: pol}

	var err error
	switch pol.Strategy {
	case None:
		err = resolveNone(out, rec)
	case ByLength:
		err = resolveByLength(out, rec, pol)
	case ByDeterminant:
		err = resolveByDeterminant(out, rec, pol)
	case ByMarker:
		err = resolveByMarker(out, rec)
	default:
		err = fmt.Errorf("unknown strategy %d", pol.Strategy)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	for _, p := range pol.Peek {
		if rec.FieldByName(p) == nil {
			return nil, fmt.Errorf("%s: peek field %q not in record", name, p)
		}
	}

	return out, nil
}

func resolveNone(out *Record, rec *spec.Record) error {
	for _, f := range rec.Fields {
		out.Fields = append(out.Fields, Field{Field: f})
	}
	out.MinSize = rec.Size
	return nil
}

func resolveByLength(out *Record, rec *spec.Record, pol Policy) error {
	if pol.CoreSize <= 0 {
		return fmt.Errorf("length policy needs a positive core size, got %d", pol.CoreSize)
	}
	out.MinSize = pol.CoreSize
	for _, f := range rec.Fields {
		gf := Field{Field: f}
		if f.Offset >= pol.CoreSize {
			gf.Conditional = true
			gf.Threshold = f.End()
		} else if f.End() > out.MinSize {
			// A core field straddling the cutoff keeps the whole field
			// unconditional, so the precondition must cover it.
			out.MinSize = f.End()
		}
		out.Fields = append(out.Fields, gf)
	}
	return nil
}

func resolveByDeterminant(out *Record, rec *spec.Record, pol Policy) error {
	if pol.CoreSize <= 0 {
		return fmt.Errorf("determinant policy needs a positive core size, got %d", pol.CoreSize)
	}
	if pol.Determinant == "" {
		return fmt.Errorf("determinant policy needs a determinant name")
	}
	if !pol.External && rec.FieldByName(pol.Determinant) == nil {
		return fmt.Errorf("determinant field %q not in record", pol.Determinant)
	}

	out.MinSize = pol.CoreSize
	det := -1
	for _, f := range rec.Fields {
		gf := Field{Field: f}
		internal := !pol.External && f.Name == pol.Determinant
		if f.Offset >= pol.CoreSize && !internal {
			gf.Conditional = true
			gf.Threshold = f.End() - pol.CoreSize
		} else if f.End() > out.MinSize {
			out.MinSize = f.End()
		}
		out.Fields = append(out.Fields, gf)
		if internal {
			det = len(out.Fields) - 1
		}
	}
	if det >= 0 {
		out.Determinant = &out.Fields[det]
	}
	return nil
}

func resolveByMarker(out *Record, rec *spec.Record) error {
	if rec.Marker == "" {
		return fmt.Errorf("marker policy but spec has no %s field", spec.MarkerToken)
	}

	extra := -1 // bytes accumulated past the marker; -1 until the marker is seen
	det := -1
	for _, f := range rec.Fields {
		gf := Field{Field: f}
		if extra >= 0 {
			extra += f.Size
			gf.Conditional = true
			gf.Threshold = extra
		} else {
			out.MinSize = f.End()
		}
		out.Fields = append(out.Fields, gf)
		if f.Name == rec.Marker {
			extra = 0
			det = len(out.Fields) - 1
		}
	}
	out.Determinant = &out.Fields[det]
	return nil
}
