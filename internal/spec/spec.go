package spec

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// Field is one member of a record. Prim is nil for fixed byte arrays.
type Field struct {
	Name     string
	Prim     *Primitive
	ArrayLen int    // element count when Prim is nil
	Offset   int    // running sum of preceding field sizes
	Size     int    // bytes occupied
	Comment  string // doc comment text, without the /* */ markers
}

// IsArray reports whether the field is a fixed byte array rather than a
// decoded scalar.
func (f *Field) IsArray() bool {
	return f.Prim == nil
}

// End returns the byte offset one past the field.
func (f *Field) End() int {
	return f.Offset + f.Size
}

// Record is the parsed field list for one record type. Marker names the
// extra_size field when the spec declares one.
type Record struct {
	Fields []Field
	Size   int // total bytes, equal to the final field's End
	Marker string
}

// FieldByName returns the field with the given name, or nil.
func (r *Record) FieldByName(name string) *Field {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i]
		}
	}
	return nil
}

// specLine matches one field declaration:
//
//	<type-token> <name> ';'
//	<type-token> <name> '[' <len> ']' ';'
//
// with an optional trailing /* doc comment */. For the array form the type
// token slot is ignored; only the bracketed length matters.
var specLine = regexp.MustCompile(`^\s*(\w+)\s+(\w+)\s*(?:\[(\d+)\])?;\s*(?:/\*\s*(.*?)\s*\*/)?\s*$`)

// Parse reads a line-oriented record description and produces the ordered
// field list. Offsets are assigned by a running byte counter in declaration
// order; blank lines are skipped. A line that fails the grammar or names an
// unknown type token aborts the parse.
func Parse(r io.Reader) (*Record, error) {
	rec := &Record{}
	run := 0
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		f, err := parseLine(line, rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if f == nil {
			continue // blank
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("line %d: duplicate field %q", lineno, f.Name)
		}
		seen[f.Name] = true

		f.Offset = run
		run += f.Size
		rec.Fields = append(rec.Fields, *f)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}

	rec.Size = run
	return rec, nil
}

// parseLine returns nil, nil for blank lines. The marker, if declared, is
// recorded on rec.
func parseLine(line string, rec *Record) (*Field, error) {
	if isBlank(line) {
		return nil, nil
	}

	m := specLine.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("can't read: %q", line)
	}
	token, name, arrayLen, comment := m[1], m[2], m[3], m[4]

	f := &Field{Name: name, Comment: comment}

	if arrayLen != "" {
		n, err := strconv.Atoi(arrayLen)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad array length in: %q", line)
		}
		f.ArrayLen = n
		f.Size = n
		return f, nil
	}

	if token == MarkerToken {
		if rec.Marker != "" {
			return nil, fmt.Errorf("second %s marker: %q", MarkerToken, line)
		}
		rec.Marker = name
		p := Primitive{Size: 2, Order: LittleEndian, GoType: "uint16"}
		f.Prim = &p
		f.Size = p.Size
		return f, nil
	}

	p, ok := LookupPrimitive(token)
	if !ok {
		return nil, fmt.Errorf("unknown type %q for field %q", token, name)
	}
	f.Prim = &p
	f.Size = p.Size
	return f, nil
}

func isBlank(line string) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}
