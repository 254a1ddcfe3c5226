package codegen

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/rawgen/internal/gate"
	"github.com/alexhholmes/rawgen/internal/spec"
)

// Generator emits the struct definition, decode function, and peek functions
// for one resolved record.
type Generator struct {
	rec *gate.Record
}

// NewGenerator creates a generator for a resolved record.
func NewGenerator(rec *gate.Record) *Generator {
	return &Generator{rec: rec}
}

// Preamble returns the generated-file header for a set of records: the
// package clause and the import of the decode primitives when any record
// needs them.
func Preamble(pkg string, recs []*gate.Record) string {
	var code strings.Builder

	code.WriteString("// Code generated by rawgen. DO NOT EDIT.\n\n")
	code.WriteString(fmt.Sprintf("package %s\n\n", pkg))
	if needsBinary(recs) {
		code.WriteString("import \"encoding/binary\"\n\n")
	}

	return code.String()
}

// needsBinary reports whether any record decodes a multi-byte scalar.
func needsBinary(recs []*gate.Record) bool {
	for _, rec := range recs {
		for _, f := range rec.Fields {
			if !f.IsArray() && f.Prim.Size > 1 {
				return true
			}
		}
	}
	return false
}

// Generate returns the full emitted text for the record: type definition,
// decode function, and any peek functions. Output is deterministic for a
// given record and policy.
func (g *Generator) Generate() string {
	var out strings.Builder

	out.WriteString(g.GenerateStruct())
	out.WriteString("\n")
	out.WriteString(g.GenerateDecode())
	out.WriteString(g.GeneratePeeks())

	return out.String()
}

// GenerateStruct generates the type definition: one member per field in
// declaration order, conditional members as pointers, doc comments re-emitted
// above their member.
func (g *Generator) GenerateStruct() string {
	var code strings.Builder

	code.WriteString(fmt.Sprintf("type %s struct {\n", g.rec.Name))
	for i := range g.rec.Fields {
		f := &g.rec.Fields[i]
		if f.Comment != "" {
			code.WriteString(fmt.Sprintf("\t// %s\n", f.Comment))
		}
		code.WriteString(fmt.Sprintf("\t%s %s\n", goName(f.Name), memberType(f)))
	}
	code.WriteString("}\n")

	return code.String()
}

// GenerateDecode generates the decode function. The determinant field, when
// the policy lifts one, is read before the per-field pass so conditional
// fields can test its value.
func (g *Generator) GenerateDecode() string {
	var code strings.Builder
	name := g.rec.Name

	if g.rec.Policy.Strategy == gate.ByDeterminant && g.rec.Policy.External {
		code.WriteString(fmt.Sprintf("func Decode%s(data []byte, %s int) %s {\n",
			name, determinantVar(g.rec), name))
	} else {
		code.WriteString(fmt.Sprintf("func Decode%s(data []byte) %s {\n", name, name))
	}

	code.WriteString(fmt.Sprintf("\tif len(data) < 0x%02x {\n", g.rec.MinSize))
	code.WriteString(fmt.Sprintf("\t\tpanic(\"%s: buffer shorter than 0x%02x bytes\")\n",
		name, g.rec.MinSize))
	code.WriteString("\t}\n")

	if g.rec.Determinant != nil {
		code.WriteString(fmt.Sprintf("\t%s := %s\n",
			determinantVar(g.rec), readExpr(g.rec.Determinant)))
	}

	code.WriteString(fmt.Sprintf("\tvar r %s\n", name))
	for i := range g.rec.Fields {
		code.WriteString(g.generateFieldOp(&g.rec.Fields[i]))
	}
	code.WriteString("\treturn r\n")
	code.WriteString("}\n")

	return code.String()
}

// generateFieldOp emits the assignment for one field, wrapped in the
// presence test when the field is conditional.
func (g *Generator) generateFieldOp(f *gate.Field) string {
	var code strings.Builder
	member := goName(f.Name)

	if g.rec.Determinant != nil && f.Name == g.rec.Determinant.Name {
		code.WriteString(fmt.Sprintf("\tr.%s = %s\n", member, determinantVar(g.rec)))
		return code.String()
	}

	if !f.Conditional {
		if f.IsArray() {
			code.WriteString(fmt.Sprintf("\tcopy(r.%s[:], data[0x%02x:0x%02x])\n",
				member, f.Offset, f.End()))
		} else {
			code.WriteString(fmt.Sprintf("\tr.%s = %s\n", member, readExpr(f)))
		}
		return code.String()
	}

	code.WriteString(fmt.Sprintf("\tif %s {\n", g.presenceTest(f)))
	if f.IsArray() {
		code.WriteString(fmt.Sprintf("\t\tvar v [%d]byte\n", f.ArrayLen))
		code.WriteString(fmt.Sprintf("\t\tcopy(v[:], data[0x%02x:0x%02x])\n", f.Offset, f.End()))
		code.WriteString(fmt.Sprintf("\t\tr.%s = &v\n", member))
	} else {
		code.WriteString(fmt.Sprintf("\t\tv := %s\n", readExpr(f)))
		code.WriteString(fmt.Sprintf("\t\tr.%s = &v\n", member))
	}
	code.WriteString("\t}\n")

	return code.String()
}

// presenceTest returns the runtime expression deciding whether a conditional
// field was present in the encoded record.
func (g *Generator) presenceTest(f *gate.Field) string {
	switch g.rec.Policy.Strategy {
	case gate.ByLength:
		return fmt.Sprintf("len(data) >= 0x%02x", f.Threshold)
	case gate.ByDeterminant:
		if g.rec.Policy.External {
			return fmt.Sprintf("%s >= %d", determinantVar(g.rec), f.Threshold)
		}
		return fmt.Sprintf("int(%s) >= %d", determinantVar(g.rec), f.Threshold)
	case gate.ByMarker:
		return fmt.Sprintf("int(%s) >= %d", determinantVar(g.rec), f.Threshold)
	default:
		// None never produces conditional fields.
		return "false"
	}
}

// GeneratePeeks generates one narrow decoder per configured peek field. The
// presence test is always the buffer length: peek exists so a caller can
// read a size field out of a possibly truncated record before anything else
// is known about it.
func (g *Generator) GeneratePeeks() string {
	var code strings.Builder

	for _, name := range g.rec.Policy.Peek {
		for i := range g.rec.Fields {
			f := &g.rec.Fields[i]
			if f.Name != name {
				continue
			}
			code.WriteString("\n")
			code.WriteString(fmt.Sprintf("func Peek%s%s(data []byte) *%s {\n",
				g.rec.Name, goName(f.Name), valueType(f)))
			code.WriteString(fmt.Sprintf("\tif len(data) < 0x%02x {\n", f.End()))
			code.WriteString("\t\treturn nil\n")
			code.WriteString("\t}\n")
			if f.IsArray() {
				code.WriteString(fmt.Sprintf("\tvar v [%d]byte\n", f.ArrayLen))
				code.WriteString(fmt.Sprintf("\tcopy(v[:], data[0x%02x:0x%02x])\n", f.Offset, f.End()))
			} else {
				code.WriteString(fmt.Sprintf("\tv := %s\n", readExpr(f)))
			}
			code.WriteString("\treturn &v\n")
			code.WriteString("}\n")
		}
	}

	return code.String()
}

// readExpr returns the Go expression that decodes a scalar field from the
// data slice at its fixed offset.
func readExpr(f *gate.Field) string {
	p := f.Prim

	if p.Size == 1 {
		return fmt.Sprintf("data[0x%02x]", f.Offset)
	}

	order := "binary.LittleEndian"
	if p.Order == spec.BigEndian {
		order = "binary.BigEndian"
	}
	var fn string
	switch p.Size {
	case 2:
		fn = "Uint16"
	case 8:
		fn = "Uint64"
	default:
		fn = "Uint32"
	}

	expr := fmt.Sprintf("%s.%s(data[0x%02x:])", order, fn, f.Offset)
	if p.Signed {
		expr = fmt.Sprintf("%s(%s)", p.GoType, expr)
	}
	return expr
}

// valueType returns the Go type of a field's decoded value.
func valueType(f *gate.Field) string {
	if f.IsArray() {
		return fmt.Sprintf("[%d]byte", f.ArrayLen)
	}
	return f.Prim.GoType
}

// memberType returns the struct member type, pointer-wrapped for conditional
// fields so absence stays distinguishable from a zero value.
func memberType(f *gate.Field) string {
	t := valueType(f)
	if f.Conditional {
		return "*" + t
	}
	return t
}

// determinantVar is the local (or parameter) name holding the lifted
// extra-size value inside the decode function.
func determinantVar(rec *gate.Record) string {
	name := goName(rec.Policy.Determinant)
	if rec.Determinant != nil {
		name = goName(rec.Determinant.Name)
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// goName converts an on-disk field name to an exported Go identifier:
// i_extra_isize → IExtraIsize.
func goName(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
