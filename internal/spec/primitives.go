package spec

// ByteOrder selects the wire encoding of a scalar primitive.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unknown"
	}
}

// Primitive describes one on-disk scalar encoding: its byte width, byte
// order, signedness, and the Go type its decoded value carries.
type Primitive struct {
	Size   int
	Order  ByteOrder
	Signed bool
	GoType string
}

// MarkerToken is the reserved type token that declares the extra-size
// determinant. It reads as a little-endian u16 occupying the current offset.
const MarkerToken = "extra_size"

// primitives is the closed registry of scalar type tokens. Not extensible at
// parse time.
var primitives = map[string]Primitive{
	"__u8":    {Size: 1, Order: LittleEndian, GoType: "uint8"},
	"__be16":  {Size: 2, Order: BigEndian, GoType: "uint16"},
	"__le16":  {Size: 2, Order: LittleEndian, GoType: "uint16"},
	"__le32":  {Size: 4, Order: LittleEndian, GoType: "uint32"},
	"__lei32": {Size: 4, Order: LittleEndian, Signed: true, GoType: "int32"},
	"__le64":  {Size: 8, Order: LittleEndian, GoType: "uint64"},
}

// LookupPrimitive returns the registry entry for a type token.
func LookupPrimitive(token string) (Primitive, bool) {
	p, ok := primitives[token]
	return p, ok
}
