package wire

import (
	"fmt"
	"strings"
)

// Name is an owning, immutable DNS domain name. It stores the wire image of
// its labels (raw) and, for each label, the byte offset of that label's
// length octet within raw (offsets). The final offset always points at the
// terminating zero-length root label.
//
// Invariants: 1 <= len(raw) <= MaxWireLen; 1 <= len(offsets) <= MaxLabelCount;
// every non-root label is 1..MaxLabelLen bytes; offsets are strictly
// increasing; the last label is the zero-length root. A Name is immutable
// after construction; ToLowercase does not modify its receiver but returns
// a lowercased copy.
//
// Range and offset arithmetic throughout this package is done in Go's
// native int, never narrowed to byte, even though raw's length octets and
// offsets fit in a byte — narrowing before a bounds check is how the
// reference implementation this was ported from introduced an unsound
// (if practically harmless) byte-width computation.
type Name struct {
	raw     []byte
	offsets []byte
}

// NewName parses a presentation-form domain name (RFC 1035 Section 5.1):
// dot-separated labels, "\X" escaping a literal byte, "\DDD" a three-digit
// decimal byte value, "@" or "." alone meaning the root.
func NewName(s string) (Name, error) {
	raw, offsets, err := parsePresentation(s)
	if err != nil {
		return Name{}, err
	}
	return Name{raw: raw, offsets: offsets}, nil
}

// RootName returns the root domain name ".".
func RootName() Name {
	return Name{raw: []byte{0}, offsets: []byte{0}}
}

// RawData returns the wire image of the name's labels. Callers must treat
// this slice as read-only; it aliases the Name's internal storage.
func (n Name) RawData() []byte { return n.raw }

// Offsets returns the per-label offset table. Read-only, aliases internal
// storage.
func (n Name) Offsets() []byte { return n.offsets }

// Length returns len(RawData()).
func (n Name) Length() int { return len(n.raw) }

// LabelCount returns the number of labels, including the root label.
func (n Name) LabelCount() int { return len(n.offsets) }

// IsRoot reports whether n is the root name (length 1, single zero byte).
func (n Name) IsRoot() bool {
	return len(n.raw) == 1 && n.raw[0] == 0
}

// IsWildcard reports whether n's first label is exactly "*".
func (n Name) IsWildcard() bool {
	return n.raw[0] == 1 && n.raw[1] == '*'
}

// Clone returns an independent copy of n.
func (n Name) Clone() Name {
	raw := make([]byte, len(n.raw))
	copy(raw, n.raw)
	offsets := make([]byte, len(n.offsets))
	copy(offsets, n.offsets)
	return Name{raw: raw, offsets: offsets}
}

// ToLowercase returns a copy of n with every label byte ASCII-lowercased.
// Length octets and offsets are unchanged.
func (n Name) ToLowercase() Name {
	out := n.Clone()
	for i, b := range out.raw {
		out.raw[i] = lowerCase(b)
	}
	// length octets happen to be untouched by lowerCase (they're < 'A' or > 'z'
	// for all valid label lengths 0-63), so no restoration pass is needed.
	return out
}

// String renders n back to presentation form: dot-separated labels with
// "\DDD" for bytes outside printable ASCII and "\." or "\\" for a literal
// period or backslash, trailing dot included. The root name renders as ".".
func (n Name) String() string {
	if n.IsRoot() {
		return "."
	}
	var b strings.Builder
	labelCount := n.LabelCount()
	for li := 0; li < labelCount-1; li++ {
		pos := int(n.offsets[li])
		length := int(n.raw[pos])
		for _, c := range n.raw[pos+1 : pos+1+length] {
			writeEscapedByte(&b, c)
		}
		b.WriteByte('.')
	}
	return b.String()
}

func writeEscapedByte(b *strings.Builder, c byte) {
	switch {
	case c == '.' || c == '\\':
		b.WriteByte('\\')
		b.WriteByte(c)
	case c < 0x21 || c > 0x7e:
		fmt.Fprintf(b, "\\%03d", c)
	default:
		b.WriteByte(c)
	}
}

func parsePresentation(s string) ([]byte, []byte, error) {
	if s == "." || s == "@" {
		return []byte{0}, []byte{0}, nil
	}

	data := []byte(s)
	n := len(data)
	raw := make([]byte, 0, n+2)
	offsets := make([]byte, 0, 8)

	labelPlaceholder := 0
	labelLen := 0

	startLabel := func() error {
		if len(offsets) >= MaxLabelCount {
			return fmt.Errorf("label count exceeds %d: %w", MaxLabelCount, ErrTooLongLabel)
		}
		if len(raw) >= MaxWireLen {
			return fmt.Errorf("name exceeds %d bytes: %w", MaxWireLen, ErrTooLongName)
		}
		offsets = append(offsets, byte(len(raw)))
		labelPlaceholder = len(raw)
		raw = append(raw, 0)
		labelLen = 0
		return nil
	}
	endLabel := func() error {
		if labelLen == 0 {
			return fmt.Errorf("empty label: %w", ErrDuplicatePeriod)
		}
		raw[labelPlaceholder] = byte(labelLen)
		return nil
	}
	appendByte := func(b byte) error {
		if labelLen >= MaxLabelLen {
			return fmt.Errorf("label exceeds %d bytes: %w", MaxLabelLen, ErrTooLongLabel)
		}
		if len(raw) >= MaxWireLen {
			return fmt.Errorf("name exceeds %d bytes: %w", MaxWireLen, ErrTooLongName)
		}
		raw = append(raw, b)
		labelLen++
		return nil
	}
	terminate := func() error {
		raw = append(raw, 0)
		offsets = append(offsets, byte(len(raw)-1))
		if len(raw) > MaxWireLen {
			return fmt.Errorf("name exceeds %d bytes: %w", MaxWireLen, ErrTooLongName)
		}
		if len(offsets) > MaxLabelCount {
			return fmt.Errorf("label count exceeds %d: %w", MaxLabelCount, ErrTooLongLabel)
		}
		return nil
	}

	if err := startLabel(); err != nil {
		return nil, nil, err
	}

	i := 0
	for i < n {
		c := data[i]
		switch {
		case c == '.':
			if err := endLabel(); err != nil {
				return nil, nil, err
			}
			i++
			if i == n {
				if err := terminate(); err != nil {
					return nil, nil, err
				}
				return raw, offsets, nil
			}
			if err := startLabel(); err != nil {
				return nil, nil, err
			}
		case c == '\\':
			i++
			if i >= n {
				return nil, nil, fmt.Errorf("trailing escape: %w", ErrIncompleteName)
			}
			b := data[i]
			if labelLen == 0 && b == '[' {
				return nil, nil, fmt.Errorf("escaped label start %q: %w", b, ErrInvalidLabelCharacter)
			}
			if b >= '0' && b <= '9' {
				if i+2 >= n || !isASCIIDigit(data[i+1]) || !isASCIIDigit(data[i+2]) {
					return nil, nil, fmt.Errorf("decimal escape at %d: %w", i, ErrInvalidDecimalFormat)
				}
				val := int(b-'0')*100 + int(data[i+1]-'0')*10 + int(data[i+2]-'0')
				if val > 255 {
					return nil, nil, fmt.Errorf("decimal escape value %d: %w", val, ErrInvalidDecimalFormat)
				}
				if err := appendByte(byte(val)); err != nil {
					return nil, nil, err
				}
				i += 3
			} else {
				// Corrected behavior: a non-digit escaped byte is appended
				// literally and parsing continues as Ordinary on the next
				// iteration, rather than exiting the state machine early.
				if err := appendByte(b); err != nil {
					return nil, nil, err
				}
				i++
			}
		default:
			if err := appendByte(c); err != nil {
				return nil, nil, err
			}
			i++
		}
	}

	if err := endLabel(); err != nil {
		return nil, nil, err
	}
	if err := terminate(); err != nil {
		return nil, nil, err
	}
	return raw, offsets, nil
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }
