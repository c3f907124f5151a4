package wire

import "fmt"

// DecodeName reads a (possibly compressed) domain name from buf per
// RFC 1035 Section 4.1.4, following pointers subject to a monotonic
// bound: the bound starts at the position where the name begins, each
// pointer followed must target an offset strictly less than the bound, and
// the bound then becomes that target. This both guarantees termination and
// forbids forward or self-referential loops without needing a visited set.
func DecodeName(buf *InputBuffer) (Name, error) {
	start := buf.Position()
	raw := make([]byte, 0, 32)
	offsets := make([]byte, 0, 8)

	bound := start
	firstPointerFollowed := false
	postPointerCursor := -1

loop:
	for {
		c, err := buf.ReadU8()
		if err != nil {
			return Name{}, err
		}
		switch {
		case c <= 63:
			offsets = append(offsets, byte(len(raw)))
			raw = append(raw, c)
			if c == 0 {
				break loop
			}
			lbl, err := buf.ReadBytes(int(c))
			if err != nil {
				return Name{}, err
			}
			raw = append(raw, lbl...)
		case (c & compressPointerMask) == compressPointerMask:
			lo, err := buf.ReadU8()
			if err != nil {
				return Name{}, err
			}
			ptr := (int(c&0x3F) << 8) | int(lo)
			if ptr >= bound {
				return Name{}, fmt.Errorf("pointer to %d from bound %d: %w", ptr, bound, ErrBadCompressPointer)
			}
			if !firstPointerFollowed {
				postPointerCursor = buf.Position()
				firstPointerFollowed = true
			}
			bound = ptr
			if err := buf.SetPosition(ptr); err != nil {
				return Name{}, err
			}
		default:
			return Name{}, fmt.Errorf("reserved label type bits in 0x%02x: %w", c, ErrInvalidLabelCharacter)
		}
		if len(raw) > MaxWireLen {
			return Name{}, fmt.Errorf("name exceeds %d bytes: %w", MaxWireLen, ErrTooLongName)
		}
		if len(offsets) > MaxLabelCount {
			return Name{}, fmt.Errorf("label count exceeds %d: %w", MaxLabelCount, ErrTooLongLabel)
		}
	}

	if postPointerCursor >= 0 {
		if err := buf.SetPosition(postPointerCursor); err != nil {
			return Name{}, err
		}
	}
	return Name{raw: raw, offsets: offsets}, nil
}

// WriteWire appends n's wire image to out without applying name
// compression. Used by the RDATA ToWire methods (NS/CNAME/PTR, MX, NAPTR),
// which write without a compression dictionary.
func (n Name) WriteWire(out *OutputBuffer) {
	out.WriteBytes(n.raw)
}
