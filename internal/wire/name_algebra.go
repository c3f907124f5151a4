package wire

import "fmt"

// Equals reports case-insensitive equality of n and other (RFC 4343).
func (n Name) Equals(other Name) bool {
	return LabelViewFromName(n).Equals(LabelViewFromName(other), false)
}

// Hash returns a case-insensitive FNV-1a hash of n's wire image, suitable
// for use as a map key alongside Equals.
func (n Name) Hash() uint64 {
	const offsetBasis = 14695981039346656037
	const prime = 1099511628211
	h := uint64(offsetBasis)
	for _, b := range n.raw {
		h ^= uint64(lowerCase(b))
		h *= prime
	}
	return h
}

// GetRelation compares n and other label-by-label from the root,
// case-insensitively, returning their hierarchical relationship.
func (n Name) GetRelation(other Name) NameComparisonResult {
	return LabelViewFromName(n).Compare(LabelViewFromName(other), false)
}

// Less reports whether n sorts before other in canonical DNS order.
func (n Name) Less(other Name) bool {
	return n.GetRelation(other).Order < 0
}

// ConcatAll returns a new name formed by dropping n's terminating root
// label, appending each suffix's labels in turn (each suffix but the last
// likewise loses its terminating root), and keeping the final suffix's
// root as the new terminator. With no suffixes it returns a clone of n.
func (n Name) ConcatAll(suffixes ...Name) (Name, error) {
	if len(suffixes) == 0 {
		return n.Clone(), nil
	}

	type part struct {
		bytes []byte
		base  int
	}
	parts := make([]part, 0, len(suffixes)+1)
	offsets := make([]byte, 0, n.LabelCount()+4)

	selfBytes := n.raw[:len(n.raw)-1]
	parts = append(parts, part{bytes: selfBytes})
	offsets = append(offsets, n.offsets[:len(n.offsets)-1]...)

	base := len(selfBytes)
	for i, s := range suffixes {
		last := i == len(suffixes)-1
		var bs []byte
		var offs []byte
		if last {
			bs = s.raw
			offs = s.offsets
		} else {
			bs = s.raw[:len(s.raw)-1]
			offs = s.offsets[:len(s.offsets)-1]
		}
		for _, o := range offs {
			nv := base + int(o)
			if nv > MaxWireLen {
				return Name{}, fmt.Errorf("concatenated name exceeds %d bytes: %w", MaxWireLen, ErrTooLongName)
			}
			offsets = append(offsets, byte(nv))
		}
		parts = append(parts, part{bytes: bs})
		base += len(bs)
	}

	total := 0
	for _, p := range parts {
		total += len(p.bytes)
	}
	if total > MaxWireLen {
		return Name{}, fmt.Errorf("concatenated name is %d bytes, exceeds %d: %w", total, MaxWireLen, ErrTooLongName)
	}
	if len(offsets) > MaxLabelCount {
		return Name{}, fmt.Errorf("concatenated name has %d labels, exceeds %d: %w", len(offsets), MaxLabelCount, ErrTooLongLabel)
	}

	raw := make([]byte, 0, total)
	for _, p := range parts {
		raw = append(raw, p.bytes...)
	}
	return Name{raw: raw, offsets: offsets}, nil
}

// Reverse returns a new name with its non-root labels in reverse order;
// the root label stays last.
func (n Name) Reverse() Name {
	lc := n.LabelCount()
	type span struct{ start, length int }
	spans := make([]span, 0, lc-1)
	for i := 0; i < lc-1; i++ {
		pos := int(n.offsets[i])
		spans = append(spans, span{start: pos, length: int(n.raw[pos]) + 1})
	}

	raw := make([]byte, 0, len(n.raw))
	offsets := make([]byte, 0, lc)
	for i := len(spans) - 1; i >= 0; i-- {
		offsets = append(offsets, byte(len(raw)))
		s := spans[i]
		raw = append(raw, n.raw[s.start:s.start+s.length]...)
	}
	offsets = append(offsets, byte(len(raw)))
	raw = append(raw, 0)
	return Name{raw: raw, offsets: offsets}
}

// Split returns the labels [startLabel, startLabel+count) of n as a new
// name. If the requested range reaches n's own root label the suffix is
// copied as-is; otherwise the affected labels are copied and a fresh root
// is appended. An overshoot on the right is silently clamped.
func (n Name) Split(startLabel, count int) (Name, error) {
	total := n.LabelCount()
	if startLabel < 0 || startLabel >= total {
		return Name{}, fmt.Errorf("split start %d of %d labels: %w", startLabel, total, ErrInvalidLabelIndex)
	}
	end := startLabel + count
	if end > total {
		end = total
	}

	lv := LabelView{data: n.raw, offsets: n.offsets, firstLabel: startLabel, lastLabel: end - 1}
	data := lv.Data()
	offs := lv.Offsets()
	base := int(offs[0])

	raw := make([]byte, len(data), len(data)+1)
	copy(raw, data)
	offsets := make([]byte, len(offs), len(offs)+1)
	for i, o := range offs {
		offsets[i] = o - byte(base)
	}
	if end != total {
		raw = append(raw, 0)
		offsets = append(offsets, byte(len(raw)-1))
	}
	return Name{raw: raw, offsets: offsets}, nil
}

// Parent returns the level-th ancestor of n: Split(level, LabelCount()-level).
func (n Name) Parent(level int) (Name, error) {
	return n.Split(level, n.LabelCount()-level)
}

// StripLeft returns n with its leftmost k labels removed, re-rooting the
// remaining suffix. k must be strictly less than LabelCount(); k == 0
// returns a clone.
func (n Name) StripLeft(k int) (Name, error) {
	if k == 0 {
		return n.Clone(), nil
	}
	if k < 0 || k >= n.LabelCount() {
		return Name{}, fmt.Errorf("strip_left %d of %d labels: %w", k, n.LabelCount(), ErrInvalidLabelIndex)
	}
	return n.Split(k, n.LabelCount()-k)
}

// StripRight returns n with its rightmost k non-root labels removed; the
// kept prefix never reaches n's own root, so Split always re-roots it.
// k must be strictly less than LabelCount(); k == 0 returns a clone.
func (n Name) StripRight(k int) (Name, error) {
	if k == 0 {
		return n.Clone(), nil
	}
	if k < 0 || k >= n.LabelCount() {
		return Name{}, fmt.Errorf("strip_right %d of %d labels: %w", k, n.LabelCount(), ErrInvalidLabelIndex)
	}
	return n.Split(0, n.LabelCount()-1-k)
}

// ToAncestor destructively replaces n with StripLeft(k) of itself.
func (n *Name) ToAncestor(k int) error {
	r, err := n.StripLeft(k)
	if err != nil {
		return err
	}
	*n = r
	return nil
}

// ToChild destructively replaces n with StripRight(k) of itself.
func (n *Name) ToChild(k int) error {
	r, err := n.StripRight(k)
	if err != nil {
		return err
	}
	*n = r
	return nil
}

// IsSubdomain reports whether n is a subdomain of parent or equal to it
// in the domain hierarchy: false if n is shorter than parent in bytes or
// labels, otherwise a case-insensitive comparison of the parent.Length()-1
// bytes preceding n's root octet against parent's labels minus its root
// octet.
func (n Name) IsSubdomain(parent Name) bool {
	if n.Length() < parent.Length() || n.LabelCount() < parent.LabelCount() {
		return false
	}
	tailLen := parent.Length() - 1
	if tailLen == 0 {
		return true
	}
	return equalFoldASCII(n.raw[n.Length()-1-tailLen:n.Length()-1], parent.raw[:tailLen])
}
