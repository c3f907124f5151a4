package wire

import "fmt"

// OwningLabelView is a materialized, self-contained label sequence: unlike
// LabelView it copies its data and offsets on construction and does not
// depend on a source Name's lifetime, at the cost of an allocation. Unlike
// LabelView it carries no first/last indices — the vectors it owns
// implicitly span the whole sequence.
type OwningLabelView struct {
	data    []byte
	offsets []byte
}

// OwningLabelViewFromName copies n's label data into a new, independent
// OwningLabelView.
func OwningLabelViewFromName(n Name) OwningLabelView {
	data := make([]byte, len(n.raw))
	copy(data, n.raw)
	offsets := make([]byte, len(n.offsets))
	copy(offsets, n.offsets)
	return OwningLabelView{data: data, offsets: offsets}
}

// ToName converts the view back into a Name.
func (v OwningLabelView) ToName() Name {
	data := make([]byte, len(v.data))
	copy(data, v.data)
	offsets := make([]byte, len(v.offsets))
	copy(offsets, v.offsets)
	return Name{raw: data, offsets: offsets}
}

func (v OwningLabelView) LabelCount() int { return len(v.offsets) }
func (v OwningLabelView) Data() []byte    { return v.data }
func (v OwningLabelView) Offsets() []byte { return v.offsets }

// Split extracts labels [start, start+count) as a new, independent
// OwningLabelView and returns the remainder of v with those labels
// removed, rebasing offsets on both sides. The overshoot on the right is
// clamped to the end of the label sequence, matching Name.Split.
func (v OwningLabelView) Split(start, count int) (extracted, remainder OwningLabelView, err error) {
	total := len(v.offsets)
	if start < 0 || start >= total {
		return OwningLabelView{}, OwningLabelView{}, fmt.Errorf("split start %d of %d labels: %w", start, total, ErrInvalidLabelIndex)
	}
	end := start + count
	if end > total {
		end = total
	}

	extractLV := LabelView{data: v.data, offsets: v.offsets, firstLabel: start, lastLabel: end - 1}
	extracted = materializeOwning(extractLV, end != total)

	switch {
	case start == 0 && end == total:
		remainder = OwningLabelView{data: []byte{0}, offsets: []byte{0}}
	case start == 0:
		remLV := LabelView{data: v.data, offsets: v.offsets, firstLabel: end, lastLabel: total - 1}
		remainder = materializeOwning(remLV, false)
	case end == total:
		remLV := LabelView{data: v.data, offsets: v.offsets, firstLabel: 0, lastLabel: start - 1}
		remainder = materializeOwning(remLV, true)
	default:
		prefixLV := LabelView{data: v.data, offsets: v.offsets, firstLabel: 0, lastLabel: start - 1}
		suffixLV := LabelView{data: v.data, offsets: v.offsets, firstLabel: end, lastLabel: total - 1}
		prefixData := prefixLV.Data()
		suffixData := suffixLV.Data()
		suffixOffs := suffixLV.Offsets()
		suffixBase := int(suffixOffs[0])

		combined := make([]byte, 0, len(prefixData)+len(suffixData))
		combined = append(combined, prefixData...)
		combined = append(combined, suffixData...)

		offs := make([]byte, 0, prefixLV.LabelCount()+suffixLV.LabelCount())
		offs = append(offs, prefixLV.Offsets()...)
		for _, o := range suffixOffs {
			offs = append(offs, byte(int(o)-suffixBase+len(prefixData)))
		}
		remainder = OwningLabelView{data: combined, offsets: offs}
	}
	return extracted, remainder, nil
}

// materializeOwning copies the byte range spanned by lv into a new,
// zero-based OwningLabelView, appending a synthetic root terminator when
// the range does not already end at one.
func materializeOwning(lv LabelView, forceRoot bool) OwningLabelView {
	data := lv.Data()
	offs := lv.Offsets()
	base := int(offs[0])

	out := make([]byte, len(data), len(data)+1)
	copy(out, data)
	outOffs := make([]byte, len(offs), len(offs)+1)
	for i, o := range offs {
		outOffs[i] = o - byte(base)
	}
	if forceRoot {
		out = append(out, 0)
		outOffs = append(outOffs, byte(len(out)-1))
	}
	return OwningLabelView{data: out, offsets: outOffs}
}
