package wire

import "bytes"

// NameComparisonResult is the outcome of comparing two names' (or label
// views') label sequences right-to-left from the root. Order's sign gives
// the ordering; its value is the signed difference that decided it (of the
// first differing byte, of the label lengths, or of the label counts).
// CommonLabelCount counts labels
// that matched, starting from the root, before any difference (or before
// one side ran out).
type NameComparisonResult struct {
	Order            int
	CommonLabelCount int
	Relation         NameRelation
}

// LabelView is a non-owning, contiguous sub-range of a Name's labels. It
// borrows the Name's raw and offsets slices and must not outlive them —
// Go has no borrow checker to enforce this, so callers must not retain a
// LabelView past the lifetime of the Name it was built from, or past a
// mutation of that Name (Names are otherwise immutable, so in practice
// this only matters across goroutine boundaries without synchronization).
type LabelView struct {
	data       []byte
	offsets    []byte
	firstLabel int
	lastLabel  int
}

// LabelViewFromName returns a view over every label of n.
func LabelViewFromName(n Name) LabelView {
	return LabelView{data: n.raw, offsets: n.offsets, firstLabel: 0, lastLabel: n.LabelCount() - 1}
}

// Offsets returns the offset table for the view's label range.
func (v LabelView) Offsets() []byte {
	return v.offsets[v.firstLabel : v.lastLabel+1]
}

func (v LabelView) dataLength() int {
	lastLabelLen := int(v.data[int(v.offsets[v.lastLabel])]) + 1
	return int(v.offsets[v.lastLabel]) - int(v.offsets[v.firstLabel]) + lastLabelLen
}

// Data returns the wire bytes spanned by the view's label range.
func (v LabelView) Data() []byte {
	first := int(v.offsets[v.firstLabel])
	return v.data[first : first+v.dataLength()]
}

// FirstLabel returns the index, within the source Name, of this view's
// first label.
func (v LabelView) FirstLabel() int { return v.firstLabel }

// LastLabel returns the index, within the source Name, of this view's
// last label.
func (v LabelView) LastLabel() int { return v.lastLabel }

// LabelCount returns the number of labels spanned by the view.
func (v LabelView) LabelCount() int { return v.lastLabel - v.firstLabel + 1 }

// StripLeft advances the view's start by index labels, narrowing the
// range from the left side, the one farthest from the root.
func (v *LabelView) StripLeft(index int) {
	v.firstLabel += index
}

// StripRight retracts the view's end by index labels, narrowing the
// range from the right side.
func (v *LabelView) StripRight(index int) {
	v.lastLabel -= index
}

// Equals reports whether v and other span byte-identical label data. In
// the case-insensitive branch this actually performs and returns the
// case-insensitive comparison, unlike the reference implementation this
// was ported from, which computed the comparison and then discarded it,
// always returning true.
func (v LabelView) Equals(other LabelView, caseSensitive bool) bool {
	data := v.Data()
	otherData := other.Data()
	if len(data) != len(otherData) {
		return false
	}
	if caseSensitive {
		return bytes.Equal(data, otherData)
	}
	return equalFoldASCII(data, otherData)
}

func equalFoldASCII(a, b []byte) bool {
	for i := range a {
		if lowerCase(a[i]) != lowerCase(b[i]) {
			return false
		}
	}
	return true
}

// Compare implements the right-to-left label walk shared by Name's
// GetRelation and its total ordering: labels are compared from the root
// inward, by length first and then by byte content, with the requested
// case sensitivity.
func (v LabelView) Compare(other LabelView, caseSensitive bool) NameComparisonResult {
	nlabels := 0
	l1 := v.LabelCount()
	l2 := other.LabelCount()
	ldiff := l1 - l2
	l := l1
	if l2 < l {
		l = l2
	}

	for l > 0 {
		l--
		l1--
		l2--
		pos1 := int(v.offsets[l1+v.firstLabel])
		pos2 := int(other.offsets[l2+other.firstLabel])
		count1 := int(v.data[pos1])
		count2 := int(other.data[pos2])
		pos1++
		pos2++
		cdiff := count1 - count2
		count := count1
		if count2 < count {
			count = count2
		}

		for count > 0 {
			label1 := v.data[pos1]
			label2 := other.data[pos2]
			if !caseSensitive {
				label1 = lowerCase(label1)
				label2 = lowerCase(label2)
			}
			chdiff := int(label1) - int(label2)
			if chdiff != 0 {
				relation := RelationCommonAncestor
				if nlabels == 0 {
					relation = RelationNone
				}
				return NameComparisonResult{Order: chdiff, CommonLabelCount: nlabels, Relation: relation}
			}
			count--
			pos1++
			pos2++
		}
		if cdiff != 0 {
			relation := RelationCommonAncestor
			if nlabels == 0 {
				relation = RelationNone
			}
			return NameComparisonResult{Order: cdiff, CommonLabelCount: nlabels, Relation: relation}
		}
		nlabels++
	}

	relation := RelationEqual
	if ldiff < 0 {
		relation = RelationSuperDomain
	} else if ldiff > 0 {
		relation = RelationSubDomain
	}
	return NameComparisonResult{Order: ldiff, CommonLabelCount: nlabels, Relation: relation}
}
