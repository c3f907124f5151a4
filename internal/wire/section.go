package wire

// Section is a sequence of RRsets: the decoded form of one of a message's
// answer, authority, or additional record lists. Adjacent wire records
// sharing the same owner name, type, and class are merged into a single
// RRset with multiple rdatas; records that are not adjacent to a matching
// RRset start a new group even if an earlier group in the section would
// otherwise match, since merging is a purely local, single-pass operation
// over the wire order.
type Section []RRset

// DecodeSection reads count wire records from buf, grouping adjacent
// matches into RRsets as described on Section. capHint bounds the
// initial allocation independently of count, so a header's declared
// count cannot force a large up-front allocation before any of it has
// been validated against the actual message bytes.
func DecodeSection(buf *InputBuffer, count, capHint int) (Section, error) {
	sec := make(Section, 0, capHint)
	for i := 0; i < count; i++ {
		member, err := decodeRRsetMember(buf)
		if err != nil {
			return nil, err
		}
		if last := len(sec) - 1; last >= 0 && sec[last].IsSameRRset(member) {
			sec[last].Rdatas = append(sec[last].Rdatas, member.Rdatas...)
			continue
		}
		sec = append(sec, member)
	}
	return sec, nil
}

// Encode writes every RRset in the section in order.
func (s Section) Encode(r *MessageRender, compress bool) {
	for _, rrset := range s {
		rrset.Encode(r, compress)
	}
}

// wireRecordCount returns how many individual wire records the section
// expands to, which is what belongs in a message's count fields: an
// RRset with no rdatas still renders one bare-ownership record.
func (s Section) wireRecordCount() int {
	total := 0
	for _, rrset := range s {
		if len(rrset.Rdatas) == 0 {
			total++
			continue
		}
		total += len(rrset.Rdatas)
	}
	return total
}
