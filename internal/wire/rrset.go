package wire

import "fmt"

// RRTtl is a resource record's time-to-live field. It is its own type
// rather than a bare uint32 so RRset's fields read the same way the wire
// format lays them out.
type RRTtl uint32

// RRset is a group of resource records sharing the same owner name, type,
// and class, differing only in their RDATA and carrying one shared TTL
// (RFC 1035 Section 4.1.3 describes the wire records this groups; the
// grouping itself is this package's in-memory representation, matching
// how one DNS question typically yields several records that belong
// together).
type RRset struct {
	Name   Name
	Type   RRType
	Class  RRClass
	TTL    RRTtl
	Rdatas []RData
}

// decodeRRsetMember reads a single wire resource record: name, type,
// class, ttl, rdlength, and rdata. It does not group adjacent records of
// the same RRset; that is Section's job.
func decodeRRsetMember(buf *InputBuffer) (RRset, error) {
	name, err := DecodeName(buf)
	if err != nil {
		return RRset{}, err
	}
	typ, err := buf.ReadU16()
	if err != nil {
		return RRset{}, err
	}
	class, err := buf.ReadU16()
	if err != nil {
		return RRset{}, err
	}
	ttl, err := buf.ReadU32()
	if err != nil {
		return RRset{}, err
	}
	rdlen, err := buf.ReadU16()
	if err != nil {
		return RRset{}, err
	}

	rrset := RRset{Name: name, Type: RRType(typ), Class: RRClass(class), TTL: RRTtl(ttl)}
	if rdlen == 0 {
		return rrset, nil
	}

	before := buf.Position()
	rdata, err := DecodeRData(RRType(typ), buf, int(rdlen))
	if err != nil {
		return RRset{}, err
	}
	if consumed := buf.Position() - before; consumed != int(rdlen) {
		return RRset{}, fmt.Errorf("rdata for %s consumed %d of %d declared bytes: %w", RRType(typ), consumed, rdlen, ErrRdataLenIsNotCorrect)
	}
	rrset.Rdatas = append(rrset.Rdatas, rdata)
	return rrset, nil
}

// Encode writes one wire record per rdata, each carrying the RRset's
// shared name, type, class, and TTL, with the rdlength field backpatched
// after the rdata is rendered. An RRset with no rdatas still renders one
// record with rdlength 0, preserving a bare owner assertion.
func (s RRset) Encode(r *MessageRender, compress bool) {
	if len(s.Rdatas) == 0 {
		s.encodeHeader(r, compress)
		r.WriteU16(0)
		return
	}
	for _, rdata := range s.Rdatas {
		s.encodeHeader(r, compress)
		pos := r.Len()
		r.Skip(2)
		rdata.Encode(r)
		rdlen := r.Len() - pos - 2
		r.WriteU16At(uint16(rdlen), pos)
	}
}

func (s RRset) encodeHeader(r *MessageRender, compress bool) {
	r.WriteName(s.Name, compress)
	r.WriteU16(uint16(s.Type))
	r.WriteU16(uint16(s.Class))
	r.WriteU32(uint32(s.TTL))
}

// RRCount returns the number of individual records this RRset expands to.
func (s RRset) RRCount() int { return len(s.Rdatas) }

// IsSameRRset reports whether s and other share an owner name, type, and
// class and so belong in the same group (the grouping key this package
// uses throughout, including class where some implementations key only on
// name and type).
func (s RRset) IsSameRRset(other RRset) bool {
	return s.Type == other.Type && s.Class == other.Class && s.Name.Equals(other.Name)
}

func (s RRset) String() string {
	header := s.Name.String() + "\t" + fmt.Sprint(uint32(s.TTL)) + "\t" + s.Class.String() + "\t" + s.Type.String()
	out := ""
	for _, rdata := range s.Rdatas {
		out += header + "\t" + rdata.String() + "\n"
	}
	return out
}
