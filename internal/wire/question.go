package wire

// Question is a single entry of a message's question section
// (RFC 1035 Section 4.1.2).
type Question struct {
	Name  Name
	Type  RRType
	Class RRClass
}

// DecodeQuestion reads one question from buf.
func DecodeQuestion(buf *InputBuffer) (Question, error) {
	n, err := DecodeName(buf)
	if err != nil {
		return Question{}, err
	}
	typ, err := buf.ReadU16()
	if err != nil {
		return Question{}, err
	}
	class, err := buf.ReadU16()
	if err != nil {
		return Question{}, err
	}
	return Question{Name: n, Type: RRType(typ), Class: RRClass(class)}, nil
}

// Encode writes the question to r, compressing its name when compress is
// true.
func (q Question) Encode(r *MessageRender, compress bool) {
	r.WriteName(q.Name, compress)
	r.WriteU16(uint16(q.Type))
	r.WriteU16(uint16(q.Class))
}
