package wire

import "fmt"

// Section index constants for Message.Sections.
const (
	SectionAnswer = iota
	SectionAuthority
	SectionAdditional
	sectionCount
)

// Limits on how much of a header's declared counts this package will
// trust before allocating, to avoid a small malicious message claiming
// an enormous section and forcing a large up-front allocation.
const (
	maxQuestions    = 64
	maxRRPerSection = 4096
)

// Message is a complete decoded DNS message: header, question section,
// the three resource record sections, and an optional EDNS pseudo-record
// folded out of the additional section (RFC 1035 Section 4, RFC 6891).
type Message struct {
	Header    Header
	Questions []Question
	Sections  [sectionCount]Section
	EDNS      *EDNS
}

// DecodeMessage parses a complete wire message.
func DecodeMessage(data []byte) (Message, error) {
	buf := NewInputBuffer(data)
	h, err := DecodeHeader(buf)
	if err != nil {
		return Message{}, err
	}
	if h.QDCount != 1 {
		return Message{}, fmt.Errorf("qdcount %d: %w", h.QDCount, ErrShortOfQuestion)
	}

	m := Message{Header: h}
	m.Questions = make([]Question, 0, clampCount(int(h.QDCount), maxQuestions))
	for i := 0; i < int(h.QDCount); i++ {
		q, err := DecodeQuestion(buf)
		if err != nil {
			return Message{}, fmt.Errorf("question %d: %w", i, err)
		}
		m.Questions = append(m.Questions, q)
	}

	counts := [sectionCount]int{int(h.ANCount), int(h.NSCount), int(h.ARCount)}
	for i, count := range counts {
		sec, err := DecodeSection(buf, count, clampCount(count, maxRRPerSection))
		if err != nil {
			return Message{}, fmt.Errorf("section %d: %w", i, err)
		}
		m.Sections[i] = sec
	}

	edns, err := ExtractEDNS(m.Sections[SectionAdditional])
	if err != nil {
		return Message{}, fmt.Errorf("edns: %w", err)
	}
	m.EDNS = edns
	if edns != nil {
		m.Sections[SectionAdditional] = removeFirstOPT(m.Sections[SectionAdditional])
	}

	return m, nil
}

// removeFirstOPT drops the first OPT RRset from sec. Encode renders EDNS
// separately from m.EDNS, so the additional section it decoded from must
// not keep its own copy of the OPT record or it would be written twice.
func removeFirstOPT(sec Section) Section {
	for i, rrset := range sec {
		if rrset.Type == TypeOPT {
			return append(sec[:i:i], sec[i+1:]...)
		}
	}
	return sec
}

func clampCount(v, limit int) int {
	if v > limit {
		return limit
	}
	if v < 0 {
		return 0
	}
	return v
}

// RecalculateHeader overwrites m.Header's count fields to match the
// actual contents of Questions and Sections. Callers that mutate a
// message's sections directly should call this before Encode if they
// want the header to stay consistent.
func (m *Message) RecalculateHeader() {
	m.Header.QDCount = uint16(len(m.Questions))
	m.Header.ANCount = uint16(m.Sections[SectionAnswer].wireRecordCount())
	m.Header.NSCount = uint16(m.Sections[SectionAuthority].wireRecordCount())
	arCount := m.Sections[SectionAdditional].wireRecordCount()
	if m.EDNS != nil {
		arCount++
	}
	m.Header.ARCount = uint16(arCount)
}

// Encode renders the message to wire format using a freshly allocated
// renderer. When compress is true, name compression is applied across the
// whole message using a single dictionary, matching how a real
// implementation would render one outgoing packet.
func (m Message) Encode(compress bool) []byte {
	r := NewMessageRender(512)
	m.EncodeTo(r, compress)
	return r.Bytes()
}

// EncodeTo renders the message into a caller-supplied renderer, allowing
// callers that process many messages (e.g. a pooled HTTP handler) to reuse
// one MessageRender's buffer and compression dictionary across calls
// instead of allocating a fresh one each time. r should be freshly reset.
func (m Message) EncodeTo(r *MessageRender, compress bool) {
	m.Header.Encode(r)
	for _, q := range m.Questions {
		q.Encode(r, compress)
	}
	m.Sections[SectionAnswer].Encode(r, compress)
	m.Sections[SectionAuthority].Encode(r, compress)
	m.Sections[SectionAdditional].Encode(r, compress)
	if m.EDNS != nil {
		m.EDNS.ToRRset().Encode(r, compress)
	}
}
