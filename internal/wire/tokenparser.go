package wire

// TokenParser reads whitespace-separated tokens from DNS presentation text,
// with a quoted-string mode for TXT record data. It mirrors the record
// "master file" lexer used by from_string constructors across the RDATA
// variants in rdata_*.go.
type TokenParser struct {
	raw []byte
	pos int
}

// NewTokenParser wraps a presentation-form text line for tokenization.
func NewTokenParser(s string) *TokenParser {
	return &TokenParser{raw: []byte(s)}
}

func (p *TokenParser) isEOS() bool { return p.pos == len(p.raw) }

func (p *TokenParser) skipWhitespace() {
	for !p.isEOS() && isASCIISpace(p.raw[p.pos]) {
		p.pos++
	}
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// NextString returns the next whitespace-delimited token, or ok=false at
// end of input.
func (p *TokenParser) NextString() (string, bool) {
	p.skipWhitespace()
	start := p.pos
	for !p.isEOS() && !isASCIISpace(p.raw[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return string(p.raw[start:p.pos]), true
}

// Rest skips leading whitespace and returns everything from there on, or
// ok=false if nothing remains.
func (p *TokenParser) Rest() (string, bool) {
	p.skipWhitespace()
	if p.isEOS() {
		return "", false
	}
	return string(p.raw[p.pos:]), true
}

// NextTXT reads one TXT-record character-string sequence: either a run of
// bare whitespace-separated tokens, or (if the first non-space byte is a
// double quote) one or more "..."-quoted segments with \"-escaped embedded
// quotes. Each returned slice is one character-string's raw bytes.
func (p *TokenParser) NextTXT() [][]byte {
	p.skipWhitespace()
	var data [][]byte
	if p.isEOS() {
		return data
	}
	if p.raw[p.pos] == '"' {
		lastPos := p.pos + 1
		inQuote := true
		startEscape := false
		p.pos++
		for !p.isEOS() {
			c := p.raw[p.pos]
			if c == '\\' {
				startEscape = true
			} else {
				if c == '"' && !startEscape {
					if inQuote {
						data = append(data, append([]byte(nil), p.raw[lastPos:p.pos]...))
						inQuote = false
					} else {
						inQuote = true
						lastPos = p.pos + 1
					}
				}
				startEscape = false
			}
			p.pos++
		}
		return data
	}
	for {
		s, ok := p.NextString()
		if !ok {
			break
		}
		data = append(data, []byte(s))
	}
	return data
}
