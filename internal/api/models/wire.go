// Package models defines request and response types for the wiredns debug API.
// All types are JSON-serializable and include validation tags where appropriate.
package models

// QuestionView is the JSON projection of a wire.Question.
type QuestionView struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Class string `json:"class"`
}

// RRsetView is the JSON projection of a wire.RRset.
type RRsetView struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Class  string   `json:"class"`
	TTL    uint32   `json:"ttl"`
	Rdatas []string `json:"rdatas"`
}

// EDNSView is the JSON projection of a wire.EDNS pseudo-record.
type EDNSView struct {
	UDPPayloadSize uint16           `json:"udp_payload_size"`
	ExtendedRCode  uint8            `json:"extended_rcode"`
	Version        uint8            `json:"version"`
	DNSSECOk       bool             `json:"dnssec_ok"`
	Options        []EDNSOptionView `json:"options,omitempty"`
}

// EDNSOptionView is the JSON projection of one wire.EDNSOption.
type EDNSOptionView struct {
	Code uint16 `json:"code"`
	Data string `json:"data_hex"`
}

// HeaderView is the JSON projection of a wire.Header.
type HeaderView struct {
	ID      uint16 `json:"id"`
	QR      bool   `json:"qr"`
	Opcode  uint8  `json:"opcode"`
	AA      bool   `json:"aa"`
	TC      bool   `json:"tc"`
	RD      bool   `json:"rd"`
	RA      bool   `json:"ra"`
	RCode   uint8  `json:"rcode"`
	QDCount uint16 `json:"qdcount"`
	ANCount uint16 `json:"ancount"`
	NSCount uint16 `json:"nscount"`
	ARCount uint16 `json:"arcount"`
}

// MessageView is the JSON projection of a wire.Message.
type MessageView struct {
	Header     HeaderView     `json:"header"`
	Questions  []QuestionView `json:"questions"`
	Answer     []RRsetView    `json:"answer"`
	Authority  []RRsetView    `json:"authority"`
	Additional []RRsetView    `json:"additional"`
	EDNS       *EDNSView      `json:"edns,omitempty"`
}

// DecodeRequest carries a wire message to decode, as hex or base64 bytes.
type DecodeRequest struct {
	Hex    string `json:"hex,omitempty"`
	Base64 string `json:"base64,omitempty"`
}

// DecodeResponse is the structured result of decoding a wire message.
type DecodeResponse struct {
	Message MessageView `json:"message"`
}

// EncodeRequest carries a structured message to render to wire bytes.
type EncodeRequest struct {
	Message  MessageRequest `json:"message"`
	Compress bool           `json:"compress"`
}

// MessageRequest is the writable counterpart of MessageView accepted by
// POST /api/v1/encode. Only the fields a caller plausibly wants to control
// are exposed; rdata is taken as its RFC 1035 presentation-format string.
type MessageRequest struct {
	ID         uint16           `json:"id"`
	Opcode     uint8            `json:"opcode"`
	RCode      uint8            `json:"rcode"`
	QR         bool             `json:"qr"`
	AA         bool             `json:"aa"`
	TC         bool             `json:"tc"`
	RD         bool             `json:"rd"`
	RA         bool             `json:"ra"`
	Questions  []QuestionRequest `json:"questions"`
	Answer     []RRsetRequest    `json:"answer"`
	Authority  []RRsetRequest    `json:"authority"`
	Additional []RRsetRequest    `json:"additional"`
}

// QuestionRequest is the writable counterpart of QuestionView.
type QuestionRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Class string `json:"class"`
}

// RRsetRequest is the writable counterpart of RRsetView. Each entry in
// Rdatas is one RFC 1035 presentation-format record, e.g. "192.0.2.1" for
// an A record or "10 mail.example.com." for an MX record.
type RRsetRequest struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Class  string   `json:"class"`
	TTL    uint32   `json:"ttl"`
	Rdatas []string `json:"rdatas"`
}

// EncodeResponse is the wire-format result of rendering a message.
type EncodeResponse struct {
	Hex    string `json:"hex"`
	Base64 string `json:"base64"`
}

// CompareRequest carries two presentation-form names to compare.
type CompareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// CompareResponse is the structured result of comparing two names.
type CompareResponse struct {
	Order            int    `json:"order"`
	CommonLabelCount int    `json:"common_label_count"`
	Relation         string `json:"relation"`
	IsSubdomain      bool   `json:"is_subdomain_of_b"`
}

// CaptureView is the JSON projection of a store.Capture.
type CaptureView struct {
	ID             string `json:"id"`
	Operation      string `json:"operation"`
	RequestSummary string `json:"request_summary"`
	ResultSummary  string `json:"result_summary"`
	OK             bool   `json:"ok"`
	CreatedAt      string `json:"created_at"`
}

// CapturesResponse is the paginated capture-history listing.
type CapturesResponse struct {
	Captures []CaptureView `json:"captures"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}
