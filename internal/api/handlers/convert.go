package handlers

import (
	"encoding/hex"
	"fmt"

	"github.com/jroosing/wiredns/internal/api/models"
	"github.com/jroosing/wiredns/internal/wire"
)

func toMessageView(m wire.Message) models.MessageView {
	v := models.MessageView{
		Header:     toHeaderView(m.Header),
		Questions:  make([]models.QuestionView, 0, len(m.Questions)),
		Answer:     toRRsetViews(m.Sections[wire.SectionAnswer]),
		Authority:  toRRsetViews(m.Sections[wire.SectionAuthority]),
		Additional: toRRsetViews(m.Sections[wire.SectionAdditional]),
	}
	for _, q := range m.Questions {
		v.Questions = append(v.Questions, models.QuestionView{
			Name:  q.Name.String(),
			Type:  q.Type.String(),
			Class: q.Class.String(),
		})
	}
	if m.EDNS != nil {
		v.EDNS = toEDNSView(*m.EDNS)
	}
	return v
}

func toHeaderView(h wire.Header) models.HeaderView {
	return models.HeaderView{
		ID:      h.ID,
		QR:      h.Flags&wire.FlagQR != 0,
		Opcode:  uint8((h.Flags & wire.FlagOpcode) >> 11),
		AA:      h.Flags&wire.FlagAA != 0,
		TC:      h.Flags&wire.FlagTC != 0,
		RD:      h.Flags&wire.FlagRD != 0,
		RA:      h.Flags&wire.FlagRA != 0,
		RCode:   uint8(h.RCode()),
		QDCount: h.QDCount,
		ANCount: h.ANCount,
		NSCount: h.NSCount,
		ARCount: h.ARCount,
	}
}

func toRRsetViews(sec wire.Section) []models.RRsetView {
	views := make([]models.RRsetView, 0, len(sec))
	for _, rr := range sec {
		rdatas := make([]string, 0, len(rr.Rdatas))
		for _, rd := range rr.Rdatas {
			rdatas = append(rdatas, rd.String())
		}
		views = append(views, models.RRsetView{
			Name:   rr.Name.String(),
			Type:   rr.Type.String(),
			Class:  rr.Class.String(),
			TTL:    uint32(rr.TTL),
			Rdatas: rdatas,
		})
	}
	return views
}

func toEDNSView(e wire.EDNS) *models.EDNSView {
	opts := make([]models.EDNSOptionView, 0, len(e.Options))
	for _, o := range e.Options {
		opts = append(opts, models.EDNSOptionView{Code: o.Code, Data: hex.EncodeToString(o.Data)})
	}
	return &models.EDNSView{
		UDPPayloadSize: e.UDPPayloadSize,
		ExtendedRCode:  e.ExtendedRCode,
		Version:        e.Version,
		DNSSECOk:       e.DNSSECOk,
		Options:        opts,
	}
}

// fromMessageRequest builds a wire.Message from its JSON request form.
func fromMessageRequest(req models.MessageRequest) (wire.Message, error) {
	m := wire.Message{
		Header: wire.Header{
			ID: req.ID,
		},
	}

	var flags uint16
	if req.QR {
		flags |= wire.FlagQR
	}
	flags |= (uint16(req.Opcode) << 11) & wire.FlagOpcode
	if req.AA {
		flags |= wire.FlagAA
	}
	if req.TC {
		flags |= wire.FlagTC
	}
	if req.RD {
		flags |= wire.FlagRD
	}
	if req.RA {
		flags |= wire.FlagRA
	}
	flags |= uint16(req.RCode) & wire.FlagRCode
	m.Header.Flags = flags

	for i, q := range req.Questions {
		question, err := fromQuestionRequest(q)
		if err != nil {
			return wire.Message{}, fmt.Errorf("question %d: %w", i, err)
		}
		m.Questions = append(m.Questions, question)
	}

	var err error
	if m.Sections[wire.SectionAnswer], err = fromRRsetRequests(req.Answer); err != nil {
		return wire.Message{}, fmt.Errorf("answer: %w", err)
	}
	if m.Sections[wire.SectionAuthority], err = fromRRsetRequests(req.Authority); err != nil {
		return wire.Message{}, fmt.Errorf("authority: %w", err)
	}
	if m.Sections[wire.SectionAdditional], err = fromRRsetRequests(req.Additional); err != nil {
		return wire.Message{}, fmt.Errorf("additional: %w", err)
	}

	m.RecalculateHeader()
	return m, nil
}

func fromQuestionRequest(q models.QuestionRequest) (wire.Question, error) {
	name, err := wire.NewName(q.Name)
	if err != nil {
		return wire.Question{}, fmt.Errorf("name %q: %w", q.Name, err)
	}
	typ, err := wire.ParseRRType(q.Type)
	if err != nil {
		return wire.Question{}, err
	}
	class, err := wire.ParseRRClass(q.Class)
	if err != nil {
		return wire.Question{}, err
	}
	return wire.Question{Name: name, Type: typ, Class: class}, nil
}

func fromRRsetRequests(reqs []models.RRsetRequest) (wire.Section, error) {
	sec := make(wire.Section, 0, len(reqs))
	for i, req := range reqs {
		rr, err := fromRRsetRequest(req)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		sec = append(sec, rr)
	}
	return sec, nil
}

func fromRRsetRequest(req models.RRsetRequest) (wire.RRset, error) {
	name, err := wire.NewName(req.Name)
	if err != nil {
		return wire.RRset{}, fmt.Errorf("name %q: %w", req.Name, err)
	}
	typ, err := wire.ParseRRType(req.Type)
	if err != nil {
		return wire.RRset{}, err
	}
	class, err := wire.ParseRRClass(req.Class)
	if err != nil {
		return wire.RRset{}, err
	}

	rr := wire.RRset{Name: name, Type: typ, Class: class, TTL: wire.RRTtl(req.TTL)}
	for j, literal := range req.Rdatas {
		tp := wire.NewTokenParser(literal)
		rdata, err := wire.ParseRDataString(typ, tp)
		if err != nil {
			return wire.RRset{}, fmt.Errorf("rdata %d (%q): %w", j, literal, err)
		}
		rr.Rdatas = append(rr.Rdatas, rdata)
	}
	return rr, nil
}
