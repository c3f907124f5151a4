// Command wireq sends a single DNS query over UDP and prints the decoded
// response using internal/wire. It is a thin caller of the library: all
// wire-format parsing and rendering lives in internal/wire.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/jroosing/wiredns/internal/wire"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wireq: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		server  = flag.String("server", "8.8.8.8:53", "DNS server HOST:PORT")
		name    = flag.String("name", "", "Query name (required)")
		qtype   = flag.String("type", "A", "Query type mnemonic or TYPEnn")
		timeout = flag.Duration("timeout", 2*time.Second, "Request timeout")
	)
	flag.Parse()

	if strings.TrimSpace(*name) == "" {
		return errors.New("-name is required")
	}

	qname, err := wire.NewName(*name)
	if err != nil {
		return fmt.Errorf("bad name: %w", err)
	}
	typ, err := wire.ParseRRType(*qtype)
	if err != nil {
		return fmt.Errorf("bad type: %w", err)
	}

	req := wire.Message{
		Header: wire.Header{ID: uint16(time.Now().UnixNano()), Flags: wire.FlagRD},
		Questions: []wire.Question{
			{Name: qname, Type: typ, Class: wire.ClassIN},
		},
	}
	req.RecalculateHeader()

	resp, err := queryUDP(*server, req.Encode(true), *timeout)
	if err != nil {
		return err
	}

	msg, err := wire.DecodeMessage(resp)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	printMessage(msg)
	return nil
}

func queryUDP(server string, payload []byte, timeout time.Duration) ([]byte, error) {
	addr, err := net.ResolveUDPAddr("udp", server)
	if err != nil {
		return nil, fmt.Errorf("resolve server: %w", err)
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial server: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}
	if _, err := conn.Write(payload); err != nil {
		return nil, fmt.Errorf("send query: %w", err)
	}

	buf := make([]byte, wire.EDNSMaxUDPPayloadSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return buf[:n], nil
}

func printMessage(m wire.Message) {
	fmt.Printf("id=%d rcode=%d qd=%d an=%d ns=%d ar=%d\n",
		m.Header.ID, m.Header.RCode(), m.Header.QDCount, m.Header.ANCount, m.Header.NSCount, m.Header.ARCount)

	for _, rr := range m.Sections[wire.SectionAnswer] {
		for _, rd := range rr.Rdatas {
			fmt.Printf("%s\t%d\t%s\t%s\t%s\n", rr.Name, rr.TTL, rr.Class, rr.Type, rd)
		}
	}
}
