package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Operation names a capture's originating endpoint.
type Operation string

const (
	OperationDecode  Operation = "decode"
	OperationEncode  Operation = "encode"
	OperationCompare Operation = "compare"
)

// Capture is one recorded decode/encode/compare invocation.
type Capture struct {
	ID             string
	Operation      Operation
	RequestSummary string
	ResultSummary  string
	OK             bool
	CreatedAt      time.Time
}

// Insert records a new capture, assigning it a fresh UUID.
func (s *Store) Insert(op Operation, requestSummary, resultSummary string, ok bool) (Capture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Capture{
		ID:             uuid.NewString(),
		Operation:      op,
		RequestSummary: requestSummary,
		ResultSummary:  resultSummary,
		OK:             ok,
		CreatedAt:      time.Now().UTC(),
	}

	_, err := s.conn.Exec(
		`INSERT INTO captures (id, operation, request_summary, result_summary, ok, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, string(c.Operation), c.RequestSummary, c.ResultSummary, boolToInt(c.OK), c.CreatedAt,
	)
	if err != nil {
		return Capture{}, fmt.Errorf("insert capture: %w", err)
	}

	return c, nil
}

// List returns the most recent captures, newest first, bounded by limit/offset.
func (s *Store) List(limit, offset int) ([]Capture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.conn.Query(
		`SELECT id, operation, request_summary, result_summary, ok, created_at
		 FROM captures ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list captures: %w", err)
	}
	defer rows.Close()

	var captures []Capture
	for rows.Next() {
		var c Capture
		var okInt int
		var op string
		if err := rows.Scan(&c.ID, &op, &c.RequestSummary, &c.ResultSummary, &okInt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan capture row: %w", err)
		}
		c.Operation = Operation(op)
		c.OK = okInt != 0
		captures = append(captures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate captures: %w", err)
	}

	return captures, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
