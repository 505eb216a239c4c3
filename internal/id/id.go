package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence hands out increasing integers starting at 1. The zero value is ready to use.
type Sequence struct {
	last int
}

// Next returns the next value.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

const txnPrefix = "T"

// FormatTxnID returns a transaction ID like "T000042".
func FormatTxnID(seq int) string {
	return fmt.Sprintf("%s%06d", txnPrefix, seq)
}

// ParseTxnID parses "T000042" into 42.
func ParseTxnID(id string) (int, error) {
	digits, ok := strings.CutPrefix(id, txnPrefix)
	if !ok || digits == "" {
		return 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}
	seq, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in transaction ID %q: %w", id, err)
	}
	if seq < 1 {
		return 0, fmt.Errorf("invalid sequence in transaction ID %q: must be positive", id)
	}
	return seq, nil
}
