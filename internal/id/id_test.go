package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	var s Sequence
	assert.Equal(t, 1, s.Next())
	assert.Equal(t, 2, s.Next())
	assert.Equal(t, 3, s.Next())
}

func TestFormatTxnID(t *testing.T) {
	tests := []struct {
		seq  int
		want string
	}{
		{1, "T000001"},
		{42, "T000042"},
		{123456, "T123456"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTxnID(tt.seq))
	}
}

func TestParseTxnID(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"T000001", 1},
		{"T000042", 42},
		{"T1234567", 1234567},
	}
	for _, tt := range tests {
		got, err := ParseTxnID(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseTxnID_Errors(t *testing.T) {
	badInputs := []string{
		"",
		"T",
		"000001",
		"Txyz",
		"T000000",
	}
	for _, input := range badInputs {
		_, err := ParseTxnID(input)
		assert.Error(t, err, "expected error for input: %s", input)
	}
}
