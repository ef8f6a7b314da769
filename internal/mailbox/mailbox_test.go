package mailbox

import (
	"testing"

	"fjacquet/invoice-scan/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSeqRange(t *testing.T) {
	tests := []struct {
		name         string
		total        uint32
		limit        int
		expectedFrom uint32
		expectedTo   uint32
	}{
		{"empty mailbox", 0, 50, 0, 0},
		{"zero limit", 100, 0, 0, 0},
		{"limit covers mailbox", 10, 50, 1, 10},
		{"limit equals total", 50, 50, 1, 50},
		{"newest slice of large mailbox", 1000, 50, 951, 1000},
		{"limit clamped to hard cap", 1000, 5000, 801, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := seqRange(tt.total, tt.limit)
			assert.Equal(t, tt.expectedFrom, from)
			assert.Equal(t, tt.expectedTo, to)
		})
	}
}

func TestReverse(t *testing.T) {
	msgs := []models.RawMessage{{SeqNum: 1}, {SeqNum: 2}, {SeqNum: 3}}
	reverse(msgs)
	assert.Equal(t, uint32(3), msgs[0].SeqNum)
	assert.Equal(t, uint32(2), msgs[1].SeqNum)
	assert.Equal(t, uint32(1), msgs[2].SeqNum)

	var empty []models.RawMessage
	reverse(empty)
	assert.Empty(t, empty)
}
