package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedFound  bool
		expectedAmount string
	}{
		{
			name:           "leftmost match wins",
			body:           "Total due: $45.00, ref 1999",
			expectedFound:  true,
			expectedAmount: "45.00",
		},
		{
			name:           "plain integer",
			body:           "Please transfer 250 before Friday",
			expectedFound:  true,
			expectedAmount: "250.00",
		},
		{
			name:           "currency symbol with space",
			body:           "Balance: € 12.50",
			expectedFound:  true,
			expectedAmount: "12.50",
		},
		{
			name:           "single decimal digit",
			body:           "about 3.5 hours of work",
			expectedFound:  true,
			expectedAmount: "3.50",
		},
		{
			name:          "no numeric token",
			body:          "Please pay the amount via gmail high pdf",
			expectedFound: false,
		},
		{
			name:          "empty body",
			body:          "",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, found := Amount(tt.body)
			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				require.True(t, found)
				assert.Equal(t, tt.expectedAmount, amount.StringFixed(2))
			}
		})
	}
}

func TestAmount_PositionNotValueDecidesFirst(t *testing.T) {
	// "first" is by character position, not by magnitude
	amount, found := Amount("items: 2, total 9999.99")
	require.True(t, found)
	assert.Equal(t, "2.00", amount.StringFixed(2))
}
