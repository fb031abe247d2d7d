package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDicePrediction(t *testing.T) {
	tests := []struct {
		token    string
		target   int
		operator string
	}{
		{"1", 1, "="},
		{"6", 6, "="},
		{"3=", 3, "="},
		{"4>", 4, ">"},
		{"4<", 4, "<"},
		{"2>=", 2, ">="},
		{"5<=", 5, "<="},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p, err := ParseDicePrediction(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.target, p.Target)
			assert.Equal(t, tt.operator, p.Operator)
		})
	}
}

func TestParseDicePrediction_Rejections(t *testing.T) {
	for _, token := range []string{"", "0", "7", "9>", "x", "3!", "3=>", ">3"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseDicePrediction(token)
			assert.ErrorIs(t, err, ErrInvalidCommandFormat)
		})
	}
}

func TestDicePrediction_Matches(t *testing.T) {
	tests := []struct {
		prediction string
		roll       int
		want       bool
	}{
		{"3", 3, true},
		{"3", 4, false},
		{"4>", 5, true},
		{"4>", 4, false},
		{"4<", 3, true},
		{"4<", 4, false},
		{"4>=", 4, true},
		{"4>=", 3, false},
		{"4<=", 4, true},
		{"4<=", 5, false},
	}
	for _, tt := range tests {
		p, err := ParseDicePrediction(tt.prediction)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.Matches(tt.roll), "%s vs roll %d", tt.prediction, tt.roll)
	}
}
