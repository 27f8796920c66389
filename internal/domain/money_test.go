package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		name    string
		m       Money
		percent float64
		want    Money
	}{
		{"exact", 500000, 20, 100000},
		{"rounds half up", 333, 50, 167},
		{"rounds down", 332, 50, 166},
		{"zero percent", 500000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundPercent(tt.m, tt.percent))
		})
	}
}

func TestRoundMultiply(t *testing.T) {
	assert.Equal(t, Money(1950000), RoundMultiply(1500000, 1.3))
	assert.Equal(t, Money(167), RoundMultiply(334, 0.5))
	assert.Equal(t, Money(334), RoundMultiply(334, 1.0))
}

func TestMoneyFromFloat(t *testing.T) {
	assert.Equal(t, Money(750000), MoneyFromFloat(750000.0))
	assert.Equal(t, Money(750001), MoneyFromFloat(750000.5))
}
