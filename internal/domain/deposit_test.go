package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateDeposit(t *testing.T) {
	tests := []struct {
		name          string
		total         Money
		dpPercentage  int
		wantDP        Money
		wantRemaining Money
	}{
		{"30 percent", 1600000, 30, 480000, 1120000},
		{"50 percent", 1600000, 50, 800000, 800000},
		{"70 percent", 1600000, 70, 1120000, 480000},
		{"100 percent leaves no remainder", 1600000, 100, 1600000, 0},
		{"rounding half up", 1000001, 30, 300000, 700001},
		{"odd total 50 percent", 333333, 50, 166667, 166666},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := AllocateDeposit(tt.total, tt.dpPercentage)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDP, split.DPAmount)
			assert.Equal(t, tt.wantRemaining, split.RemainingAmount)
			// Сумма частей всегда равна итогу
			assert.Equal(t, tt.total, split.DPAmount+split.RemainingAmount)
		})
	}
}

func TestAllocateDeposit_InvalidTier(t *testing.T) {
	for _, tier := range []int{0, 25, 40, 99, -30, 101} {
		_, err := AllocateDeposit(1000000, tier)
		assert.ErrorIs(t, err, ErrInvalidDepositTier, "tier %d", tier)
	}
}

func TestIsAllowedDepositTier(t *testing.T) {
	for _, tier := range AllowedDepositTiers {
		assert.True(t, IsAllowedDepositTier(tier))
	}
	assert.False(t, IsAllowedDepositTier(60))
}
