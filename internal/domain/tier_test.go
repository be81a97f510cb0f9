package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayTier_Boundaries(t *testing.T) {
	testCases := []struct {
		total    int
		expected OccupancyTier
	}{
		{0, TierIdle},
		{3, TierIdle},
		{4, TierNormal},
		{5, TierNormal},
		{6, TierNormal},
		{7, TierBusy},
		{12, TierBusy},
	}

	for _, tc := range testCases {
		assert.Equalf(t, tc.expected, DayTier(tc.total), "total=%d", tc.total)
	}
}

func TestSlotTier_Boundaries(t *testing.T) {
	testCases := []struct {
		count    int
		expected OccupancyTier
	}{
		{0, TierIdle},
		{1, TierIdle},
		{2, TierNormal},
		{3, TierNormal},
		{4, TierBusy},
		{9, TierBusy},
	}

	for _, tc := range testCases {
		assert.Equalf(t, tc.expected, SlotTier(tc.count), "count=%d", tc.count)
	}
}

// The two tables must stay independent: a count of 4 is merely normal for
// a whole day but already busy for a single hour.
func TestTierTables_AreNotInterchangeable(t *testing.T) {
	assert.Equal(t, TierNormal, DayTier(4))
	assert.Equal(t, TierBusy, SlotTier(4))

	assert.Equal(t, TierIdle, DayTier(2))
	assert.Equal(t, TierNormal, SlotTier(2))
}

func TestOccupancyTier_Label(t *testing.T) {
	assert.Equal(t, "繁忙", TierBusy.Label())
	assert.Equal(t, "一般", TierNormal.Label())
	assert.Equal(t, "空闲", TierIdle.Label())
}
