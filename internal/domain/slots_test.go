package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublicCatalog_Slots(t *testing.T) {
	slots := PublicCatalog.Slots()

	assert.Len(t, slots, 9)
	assert.Equal(t, "09:00-10:00", slots[0])
	assert.Equal(t, "12:00-13:00", slots[3])
	assert.Equal(t, "17:00-18:00", slots[8])
}

func TestAdminCatalog_SkipsLunchHour(t *testing.T) {
	slots := AdminCatalog.Slots()

	// 10-12 morning plus 13-18 afternoon
	assert.Equal(t, []string{
		"10:00-11:00",
		"11:00-12:00",
		"13:00-14:00",
		"14:00-15:00",
		"15:00-16:00",
		"16:00-17:00",
		"17:00-18:00",
	}, slots)
	assert.False(t, AdminCatalog.Contains("12:00-13:00"))
	assert.True(t, PublicCatalog.Contains("12:00-13:00"))
}

func TestSlotCatalog_IsWorkday(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, PublicCatalog.IsWorkday(monday))
	assert.True(t, PublicCatalog.IsWorkday(friday))
	assert.False(t, PublicCatalog.IsWorkday(saturday))
	assert.False(t, PublicCatalog.IsWorkday(sunday))
}

func TestSlotLabel_ZeroPadding(t *testing.T) {
	assert.Equal(t, "09:00-10:00", SlotLabel(9))
	assert.Equal(t, "17:00-18:00", SlotLabel(17))
}

func TestIsWellFormedSlotLabel(t *testing.T) {
	assert.True(t, IsWellFormedSlotLabel("09:00-10:00"))
	assert.True(t, IsWellFormedSlotLabel("08:00-09:00")) // outside catalogs but well-formed
	assert.False(t, IsWellFormedSlotLabel(""))
	assert.False(t, IsWellFormedSlotLabel("9:00-10:00"))
	assert.False(t, IsWellFormedSlotLabel("morning"))
	assert.False(t, IsWellFormedSlotLabel("25:00-26:00"))
}
