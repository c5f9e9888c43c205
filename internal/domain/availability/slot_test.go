package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	assert.Equal(t, Slot{Start: "09:00", End: "10:00"}, ParseSlot("09:00-10:00"))
	assert.Equal(t, Slot{Start: "09:00"}, ParseSlot("09:00"))
	assert.Equal(t, Slot{Start: "", End: "10:00"}, ParseSlot("-10:00"))
}

func TestEncodeDecodeSlots(t *testing.T) {
	slots := []Slot{
		{Start: "09:00", End: "12:00"},
		{Start: "14:00", End: "17:00"},
	}

	encoded := EncodeSlots(slots)
	assert.Equal(t, "09:00-12:00,14:00-17:00", encoded)

	decoded := DecodeSlots(encoded)
	assert.Equal(t, slots, decoded)

	assert.Nil(t, DecodeSlots(""))
	assert.Nil(t, DecodeSlots("   "))
}

func TestDecodeSlotsTrimsSpaces(t *testing.T) {
	decoded := DecodeSlots(" 09:00-10:00 , 11:00-12:00")
	require.Len(t, decoded, 2)
	assert.Equal(t, "11:00", decoded[1].Start)
}

func TestParseDayAndTitle(t *testing.T) {
	d, err := ParseDay(" Monday ")
	require.NoError(t, err)
	assert.Equal(t, Monday, d)
	assert.Equal(t, "Monday", d.Title())

	_, err = ParseDay("Someday")
	assert.Error(t, err)
}
