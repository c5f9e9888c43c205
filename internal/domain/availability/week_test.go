package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
)

func TestNewWeekIsEmpty(t *testing.T) {
	w := NewWeek()

	for _, d := range AllDays {
		assert.Empty(t, w.Slots(d), "day %s", d)
	}
	assert.Empty(t, w.Persisted())
}

func TestAddSlotAppendsDefault(t *testing.T) {
	w := NewWeek()

	w.AddSlot(Monday)
	w.AddSlot(Monday)

	slots := w.Slots(Monday)
	require.Len(t, slots, 2)
	assert.Equal(t, Slot{Start: "09:00", End: "10:00"}, slots[0])
	assert.Equal(t, Slot{Start: "09:00", End: "10:00"}, slots[1])
}

func TestSetSlotTime(t *testing.T) {
	w := NewWeek()
	w.AddSlot(Tuesday)

	require.NoError(t, w.SetSlotTime(Tuesday, 0, 0, "10:00"))
	require.NoError(t, w.SetSlotTime(Tuesday, 0, 1, "11:30"))

	assert.Equal(t, Slot{Start: "10:00", End: "11:30"}, w.Slots(Tuesday)[0])

	err := w.SetSlotTime(Tuesday, 1, 0, "10:00")
	assert.True(t, httperr.IsBusiness(err, "slot_index_out_of_range"))

	err = w.SetSlotTime(Tuesday, 0, 2, "10:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_slot_field"))
}

func TestRemoveSlot(t *testing.T) {
	w := NewWeek()
	w.AddSlot(Friday)
	w.AddSlot(Friday)
	require.NoError(t, w.SetSlotTime(Friday, 1, 0, "14:00"))

	require.NoError(t, w.RemoveSlot(Friday, 0))

	slots := w.Slots(Friday)
	require.Len(t, slots, 1)
	assert.Equal(t, "14:00", slots[0].Start)

	err := w.RemoveSlot(Friday, 5)
	assert.True(t, httperr.IsBusiness(err, "slot_index_out_of_range"))
}

func TestApplyPreset(t *testing.T) {
	w := NewWeek()

	require.NoError(t, w.ApplyPreset("Full Day (9-5)", []Day{Monday, Wednesday}))

	assert.Equal(t, []Slot{{Start: "09:00", End: "17:00"}}, w.Slots(Monday))
	assert.Equal(t, []Slot{{Start: "09:00", End: "17:00"}}, w.Slots(Wednesday))
	assert.Empty(t, w.Slots(Tuesday))

	err := w.ApplyPreset("Lunch Break", []Day{Monday})
	assert.True(t, httperr.IsBusiness(err, "unknown_preset"))
}

func TestPresetTemplateIsCopied(t *testing.T) {
	w := NewWeek()
	require.NoError(t, w.ApplyPreset("Morning (9-1)", []Day{Monday}))

	// Editing the applied slots must not bleed into the template.
	require.NoError(t, w.SetSlotTime(Monday, 0, 1, "12:00"))

	w2 := NewWeek()
	require.NoError(t, w2.ApplyPreset("Morning (9-1)", []Day{Monday}))
	assert.Equal(t, "13:00", w2.Slots(Monday)[0].End)
}

func TestCopyToWeekdays(t *testing.T) {
	w := NewWeek()
	require.NoError(t, w.ApplyPreset("Evening (5-9)", []Day{Saturday}))
	w.AddSlot(Monday)

	w.CopyToWeekdays(Saturday)

	for _, d := range Weekdays() {
		assert.Equal(t, []Slot{{Start: "17:00", End: "21:00"}}, w.Slots(d), "day %s", d)
	}
	// Weekend untouched.
	assert.Equal(t, []Slot{{Start: "17:00", End: "21:00"}}, w.Slots(Saturday))
	assert.Empty(t, w.Slots(Sunday))
}

func TestPersistedOmitsEmptyDays(t *testing.T) {
	w := NewWeek()
	w.AddSlot(Monday)
	require.NoError(t, w.ApplyPreset("Morning (9-1)", []Day{Thursday}))

	got := w.Persisted()
	require.Len(t, got, 2)
	assert.Equal(t, DayAvailability{Day: "Monday", Slots: []string{"09:00-10:00"}}, got[0])
	assert.Equal(t, DayAvailability{Day: "Thursday", Slots: []string{"09:00-13:00"}}, got[1])
}

func TestLoadWeekRoundTrip(t *testing.T) {
	persisted := []DayAvailability{
		{Day: "Monday", Slots: []string{"09:00-12:00", "14:00-17:00"}},
		{Day: "saturday", Slots: []string{"10:00-13:00"}},
	}

	w, err := LoadWeek(persisted)
	require.NoError(t, err)

	got := w.Persisted()
	require.Len(t, got, 2)
	assert.Equal(t, []string{"09:00-12:00", "14:00-17:00"}, got[0].Slots)
	assert.Equal(t, "Saturday", got[1].Day)
}

func TestLoadWeekRejectsUnknownDay(t *testing.T) {
	_, err := LoadWeek([]DayAvailability{{Day: "Funday", Slots: []string{"09:00-10:00"}}})
	assert.True(t, httperr.IsBusiness(err, "invalid_day"))
}

func TestUndoRestoresLastSavedState(t *testing.T) {
	w, err := LoadWeek([]DayAvailability{
		{Day: "Monday", Slots: []string{"09:00-12:00"}},
	})
	require.NoError(t, err)

	w.ClearAll()
	assert.Empty(t, w.Persisted())

	w.Undo()
	got := w.Persisted()
	require.Len(t, got, 1)
	assert.Equal(t, []string{"09:00-12:00"}, got[0].Slots)
}

func TestMarkSavedMovesTheUndoPoint(t *testing.T) {
	w := NewWeek()
	w.AddSlot(Monday)
	w.MarkSaved()

	w.AddSlot(Tuesday)
	w.Undo()

	assert.Len(t, w.Slots(Monday), 1)
	assert.Empty(t, w.Slots(Tuesday))
}

func TestUndoSnapshotIsIsolated(t *testing.T) {
	w, err := LoadWeek([]DayAvailability{
		{Day: "Monday", Slots: []string{"09:00-12:00"}},
	})
	require.NoError(t, err)

	// Mutating the live state must not corrupt the snapshot.
	require.NoError(t, w.SetSlotTime(Monday, 0, 0, "08:00"))
	w.Undo()

	assert.Equal(t, "09:00", w.Slots(Monday)[0].Start)
}

func TestHasSlot(t *testing.T) {
	w, err := LoadWeek([]DayAvailability{
		{Day: "Wednesday", Slots: []string{"09:00-10:00"}},
	})
	require.NoError(t, err)

	assert.True(t, w.HasSlot(Wednesday, "09:00-10:00"))
	assert.False(t, w.HasSlot(Wednesday, "10:00-11:00"))
	assert.False(t, w.HasSlot(Thursday, "09:00-10:00"))
}
