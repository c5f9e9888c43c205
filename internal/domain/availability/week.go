package availability

import (
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
)

// DayAvailability is the wire shape shared with the persistence layer:
// one entry per day that has at least one "HH:MM-HH:MM" slot.
type DayAvailability struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// Week holds the in-memory per-weekday slot sequences a doctor edits,
// plus a deep-copied snapshot of the last saved state used for undo.
// A Week belongs to a single editing session; it is not safe for
// concurrent use.
type Week struct {
	days  map[Day][]Slot
	saved map[Day][]Slot
}

var defaultSlot = Slot{Start: "09:00", End: "10:00"}

// NewWeek returns a week with all seven days empty.
func NewWeek() *Week {
	w := &Week{days: emptyDays()}
	w.saved = cloneDays(w.days)
	return w
}

// LoadWeek builds the editing state from persisted entries. Days absent
// from the input stay empty. The loaded state doubles as the first undo
// snapshot.
func LoadWeek(persisted []DayAvailability) (*Week, error) {
	days := emptyDays()

	for _, entry := range persisted {
		day, err := ParseDay(entry.Day)
		if err != nil {
			return nil, err
		}
		slots := make([]Slot, 0, len(entry.Slots))
		for _, s := range entry.Slots {
			slots = append(slots, ParseSlot(s))
		}
		days[day] = slots
	}

	return &Week{days: days, saved: cloneDays(days)}, nil
}

// Slots returns the day's sequence in display order.
func (w *Week) Slots(day Day) []Slot {
	return w.days[day]
}

// HasSlot reports whether the serialized range is offered on that day.
func (w *Week) HasSlot(day Day, slot string) bool {
	for _, s := range w.days[day] {
		if s.String() == slot {
			return true
		}
	}
	return false
}

// AddSlot appends the default 09:00-10:00 pair.
func (w *Week) AddSlot(day Day) {
	w.days[day] = append(cloneSlots(w.days[day]), defaultSlot)
}

func (w *Week) RemoveSlot(day Day, index int) error {
	slots := w.days[day]
	if index < 0 || index >= len(slots) {
		return httperr.ErrBusiness("slot_index_out_of_range")
	}

	next := cloneSlots(slots)
	w.days[day] = append(next[:index], next[index+1:]...)
	return nil
}

// SetSlotTime edits one end of a pair: which 0 for start, 1 for end.
// No start<end check, on purpose.
func (w *Week) SetSlotTime(day Day, index int, which int, value string) error {
	slots := w.days[day]
	if index < 0 || index >= len(slots) {
		return httperr.ErrBusiness("slot_index_out_of_range")
	}
	if which != 0 && which != 1 {
		return httperr.ErrBusiness("invalid_slot_field")
	}

	next := cloneSlots(slots)
	if which == 0 {
		next[index].Start = value
	} else {
		next[index].End = value
	}
	w.days[day] = next
	return nil
}

// ApplyPreset replaces every listed day's sequence with a copy of the
// named template.
func (w *Week) ApplyPreset(name string, days []Day) error {
	template, ok := presets[name]
	if !ok {
		return httperr.ErrBusiness("unknown_preset")
	}

	for _, day := range days {
		w.days[day] = cloneSlots(template)
	}
	return nil
}

// CopyToWeekdays stamps the source day's sequence onto Monday-Friday,
// overwriting whatever was there.
func (w *Week) CopyToWeekdays(source Day) {
	src := w.days[source]
	for _, day := range Weekdays() {
		w.days[day] = cloneSlots(src)
	}
}

// ClearAll empties every day. The caller gates this behind an explicit
// confirmation; the only way back is Undo.
func (w *Week) ClearAll() {
	w.days = emptyDays()
}

// Persisted serializes the week for saving. Days with zero slots are
// omitted from the payload rather than sent as explicit empty lists.
func (w *Week) Persisted() []DayAvailability {
	out := make([]DayAvailability, 0, len(AllDays))
	for _, day := range AllDays {
		slots := w.days[day]
		if len(slots) == 0 {
			continue
		}
		encoded := make([]string, 0, len(slots))
		for _, s := range slots {
			encoded = append(encoded, s.String())
		}
		out = append(out, DayAvailability{Day: day.Title(), Slots: encoded})
	}
	return out
}

// MarkSaved promotes the current state to the undo snapshot, called after
// a successful save.
func (w *Week) MarkSaved() {
	w.saved = cloneDays(w.days)
}

// Undo restores the last saved snapshot.
func (w *Week) Undo() {
	w.days = cloneDays(w.saved)
}

func emptyDays() map[Day][]Slot {
	days := make(map[Day][]Slot, len(AllDays))
	for _, d := range AllDays {
		days[d] = []Slot{}
	}
	return days
}

func cloneSlots(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

func cloneDays(days map[Day][]Slot) map[Day][]Slot {
	out := make(map[Day][]Slot, len(days))
	for d, slots := range days {
		out[d] = cloneSlots(slots)
	}
	return out
}
