package availability

import "strings"

// Slot is an ordered pair of "HH:MM" 24-hour strings. Start < End is
// expected but deliberately not enforced anywhere in this package; the
// editor trusts the doctor, matching the product's behaviour.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseSlot splits a persisted "HH:MM-HH:MM" range on the first dash.
// A dashless string becomes a start-only slot.
func ParseSlot(s string) Slot {
	if i := strings.Index(s, "-"); i >= 0 {
		return Slot{Start: s[:i], End: s[i+1:]}
	}
	return Slot{Start: s}
}

func (s Slot) String() string {
	return s.Start + "-" + s.End
}

// EncodeSlots joins a day's slots for the single-column storage form.
func EncodeSlots(slots []Slot) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ",")
}

// DecodeSlots is the inverse of EncodeSlots. Empty input decodes to no
// slots at all.
func DecodeSlots(encoded string) []Slot {
	if strings.TrimSpace(encoded) == "" {
		return nil
	}
	parts := strings.Split(encoded, ",")
	slots := make([]Slot, 0, len(parts))
	for _, p := range parts {
		slots = append(slots, ParseSlot(strings.TrimSpace(p)))
	}
	return slots
}
