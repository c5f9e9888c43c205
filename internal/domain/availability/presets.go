package availability

// Fixed named templates a doctor can stamp onto one or more days.
var presets = map[string][]Slot{
	"Full Day (9-5)": {{Start: "09:00", End: "17:00"}},
	"Morning (9-1)":  {{Start: "09:00", End: "13:00"}},
	"Evening (5-9)":  {{Start: "17:00", End: "21:00"}},
}

// PresetNames lists the templates in a stable order for the API.
func PresetNames() []string {
	return []string{"Full Day (9-5)", "Morning (9-1)", "Evening (5-9)"}
}
