package meal

import "strings"

// SlotInfo is display metadata for a slot.
type SlotInfo struct {
	ID          Slot   `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	BgColor     string `json:"bgColor"`
	BorderColor string `json:"borderColor"`
	IconColor   string `json:"iconColor"`
}

// Option is a value with its display label and an optional glyph.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// Slots is the slot metadata table in display order.
var Slots = []SlotInfo{
	{ID: Breakfast, Name: "Breakfast", Icon: "Coffee", Color: "from-orange-400 to-amber-400", BgColor: "bg-orange-50", BorderColor: "border-orange-200", IconColor: "text-orange-600"},
	{ID: Lunch, Name: "Lunch", Icon: "Sun", Color: "from-yellow-400 to-orange-400", BgColor: "bg-yellow-50", BorderColor: "border-yellow-200", IconColor: "text-yellow-600"},
	{ID: Dinner, Name: "Dinner", Icon: "Moon", Color: "from-indigo-400 to-purple-400", BgColor: "bg-indigo-50", BorderColor: "border-indigo-200", IconColor: "text-indigo-600"},
	{ID: Snacks, Name: "Snacks", Icon: "Cookie", Color: "from-pink-400 to-rose-400", BgColor: "bg-pink-50", BorderColor: "border-pink-200", IconColor: "text-pink-600"},
}

// Feelings is the post-meal feeling vocabulary.
var Feelings = []Option{
	{Value: string(FeelingLight), Label: "Light", Icon: "😌"},
	{Value: string(FeelingOkay), Label: "Okay", Icon: "😐"},
	{Value: string(FeelingHeavy), Label: "Heavy", Icon: "😣"},
}

// Symptoms is the symptom vocabulary.
var Symptoms = []Option{
	{Value: string(SymptomBloating), Label: "Bloating"},
	{Value: string(SymptomReflux), Label: "Reflux"},
	{Value: string(SymptomFatigue), Label: "Fatigue"},
	{Value: string(SymptomStoolChange), Label: "Stool change"},
	{Value: string(SymptomNone), Label: "None"},
}

// Portions is the portion vocabulary.
var Portions = []Option{
	{Value: string(PortionSmall), Label: "Small", Icon: "🥄"},
	{Value: string(PortionMedium), Label: "Medium", Icon: "🍛"},
	{Value: string(PortionLarge), Label: "Large", Icon: "🍽️"},
	{Value: string(PortionSkip), Label: "Skip", Icon: "⏭️"},
	{Value: string(PortionNoIdea), Label: "No idea", Icon: "🤷"},
}

// SeedSuggestions are shown for a slot until the user has committed
// suggestions of their own.
var SeedSuggestions = map[Slot][]string{
	Breakfast: {
		"2 ragi rotis, green moong dal, cucumber salad",
		"Oats with milk and banana",
		"Poha with peanuts and curry leaves",
		"2 eggs, brown bread toast, orange juice",
		"Idli with sambar and coconut chutney",
	},
	Lunch: {
		"2 ragi rotis, green moong dal, cucumber salad",
		"Rice, dal tadka, mixed vegetable curry",
		"Chicken curry with 2 chapatis",
		"Rajma chawal with curd",
		"Vegetable biryani with raita",
	},
	Dinner: {
		"Khichdi with ghee and curd",
		"Grilled fish with steamed vegetables",
		"Dal, rice, and sabzi",
		"Soup and salad",
		"Paneer tikka with roti",
	},
	Snacks: {
		"Fruits (apple and banana)",
		"Tea with biscuits",
		"Namkeen and coffee",
		"Smoothie bowl",
		"Nuts and dry fruits",
	},
}

// Info returns the metadata for slot.
func (s Slot) Info() (SlotInfo, bool) {
	for _, info := range Slots {
		if info.ID == s {
			return info, true
		}
	}
	return SlotInfo{}, false
}

// Valid reports whether s is one of the four slots.
func (s Slot) Valid() bool {
	_, ok := s.Info()
	return ok
}

// ParseSlot maps user input onto a slot, case-insensitively.
func ParseSlot(s string) (Slot, bool) {
	slot := Slot(strings.ToLower(strings.TrimSpace(s)))
	return slot, slot.Valid()
}

// ParsePortion maps user input onto a portion.
func ParsePortion(s string) (Portion, bool) {
	v, ok := lookup(Portions, s)
	return Portion(v), ok
}

// ParseFeeling maps user input onto a feeling.
func ParseFeeling(s string) (Feeling, bool) {
	v, ok := lookup(Feelings, s)
	return Feeling(v), ok
}

// ParseSymptom maps user input onto a symptom.
func ParseSymptom(s string) (Symptom, bool) {
	v, ok := lookup(Symptoms, s)
	return Symptom(v), ok
}

func lookup(opts []Option, s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, o := range opts {
		if o.Value == s {
			return o.Value, true
		}
	}
	return "", false
}

// Greeting returns the salutation for a wall-clock hour (0-23).
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// SlotValues returns the slot identifiers in display order.
func SlotValues() []string {
	out := make([]string, 0, len(AllSlots))
	for _, s := range AllSlots {
		out = append(out, string(s))
	}
	return out
}

// Values returns the value identifiers of opts.
func Values(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}
