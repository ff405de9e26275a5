package meal

import (
	"strings"
	"time"
)

// Slot identifies one of the four fixed meal slots of a day.
type Slot string

const (
	Breakfast Slot = "breakfast"
	Lunch     Slot = "lunch"
	Dinner    Slot = "dinner"
	Snacks    Slot = "snacks"
)

// AllSlots lists the slots in display order.
var AllSlots = []Slot{Breakfast, Lunch, Dinner, Snacks}

// Portion is the size tag a user attaches to a single food item.
// The zero value means no portion has been chosen.
type Portion string

const (
	PortionSmall  Portion = "small"
	PortionMedium Portion = "medium"
	PortionLarge  Portion = "large"
	PortionSkip   Portion = "skip"
	PortionNoIdea Portion = "no-idea"
)

// Feeling describes how the user felt after a meal. Empty means unset.
type Feeling string

const (
	FeelingLight Feeling = "light"
	FeelingOkay  Feeling = "okay"
	FeelingHeavy Feeling = "heavy"
)

// Symptom is a post-meal symptom tag.
type Symptom string

const (
	SymptomBloating    Symptom = "bloating"
	SymptomReflux      Symptom = "reflux"
	SymptomFatigue     Symptom = "fatigue"
	SymptomStoolChange Symptom = "stool-change"
	// SymptomNone is mutually exclusive with every other symptom.
	SymptomNone Symptom = "none"
)

// FoodItem is one comma-separated segment of a slot's food text.
type FoodItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Portion Portion `json:"portion"`
}

// Entry is the record for a single meal slot.
type Entry struct {
	IsExpanded  bool       `json:"isExpanded"`
	IsSkipped   bool       `json:"isSkipped"`
	FoodText    string     `json:"foodText"`
	ParsedFoods []FoodItem `json:"parsedFoods"`
	Feeling     Feeling    `json:"feeling"`
	Symptoms    []Symptom  `json:"symptoms"`
	Note        string     `json:"note"`
}

// NewEntry returns a collapsed, unskipped entry with every field empty.
func NewEntry() Entry {
	return Entry{
		ParsedFoods: []FoodItem{},
		Symptoms:    []Symptom{},
	}
}

// Clone returns a deep copy so the result shares no slices with e.
func (e Entry) Clone() Entry {
	out := e
	out.ParsedFoods = append(make([]FoodItem, 0, len(e.ParsedFoods)), e.ParsedFoods...)
	out.Symptoms = append(make([]Symptom, 0, len(e.Symptoms)), e.Symptoms...)
	return out
}

// PortionsVisible reports whether portion pickers apply to this entry.
func (e Entry) PortionsVisible() bool {
	return len(e.ParsedFoods) > 0 && !e.IsSkipped
}

// HasSymptom reports whether s is currently selected.
func (e Entry) HasSymptom(s Symptom) bool {
	for _, have := range e.Symptoms {
		if have == s {
			return true
		}
	}
	return false
}

// Food returns the item with the given id, if present.
func (e Entry) Food(id string) (FoodItem, bool) {
	for _, f := range e.ParsedFoods {
		if f.ID == id {
			return f, true
		}
	}
	return FoodItem{}, false
}

// IsLogged reports whether the user has entered anything for the slot.
func (e Entry) IsLogged() bool {
	return !e.IsSkipped && strings.TrimSpace(e.FoodText) != ""
}

// DayLog holds exactly one Entry per slot. It is a value type: methods that
// change a slot return a new DayLog and leave the receiver untouched.
type DayLog struct {
	Breakfast Entry `json:"breakfast"`
	Lunch     Entry `json:"lunch"`
	Dinner    Entry `json:"dinner"`
	Snacks    Entry `json:"snacks"`
}

// NewDayLog returns the default log for a fresh day.
func NewDayLog() DayLog {
	return DayLog{
		Breakfast: NewEntry(),
		Lunch:     NewEntry(),
		Dinner:    NewEntry(),
		Snacks:    NewEntry(),
	}
}

// Entry returns a copy of the entry for slot. Unknown slots yield an empty entry.
func (d DayLog) Entry(slot Slot) Entry {
	switch slot {
	case Breakfast:
		return d.Breakfast.Clone()
	case Lunch:
		return d.Lunch.Clone()
	case Dinner:
		return d.Dinner.Clone()
	case Snacks:
		return d.Snacks.Clone()
	}
	return NewEntry()
}

// With returns a copy of d whose slot entry is replaced by e.
// Unknown slots return an unchanged copy.
func (d DayLog) With(slot Slot, e Entry) DayLog {
	out := d.Clone()
	switch slot {
	case Breakfast:
		out.Breakfast = e
	case Lunch:
		out.Lunch = e
	case Dinner:
		out.Dinner = e
	case Snacks:
		out.Snacks = e
	}
	return out
}

// Clone returns a deep copy of d.
func (d DayLog) Clone() DayLog {
	return DayLog{
		Breakfast: d.Breakfast.Clone(),
		Lunch:     d.Lunch.Clone(),
		Dinner:    d.Dinner.Clone(),
		Snacks:    d.Snacks.Clone(),
	}
}

// Normalize replaces nil slices with empty ones. Used after decoding
// persisted payloads that may carry nulls.
func (d DayLog) Normalize() DayLog {
	fix := func(e Entry) Entry {
		if e.ParsedFoods == nil {
			e.ParsedFoods = []FoodItem{}
		}
		if e.Symptoms == nil {
			e.Symptoms = []Symptom{}
		}
		return e
	}
	return DayLog{
		Breakfast: fix(d.Breakfast),
		Lunch:     fix(d.Lunch),
		Dinner:    fix(d.Dinner),
		Snacks:    fix(d.Snacks),
	}
}

// Summary counts slots by state.
type Summary struct {
	Logged  int `json:"logged"`
	Skipped int `json:"skipped"`
	Pending int `json:"pending"`
}

// Summary tallies the day's slots.
func (d DayLog) Summary() Summary {
	var s Summary
	for _, slot := range AllSlots {
		e := d.Entry(slot)
		switch {
		case e.IsSkipped:
			s.Skipped++
		case e.IsLogged():
			s.Logged++
		default:
			s.Pending++
		}
	}
	return s
}

// dateStampLayout matches the "Thu Oct 15 2026" form used for persisted logs.
const dateStampLayout = "Mon Jan 02 2006"

// DateStamp returns the day key for t in t's own location.
func DateStamp(t time.Time) string {
	return t.Format(dateStampLayout)
}

// Today returns the date stamp for the local wall clock.
func Today() string {
	return DateStamp(time.Now())
}
