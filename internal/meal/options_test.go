package meal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		input string
		want  Slot
		ok    bool
	}{
		{"breakfast", Breakfast, true},
		{" Lunch ", Lunch, true},
		{"DINNER", Dinner, true},
		{"snacks", Snacks, true},
		{"brunch", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSlot(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.input)
		}
	}
}

func TestVocabularies(t *testing.T) {
	_, ok := ParsePortion("no-idea")
	assert.True(t, ok)
	_, ok = ParsePortion("huge")
	assert.False(t, ok)

	f, ok := ParseFeeling("Heavy")
	assert.True(t, ok)
	assert.Equal(t, FeelingHeavy, f)

	s, ok := ParseSymptom("stool-change")
	assert.True(t, ok)
	assert.Equal(t, SymptomStoolChange, s)
	_, ok = ParseSymptom("headache")
	assert.False(t, ok)

	assert.Len(t, Slots, 4)
	assert.Len(t, Feelings, 3)
	assert.Len(t, Symptoms, 5)
	assert.Len(t, Portions, 5)
	for _, slot := range AllSlots {
		assert.LessOrEqual(t, len(SeedSuggestions[slot]), 5)
	}
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Good morning", Greeting(0))
	assert.Equal(t, "Good morning", Greeting(11))
	assert.Equal(t, "Good afternoon", Greeting(12))
	assert.Equal(t, "Good afternoon", Greeting(16))
	assert.Equal(t, "Good evening", Greeting(17))
	assert.Equal(t, "Good evening", Greeting(23))
}
