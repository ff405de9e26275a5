package meal

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	idMu      sync.Mutex
	idEntropy = ulid.Monotonic(rand.Reader, 0)
)

// newFoodID returns a ULID. Monotonic entropy keeps ids strictly increasing
// within the process, so two items never share an id even inside one millisecond.
func newFoodID() string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), idEntropy).String()
}

// ParseFoods splits free text on commas into food items, one per non-empty
// trimmed segment, in input order. Names are kept verbatim. Every call
// generates fresh ids, so no portion survives a re-parse.
func ParseFoods(text string) []FoodItem {
	items := []FoodItem{}
	if strings.TrimSpace(text) == "" {
		return items
	}
	for _, seg := range strings.Split(text, ",") {
		name := strings.TrimSpace(seg)
		if name == "" {
			continue
		}
		items = append(items, FoodItem{ID: newFoodID(), Name: name})
	}
	return items
}
