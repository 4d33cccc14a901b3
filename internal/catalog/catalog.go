package catalog

// IntroSection is one page of a substance's onboarding narrative.
type IntroSection struct {
	Title   string
	Content string
}

// Introduction is the ordered "what to expect" reading shown once,
// before daily content begins.
type Introduction struct {
	Title    string
	Sections []IntroSection
}

// Milestone is an authored content block anchored to an elapsed-day offset.
type Milestone struct {
	Day      int
	Title    string
	Physical string
	Mental   string
	Reframe  string
	Reminder string
}

// Substance is one entry of the static content table. Timelines are authored
// sorted ascending by day, offsets start at 1.
type Substance struct {
	ID           string
	Name         string
	Icon         string
	Color        string
	Introduction Introduction
	Timeline     []Milestone
}

// order fixes the menu/listing order; the map alone would randomize it.
var order = []string{"alcohol", "cocaine"}

// Get looks up a substance by identifier. The second return is false when
// the identifier is unknown; callers must handle that case, since a stored
// journey could in principle reference a substance removed from the catalog.
func Get(id string) (Substance, bool) {
	s, ok := substances[id]
	return s, ok
}

// All returns every substance in stable authoring order.
func All() []Substance {
	out := make([]Substance, 0, len(order))
	for _, id := range order {
		out = append(out, substances[id])
	}
	return out
}

// IDs returns the identifiers of every substance in stable authoring order.
func IDs() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}
