package catalog

import "testing"

func TestGet(t *testing.T) {
	t.Run("known substance", func(t *testing.T) {
		sub, ok := Get("alcohol")
		if !ok {
			t.Fatal("Get(alcohol) ok = false, want true")
		}
		if sub.ID != "alcohol" || sub.Name == "" || sub.Icon == "" {
			t.Errorf("Get(alcohol) returned incomplete substance: %+v", sub)
		}
	})

	t.Run("unknown substance", func(t *testing.T) {
		if _, ok := Get("nicotine"); ok {
			t.Error("Get(nicotine) ok = true, want false")
		}
	})
}

func TestAllMatchesIDs(t *testing.T) {
	all := All()
	ids := IDs()
	if len(all) != len(ids) {
		t.Fatalf("len(All()) = %d, len(IDs()) = %d", len(all), len(ids))
	}
	for i, sub := range all {
		if sub.ID != ids[i] {
			t.Errorf("All()[%d].ID = %q, want %q", i, sub.ID, ids[i])
		}
	}
}

func TestTimelinesAreWellFormed(t *testing.T) {
	for _, sub := range All() {
		if len(sub.Timeline) == 0 {
			t.Errorf("substance %q has an empty timeline", sub.ID)
			continue
		}
		if sub.Timeline[0].Day != 1 {
			t.Errorf("substance %q timeline starts at day %d, want 1", sub.ID, sub.Timeline[0].Day)
		}
		for i := 1; i < len(sub.Timeline); i++ {
			if sub.Timeline[i].Day <= sub.Timeline[i-1].Day {
				t.Errorf("substance %q timeline not strictly ascending at index %d (%d after %d)",
					sub.ID, i, sub.Timeline[i].Day, sub.Timeline[i-1].Day)
			}
		}
		for _, ms := range sub.Timeline {
			if ms.Title == "" {
				t.Errorf("substance %q day %d milestone has no title", sub.ID, ms.Day)
			}
		}
	}
}

func TestIntroductions(t *testing.T) {
	for _, sub := range All() {
		if sub.Introduction.Title == "" {
			t.Errorf("substance %q has no introduction title", sub.ID)
		}
		if len(sub.Introduction.Sections) == 0 {
			t.Errorf("substance %q has no introduction sections", sub.ID)
		}
		for i, sec := range sub.Introduction.Sections {
			if sec.Title == "" || sec.Content == "" {
				t.Errorf("substance %q intro section %d is incomplete", sub.ID, i)
			}
		}
	}
}

func TestIDsReturnsCopy(t *testing.T) {
	ids := IDs()
	if len(ids) == 0 {
		t.Fatal("IDs() returned no substances")
	}
	ids[0] = "mutated"
	if IDs()[0] == "mutated" {
		t.Error("IDs() exposes internal ordering slice")
	}
}
