package db_models

import "testing"

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantDone bool
		wantYear int
	}{
		{"empty", "", false, 0},
		{"done with year", "Done - 2023", true, 2023},
		{"done without year", "done", true, 0},
		{"uppercase marker", "DONE - 2019", true, 2019},
		{"year without marker", "planned for 2025", false, 0},
		{"extra text around year", "Done (honeymoon, 2021)", true, 2021},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := CatalogItem{Status: tt.status}
			item.ResolveStatus()
			if item.Done != tt.wantDone {
				t.Errorf("Done = %t, want %t", item.Done, tt.wantDone)
			}
			if item.DoneYear != tt.wantYear {
				t.Errorf("DoneYear = %d, want %d", item.DoneYear, tt.wantYear)
			}
		})
	}
}

func TestResolveStatusResetsYear(t *testing.T) {
	item := CatalogItem{Status: "Done - 2020"}
	item.ResolveStatus()

	item.Status = ""
	item.ResolveStatus()
	if item.Done || item.DoneYear != 0 {
		t.Errorf("re-resolve left stale state: done=%t year=%d", item.Done, item.DoneYear)
	}
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	items := DefaultCatalog()
	if len(items) == 0 {
		t.Fatal("default catalog is empty")
	}

	positions := make(map[int]string, len(items))
	for _, item := range items {
		if item.Destination == "" {
			t.Error("catalog item with empty destination")
		}
		if prev, dup := positions[item.Position]; dup {
			t.Errorf("position %d shared by %q and %q", item.Position, prev, item.Destination)
		}
		positions[item.Position] = item.Destination
		if item.KenPriority < 1 {
			t.Errorf("%q has non-positive priority %d", item.Destination, item.KenPriority)
		}
		switch item.Difficulty {
		case DifficultyEasy, DifficultyModerate, DifficultyChallenging:
		default:
			t.Errorf("%q has unknown difficulty %q", item.Destination, item.Difficulty)
		}
		if len(item.Experiences) == 0 {
			t.Errorf("%q has no experiences", item.Destination)
		}
	}
}
