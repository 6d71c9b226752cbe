package domain

import "testing"

func TestValidStatus(t *testing.T) {
	for _, status := range Statuses {
		if !ValidStatus(status) {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	for _, status := range []string{"", "open", "Done", "IN PROGRESS"} {
		if ValidStatus(status) {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}

func TestValidProjectType(t *testing.T) {
	for _, pt := range ProjectTypes {
		if !ValidProjectType(pt) {
			t.Fatalf("expected %q to be valid", pt)
		}
	}
	for _, pt := range []string{"", "5-week", "week-1"} {
		if ValidProjectType(pt) {
			t.Fatalf("expected %q to be invalid", pt)
		}
	}
}
