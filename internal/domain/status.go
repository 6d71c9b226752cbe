package domain

// Status values shared by projects and problems. Any status may follow any
// other; the only coupling is that Completed implies a completion timestamp.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Statuses lists all valid status values.
var Statuses = []string{StatusOpen, StatusInProgress, StatusCompleted}

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ProjectTypes lists the fixed duration buckets a project can be tagged with.
var ProjectTypes = []string{"1-week", "2-week", "3-week", "4-week"}

// ValidProjectType reports whether t is one of the known project types.
func ValidProjectType(t string) bool {
	for _, pt := range ProjectTypes {
		if t == pt {
			return true
		}
	}
	return false
}
