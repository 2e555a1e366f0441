package catalog

// Schedule is one scheduled meeting block of a course. Every field is
// optional; a block with nothing recoverable is still a Schedule.
type Schedule struct {
	Campus   *string `json:"campus,omitempty"`
	Display  *string `json:"display,omitempty"`
	Location *string `json:"location,omitempty"`
}
