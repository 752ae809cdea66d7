package location

// Status is the occupancy state of a bin. It is always derived from stock
// facts and the blocked flag, never stored.
type Status int

const (
	StatusUnknown Status = iota
	Empty
	Available
	Full
	Blocked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Empty:         "empty",
		Available:     "available",
		Full:          "full",
		Blocked:       "blocked",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
