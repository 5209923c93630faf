package city

import "maps"

// Stats records what happened during one session.
type Stats struct {
	StartResources int            `json:"start_resources"`
	EndResources   int            `json:"end_resources"`
	Added          map[string]int `json:"added"`   // kind → count
	Removed        map[string]int `json:"removed"` // kind → count
	Recycled       int            `json:"recycled"`
	Spent          int            `json:"spent"`
	Refunded       int            `json:"refunded"`
	Saves          int            `json:"saves"`
	Restores       int            `json:"restores"`
	PeakActive     int            `json:"peak_active"`
}

func newStats() Stats {
	return Stats{
		Added:   make(map[string]int),
		Removed: make(map[string]int),
	}
}

func (s *Stats) observe(active int) {
	if active > s.PeakActive {
		s.PeakActive = active
	}
}

func (s Stats) clone() Stats {
	s.Added = maps.Clone(s.Added)
	s.Removed = maps.Clone(s.Removed)
	return s
}
