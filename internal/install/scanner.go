package install

import "iter"

// Scanner walks a log text and yields install events in the order their
// starting lines appear. It is not restartable.
type Scanner struct {
	text    string
	pattern *Pattern
	pos     int
	event   Event
}

// NewScanner returns a Scanner over text using pattern.
func NewScanner(text string, pattern *Pattern) *Scanner {
	return &Scanner{text: text, pattern: pattern}
}

// Scan advances to the next install event. It returns false when the text
// holds no further complete transaction.
func (s *Scanner) Scan() bool {
	m, ok := s.pattern.MatchFrom(s.text, s.pos)
	if !ok {
		s.pos = len(s.text)
		return false
	}
	s.event = m.Event
	s.pos = m.End
	return true
}

// Event returns the event found by the most recent call to Scan.
func (s *Scanner) Event() Event {
	return s.event
}

// All returns the remaining events as an iterator.
func (s *Scanner) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for s.Scan() {
			if !yield(s.event) {
				return
			}
		}
	}
}
