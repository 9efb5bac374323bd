package domain

// Entry is a single vocabulary flashcard
type Entry struct {
	ID      string `json:"id"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example,omitempty"`
	Pinned  bool   `json:"pinned,omitempty"`
}

// EntryPatch carries the fields an edit may change.
// Nil fields are left untouched.
type EntryPatch struct {
	ID      string
	Word    *string
	Meaning *string
	Example *string
}

// State is the whole application state
type State struct {
	VocabList []Entry `json:"vocabList"`
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	return State{VocabList: cloneEntries(s.VocabList)}
}

// Pinned returns the pinned entries in list order
func (s State) Pinned() []Entry {
	pinned := make([]Entry, 0)
	for _, e := range s.VocabList {
		if e.Pinned {
			pinned = append(pinned, e)
		}
	}
	return pinned
}

// IndexOf returns the position of the entry with the given id, or -1
func (s State) IndexOf(id string) int {
	for i, e := range s.VocabList {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func cloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return []Entry{}
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
