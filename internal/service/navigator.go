package service

import (
	"sync"

	"flashvocab/internal/domain"
)

// Card is the entry under a cursor together with its position in the view
type Card struct {
	Entry domain.Entry
	Index int
	Total int
}

// Navigator tracks the Learn and Favorites cursors of one learner.
// It only reads from the store; views are re-derived on every call.
type Navigator struct {
	store    *VocabStore
	indexes  IndexStorage
	learnKey string

	mu        sync.Mutex
	learn     domain.Cursor
	favorites domain.Cursor
}

// NewNavigator creates a navigator. The Learn cursor is restored from
// indexes under learnKey; indexes may be nil.
func NewNavigator(store *VocabStore, indexes IndexStorage, learnKey string) *Navigator {
	start := 0
	if indexes != nil {
		if saved, ok := indexes.LoadIndex(learnKey); ok {
			start = saved
		}
	}

	return &Navigator{
		store:     store,
		indexes:   indexes,
		learnKey:  learnKey,
		learn:     domain.NewCursor(start),
		favorites: domain.NewCursor(0),
	}
}

// Current returns the card shown in view
func (n *Navigator) Current(view domain.View) (Card, bool) {
	return n.move(view, nil)
}

// Next advances view by one card, wrapping at the end
func (n *Navigator) Next(view domain.View) (Card, bool) {
	return n.move(view, (*domain.Cursor).Next)
}

// Previous moves view back by one card, wrapping at the start
func (n *Navigator) Previous(view domain.View) (Card, bool) {
	return n.move(view, (*domain.Cursor).Previous)
}

// Index returns the raw cursor position of view without re-clamping
func (n *Navigator) Index(view domain.View) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cursor(view).Index()
}

func (n *Navigator) move(view domain.View, step func(*domain.Cursor, int)) (Card, bool) {
	entries := n.entries(view)

	n.mu.Lock()
	defer n.mu.Unlock()

	c := n.cursor(view)
	before := c.Index()

	c.Reclamp(len(entries))
	if step != nil {
		step(c, len(entries))
	}

	if view == domain.ViewLearn && n.indexes != nil && c.Index() != before {
		n.indexes.SaveIndex(n.learnKey, c.Index())
	}

	if len(entries) == 0 {
		return Card{}, false
	}
	return Card{Entry: entries[c.Index()], Index: c.Index(), Total: len(entries)}, true
}

func (n *Navigator) entries(view domain.View) []domain.Entry {
	if view == domain.ViewFavorites {
		return n.store.Pinned()
	}
	return n.store.Entries()
}

func (n *Navigator) cursor(view domain.View) *domain.Cursor {
	if view == domain.ViewFavorites {
		return &n.favorites
	}
	return &n.learn
}
