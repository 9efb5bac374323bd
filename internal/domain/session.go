package domain

// View selects which ordered list a cursor walks over
type View string

const (
	ViewLearn     View = "learn"
	ViewFavorites View = "fav"
)

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingPasscode UserState = "waiting_passcode"
	StateWaitingImport   UserState = "waiting_import"
	StateWaitingTopic    UserState = "waiting_topic"
	StateWaitingWord     UserState = "waiting_word"
	StateWaitingMeaning  UserState = "waiting_meaning"
	StateWaitingExample  UserState = "waiting_example"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State UserState

	// Draft is the entry being created or edited by an admin.
	// An empty Draft.ID means a new entry.
	Draft Entry
}

// CardView is the per-chat presentation state of the shown card
type CardView struct {
	EntryID     string
	Flipped     bool
	Explanation string
	Explaining  bool
}

// Reset clears the presentation state when a different entry is shown
func (v *CardView) Reset(entryID string) {
	if v.EntryID == entryID {
		return
	}
	*v = CardView{EntryID: entryID}
}
