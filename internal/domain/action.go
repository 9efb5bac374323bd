package domain

// ActionKind names a state transition
type ActionKind string

const (
	KindSetAll         ActionKind = "set_all"
	KindAddMany        ActionKind = "add_many"
	KindResetToDefault ActionKind = "reset_to_default"
	KindClearAll       ActionKind = "clear_all"
	KindDeleteOne      ActionKind = "delete_one"
	KindEditOne        ActionKind = "edit_one"
	KindTogglePin      ActionKind = "toggle_pin"
)

// Action is one of the transitions accepted by Apply.
// The set of implementations is closed to this package.
type Action interface {
	Kind() ActionKind
	action()
}

// SetAll replaces the whole list
type SetAll struct{ Entries []Entry }

// AddMany appends entries; ids must already be assigned
type AddMany struct{ Entries []Entry }

// ResetToDefault replaces the list with the bundled deck
type ResetToDefault struct{}

// ClearAll empties the list
type ClearAll struct{}

// DeleteOne removes the entry with the given id
type DeleteOne struct{ ID string }

// EditOne merges a patch into the entry with the same id
type EditOne struct{ Patch EntryPatch }

// TogglePin flips the pinned flag of the entry with the given id
type TogglePin struct{ ID string }

func (SetAll) Kind() ActionKind         { return KindSetAll }
func (AddMany) Kind() ActionKind        { return KindAddMany }
func (ResetToDefault) Kind() ActionKind { return KindResetToDefault }
func (ClearAll) Kind() ActionKind       { return KindClearAll }
func (DeleteOne) Kind() ActionKind      { return KindDeleteOne }
func (EditOne) Kind() ActionKind        { return KindEditOne }
func (TogglePin) Kind() ActionKind      { return KindTogglePin }

func (SetAll) action()         {}
func (AddMany) action()        {}
func (ResetToDefault) action() {}
func (ClearAll) action()       {}
func (DeleteOne) action()      {}
func (EditOne) action()        {}
func (TogglePin) action()      {}

// Apply returns the state that results from applying action to state.
// The input state is never modified. Unknown ids are ignored.
func Apply(state State, action Action) State {
	switch a := action.(type) {
	case SetAll:
		return State{VocabList: appendUnique(nil, a.Entries)}

	case AddMany:
		return State{VocabList: appendUnique(state.VocabList, a.Entries)}

	case ResetToDefault:
		return State{VocabList: DefaultDeck()}

	case ClearAll:
		return State{VocabList: []Entry{}}

	case DeleteOne:
		list := make([]Entry, 0, len(state.VocabList))
		for _, e := range state.VocabList {
			if e.ID != a.ID {
				list = append(list, e)
			}
		}
		return State{VocabList: list}

	case EditOne:
		list := cloneEntries(state.VocabList)
		for i := range list {
			if list[i].ID != a.Patch.ID {
				continue
			}
			if a.Patch.Word != nil {
				list[i].Word = *a.Patch.Word
			}
			if a.Patch.Meaning != nil {
				list[i].Meaning = *a.Patch.Meaning
			}
			if a.Patch.Example != nil {
				list[i].Example = *a.Patch.Example
			}
		}
		return State{VocabList: list}

	case TogglePin:
		list := cloneEntries(state.VocabList)
		for i := range list {
			if list[i].ID == a.ID {
				list[i].Pinned = !list[i].Pinned
			}
		}
		return State{VocabList: list}
	}

	return state.Clone()
}

// appendUnique copies base and appends every entry whose id is not yet present
func appendUnique(base, entries []Entry) []Entry {
	list := make([]Entry, 0, len(base)+len(entries))
	seen := make(map[string]struct{}, len(base)+len(entries))
	for _, e := range base {
		list = append(list, e)
		seen[e.ID] = struct{}{}
	}
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		list = append(list, e)
	}
	return list
}
