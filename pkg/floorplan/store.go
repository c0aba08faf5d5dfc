package floorplan

import (
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Store owns the walls of a floorplan in creation order
type Store struct {
	walls  []*Wall
	index  map[WallID]*Wall
	nextID WallID
}

// NewStore creates an empty wall store
func NewStore() *Store {
	return &Store{
		walls: make([]*Wall, 0),
		index: make(map[WallID]*Wall),
	}
}

// Add creates a wall between start and end and appends it in creation order
func (s *Store) Add(start, end geometry.Vector3) Wall {
	w := &Wall{
		ID:    s.nextID,
		Start: flatten(start),
		End:   flatten(end),
	}
	s.nextID++
	w.derive()

	s.walls = append(s.walls, w)
	s.index[w.ID] = w
	return *w
}

// Update moves both endpoints of a wall and recomputes its derived metrics.
// It returns false when the wall does not exist.
func (s *Store) Update(id WallID, start, end geometry.Vector3) (Wall, bool) {
	w, ok := s.index[id]
	if !ok {
		return Wall{}, false
	}
	w.Start = flatten(start)
	w.End = flatten(end)
	w.derive()
	return *w, true
}

// Translate shifts both endpoints of a wall by delta
func (s *Store) Translate(id WallID, delta geometry.Vector3) (Wall, bool) {
	w, ok := s.index[id]
	if !ok {
		return Wall{}, false
	}
	return s.Update(id, w.Start.Add(delta), w.End.Add(delta))
}

// Remove deletes a wall. Removing an unknown id is a no-op that returns false.
func (s *Store) Remove(id WallID) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, w := range s.walls {
		if w.ID == id {
			s.walls = append(s.walls[:i], s.walls[i+1:]...)
			break
		}
	}
	return true
}

// SetSelected sets the selection flag. Selecting a wall clears its highlight.
func (s *Store) SetSelected(id WallID, selected bool) bool {
	w, ok := s.index[id]
	if !ok {
		return false
	}
	w.Selected = selected
	if selected {
		w.Highlighted = false
	}
	return true
}

// ToggleSelected flips the selection flag
func (s *Store) ToggleSelected(id WallID) bool {
	w, ok := s.index[id]
	if !ok {
		return false
	}
	return s.SetSelected(id, !w.Selected)
}

// SelectOnly selects id and deselects every other wall
func (s *Store) SelectOnly(id WallID) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	for _, w := range s.walls {
		s.SetSelected(w.ID, w.ID == id)
	}
	return true
}

// SetHighlighted sets the hover flag. Selected walls never take a highlight.
func (s *Store) SetHighlighted(id WallID, highlighted bool) bool {
	w, ok := s.index[id]
	if !ok {
		return false
	}
	w.Highlighted = highlighted && !w.Selected
	return true
}

// HighlightOnly highlights id and clears the highlight on every other wall.
// It returns the ids whose highlight flag changed.
func (s *Store) HighlightOnly(id WallID) []WallID {
	changed := make([]WallID, 0)
	for _, w := range s.walls {
		before := w.Highlighted
		s.SetHighlighted(w.ID, w.ID == id)
		if w.Highlighted != before {
			changed = append(changed, w.ID)
		}
	}
	return changed
}

// ClearTransientStates clears every highlight and, when clearSelection is
// set, every selection. It returns the ids whose flags changed.
func (s *Store) ClearTransientStates(clearSelection bool) []WallID {
	changed := make([]WallID, 0)
	for _, w := range s.walls {
		if w.Highlighted || (clearSelection && w.Selected) {
			changed = append(changed, w.ID)
		}
		w.Highlighted = false
		if clearSelection {
			w.Selected = false
		}
	}
	return changed
}

// All returns a snapshot of every wall in creation order
func (s *Store) All() []Wall {
	out := make([]Wall, len(s.walls))
	for i, w := range s.walls {
		out[i] = *w
	}
	return out
}

// Selected returns a snapshot of the selected walls in creation order
func (s *Store) Selected() []Wall {
	out := make([]Wall, 0)
	for _, w := range s.walls {
		if w.Selected {
			out = append(out, *w)
		}
	}
	return out
}

// SelectedIDs returns the ids of the selected walls in creation order
func (s *Store) SelectedIDs() []WallID {
	ids := make([]WallID, 0)
	for _, w := range s.walls {
		if w.Selected {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// ByID looks up a wall
func (s *Store) ByID(id WallID) (Wall, bool) {
	w, ok := s.index[id]
	if !ok {
		return Wall{}, false
	}
	return *w, true
}

// Len returns the number of walls
func (s *Store) Len() int {
	return len(s.walls)
}
