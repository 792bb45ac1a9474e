package viewer

import (
	"math/rand"
	"time"
)

// Card is one two-sided study unit as seen by the viewer. Identity is
// positional: the viewer never looks at database IDs.
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Snapshot is what the data binding layer pushes into a viewer: the
// populated deck tuple, with the owner already resolved to a username.
// A nil *Snapshot means the upstream load has not completed yet.
type Snapshot struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Username    string `json:"username"`
	Cards       []Card `json:"cards"`
}

// Phase is the viewer's lifecycle state.
type Phase int

const (
	PhaseUninitialized Phase = iota // created, nothing applied yet
	PhaseLoading                    // upstream signalled "not loaded"
	PhaseNotFound                   // upstream loaded but deck absent/empty
	PhaseReady                      // cards present, index and face valid
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseNotFound:
		return "not_found"
	case PhaseReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Face selects which side of the current card is displayed.
type Face int

const (
	FaceFront Face = iota
	FaceBack
)

// Keyboard keys the viewer reacts to. Everything else is ignored.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// Viewer presents one card at a time from a local, shuffle-able copy of a
// deck's cards. All methods are plain synchronous state transitions; the
// caller is responsible for serializing access.
type Viewer struct {
	phase       Phase
	name        string
	description string
	username    string
	cards       []Card // local permutation of the last applied snapshot
	currIndex   int
	face        Face
	rng         *rand.Rand
}

// New returns a viewer in the Uninitialized phase.
func New() *Viewer {
	return &Viewer{
		phase: PhaseUninitialized,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Apply feeds an upstream snapshot into the viewer. nil means the load is
// still pending. An empty card list means the deck is absent or empty and
// moves the viewer to NotFound, including from Ready. A non-empty list
// re-seeds wholesale: local copy of the cards, index 0, front face.
func (v *Viewer) Apply(snap *Snapshot) {
	if snap == nil {
		if v.phase == PhaseUninitialized {
			v.phase = PhaseLoading
		}
		return
	}

	v.name = snap.Name
	v.description = snap.Description
	v.username = snap.Username

	if len(snap.Cards) == 0 {
		v.phase = PhaseNotFound
		v.cards = nil
		v.currIndex = 0
		v.face = FaceFront
		return
	}

	v.cards = append([]Card(nil), snap.Cards...)
	v.currIndex = 0
	v.face = FaceFront
	v.phase = PhaseReady
}

// CanNext reports whether Next would advance.
func (v *Viewer) CanNext() bool {
	return v.phase == PhaseReady && v.currIndex < len(v.cards)-1
}

// CanPrev reports whether Prev would go back.
func (v *Viewer) CanPrev() bool {
	return v.phase == PhaseReady && v.currIndex > 0
}

// Next advances to the following card, front face up. No-op at the last
// card; returns whether the state changed.
func (v *Viewer) Next() bool {
	if !v.CanNext() {
		return false
	}
	v.currIndex++
	v.face = FaceFront
	return true
}

// Prev steps back to the previous card, front face up. No-op at index 0.
func (v *Viewer) Prev() bool {
	if !v.CanPrev() {
		return false
	}
	v.currIndex--
	v.face = FaceFront
	return true
}

// Flip toggles the displayed face of the current card.
func (v *Viewer) Flip() bool {
	if v.phase != PhaseReady {
		return false
	}
	if v.face == FaceFront {
		v.face = FaceBack
	} else {
		v.face = FaceFront
	}
	return true
}

// Shuffle replaces the local card list with a Durstenfeld-shuffled copy and
// resets to the first card, front face up. Both effects happen in this one
// transition, so the reset always reads the post-shuffle list.
func (v *Viewer) Shuffle() bool {
	if v.phase != PhaseReady {
		return false
	}
	shuffled := append([]Card(nil), v.cards...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := v.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	v.cards = shuffled
	v.currIndex = 0
	v.face = FaceFront
	return true
}

// HandleKey maps keyboard input onto navigation. ArrowRight is Next,
// ArrowLeft is Prev, anything else is ignored.
func (v *Viewer) HandleKey(key string) bool {
	switch key {
	case KeyArrowRight:
		return v.Next()
	case KeyArrowLeft:
		return v.Prev()
	default:
		return false
	}
}

// Phase returns the current lifecycle phase.
func (v *Viewer) Phase() Phase {
	return v.phase
}

// CurrIndex returns the current card index. Only meaningful in Ready.
func (v *Viewer) CurrIndex() int {
	return v.currIndex
}

// Display returns the text of the currently shown face, or "" outside Ready.
func (v *Viewer) Display() string {
	if v.phase != PhaseReady {
		return ""
	}
	if v.face == FaceBack {
		return v.cards[v.currIndex].Back
	}
	return v.cards[v.currIndex].Front
}

// Cards returns the viewer's local card order.
func (v *Viewer) Cards() []Card {
	return v.cards
}

// State is the wire form of the viewer pushed to clients.
type State struct {
	Phase       string `json:"phase"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Username    string `json:"username,omitempty"`
	CurrIndex   int    `json:"currIndex"`
	Total       int    `json:"total"`
	Display     string `json:"display,omitempty"`
	Flipped     bool   `json:"flipped"`
	CanNext     bool   `json:"canNext"`
	CanPrev     bool   `json:"canPrev"`
}

// State snapshots the viewer for broadcast.
func (v *Viewer) State() State {
	return State{
		Phase:       v.phase.String(),
		Name:        v.name,
		Description: v.description,
		Username:    v.username,
		CurrIndex:   v.currIndex,
		Total:       len(v.cards),
		Display:     v.Display(),
		Flipped:     v.face == FaceBack,
		CanNext:     v.CanNext(),
		CanPrev:     v.CanPrev(),
	}
}
