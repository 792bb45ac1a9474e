package viewer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(cards ...Card) *Snapshot {
	return &Snapshot{
		Name:        "Math Basics",
		Description: "Simple sums",
		Username:    "alice",
		Cards:       cards,
	}
}

func TestApplyNilStaysLoading(t *testing.T) {
	v := New()
	assert.Equal(t, PhaseUninitialized, v.Phase())

	v.Apply(nil)
	assert.Equal(t, PhaseLoading, v.Phase())
	assert.Equal(t, "", v.Display())

	// still pending, still loading
	v.Apply(nil)
	assert.Equal(t, PhaseLoading, v.Phase())
}

func TestInitialLoadShowsFirstFront(t *testing.T) {
	v := New()
	v.Apply(snapshot(Card{Front: "2+2", Back: "4"}, Card{Front: "3+3", Back: "6"}))

	assert.Equal(t, PhaseReady, v.Phase())
	assert.Equal(t, 0, v.CurrIndex())
	assert.Equal(t, "2+2", v.Display())
	assert.False(t, v.CanPrev())
	assert.True(t, v.CanNext())
}

func TestEmptyDeckIsNotFound(t *testing.T) {
	v := New()
	v.Apply(snapshot())

	assert.Equal(t, PhaseNotFound, v.Phase())
	assert.Equal(t, "", v.Display())
}

func TestNonEmptyToEmptyTransitionsToNotFound(t *testing.T) {
	v := New()
	v.Apply(snapshot(Card{Front: "a", Back: "b"}))
	require.Equal(t, PhaseReady, v.Phase())

	v.Apply(snapshot())
	assert.Equal(t, PhaseNotFound, v.Phase())
	assert.Equal(t, 0, v.CurrIndex())
	assert.Empty(t, v.Cards())
}

func TestFlipIsInvolution(t *testing.T) {
	v := New()
	v.Apply(snapshot(Card{Front: "2+2", Back: "4"}, Card{Front: "3+3", Back: "6"}))

	before := v.Display()
	idx := v.CurrIndex()

	assert.True(t, v.Flip())
	assert.Equal(t, "4", v.Display())
	assert.Equal(t, idx, v.CurrIndex())

	assert.True(t, v.Flip())
	assert.Equal(t, before, v.Display())
	assert.Equal(t, idx, v.CurrIndex())
}

func TestNextPrevAreInverseAtInteriorIndices(t *testing.T) {
	v := New()
	v.Apply(snapshot(
		Card{Front: "a", Back: "1"},
		Card{Front: "b", Back: "2"},
		Card{Front: "c", Back: "3"},
	))
	require.True(t, v.Next()) // interior index 1

	idx, display := v.CurrIndex(), v.Display()

	require.True(t, v.Next())
	require.True(t, v.Prev())
	assert.Equal(t, idx, v.CurrIndex())
	assert.Equal(t, display, v.Display())

	require.True(t, v.Prev())
	require.True(t, v.Next())
	assert.Equal(t, idx, v.CurrIndex())
	assert.Equal(t, display, v.Display())
}

func TestNavigationNoOpsAtBoundaries(t *testing.T) {
	v := New()
	v.Apply(snapshot(Card{Front: "a", Back: "1"}, Card{Front: "b", Back: "2"}))

	assert.False(t, v.Prev(), "Prev at index 0 must be a no-op")
	assert.Equal(t, 0, v.CurrIndex())

	require.True(t, v.Next())
	assert.False(t, v.CanNext())
	assert.False(t, v.Next(), "Next at the last card must be a no-op")
	assert.Equal(t, 1, v.CurrIndex())
	assert.Equal(t, "b", v.Display())
}

func TestIndexChangeResetsFlip(t *testing.T) {
	v := New()
	v.Apply(snapshot(Card{Front: "2+2", Back: "4"}, Card{Front: "3+3", Back: "6"}))

	// Scenario from the study flow: flip the first card, then navigate.
	require.True(t, v.Flip())
	require.Equal(t, "4", v.Display())

	require.True(t, v.Next())
	assert.Equal(t, 1, v.CurrIndex())
	assert.Equal(t, "3+3", v.Display(), "navigation always lands on the front face")

	// Next again is disabled; nothing moves.
	assert.False(t, v.Next())
	assert.Equal(t, 1, v.CurrIndex())
	assert.Equal(t, "3+3", v.Display())
}

func TestShuffleIsPermutationAndResets(t *testing.T) {
	cards := []Card{
		{Front: "a", Back: "1"},
		{Front: "b", Back: "2"},
		{Front: "c", Back: "3"},
		{Front: "d", Back: "4"},
		{Front: "e", Back: "5"},
	}

	for seed := int64(0); seed < 20; seed++ {
		v := New()
		v.rng = rand.New(rand.NewSource(seed))
		v.Apply(snapshot(cards...))
		require.True(t, v.Next())
		require.True(t, v.Flip())

		before := append([]Card(nil), v.Cards()...)
		require.True(t, v.Shuffle())

		after := v.Cards()
		assert.Len(t, after, len(before))
		assert.ElementsMatch(t, before, after, "shuffle must preserve the card multiset")

		assert.Equal(t, 0, v.CurrIndex())
		assert.Equal(t, after[0].Front, v.Display(), "reset must read the post-shuffle list")
	}
}

func TestShuffleSingleCard(t *testing.T) {
	v := New()
	v.Apply(snapshot(Card{Front: "only", Back: "one"}))
	require.True(t, v.Flip())

	assert.True(t, v.Shuffle())
	assert.Equal(t, 0, v.CurrIndex())
	assert.Equal(t, "only", v.Display())
}

func TestReseedOnNewSnapshot(t *testing.T) {
	v := New()
	v.Apply(snapshot(Card{Front: "a", Back: "1"}, Card{Front: "b", Back: "2"}))
	require.True(t, v.Next())
	require.True(t, v.Flip())

	// A different deck arrives while mounted.
	v.Apply(&Snapshot{
		Name:     "Chemistry",
		Username: "bob",
		Cards:    []Card{{Front: "H2O", Back: "water"}},
	})

	assert.Equal(t, PhaseReady, v.Phase())
	assert.Equal(t, 0, v.CurrIndex())
	assert.Equal(t, "H2O", v.Display())
}

func TestKeyboardMapping(t *testing.T) {
	v := New()
	v.Apply(snapshot(Card{Front: "a", Back: "1"}, Card{Front: "b", Back: "2"}))

	assert.False(t, v.HandleKey(KeyArrowLeft), "left arrow at index 0 is a no-op")
	assert.True(t, v.HandleKey(KeyArrowRight))
	assert.Equal(t, 1, v.CurrIndex())
	assert.False(t, v.HandleKey(KeyArrowRight), "right arrow at the last card is a no-op")
	assert.True(t, v.HandleKey(KeyArrowLeft))
	assert.Equal(t, 0, v.CurrIndex())

	assert.False(t, v.HandleKey("Enter"))
	assert.False(t, v.HandleKey(" "))
	assert.Equal(t, 0, v.CurrIndex())
}

func TestCommandsOutsideReadyAreNoOps(t *testing.T) {
	v := New()

	assert.False(t, v.Next())
	assert.False(t, v.Prev())
	assert.False(t, v.Flip())
	assert.False(t, v.Shuffle())
	assert.False(t, v.HandleKey(KeyArrowRight))

	v.Apply(snapshot())
	assert.False(t, v.Flip())
	assert.False(t, v.Shuffle())
}

func TestIndexAlwaysInBounds(t *testing.T) {
	v := New()
	v.rng = rand.New(rand.NewSource(42))
	v.Apply(snapshot(
		Card{Front: "a", Back: "1"},
		Card{Front: "b", Back: "2"},
		Card{Front: "c", Back: "3"},
	))

	commands := []func() bool{v.Next, v.Next, v.Next, v.Flip, v.Shuffle, v.Prev, v.Prev, v.Prev, v.Shuffle, v.Next}
	for _, cmd := range commands {
		cmd()
		assert.GreaterOrEqual(t, v.CurrIndex(), 0)
		assert.Less(t, v.CurrIndex(), len(v.Cards()))
		assert.NotEmpty(t, v.Display())
	}
}

func TestStateSnapshot(t *testing.T) {
	v := New()
	v.Apply(snapshot(Card{Front: "2+2", Back: "4"}, Card{Front: "3+3", Back: "6"}))
	require.True(t, v.Flip())

	state := v.State()
	assert.Equal(t, "ready", state.Phase)
	assert.Equal(t, "Math Basics", state.Name)
	assert.Equal(t, "alice", state.Username)
	assert.Equal(t, 0, state.CurrIndex)
	assert.Equal(t, 2, state.Total)
	assert.Equal(t, "4", state.Display)
	assert.True(t, state.Flipped)
	assert.True(t, state.CanNext)
	assert.False(t, state.CanPrev)
}
