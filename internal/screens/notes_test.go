package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakura/internal/core"
	"sakura/internal/log"
)

func newBoard(today *core.Date) *NotesBoard {
	return &NotesBoard{
		ids:    &seqIDs{},
		today:  func() core.Date { return *today },
		logger: log.Discard(),
	}
}

func TestNotesAddPrepends(t *testing.T) {
	today := core.NewDate(2024, 1, 10)
	b := newBoard(&today)

	first, err := b.Add(NoteForm{Title: "Japan", Content: "Save for the trip", Category: "dream"})
	require.NoError(t, err)
	second, err := b.Add(NoteForm{Title: "Budget", Content: "Cook at home", Category: "goal"})
	require.NoError(t, err)

	notes := b.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID)
	assert.Equal(t, first.ID, notes[1].ID)
	assert.Equal(t, today, first.CreatedAt)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
	assert.False(t, first.Favorite)
	assert.Equal(t, "from-purple-400 to-violet-400", second.Color())
}

func TestNotesAddValidation(t *testing.T) {
	today := core.NewDate(2024, 1, 10)
	b := newBoard(&today)

	_, err := b.Add(NoteForm{Title: "", Content: "x", Category: "dream"})
	assertField(t, err, "title", core.ErrRequired)
	_, err = b.Add(NoteForm{Title: "x", Content: " ", Category: "dream"})
	assertField(t, err, "content", core.ErrRequired)
	_, err = b.Add(NoteForm{Title: "x", Content: "y", Category: "wish"})
	assertField(t, err, "category", core.ErrUnknownCategory)

	assert.Zero(t, b.Len())
}

func TestNotesToggleFavorite(t *testing.T) {
	today := core.NewDate(2024, 1, 10)
	b := newBoard(&today)
	n, err := b.Add(NoteForm{Title: "Idea", Content: "Compare serums", Category: "idea"})
	require.NoError(t, err)
	before := b.Notes()

	today = core.NewDate(2024, 1, 12)
	toggled, err := b.ToggleFavorite(n.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Favorite)
	assert.Equal(t, today, toggled.UpdatedAt)
	assert.Equal(t, n.CreatedAt, toggled.CreatedAt)

	assert.False(t, before[0].Favorite, "earlier snapshot must not change")
	assert.Len(t, b.Favorites(), 1)

	_, err = b.ToggleFavorite(n.ID)
	require.NoError(t, err)
	assert.Empty(t, b.Favorites())

	_, err = b.ToggleFavorite("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotesEditRecolors(t *testing.T) {
	today := core.NewDate(2024, 1, 10)
	b := newBoard(&today)
	n, err := b.Add(NoteForm{Title: "Trip", Content: "Kyoto", Category: "dream"})
	require.NoError(t, err)
	_, err = b.ToggleFavorite(n.ID)
	require.NoError(t, err)

	today = core.NewDate(2024, 1, 20)
	edited, err := b.Edit(n.ID, NoteForm{Title: "Trip budget", Content: "Kyoto 1200", Category: "reminder"})
	require.NoError(t, err)

	assert.Equal(t, "Trip budget", edited.Title)
	assert.Equal(t, core.Reminder, edited.Category)
	assert.Equal(t, core.Reminder.Info().Color, edited.Color())
	assert.True(t, edited.Favorite)
	assert.Equal(t, core.NewDate(2024, 1, 10), edited.CreatedAt)
	assert.Equal(t, today, edited.UpdatedAt)

	_, err = b.Edit(n.ID, NoteForm{Title: "", Content: "x", Category: "dream"})
	assertField(t, err, "title", core.ErrRequired)
	_, err = b.Edit("missing", NoteForm{Title: "a", Content: "b", Category: "idea"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotesDelete(t *testing.T) {
	today := core.NewDate(2024, 1, 10)
	b := newBoard(&today)
	n, err := b.Add(NoteForm{Title: "a", Content: "b", Category: "idea"})
	require.NoError(t, err)
	snap := b.Notes()

	require.NoError(t, b.Delete(n.ID))
	assert.Zero(t, b.Len())
	assert.Len(t, snap, 1)
	assert.ErrorIs(t, b.Delete(n.ID), ErrNotFound)
}
