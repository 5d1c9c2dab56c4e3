package screens

import (
	"fmt"
	"slices"
	"sync"

	"sakura/internal/core"
	"sakura/internal/log"
)

// NotesBoard keeps free-text notes, newest first.
type NotesBoard struct {
	mu     sync.Mutex
	notes  []core.Note
	ids    IDGenerator
	today  func() core.Date
	logger *log.Logger
}

// Add creates a note dated today.
func (b *NotesBoard) Add(form NoteForm) (core.Note, error) {
	title, content, category, err := form.parse()
	if err != nil {
		logRejected(b.logger, "Note rejected", err)
		return core.Note{}, err
	}
	now := b.today()
	n := core.Note{
		ID:        b.ids.NewID(),
		Title:     title,
		Content:   content,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := n.Validate(); err != nil {
		return core.Note{}, err
	}

	b.mu.Lock()
	b.notes = append([]core.Note{n}, b.notes...)
	b.mu.Unlock()

	b.logger.Info("Note created",
		log.FieldOperation, log.OpCreate,
		log.FieldEntryID, n.ID,
		log.FieldCategory, string(n.Category))
	return n, nil
}

// ToggleFavorite flips the favorite flag of the note with id.
func (b *NotesBoard) ToggleFavorite(id core.ID) (core.Note, error) {
	n, err := b.update(id, func(n *core.Note) error {
		n.Favorite = !n.Favorite
		return nil
	})
	if err != nil {
		return core.Note{}, fmt.Errorf("toggle favorite: %w", err)
	}
	b.logger.Info("Note favorite toggled",
		log.FieldOperation, log.OpToggle,
		log.FieldEntryID, id,
		"favorite", n.Favorite)
	return n, nil
}

// Edit replaces title, content and category of the note with id. The
// favorite flag and creation date are kept.
func (b *NotesBoard) Edit(id core.ID, form NoteForm) (core.Note, error) {
	title, content, category, err := form.parse()
	if err != nil {
		return core.Note{}, err
	}
	n, err := b.update(id, func(n *core.Note) error {
		n.Title, n.Content, n.Category = title, content, category
		return n.Validate()
	})
	if err != nil {
		return core.Note{}, fmt.Errorf("edit note: %w", err)
	}
	b.logger.Info("Note edited",
		log.FieldOperation, log.OpUpdate,
		log.FieldEntryID, id,
		log.FieldCategory, string(n.Category))
	return n, nil
}

func (b *NotesBoard) update(id core.ID, mutate func(n *core.Note) error) (core.Note, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return core.Note{}, fmt.Errorf("note %q: %w", id, ErrNotFound)
	}
	n := b.notes[i]
	if err := mutate(&n); err != nil {
		return core.Note{}, err
	}
	n.UpdatedAt = b.today()

	// Copy on write so earlier snapshots stay untouched.
	next := slices.Clone(b.notes)
	next[i] = n
	b.notes = next
	return n, nil
}

func (b *NotesBoard) Delete(id core.ID) error {
	b.mu.Lock()
	i := b.indexOf(id)
	if i >= 0 {
		b.notes = slices.Delete(slices.Clone(b.notes), i, i+1)
	}
	b.mu.Unlock()

	if i < 0 {
		return fmt.Errorf("delete note %q: %w", id, ErrNotFound)
	}
	b.logger.Info("Note deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldEntryID, id)
	return nil
}

// Notes returns a snapshot, newest first.
func (b *NotesBoard) Notes() []core.Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.notes)
}

// Favorites returns the favorite notes in board order.
func (b *NotesBoard) Favorites() []core.Note {
	var out []core.Note
	for _, n := range b.Notes() {
		if n.Favorite {
			out = append(out, n)
		}
	}
	return out
}

func (b *NotesBoard) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.notes)
}

func (b *NotesBoard) indexOf(id core.ID) int {
	return slices.IndexFunc(b.notes, func(n core.Note) bool { return n.ID == id })
}
