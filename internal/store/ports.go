package store

import "sakura/internal/core"

// Ports between screen controllers and the containers holding their entries.
type (
	EntryWriter[E core.Entry] interface {
		Append(e E) error
		// Prepend inserts e so that it is listed first.
		Prepend(e E) error
	}

	EntryDeleter interface {
		// Delete removes the entry with id and reports whether it existed.
		Delete(id core.ID) bool
	}

	// EntryLister returns an immutable snapshot in display order.
	EntryLister[E core.Entry] interface {
		List() []E
		Len() int
	}

	Entries[E core.Entry] interface {
		EntryWriter[E]
		EntryDeleter
		EntryLister[E]
	}
)
