package domain

import "time"

type SuperType string

const (
	SuperLink     SuperType = "SUPER_LINK"
	SuperRichText SuperType = "SUPER_RICH_TEXT"
)

type NoteType string

const (
	NoteHighlight  NoteType = "HIGHLIGHT"
	NoteAnnotation NoteType = "ANNOTATION"
)

// Property is one front-matter entry of a note. Values holds one element for
// single-valued keys.
type Property struct {
	Key    string
	Values []string
	Multi  bool
}

// Value returns the property value as a string or a string slice.
func (p Property) Value() any {
	if p.Multi {
		return p.Values
	}
	if len(p.Values) == 0 {
		return ""
	}
	return p.Values[0]
}

// NoteContent is the fetched representation of a sync task. An empty ID
// means the note was removed remotely.
type NoteContent struct {
	ID         string
	Title      string
	SuperType  SuperType
	NoteType   NoteType
	Properties []Property
	Text       string
	Tags       []string

	RelatedContentTitle     string
	RelatedContentSuperType SuperType
}

// Exists reports whether the remote still holds the note.
func (n *NoteContent) Exists() bool {
	return n != nil && n.ID != ""
}

// AnchoredToLink reports whether the note is a highlight or annotation that
// belongs next to the link it was taken from.
func (n *NoteContent) AnchoredToLink() bool {
	if n.SuperType != SuperRichText {
		return false
	}
	if n.NoteType != NoteHighlight && n.NoteType != NoteAnnotation {
		return false
	}
	return n.RelatedContentTitle != "" && n.RelatedContentSuperType != ""
}

// PropertyMap flattens the property list. Later keys overwrite earlier ones.
func (n *NoteContent) PropertyMap() map[string]any {
	m := make(map[string]any, len(n.Properties))
	for _, p := range n.Properties {
		m[p.Key] = p.Value()
	}
	return m
}

// SyncedNote is the ledger entry of one materialized note.
type SyncedNote struct {
	TaskID    string    `db:"task_id"`
	NoteID    string    `db:"note_id"`
	Title     string    `db:"title"`
	SuperType SuperType `db:"super_type"`
	Path      string    `db:"path"`
	Tags      []string  `db:"-"`
	SyncedAt  time.Time `db:"synced_at"`
}
