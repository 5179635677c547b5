package models

// Note is a user-owned title/content record embedded in its owning
// Identity's collection.
//
// NoteID is supplied by the caller. Its uniqueness within a collection is the
// caller's responsibility; the store accepts duplicates.
type Note struct {
	NoteID  string `json:"noteId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteMutation is the request body accepted by the note mutation endpoints.
//
// ExternalID is accepted for compatibility with existing clients only. The
// target identity is always the one resolved from the session; a non-empty
// ExternalID that disagrees with it is rejected.
type NoteMutation struct {
	ExternalID string `json:"googleId"`
	NoteID     string `json:"noteId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// Note extracts the note carried by the mutation.
func (m NoteMutation) Note() Note {
	return Note{
		NoteID:  m.NoteID,
		Title:   m.Title,
		Content: m.Content,
	}
}
