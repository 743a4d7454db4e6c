package loam

// NoteMetadata is the optional frontmatter of a note file.
type NoteMetadata struct {
	ID    string   `json:"id" mapstructure:"id"`
	Title string   `json:"title" mapstructure:"title"`
	Tags  []string `json:"tags" mapstructure:"tags"`
}
