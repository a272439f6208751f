package terminal

import (
	"errors"
	"os"
	"path/filepath"
)

// Document is the text being edited and the file it belongs to.
type Document struct {
	// Path is the absolute file path. Empty for scratch buffers.
	Path string

	// Name is the display name.
	Name string

	text     []rune
	modified bool
	// exists is false until the file has been read from or written to disk.
	exists bool
}

// NewDocument creates a document holding content for path.
func NewDocument(path, content string) *Document {
	d := &Document{text: []rune(content)}
	d.setPath(path)
	return d
}

// NewScratch creates an empty document with no file.
func NewScratch() *Document {
	return NewDocument("", "")
}

// OpenDocument reads the file at path. A file that does not exist yet
// yields an empty document that is created on the first write.
func OpenDocument(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDocument(abs, ""), nil
		}
		return nil, &FileError{Op: "open", Path: abs, Err: err}
	}

	d := NewDocument(abs, string(data))
	d.exists = true
	return d, nil
}

func (d *Document) setPath(path string) {
	d.Path = path
	if path == "" {
		d.Name = "[No Name]"
		return
	}
	d.Name = filepath.Base(path)
}

// Text returns the document content.
func (d *Document) Text() string {
	return string(d.text)
}

// Len returns the length in runes.
func (d *Document) Len() int {
	return len(d.text)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	n := 1
	for _, r := range d.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.modified
}

// IsScratch returns true if the document has no file path.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// Exists returns true if the document's file is known to be on disk.
func (d *Document) Exists() bool {
	return d.exists
}

// Insert inserts s at offset and returns the offset just past it.
func (d *Document) Insert(offset int, s string) int {
	offset = d.clamp(offset)
	ins := []rune(s)
	if len(ins) == 0 {
		return offset
	}

	text := make([]rune, 0, len(d.text)+len(ins))
	text = append(text, d.text[:offset]...)
	text = append(text, ins...)
	text = append(text, d.text[offset:]...)
	d.text = text
	d.modified = true
	return offset + len(ins)
}

// Delete removes the runes in [from, to).
func (d *Document) Delete(from, to int) {
	from, to = d.clamp(from), d.clamp(to)
	if from >= to {
		return
	}
	d.text = append(d.text[:from], d.text[to:]...)
	d.modified = true
}

// SetText replaces the whole content.
func (d *Document) SetText(s string) {
	d.text = []rune(s)
	d.modified = true
}

func (d *Document) clamp(offset int) int {
	return min(max(offset, 0), len(d.text))
}

// Save writes the document to its file.
func (d *Document) Save() error {
	if d.IsScratch() {
		return ErrNoFileName
	}
	return d.write(d.Path)
}

// SaveAs writes the document to path and makes path the document's file.
func (d *Document) SaveAs(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}
	if err := d.write(abs); err != nil {
		return err
	}
	d.setPath(abs)
	return nil
}

func (d *Document) write(path string) error {
	if err := os.WriteFile(path, []byte(string(d.text)), 0o644); err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}
	d.modified = false
	d.exists = true
	return nil
}

// Reload replaces the content with the file on disk and clears the
// modified flag.
func (d *Document) Reload() error {
	if d.IsScratch() {
		return ErrNoFileName
	}
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return &FileError{Op: "reload", Path: d.Path, Err: err}
	}
	d.text = []rune(string(data))
	d.modified = false
	d.exists = true
	return nil
}

// SameAsDisk returns true if data matches the document content.
func (d *Document) SameAsDisk(data []byte) bool {
	return string(data) == string(d.text)
}
