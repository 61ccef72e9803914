// seehuhn.de/go/pptx - a library for reading and writing PowerPoint files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fonts

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

// NotFoundError is returned by Find when no installed font matches the
// requested family and style.
type NotFoundError struct {
	Family string
	Bold   bool
	Italic bool
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no installed font with family=%q bold=%t italic=%t",
		e.Family, e.Bold, e.Italic)
}

type fontKey struct {
	family string // lower case
	bold   bool
	italic bool
}

// Index maps (family, bold, italic) triples to font file paths.
// Family names are matched case-insensitively.  An Index can be used
// from multiple goroutines simultaneously.
type Index struct {
	mu    sync.RWMutex
	files map[fontKey]string
}

// NewIndex returns a new, empty font index.
func NewIndex() *Index {
	return &Index{
		files: make(map[fontKey]string),
	}
}

// Scan adds all font files found in the given directories to the index.
// Directories are searched recursively for files with the extensions
// .ttf and .otf; files which cannot be parsed are skipped.  If the same
// family and style occurs more than once, the file found last wins.
//
// Directories which do not exist are silently ignored.
func (ix *Index) Scan(dirs ...string) {
	for _, dir := range dirs {
		filepath.WalkDir(dir, func(fname string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(fname)) {
			case ".ttf", ".otf":
				ix.Add(fname)
			}
			return nil
		})
	}
}

// Add reads the font file at the given path and adds it to the index,
// replacing any previous entry for the same family and style.
func (ix *Index) Add(fname string) error {
	info, err := ReadFile(fname)
	if err != nil {
		return err
	}

	key := fontKey{
		family: strings.ToLower(info.Family),
		bold:   info.Bold,
		italic: info.Italic,
	}
	ix.mu.Lock()
	ix.files[key] = fname
	ix.mu.Unlock()
	return nil
}

// Find returns the path of the installed font file with the given
// family name and style.  The family name is matched ignoring case.
// If no matching font is installed, an error of type *NotFoundError is
// returned.
func (ix *Index) Find(family string, bold, italic bool) (string, error) {
	key := fontKey{
		family: strings.ToLower(family),
		bold:   bold,
		italic: italic,
	}
	ix.mu.RLock()
	fname, ok := ix.files[key]
	ix.mu.RUnlock()
	if !ok {
		return "", &NotFoundError{Family: family, Bold: bold, Italic: italic}
	}
	return fname, nil
}

// Len returns the number of fonts in the index.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.files)
}

var (
	stdOnce  sync.Once
	stdIndex *Index
)

// Find returns the path of the installed font file with the given
// family name and style.  On first use, the platform font directories
// are scanned; the result is cached for subsequent calls.
func Find(family string, bold, italic bool) (string, error) {
	stdOnce.Do(func() {
		stdIndex = NewIndex()
		stdIndex.Scan(Directories()...)
	})
	return stdIndex.Find(family, bold, italic)
}
