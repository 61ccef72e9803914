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

package pptx

import (
	"archive/zip"
	"io"
	"os"
	"sort"
	"strings"
)

// Writer represents a .pptx package open for writing.
//
// Parts are written to the underlying zip archive as they are added.  The
// content type index and all relationship parts are accumulated in memory
// and written by Close.
type Writer struct {
	zw    *zip.Writer
	types *ContentTypes

	rels    map[string]*Relationships // keyed by source part name
	written map[string]bool

	base      io.Writer
	closeBase bool
	closed    bool
}

// NewWriter prepares a .pptx package for writing to w.
// After all parts have been added, Close must be called to write the
// content type index and the relationship parts.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		zw:      zip.NewWriter(w),
		types:   newContentTypes(),
		rels:    make(map[string]*Relationships),
		written: make(map[string]bool),
		base:    w,
	}
}

// Create creates the named .pptx file and opens it for output.  If a
// previous file with the same name exists, it is overwritten.  After
// writing is complete, Close must be called to finish the package and to
// close the underlying file.
func Create(name string) (*Writer, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	w := NewWriter(fd)
	w.closeBase = true
	return w, nil
}

// SetDefault registers a default content type for a file name extension,
// e.g. "png".  Parts covered by a default need no override entry.
func (w *Writer) SetDefault(ext, contentType string) {
	w.types.SetDefault(ext, contentType)
}

// AddPart writes a part to the package.  If contentType is non-empty, an
// override entry is recorded in the content type index; otherwise the part
// must be covered by an extension default.
func (w *Writer) AddPart(name, contentType string, data []byte) error {
	if w.closed {
		return errWriterClosed
	}
	name = strings.TrimPrefix(name, "/")
	if w.written[name] {
		return ErrPartExists
	}

	if contentType != "" {
		w.types.SetOverride(name, contentType)
	}
	err := w.writeFile(name, data)
	if err != nil {
		return err
	}
	return nil
}

// Rels returns the relationship set of the given source part, creating it
// if necessary.  Use source "" for the package-level relationships.
func (w *Writer) Rels(source string) *Relationships {
	source = strings.TrimPrefix(source, "/")
	rr, ok := w.rels[source]
	if !ok {
		rr = NewRelationships(source)
		w.rels[source] = rr
	}
	return rr
}

// SetRels installs a pre-built relationship set for the given source
// part, replacing any set created earlier.  This keeps relationship IDs
// stable when parts referring to them by ID are copied into the package.
func (w *Writer) SetRels(source string, rr *Relationships) {
	source = strings.TrimPrefix(source, "/")
	w.rels[source] = rr
}

// Close writes the content type index and all non-empty relationship
// parts, and closes the zip archive.  If the Writer was created using
// Create, the underlying file is closed as well.
func (w *Writer) Close() error {
	if w.closed {
		return errWriterClosed
	}
	w.closed = true

	sources := make([]string, 0, len(w.rels))
	for source := range w.rels {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		rr := w.rels[source]
		if rr.Len() == 0 {
			continue
		}
		data, err := rr.Encode()
		if err != nil {
			return err
		}
		err = w.writeFile(relsPartName(source), data)
		if err != nil {
			return err
		}
	}

	data, err := w.types.Encode()
	if err != nil {
		return err
	}
	err = w.writeFile(contentTypesName, data)
	if err != nil {
		return err
	}

	err = w.zw.Close()
	if err != nil {
		return err
	}

	if w.closeBase {
		closer, ok := w.base.(io.Closer)
		if ok {
			return closer.Close()
		}
	}
	return nil
}

func (w *Writer) writeFile(name string, data []byte) error {
	w.written[name] = true
	fd, err := w.zw.Create(name)
	if err != nil {
		return err
	}
	_, err = fd.Write(data)
	return err
}
