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
	"sort"
	"strings"
)

// readerCacheSize bounds the total number of bytes of decompressed
// parts kept in memory.  This is enough for the XML parts of a large
// presentation, so it mostly avoids re-inflating the same slide over
// and over, while large media parts cannot crowd out everything else.
const readerCacheSize = 4 << 20

// Reader represents a .pptx package open for reading.
type Reader struct {
	zip    *zip.Reader
	closer io.Closer

	files map[string]*zip.File
	types *ContentTypes
	cache *lruCache
}

// Open opens the named .pptx file for reading.
// The returned Reader must be closed by the caller.
func Open(name string) (*Reader, error) {
	zr, err := zip.OpenReader(name)
	if err != nil {
		return nil, err
	}
	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// NewReader reads a .pptx package from r with the given size in bytes.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{
		zip:   zr,
		files: make(map[string]*zip.File, len(zr.File)),
		cache: newCache(readerCacheSize),
	}
	for _, f := range zr.File {
		name := strings.TrimPrefix(f.Name, "/")
		r.files[name] = f
	}

	data, err := r.Part(contentTypesName)
	if err != nil {
		return nil, &MalformedFileError{Part: contentTypesName, Err: err}
	}
	r.types, err = decodeContentTypes(data)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Close closes the underlying file, if the Reader was created using Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// HasPart returns true if the package contains a part with the given name.
func (r *Reader) HasPart(name string) bool {
	_, ok := r.files[strings.TrimPrefix(name, "/")]
	return ok
}

// Parts returns the names of all parts in the package, sorted.
func (r *Reader) Parts() []string {
	res := make([]string, 0, len(r.files))
	for name := range r.files {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Part returns the payload of the named part.
// The returned slice is shared with the internal cache and must not be
// modified by the caller.
func (r *Reader) Part(name string) ([]byte, error) {
	name = strings.TrimPrefix(name, "/")
	if data, ok := r.cache.Get(name); ok {
		return data, nil
	}

	f, ok := r.files[name]
	if !ok {
		return nil, ErrNoPart
	}
	fd, err := f.Open()
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(fd)
	if err != nil {
		fd.Close()
		return nil, err
	}
	err = fd.Close()
	if err != nil {
		return nil, err
	}

	r.cache.Put(name, data)
	return data, nil
}

// ContentType returns the content type of the named part, or "" if the
// part has no content type.
func (r *Reader) ContentType(name string) string {
	return r.types.TypeOf(name)
}

// PartsByType returns the names of all parts with the given content type,
// sorted.
func (r *Reader) PartsByType(contentType string) []string {
	var res []string
	for name := range r.files {
		if r.types.TypeOf(name) == contentType {
			res = append(res, name)
		}
	}
	sort.Strings(res)
	return res
}

// Relationships returns the relationships of the named source part.
// Use source "" for the package-level relationships.  A source part
// without a relationship part yields an empty relationship set.
func (r *Reader) Relationships(source string) (*Relationships, error) {
	source = strings.TrimPrefix(source, "/")
	relsName := relsPartName(source)
	if !r.HasPart(relsName) {
		return NewRelationships(source), nil
	}
	data, err := r.Part(relsName)
	if err != nil {
		return nil, err
	}
	return decodeRelationships(source, data)
}
