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

// Package presentation provides high-level access to PowerPoint
// presentations.
//
// A Presentation is created from scratch with New, or loaded from an
// existing file with Open.  Slides are added with AddSlide, and the
// result is stored with Write or WriteFile.  Parts which the library
// does not model, like slide masters and themes, are carried through
// unchanged when a file is loaded and saved again.
package presentation

import (
	"fmt"
	"io"
	"path"
	"strings"

	"seehuhn.de/go/pptx"
	"seehuhn.de/go/pptx/measure"
	"seehuhn.de/go/pptx/oxml"
)

const (
	presPartName = "ppt/presentation.xml"
	corePartName = "docProps/core.xml"
	appPartName  = "docProps/app.xml"
)

// part is a package part carried through without interpretation.
type part struct {
	contentType string
	data        []byte
}

// Presentation is an in-memory PowerPoint presentation.
type Presentation struct {
	doc    *oxml.CT_Presentation
	core   *oxml.CoreProperties
	app    *oxml.ExtendedProperties
	slides []*Slide

	// masters holds the part names of the slide masters, in the order
	// of the sldMasterIdLst entries.
	masters []string

	// extra holds the parts not modelled by the library: slide masters,
	// layouts, themes, media files and their relationship parts.
	extra map[string]part

	// presExtra holds the presentation-level relationships not consumed
	// by the slide master and slide lists, e.g. the presProps, viewProps
	// and notesMaster relationships.  Their IDs must stay fixed, since
	// carried-through children of p:presentation may refer to them.
	presExtra []pptx.Relationship
}

// New creates a new presentation with a single blank slide master and
// layout, and no slides.  The slide size is 10 by 7.5 inches.
func New() *Presentation {
	p := &Presentation{
		doc: &oxml.CT_Presentation{
			SldMasterIdLst: &oxml.CT_SlideMasterIdList{
				SldMasterId: []oxml.CT_SlideMasterIdListEntry{
					{ID: 2147483648, RID: "rId1"},
				},
			},
			SldIdLst: &oxml.CT_SlideIdList{},
			SldSz: &oxml.CT_SlideSize{
				CX:   oxml.ST_PositiveCoordinate(Screen4x3.Width.Emu()),
				CY:   oxml.ST_PositiveCoordinate(Screen4x3.Height.Emu()),
				Type: Screen4x3.Type,
			},
			NotesSz: &oxml.CT_PositiveSize2D{
				CX: 6858000,
				CY: 9144000,
			},
		},
		core:    &oxml.CoreProperties{},
		app:     &oxml.ExtendedProperties{},
		masters: []string{"ppt/slideMasters/slideMaster1.xml"},
		extra:   make(map[string]part),
	}

	p.extra["ppt/slideMasters/slideMaster1.xml"] = part{
		contentType: pptx.TypeSlideMaster,
		data:        templatePart("slideMaster1.xml"),
	}
	p.extra["ppt/slideMasters/_rels/slideMaster1.xml.rels"] = part{
		data: templatePart("slideMaster1.xml.rels"),
	}
	p.extra["ppt/slideLayouts/slideLayout1.xml"] = part{
		contentType: pptx.TypeSlideLayout,
		data:        templatePart("slideLayout1.xml"),
	}
	p.extra["ppt/slideLayouts/_rels/slideLayout1.xml.rels"] = part{
		data: templatePart("slideLayout1.xml.rels"),
	}
	p.extra["ppt/theme/theme1.xml"] = part{
		contentType: pptx.TypeTheme,
		data:        templatePart("theme1.xml"),
	}

	return p
}

// Open loads the presentation stored in the named .pptx file.
func Open(fname string) (*Presentation, error) {
	r, err := pptx.Open(fname)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return fromReader(r)
}

// Read loads a presentation from r, where size is the total length of
// the package in bytes.
func Read(r io.ReaderAt, size int64) (*Presentation, error) {
	pr, err := pptx.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return fromReader(pr)
}

func fromReader(r *pptx.Reader) (*Presentation, error) {
	rootRels, err := r.Relationships("")
	if err != nil {
		return nil, err
	}
	docRels := rootRels.ByType(pptx.RelOfficeDocument)
	if len(docRels) == 0 {
		return nil, &pptx.MalformedFileError{
			Part: "_rels/.rels",
			Err:  errNoOfficeDocument,
		}
	}
	presName := rootRels.TargetPart(docRels[0])

	data, err := r.Part(presName)
	if err != nil {
		return nil, err
	}
	doc, err := oxml.DecodePresentation(data)
	if err != nil {
		return nil, &pptx.MalformedFileError{Part: presName, Err: err}
	}
	presRels, err := r.Relationships(presName)
	if err != nil {
		return nil, err
	}

	p := &Presentation{
		doc:   doc,
		core:  &oxml.CoreProperties{},
		app:   &oxml.ExtendedProperties{},
		extra: make(map[string]part),
	}

	handled := map[string]bool{
		"[Content_Types].xml": true,
		"_rels/.rels":         true,
		presName:              true,
		relsName(presName):    true,
	}

	consumed := make(map[string]bool)

	if doc.SldMasterIdLst != nil {
		for _, entry := range doc.SldMasterIdLst.SldMasterId {
			rel, ok := presRels.ByID(entry.RID)
			if !ok {
				return nil, &pptx.MalformedFileError{
					Part: presName,
					Err:  fmt.Errorf("dangling slide master reference %q", entry.RID),
				}
			}
			p.masters = append(p.masters, presRels.TargetPart(rel))
			consumed[entry.RID] = true
		}
	}

	if doc.SldIdLst != nil {
		for _, entry := range doc.SldIdLst.SldId {
			rel, ok := presRels.ByID(entry.RID)
			if !ok {
				return nil, &pptx.MalformedFileError{
					Part: presName,
					Err:  fmt.Errorf("dangling slide reference %q", entry.RID),
				}
			}
			name := presRels.TargetPart(rel)

			data, err := r.Part(name)
			if err != nil {
				return nil, err
			}
			sld, err := oxml.DecodeSlide(data)
			if err != nil {
				return nil, &pptx.MalformedFileError{Part: name, Err: err}
			}
			rels, err := r.Relationships(name)
			if err != nil {
				return nil, err
			}
			p.slides = append(p.slides, &Slide{pres: p, sld: sld, rels: rels})
			consumed[entry.RID] = true
			handled[name] = true
			handled[relsName(name)] = true
		}
	}

	for _, rel := range presRels.All() {
		if !consumed[rel.ID] {
			p.presExtra = append(p.presExtra, rel)
		}
	}

	if r.HasPart(corePartName) {
		data, err := r.Part(corePartName)
		if err != nil {
			return nil, err
		}
		p.core, err = oxml.DecodeCoreProperties(data)
		if err != nil {
			return nil, &pptx.MalformedFileError{Part: corePartName, Err: err}
		}
		handled[corePartName] = true
	}
	if r.HasPart(appPartName) {
		data, err := r.Part(appPartName)
		if err != nil {
			return nil, err
		}
		p.app, err = oxml.DecodeExtendedProperties(data)
		if err != nil {
			return nil, &pptx.MalformedFileError{Part: appPartName, Err: err}
		}
		handled[appPartName] = true
	}

	for _, name := range r.Parts() {
		if handled[name] {
			continue
		}
		data, err := r.Part(name)
		if err != nil {
			return nil, err
		}
		// copy, the reader slice is shared with its cache
		p.extra[name] = part{
			contentType: r.ContentType(name),
			data:        append([]byte(nil), data...),
		}
	}

	return p, nil
}

// CoreProperties returns the document properties of the presentation.
// The returned struct can be modified to change title, author and the
// other metadata fields before saving.
func (p *Presentation) CoreProperties() *oxml.CoreProperties {
	return p.core
}

// SlideWidth returns the width of the slides in the presentation.
func (p *Presentation) SlideWidth() measure.Length {
	if p.doc.SldSz == nil {
		return 0
	}
	return measure.Emu(int64(p.doc.SldSz.CX))
}

// SlideHeight returns the height of the slides in the presentation.
func (p *Presentation) SlideHeight() measure.Length {
	if p.doc.SldSz == nil {
		return 0
	}
	return measure.Emu(int64(p.doc.SldSz.CY))
}

// SetSlideSize changes the slide dimensions of the presentation.
func (p *Presentation) SetSlideSize(size SlideSize) {
	p.doc.SldSz = &oxml.CT_SlideSize{
		CX:   oxml.ST_PositiveCoordinate(size.Width.Emu()),
		CY:   oxml.ST_PositiveCoordinate(size.Height.Emu()),
		Type: size.Type,
	}
}

// Slides returns the slides of the presentation, in presentation order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// AddSlide appends a new, blank slide to the presentation.
func (p *Presentation) AddSlide() *Slide {
	rels := pptx.NewRelationships("")
	if layout := p.defaultLayout(); layout != "" {
		rels.Add(pptx.RelSlideLayout, "../slideLayouts/"+path.Base(layout))
	}

	slide := &Slide{
		pres: p,
		sld:  oxml.NewSlide(),
		rels: rels,
	}
	p.slides = append(p.slides, slide)
	return slide
}

// defaultLayout returns the part name of the first slide layout in the
// package, or "" if there is none.
func (p *Presentation) defaultLayout() string {
	best := ""
	for name := range p.extra {
		if !strings.HasPrefix(name, "ppt/slideLayouts/") ||
			!strings.HasSuffix(name, ".xml") {
			continue
		}
		if best == "" || name < best {
			best = name
		}
	}
	return best
}

// WriteFile stores the presentation in the named .pptx file.
func (p *Presentation) WriteFile(fname string) error {
	w, err := pptx.Create(fname)
	if err != nil {
		return err
	}
	err = p.writeParts(w)
	if err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Write stores the presentation as a .pptx package in w.
func (p *Presentation) Write(w io.Writer) error {
	pw := pptx.NewWriter(w)
	err := p.writeParts(pw)
	if err != nil {
		return err
	}
	return pw.Close()
}

func (p *Presentation) writeParts(w *pptx.Writer) error {
	rootRels := pptx.NewRelationships("")
	rootRels.Add(pptx.RelOfficeDocument, presPartName)
	rootRels.Add(pptx.RelCoreProps, corePartName)
	rootRels.Add(pptx.RelExtendedProps, appPartName)
	w.SetRels("", rootRels)

	// renumber the slide parts and rebuild the presentation
	// relationships, keeping the IDs in the sldMasterIdLst and sldIdLst
	// consistent.  Carried-through relationships keep their original
	// IDs, fresh IDs are allocated past them.
	presRels := pptx.NewRelationships(presPartName)
	for _, rel := range p.presExtra {
		presRels.Put(rel)
	}
	for i, name := range p.masters {
		id := presRels.Add(pptx.RelSlideMaster, relTarget(presPartName, name))
		if p.doc.SldMasterIdLst != nil && i < len(p.doc.SldMasterIdLst.SldMasterId) {
			p.doc.SldMasterIdLst.SldMasterId[i].RID = id
		}
	}

	slideNames := p.slidePartNames()
	sldIdLst := &oxml.CT_SlideIdList{}
	for i, name := range slideNames {
		id := presRels.Add(pptx.RelSlide, relTarget(presPartName, name))
		sldIdLst.SldId = append(sldIdLst.SldId, oxml.CT_SlideIdListEntry{
			ID:  uint32(256 + i),
			RID: id,
		})
	}
	p.doc.SldIdLst = sldIdLst
	w.SetRels(presPartName, presRels)

	data, err := oxml.EncodePresentation(p.doc)
	if err != nil {
		return err
	}
	err = w.AddPart(presPartName, pptx.TypePresentation, data)
	if err != nil {
		return err
	}

	for i, slide := range p.slides {
		data, err := oxml.EncodeSlide(slide.sld)
		if err != nil {
			return err
		}
		err = w.AddPart(slideNames[i], pptx.TypeSlide, data)
		if err != nil {
			return err
		}
		if slide.rels.Len() > 0 {
			w.SetRels(slideNames[i], slide.rels)
		}
	}

	data, err = p.core.Encode()
	if err != nil {
		return err
	}
	err = w.AddPart(corePartName, pptx.TypeCoreProps, data)
	if err != nil {
		return err
	}

	app := *p.app
	if app.Application == "" {
		app.Application = "seehuhn.de/go/pptx"
	}
	app.Slides = len(p.slides)
	data, err = app.Encode()
	if err != nil {
		return err
	}
	err = w.AddPart(appPartName, pptx.TypeExtendedProps, data)
	if err != nil {
		return err
	}

	for name, part := range p.extra {
		contentType := part.contentType
		if strings.HasSuffix(name, ".rels") {
			// covered by the rels extension default
			contentType = ""
		}
		if strings.HasPrefix(name, "ppt/media/") {
			// media parts are covered by extension defaults
			ext := strings.TrimPrefix(path.Ext(name), ".")
			if ext != "" && contentType != "" {
				w.SetDefault(ext, contentType)
				contentType = ""
			}
		}
		err = w.AddPart(name, contentType, part.data)
		if err != nil {
			return err
		}
	}

	return nil
}

// slidePartNames assigns part names to the slides, numbering them in
// presentation order while avoiding names taken by carried-through
// parts.
func (p *Presentation) slidePartNames() []string {
	names := make([]string, len(p.slides))
	n := 1
	for i := range p.slides {
		for {
			name := fmt.Sprintf("ppt/slides/slide%d.xml", n)
			n++
			if _, taken := p.extra[name]; !taken {
				names[i] = name
				break
			}
		}
	}
	return names
}

// relTarget returns the target path for a relationship from the given
// source part to the given part.
func relTarget(source, target string) string {
	dir := path.Dir(source)
	if dir == "." {
		return target
	}
	prefix := dir + "/"
	if strings.HasPrefix(target, prefix) {
		return target[len(prefix):]
	}
	up := ""
	for !strings.HasPrefix(target, prefix) {
		dir = path.Dir(dir)
		up += "../"
		if dir == "." {
			return up + target
		}
		prefix = dir + "/"
	}
	return up + target[len(prefix):]
}

func relsName(source string) string {
	return path.Dir(source) + "/_rels/" + path.Base(source) + ".rels"
}

type presError string

func (e presError) Error() string { return string(e) }

const errNoOfficeDocument presError = "no officeDocument relationship"
