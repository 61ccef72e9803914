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

package shapes

import (
	"strings"

	"seehuhn.de/go/pptx/oxml"
)

// TextFrame is the text container of an auto shape or text box.
type TextFrame struct {
	body *oxml.CT_TextBody
}

// Text returns the text of the frame.  Paragraphs are joined with
// newline characters.
func (f *TextFrame) Text() string {
	parts := make([]string, len(f.body.P))
	for i := range f.body.P {
		parts[i] = f.body.P[i].Text()
	}
	return strings.Join(parts, "\n")
}

// SetText replaces the contents of the frame with the given text.
// Newline characters in text start new paragraphs.
func (f *TextFrame) SetText(text string) {
	lines := strings.Split(text, "\n")
	paras := make([]oxml.CT_TextParagraph, len(lines))
	for i, line := range lines {
		if line != "" {
			paras[i].R = []oxml.CT_RegularTextRun{{T: line}}
		}
	}
	f.body.P = paras
}

// Paragraphs returns the paragraphs of the frame.
func (f *TextFrame) Paragraphs() []*Paragraph {
	res := make([]*Paragraph, len(f.body.P))
	for i := range f.body.P {
		res[i] = &Paragraph{p: &f.body.P[i]}
	}
	return res
}

// AddParagraph appends an empty paragraph to the frame.
func (f *TextFrame) AddParagraph() *Paragraph {
	f.body.P = append(f.body.P, oxml.CT_TextParagraph{})
	return &Paragraph{p: &f.body.P[len(f.body.P)-1]}
}

// Paragraph is a single paragraph in a text frame.
type Paragraph struct {
	p *oxml.CT_TextParagraph
}

// Text returns the concatenated text of all runs in the paragraph.
func (p *Paragraph) Text() string {
	return p.p.Text()
}

// SetText replaces the runs of the paragraph with a single run
// containing the given text.
func (p *Paragraph) SetText(text string) {
	if text == "" {
		p.p.R = nil
		return
	}
	p.p.R = []oxml.CT_RegularTextRun{{T: text}}
}
