// seehuhn.de/go/fontc - compile font sources into OpenType/CFF fonts
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

// Package cff implements an encoder for CFF fonts, as used in the "CFF "
// table of OpenType fonts.
//
// The encoder writes simple (non-CID) fonts with a single Private DICT and
// without subroutines.  Since the font is embedded in an OpenType file, no
// Encoding section is written.
//
// https://adobe-type-tools.github.io/font-tech-notes/pdfs/5176.CFF.pdf
// https://adobe-type-tools.github.io/font-tech-notes/pdfs/5177.Type2.pdf
package cff

import (
	"errors"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
)

// Font stores the information of a CFF font.
type Font struct {
	FontName string

	Version    string
	Notice     string
	Copyright  string
	FullName   string
	FamilyName string
	Weight     string

	IsFixedPitch       bool
	ItalicAngle        float64
	UnderlinePosition  float64
	UnderlineThickness float64

	FontMatrix matrix.Matrix
	FontBBox   funit.Rect16

	Private *Private
	Glyphs  []*Glyph

	// Optimize selects the shortest charstring operators for each
	// sub-path.  If this is false, only rmoveto, rlineto and rrcurveto
	// are used.
	Optimize bool
}

// Private stores the Private DICT of a CFF font.
//
// The blue zone parameters BlueScale, BlueShift, BlueFuzz and ForceBold
// are only written when blue zones are present.
type Private struct {
	BlueValues []float64 // pairs of absolute positions
	OtherBlues []float64
	BlueScale  float64
	BlueShift  int32
	BlueFuzz   int32
	ForceBold  bool

	StdHW     float64
	StdVW     float64
	StemSnapH []float64
	StemSnapV []float64

	DefaultWidthX int32
	NominalWidthX int32
}

// Default values for Top DICT and Private DICT entries.  Entries which
// have their default value are omitted from the DICTs.
const (
	DefaultUnderlinePosition  = -100
	DefaultUnderlineThickness = 50
	DefaultBlueScale          = 0.039625
	DefaultBlueShift          = 7
	DefaultBlueFuzz           = 1
)

var defaultFontMatrix = matrix.Matrix{0.001, 0, 0, 0.001, 0, 0}

// NewPrivate returns a Private DICT with all values set to their defaults.
func NewPrivate() *Private {
	return &Private{
		BlueScale: DefaultBlueScale,
		BlueShift: DefaultBlueShift,
		BlueFuzz:  DefaultBlueFuzz,
	}
}

var (
	errNoGlyphs   = errors.New("cff: font has no glyphs")
	errNoNotdef   = errors.New("cff: first glyph must be .notdef")
	errNoFontName = errors.New("cff: missing font name")
)

// Encode writes the binary form of the font.
func (cff *Font) Encode(w io.Writer) error {
	if cff.FontName == "" {
		return errNoFontName
	}
	numGlyphs := len(cff.Glyphs)
	if numGlyphs == 0 {
		return errNoGlyphs
	}
	if cff.Glyphs[0].Name != ".notdef" {
		return errNoNotdef
	}
	private := cff.Private
	if private == nil {
		private = NewPrivate()
	}

	charStrings := make(cffIndex, numGlyphs)
	for i, g := range cff.Glyphs {
		cs, err := g.encodeCharString(private.DefaultWidthX, private.NominalWidthX, cff.Optimize)
		if err != nil {
			return err
		}
		charStrings[i] = cs
	}

	blobs := make([][]byte, numSections)
	strings := &cffStrings{}
	var err error

	// section 0: Header
	blobs[secHeader] = []byte{
		1, // major
		0, // minor
		4, // hdrSize
		4, // offSize
	}

	// section 1: Name INDEX
	blobs[secNameIndex], err = cffIndex{[]byte(cff.FontName)}.encode()
	if err != nil {
		return err
	}

	// section 2: top dict INDEX
	topDict := cff.makeTopDict()
	// opCharset, opCharStrings and opPrivate are updated below

	// section 3: String INDEX
	// The strings are collected while the DICTs are encoded, the blob
	// is written inside the loop below.

	// section 4: global subr INDEX
	blobs[secGsubrsIndex], err = cffIndex{}.encode()
	if err != nil {
		return err
	}

	// section 5: charset
	glyphNames := make([]int32, numGlyphs)
	for i, g := range cff.Glyphs {
		glyphNames[i] = strings.lookup(g.Name)
	}
	blobs[secCharsets], err = encodeCharset(glyphNames)
	if err != nil {
		return err
	}

	// section 6: CharStrings INDEX
	blobs[secCharStringsIndex], err = charStrings.encode()
	if err != nil {
		return err
	}

	// section 7: Private DICT
	blobs[secPrivateDict] = private.makeDict().encode(strings)

	cumsum := func() []int32 {
		res := make([]int32, numSections+1)
		for i := 0; i < numSections; i++ {
			res[i+1] = res[i] + int32(len(blobs[i]))
		}
		return res
	}

	offs := cumsum()
	for {
		// This loop terminates because the elements of offs are monotonically
		// increasing.

		blobs[secHeader][3] = offsSize(offs[numSections])

		topDict[opCharset] = []any{offs[secCharsets]}
		topDict[opCharStrings] = []any{offs[secCharStringsIndex]}
		topDict[opPrivate] = []any{int32(len(blobs[secPrivateDict])), offs[secPrivateDict]}
		blobs[secTopDictIndex], err = cffIndex{topDict.encode(strings)}.encode()
		if err != nil {
			return err
		}

		blobs[secStringIndex], err = strings.encode()
		if err != nil {
			return err
		}

		newOffs := cumsum()
		done := true
		for i := 0; i < numSections; i++ {
			if newOffs[i] != offs[i] {
				done = false
				break
			}
		}
		if done {
			break
		}
		offs = newOffs
	}

	for i := 0; i < numSections; i++ {
		_, err = w.Write(blobs[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (cff *Font) makeTopDict() cffDict {
	topDict := cffDict{}
	setString := func(op dictOp, s string) {
		if s != "" {
			topDict[op] = []any{s}
		}
	}
	setString(opVersion, cff.Version)
	setString(opNotice, cff.Notice)
	setString(opCopyright, cff.Copyright)
	setString(opFullName, cff.FullName)
	setString(opFamilyName, cff.FamilyName)
	setString(opWeight, cff.Weight)

	if cff.IsFixedPitch {
		topDict[opIsFixedPitch] = []any{true}
	}
	if cff.ItalicAngle != 0 {
		topDict.setNumber(opItalicAngle, cff.ItalicAngle)
	}
	if cff.UnderlinePosition != DefaultUnderlinePosition {
		topDict.setNumber(opUnderlinePosition, cff.UnderlinePosition)
	}
	if cff.UnderlineThickness != DefaultUnderlineThickness {
		topDict.setNumber(opUnderlineThickness, cff.UnderlineThickness)
	}

	fm := cff.FontMatrix
	if fm == (matrix.Matrix{}) {
		fm = defaultFontMatrix
	}
	for i, xi := range fm {
		if math.Abs(xi-defaultFontMatrix[i]) > 1e-9 {
			args := make([]any, 6)
			for j, xj := range fm {
				args[j] = xj
			}
			topDict[opFontMatrix] = args
			break
		}
	}

	bbox := cff.FontBBox
	topDict[opFontBBox] = []any{
		int32(bbox.LLx), int32(bbox.LLy), int32(bbox.URx), int32(bbox.URy),
	}
	return topDict
}

func (p *Private) makeDict() cffDict {
	privateDict := cffDict{}

	if len(p.BlueValues) > 0 || len(p.OtherBlues) > 0 {
		if len(p.BlueValues) > 0 {
			privateDict.setDelta(opBlueValues, p.BlueValues)
		}
		if len(p.OtherBlues) > 0 {
			privateDict.setDelta(opOtherBlues, p.OtherBlues)
		}
		if p.BlueScale != DefaultBlueScale {
			privateDict.setNumber(opBlueScale, p.BlueScale)
		}
		if p.BlueShift != DefaultBlueShift {
			privateDict.setInt(opBlueShift, p.BlueShift)
		}
		if p.BlueFuzz != DefaultBlueFuzz {
			privateDict.setInt(opBlueFuzz, p.BlueFuzz)
		}
		if p.ForceBold {
			privateDict[opForceBold] = []any{true}
		}
	}

	if p.StdHW != 0 {
		privateDict.setNumber(opStdHW, p.StdHW)
	}
	if p.StdVW != 0 {
		privateDict.setNumber(opStdVW, p.StdVW)
	}
	if len(p.StemSnapH) > 0 {
		privateDict.setDelta(opStemSnapH, p.StemSnapH)
	}
	if len(p.StemSnapV) > 0 {
		privateDict.setDelta(opStemSnapV, p.StemSnapV)
	}

	if p.DefaultWidthX != 0 {
		privateDict.setInt(opDefaultWidthX, p.DefaultWidthX)
	}
	if p.NominalWidthX != 0 {
		privateDict.setInt(opNominalWidthX, p.NominalWidthX)
	}
	return privateDict
}

func offsSize(i int32) byte {
	switch {
	case i < 1<<8:
		return 1
	case i < 1<<16:
		return 2
	case i < 1<<24:
		return 3
	default:
		return 4
	}
}

const (
	secHeader = iota
	secNameIndex
	secTopDictIndex
	secStringIndex
	secGsubrsIndex
	secCharsets
	secCharStringsIndex
	secPrivateDict
	numSections
)
