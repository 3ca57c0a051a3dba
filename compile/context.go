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

package compile

import (
	"seehuhn.de/go/fontc/model"
)

// Context gives access to the font and master being compiled, and to the
// diagnostics log of the compilation.  The font and master are only read.
type Context struct {
	Font   *model.Font
	Master *model.Master
	Log    *Log

	version string // cached result of Version, to log truncation once
}

// NewContext returns a context with an empty log.
func NewContext(font *model.Font, master *model.Master) *Context {
	return &Context{
		Font:   font,
		Master: master,
		Log:    &Log{},
	}
}
