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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"seehuhn.de/go/fontc/compile"
)

// reporter prints compiler diagnostics, one per line.
type reporter struct {
	w        io.Writer
	errorC   *color.Color
	warningC *color.Color
}

func newReporter(w io.Writer) *reporter {
	r := &reporter{
		w:        w,
		errorC:   color.New(color.FgRed, color.Bold),
		warningC: color.New(color.FgYellow, color.Bold),
	}
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		r.errorC.DisableColor()
		r.warningC.DisableColor()
	}
	return r
}

func (r *reporter) report(master string, log *compile.Log) {
	for _, e := range log.Entries {
		c := r.warningC
		if e.Severity == compile.SeverityError {
			c = r.errorC
		}
		fmt.Fprintf(r.w, "%s: %s %s\n", master, c.Sprint(e.Severity.String()+":"), e.Message())
	}
}
