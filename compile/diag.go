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
	"fmt"
	"strings"
)

// Severity distinguishes fatal from non-fatal diagnostics.
type Severity int

// These are the severities used in a [Log].
const (
	// SeverityError marks a defect which makes the compiled font incorrect.
	SeverityError Severity = iota + 1

	// SeverityWarning marks a lossy but safe normalization of the data.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MessageID identifies the kind of a diagnostic, and selects its message
// template.
type MessageID int

// These are the diagnostics which can be produced by the compiler.
const (
	DuplicateEncoding MessageID = iota + 1
	DuplicateGlyphs
	NegativeWidth
	AttrTruncated
	MissingHmtx
	GlyphRenamed
	InvalidPath
)

var templates = map[MessageID]string{
	DuplicateEncoding: "U+{unicode} in glyph '{name}' is already mapped to '{oldName}'",
	DuplicateGlyphs:   "Glyph names '{duplicates}' appear multiple times in the font",
	NegativeWidth:     "Glyph '{name}' has negative width '{width}'",
	AttrTruncated:     "'{attr}' attribute was truncated to '{result}'",
	MissingHmtx:       "Missing 'hmtx' table when computing '{target}'",
	GlyphRenamed:      "Glyph name '{name}' was changed to '{result}'",
	InvalidPath:       "Path {path} of glyph '{name}' was skipped: {reason}",
}

// Template returns the message template for the diagnostic.  Field
// names are enclosed in curly braces.
func (id MessageID) Template() string {
	if t, ok := templates[id]; ok {
		return t
	}
	return fmt.Sprintf("MessageID(%d)", int(id))
}

// Fields holds the named values of a diagnostic.
type Fields map[string]any

// Entry is a single diagnostic.
type Entry struct {
	Severity Severity
	ID       MessageID
	Fields   Fields
}

// Message returns the message template with all fields filled in.
func (e Entry) Message() string {
	tmpl := e.ID.Template()

	b := &strings.Builder{}
	for {
		start := strings.IndexByte(tmpl, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(tmpl[start:], '}')
		if end < 0 {
			break
		}
		end += start
		b.WriteString(tmpl[:start])
		key := tmpl[start+1 : end]
		if val, ok := e.Fields[key]; ok {
			b.WriteString(formatField(val))
		} else {
			b.WriteString(tmpl[start : end+1])
		}
		tmpl = tmpl[end+1:]
	}
	b.WriteString(tmpl)
	return b.String()
}

func (e Entry) String() string {
	return e.Severity.String() + ": " + e.Message()
}

func formatField(val any) string {
	switch val := val.(type) {
	case []string:
		return strings.Join(val, "', '")
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// Log accumulates the diagnostics of one compilation.
// The zero value is an empty log, ready to use.
type Log struct {
	Entries []Entry
}

// Error appends an error entry to the log.
func (l *Log) Error(id MessageID, fields Fields) {
	l.add(Entry{Severity: SeverityError, ID: id, Fields: fields})
}

// Warning appends a warning entry to the log.
func (l *Log) Warning(id MessageID, fields Fields) {
	l.add(Entry{Severity: SeverityWarning, ID: id, Fields: fields})
}

func (l *Log) add(e Entry) {
	tracer().Debugf("%s", e)
	l.Entries = append(l.Entries, e)
}

// Errors returns all error entries of the log.
func (l *Log) Errors() []Entry {
	return l.filter(SeverityError)
}

// Warnings returns all warning entries of the log.
func (l *Log) Warnings() []Entry {
	return l.filter(SeverityWarning)
}

func (l *Log) filter(s Severity) []Entry {
	var res []Entry
	for _, e := range l.Entries {
		if e.Severity == s {
			res = append(res, e)
		}
	}
	return res
}

// HasErrors reports whether the log contains at least one error entry.
func (l *Log) HasErrors() bool {
	for _, e := range l.Entries {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
