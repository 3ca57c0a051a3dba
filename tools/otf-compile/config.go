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
	"time"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/fontc/model"
)

// fontConfig is the TOML font description.  All fields are optional;
// fields which are present override the values read from the source font.
type fontConfig struct {
	FamilyName      *string    `toml:"familyName"`
	Copyright       *string    `toml:"copyright"`
	Designer        *string    `toml:"designer"`
	DesignerURL     *string    `toml:"designerURL"`
	Manufacturer    *string    `toml:"manufacturer"`
	ManufacturerURL *string    `toml:"manufacturerURL"`
	UnitsPerEm      *int       `toml:"unitsPerEm"`
	VersionMajor    *int       `toml:"versionMajor"`
	VersionMinor    *int       `toml:"versionMinor"`
	Date            *time.Time `toml:"date"`
	SelectedMaster  *string    `toml:"selectedMaster"`

	Masters []masterConfig `toml:"masters"`
}

type masterConfig struct {
	Name        string   `toml:"name"`
	Ascender    *float64 `toml:"ascender"`
	Descender   *float64 `toml:"descender"`
	CapHeight   *float64 `toml:"capHeight"`
	XHeight     *float64 `toml:"xHeight"`
	ItalicAngle *float64 `toml:"italicAngle"`

	AlignmentZones []zoneConfig `toml:"alignmentZones"`
	HStems         []float64    `toml:"hStems"`
	VStems         []float64    `toml:"vStems"`
}

type zoneConfig struct {
	Position float64 `toml:"position"`
	Size     float64 `toml:"size"`
}

func loadConfig(fname string) (*fontConfig, error) {
	cfg := &fontConfig{}
	meta, err := toml.DecodeFile(fname, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", fname, undecoded[0].String())
	}
	return cfg, nil
}

// apply changes the font according to the configuration.
//
// A master which is not yet present in the font is added.  The glyphs of
// a new master are copies of the glyphs of the first existing master.
func (cfg *fontConfig) apply(font *model.Font) error {
	setString(&font.FamilyName, cfg.FamilyName)
	setString(&font.Copyright, cfg.Copyright)
	setString(&font.Designer, cfg.Designer)
	setString(&font.DesignerURL, cfg.DesignerURL)
	setString(&font.Manufacturer, cfg.Manufacturer)
	setString(&font.ManufacturerURL, cfg.ManufacturerURL)
	if cfg.UnitsPerEm != nil {
		if *cfg.UnitsPerEm < 16 || *cfg.UnitsPerEm > 16384 {
			return fmt.Errorf("invalid unitsPerEm %d", *cfg.UnitsPerEm)
		}
		font.UnitsPerEm = *cfg.UnitsPerEm
	}
	if cfg.VersionMajor != nil {
		font.VersionMajor = *cfg.VersionMajor
	}
	if cfg.VersionMinor != nil {
		font.VersionMinor = *cfg.VersionMinor
	}
	if cfg.Date != nil {
		font.Date = cfg.Date.UTC()
	}

	for i, mc := range cfg.Masters {
		if mc.Name == "" {
			return fmt.Errorf("master %d has no name", i+1)
		}
		m := font.MasterForName(mc.Name)
		if m == nil {
			m = addMaster(font, mc.Name)
		}
		mc.applyTo(m)
	}

	if cfg.SelectedMaster != nil {
		if font.MasterForName(*cfg.SelectedMaster) == nil {
			return fmt.Errorf("selected master %q not found", *cfg.SelectedMaster)
		}
		font.SelectedMasterName = *cfg.SelectedMaster
	}
	return nil
}

func (mc *masterConfig) applyTo(m *model.Master) {
	setFloat(&m.Ascender, mc.Ascender)
	setFloat(&m.Descender, mc.Descender)
	setFloat(&m.CapHeight, mc.CapHeight)
	setFloat(&m.XHeight, mc.XHeight)
	setFloat(&m.ItalicAngle, mc.ItalicAngle)
	if mc.AlignmentZones != nil {
		m.AlignmentZones = m.AlignmentZones[:0]
		for _, z := range mc.AlignmentZones {
			m.AlignmentZones = append(m.AlignmentZones, model.AlignmentZone{
				Position: z.Position,
				Size:     z.Size,
			})
		}
	}
	if mc.HStems != nil {
		m.HStems = mc.HStems
	}
	if mc.VStems != nil {
		m.VStems = mc.VStems
	}
}

// addMaster adds a new master to the font.  Metrics and glyph layers are
// copied from the first master, if there is one.
func addMaster(font *model.Font, name string) *model.Master {
	var m *model.Master
	if len(font.Masters) == 0 {
		m = model.NewMaster(name)
	} else {
		src := font.Masters[0]
		c := *src
		c.Name = name
		c.AlignmentZones = append([]model.AlignmentZone(nil), src.AlignmentZones...)
		c.HStems = append([]float64(nil), src.HStems...)
		c.VStems = append([]float64(nil), src.VStems...)
		m = &c

		for _, g := range font.Glyphs {
			l := g.LayerForMaster(src)
			g.Layers = append(g.Layers, &model.Layer{
				MasterName: name,
				Width:      l.Width,
				Height:     l.Height,
				Paths:      l.Paths,
			})
		}
	}
	font.Masters = append(font.Masters, m)
	return m
}

func setString(dst *string, val *string) {
	if val != nil {
		*dst = *val
	}
}

func setFloat(dst *float64, val *float64) {
	if val != nil {
		*dst = *val
	}
}
