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
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"seehuhn.de/go/fontc/compile"
	"seehuhn.de/go/fontc/model"
	"seehuhn.de/go/fontc/model/sfntimport"
	"seehuhn.de/go/fontc/tools/internal/buildinfo"
	"seehuhn.de/go/fontc/tools/internal/profile"
)

var (
	outArg     = flag.String("o", "", "write the font to `file` (\"-\" for stdout)")
	masterArg  = flag.String("master", "", "compile the master with the given `name`")
	allArg     = flag.Bool("all", false, "compile all masters")
	configArg  = flag.String("config", "", "read a TOML font description from `file`")
	forceArg   = flag.Bool("force", false, "write fonts even if there are errors")
	versionArg = flag.Bool("V", false, "print version information and exit")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

const toolName = "otf-compile"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s \u2014 compile a font into an OpenType/CFF file\n", toolName)
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short(toolName))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options] [font.ttf|font.otf]\n\n", toolName)
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font.ttf   source font for outlines, widths, names and cmap\n")
		fmt.Fprintf(os.Stderr, "             (Go Regular if omitted)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -o out.otf font.ttf\n", toolName)
		fmt.Fprintf(os.Stderr, "  %s -config family.toml -all font.ttf\n", toolName)
	}
	flag.Parse()

	if *versionArg {
		fmt.Println(buildinfo.Short(toolName))
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	font, err := loadFont(flag.Arg(0))
	if err != nil {
		return err
	}
	if *configArg != "" {
		cfg, err := loadConfig(*configArg)
		if err != nil {
			return err
		}
		if err := cfg.apply(font); err != nil {
			return fmt.Errorf("%s: %w", *configArg, err)
		}
	}

	masters, err := selectMasters(font)
	if err != nil {
		return err
	}
	if *outArg != "" && len(masters) > 1 {
		return errors.New("-o can only be used when compiling a single master")
	}

	c := compile.NewCompiler()
	results := make([]*compile.TableSet, len(masters))
	g := &errgroup.Group{}
	for i, name := range masters {
		g.Go(func() error {
			ts, err := c.Compile(font, name)
			if err != nil {
				return fmt.Errorf("master %q: %w", name, err)
			}
			ts.Force = *forceArg
			results[i] = ts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := newReporter(os.Stderr)
	failed := false
	for i, ts := range results {
		out.report(masters[i], ts.Log)
		if ts.Log.HasErrors() && !*forceArg {
			failed = true
			continue
		}

		fname := *outArg
		if fname == "" {
			fname = compile.PostScriptName(font.FamilyName+"-"+masters[i]) + ".otf"
		}
		if err := writeFont(fname, ts); err != nil {
			return err
		}
	}
	if failed {
		return errors.New("compilation failed")
	}
	return nil
}

func loadFont(fname string) (*model.Font, error) {
	if fname == "" {
		return sfntimport.Import(goregular.TTF)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	font, err := sfntimport.Import(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return font, nil
}

// selectMasters returns the names of the masters to compile.
func selectMasters(font *model.Font) ([]string, error) {
	switch {
	case *allArg && *masterArg != "":
		return nil, errors.New("-all and -master cannot be used together")
	case *allArg:
		var names []string
		for _, m := range font.Masters {
			names = append(names, m.Name)
		}
		if len(names) == 0 {
			return nil, errors.New("font has no masters")
		}
		return names, nil
	case *masterArg != "":
		return []string{*masterArg}, nil
	default:
		return []string{font.SelectedMaster().Name}, nil
	}
}

func writeFont(fname string, ts *compile.TableSet) error {
	buf := &bytes.Buffer{}
	_, err := ts.WriteTo(buf)
	if err != nil {
		return err
	}

	if fname == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write binary data to a terminal")
		}
		_, err = io.Copy(os.Stdout, buf)
		return err
	}
	return os.WriteFile(fname, buf.Bytes(), 0o644)
}
