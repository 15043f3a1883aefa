// seehuhn.de/go/xmptree - loose XMP metadata extraction in Go
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

// Xmpdump prints the XMP metadata of JPEG files and XMP sidecar files as
// JSON.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"seehuhn.de/go/xmptree"
	"seehuhn.de/go/xmptree/dc"
	"seehuhn.de/go/xmptree/jpeg"
)

func main() {
	groupFlag := flag.Bool("ns", false, "group properties by namespace prefix")
	verboseFlag := flag.Bool("v", false, "log debug messages")
	dcFlag := flag.Bool("dc", false, "print a Dublin Core summary instead of the full tree")
	langFlag := flag.String("lang", "", "preferred languages for -dc, e.g. \"de,en\"")
	prefixFlag := flag.Bool("prefixes", false, "list the well-known namespace prefixes and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *prefixFlag {
		for _, prefix := range xmptree.KnownPrefixes() {
			ns, _ := xmptree.NamespaceURI(prefix)
			fmt.Printf("%-10s %s\n", prefix, ns)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := newLogger(*verboseFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	var prefs []language.Tag
	if *langFlag != "" {
		prefs, _, err = language.ParseAcceptLanguage(*langFlag)
		if err != nil {
			log.Fatal("invalid -lang value", zap.String("lang", *langFlag), zap.Error(err))
		}
	}

	opt := &xmptree.Options{
		GroupByNamespace: *groupFlag || *dcFlag,
		Logger:           log,
	}

	failed := false
	for _, fname := range flag.Args() {
		if flag.NArg() > 1 {
			fmt.Printf("== %s\n", fname)
		}
		v, err := readFile(fname, opt)
		if err != nil {
			log.Error("cannot read file", zap.String("file", fname), zap.Error(err))
			failed = true
			continue
		}
		if v == nil {
			fmt.Println("no XMP data")
			continue
		}

		if *dcFlag {
			printDublinCore(dc.FromTree(v), prefs)
			printBasic(v, log)
			continue
		}
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			log.Error("cannot encode metadata", zap.String("file", fname), zap.Error(err))
			failed = true
			continue
		}
		fmt.Println(string(out))
	}
	if failed {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

// readFile extracts the metadata from a JPEG file, or from an XMP document
// if the file is not a JPEG file.
func readFile(fname string, opt *xmptree.Options) (xmptree.Value, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		return jpeg.Read(bytes.NewReader(data), opt)
	}
	return xmptree.ParseBytes(data, opt), nil
}

func printDublinCore(d *dc.DublinCore, prefs []language.Tag) {
	if d == nil {
		fmt.Println("no Dublin Core properties")
		return
	}
	if s := d.Title.Get(prefs...); s != "" {
		fmt.Println("title:      ", s)
	}
	if s := d.Description.Get(prefs...); s != "" {
		fmt.Println("description:", s)
	}
	if len(d.Creator) > 0 {
		fmt.Println("creator:    ", strings.Join(d.Creator, "; "))
	}
	if len(d.Subject) > 0 {
		fmt.Println("subject:    ", strings.Join(d.Subject, ", "))
	}
	if s := d.Rights.Get(prefs...); s != "" {
		fmt.Println("rights:     ", s)
	}
	if d.Format != "" {
		fmt.Println("format:     ", d.Format)
	}
	if len(d.Language) > 0 {
		fmt.Println("language:   ", languageNames(d.Language, prefs))
	}
	if langs := d.Title.Languages(); len(langs) > 0 {
		fmt.Println("translated: ", languageNames(langs, prefs))
	}
}

// languageNames names the given languages in the first preferred language,
// or in English.
func languageNames(tags []language.Tag, prefs []language.Tag) string {
	namer := display.Languages(language.English)
	if len(prefs) > 0 {
		if n := display.Languages(prefs[0]); n != nil {
			namer = n
		}
	}
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = namer.Name(tag)
		if names[i] == "" {
			names[i] = tag.String()
		}
	}
	return strings.Join(names, ", ")
}

func printBasic(v xmptree.Value, log *zap.Logger) {
	basic := &xmptree.Basic{}
	if err := xmptree.Decode(v, basic); err != nil {
		log.Warn("cannot decode basic properties", zap.Error(err))
		return
	}
	if basic.CreatorTool != "" {
		fmt.Println("tool:       ", basic.CreatorTool)
	}
	if basic.Rating != 0 {
		fmt.Println("rating:     ", basic.Rating)
	}
}
