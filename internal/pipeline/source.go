package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/emrgen/cataviz/internal/compress"
	"github.com/emrgen/cataviz/internal/model"
)

// Kind tells authority files from bibliographic files.
type Kind int

const (
	KindAuthority Kind = iota + 1
	KindDocument
)

func (k Kind) String() string {
	if k == KindAuthority {
		return "authority"
	}
	return "document"
}

// Source is an input file. Era is only set for document files.
type Source struct {
	Path string
	Kind Kind
	Era  model.Era
}

// Name is the base name of the file, stored with the rows it produced.
func (s Source) Name() string {
	return filepath.Base(s.Path)
}

// Patterns classifies input files by name. Compression extensions are
// ignored: P1486_1.UTF8.gz matches P1486_*.UTF8.
type Patterns struct {
	Authority string
	Pre1970   string
	Post1970  string
}

// Classify returns the source for path, false when no pattern matches.
func (p Patterns) Classify(path string) (Source, bool) {
	name := compress.TrimExt(filepath.Base(path))
	rules := []struct {
		pattern string
		source  Source
	}{
		{p.Authority, Source{Path: path, Kind: KindAuthority}},
		{p.Pre1970, Source{Path: path, Kind: KindDocument, Era: model.EraPre1970}},
		{p.Post1970, Source{Path: path, Kind: KindDocument, Era: model.EraPost1970}},
	}
	for _, rule := range rules {
		if rule.pattern == "" {
			continue
		}
		if ok, _ := filepath.Match(rule.pattern, name); ok {
			return rule.source, true
		}
	}
	return Source{}, false
}

// Scan lists the input files of dir in name order.
func (p Patterns) Scan(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if src, ok := p.Classify(filepath.Join(dir, entry.Name())); ok {
			sources = append(sources, src)
		}
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Path < sources[j].Path
	})
	return sources, nil
}
