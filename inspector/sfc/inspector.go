package sfc

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/uicover/inspector/graph"
)

const (
	// KindVue identifies Vue single-file components
	KindVue = "vue"
	// KindSvelte identifies Svelte components
	KindSvelte = "svelte"
)

type splitter func(src []byte) (markup, logic, lang string, err error)

// Inspector splits a single-file component into markup and logic regions and extracts its imports
type Inspector struct {
	config *graph.Config
	kind   string
	split  splitter
	fs     afs.Service
}

// NewInspector creates a Vue component inspector
func NewInspector(config *graph.Config) *Inspector {
	return newInspector(config, KindVue, splitVue)
}

// NewSvelteInspector creates a Svelte component inspector
func NewSvelteInspector(config *graph.Config) *Inspector {
	return newInspector(config, KindSvelte, splitSvelte)
}

func newInspector(config *graph.Config, kind string, split splitter) *Inspector {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Inspector{config: config, kind: kind, split: split, fs: afs.New()}
}

// Kind returns component kind handled by this inspector
func (i *Inspector) Kind() string {
	return i.kind
}

// InspectSource splits component source and extracts imports
func (i *Inspector) InspectSource(ctx context.Context, filename string, src []byte) (*graph.File, error) {
	markup, logic, lang, err := i.split(src)
	if err != nil {
		return nil, fmt.Errorf("failed to split %s: %w", filename, err)
	}
	aFile := &graph.File{
		Path:   filename,
		Kind:   i.kind,
		Lang:   lang,
		Markup: markup,
		Logic:  logic,
		Hash:   graph.Hash(src),
	}
	if i.config.SkipImports || !aFile.HasLogic() {
		return aFile, nil
	}
	if i.config.LexicalImport {
		aFile.Imports = lexicalImports(logic)
		return aFile, nil
	}
	imports, err := parseImports(ctx, logic, lang)
	if err != nil {
		imports = lexicalImports(logic)
	}
	for _, imp := range imports {
		aFile.AddImport(imp.Name, imp.Path)
	}
	return aFile, nil
}

// InspectFile reads a component from any afs supported location and inspects it
func (i *Inspector) InspectFile(ctx context.Context, URL string) (*graph.File, error) {
	src, err := i.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", URL, err)
	}
	return i.InspectSource(ctx, URL, src)
}
