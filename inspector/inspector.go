package inspector

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/uicover/inspector/graph"
	"github.com/viant/uicover/inspector/sfc"
)

// Inspector provides an interface for inspecting component source code
type Inspector interface {
	// InspectSource splits component source into regions and extracts its imports
	InspectSource(ctx context.Context, filename string, src []byte) (*graph.File, error)

	// InspectFile reads and inspects a component file
	InspectFile(ctx context.Context, URL string) (*graph.File, error)
}

// Factory creates appropriate inspectors based on file extension
type Factory struct {
	config     *graph.Config
	inspectors map[string]Inspector
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(config *graph.Config) *Factory {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Factory{
		config: config,
		inspectors: map[string]Inspector{
			".vue":    sfc.NewInspector(config),
			".svelte": sfc.NewSvelteInspector(config),
		},
	}
}

// Supports returns true if filename has an extension with a registered inspector
func (f *Factory) Supports(filename string) bool {
	_, ok := f.inspectors[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if inspector, ok := f.inspectors[ext]; ok {
		return inspector, nil
	}
	return nil, fmt.Errorf("unsupported file type: %s", ext)
}

// InspectSource is a convenience method that gets the appropriate inspector and inspects the source
func (f *Factory) InspectSource(ctx context.Context, filename string, src []byte) (*graph.File, error) {
	inspector, err := f.GetInspector(filename)
	if err != nil {
		return nil, err
	}
	return inspector.InspectSource(ctx, filename, src)
}

// InspectFile is a convenience method that gets the appropriate inspector and inspects the file
func (f *Factory) InspectFile(ctx context.Context, URL string) (*graph.File, error) {
	inspector, err := f.GetInspector(URL)
	if err != nil {
		return nil, err
	}
	return inspector.InspectFile(ctx, URL)
}
