package experiment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/orbitplot/internal/export"
	"github.com/san-kum/orbitplot/internal/viz"
)

type surfaceFactory struct {
	ext string
	new func(viz.Layout) (viz.Surface, error)
}

type Registry struct {
	surfaces map[string]surfaceFactory
}

func NewRegistry() *Registry {
	r := &Registry{surfaces: make(map[string]surfaceFactory)}

	r.surfaces["png"] = surfaceFactory{".png", func(l viz.Layout) (viz.Surface, error) {
		return export.NewPNGSurface(l)
	}}
	r.surfaces["svg"] = surfaceFactory{".svg", func(l viz.Layout) (viz.Surface, error) {
		return export.NewSVGSurface(l)
	}}

	return r
}

// GetSurface builds a surface for format and returns the file extension it writes.
func (r *Registry) GetSurface(format string, l viz.Layout) (viz.Surface, string, error) {
	f, ok := r.surfaces[format]
	if !ok {
		return nil, "", fmt.Errorf("unknown format: %s (have %s)", format, strings.Join(r.ListFormats(), ", "))
	}
	c, err := f.new(l)
	if err != nil {
		return nil, "", err
	}
	return c, f.ext, nil
}

func (r *Registry) ListFormats() []string {
	names := make([]string, 0, len(r.surfaces))
	for name := range r.surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
