package experiment

import (
	"context"
	"fmt"
	"io"

	"github.com/san-kum/orbitplot/internal/config"
	"github.com/san-kum/orbitplot/internal/dynamo"
	"github.com/san-kum/orbitplot/internal/export"
	"github.com/san-kum/orbitplot/internal/integrators"
	"github.com/san-kum/orbitplot/internal/metrics"
	"github.com/san-kum/orbitplot/internal/physics"
	"github.com/san-kum/orbitplot/internal/sim"
	"github.com/san-kum/orbitplot/internal/storage"
	"github.com/san-kum/orbitplot/internal/viz"
)

type Options struct {
	Format  string // "png" (default) or "svg"
	CSVPath string // dump of the sizing pass, skipped when empty
	Preview bool   // collect orbital radius for a terminal chart
}

type Result struct {
	Path    string
	Extent  dynamo.Extent
	Layout  viz.Layout
	Stats   viz.RenderStats
	Drift   float64
	// Specific energy of the first and last finite scanned states.
	EnergyStart float64
	EnergyEnd   float64
	Invalid int
	CSVRows int
	Radius  *viz.RadiusSeries
}

// Experiment is one render: a sizing pass, then a drawing pass over a freshly
// built integrator with the same constants and initial state.
type Experiment struct {
	cfg      *config.Config
	opts     Options
	registry *Registry
}

func New(cfg *config.Config, opts Options) *Experiment {
	if opts.Format == "" {
		opts.Format = "png"
	}
	return &Experiment{cfg: cfg, opts: opts, registry: NewRegistry()}
}

func (e *Experiment) newIntegrator(field dynamo.Field) *integrators.Euler {
	return integrators.NewEuler(e.cfg.Constants(), field, e.cfg.InitState())
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	field := physics.NewCentralForce(e.cfg.Constants(), e.cfg.ScaleGM)
	drift := metrics.NewEnergyDrift(field.Energy)
	result := &Result{}

	observers := []dynamo.Observer{drift}
	if e.opts.Preview {
		result.Radius = viz.NewRadiusSeries()
		observers = append(observers, result.Radius)
	}

	var rec *storage.CSVRecorder
	if e.opts.CSVPath != "" {
		var err error
		rec, err = storage.NewCSVRecorder(e.opts.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("open trajectory dump: %w", err)
		}
		observers = append(observers, rec)
	}

	result.Extent = sim.Scan(e.newIntegrator(field), e.cfg.Step, observers...)
	result.Drift = drift.Value()
	result.EnergyStart, result.EnergyEnd = drift.Initial(), drift.Final()
	result.Invalid = drift.Invalid()

	if rec != nil {
		if err := rec.Close(); err != nil {
			return nil, fmt.Errorf("write trajectory dump: %w", err)
		}
		result.CSVRows = rec.Rows()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if result.Extent.Degenerate() {
		return nil, fmt.Errorf("%w: after %d steps", dynamo.ErrDegenerateExtent, e.cfg.Step)
	}
	result.Layout = viz.Size(result.Extent, e.cfg.ImgSize)

	canvas, ext, err := e.registry.GetSurface(e.opts.Format, result.Layout)
	if err != nil {
		return nil, err
	}
	if c, ok := canvas.(io.Closer); ok {
		defer c.Close()
	}

	result.Stats, err = viz.RenderTrail(e.newIntegrator(field), e.cfg.Step, e.cfg.Buf, canvas)
	if err != nil {
		return nil, fmt.Errorf("render trail: %w", err)
	}

	dir := e.cfg.OutDir
	if dir == "" {
		dir = export.DefaultDir
	}
	st := storage.New(dir)
	if err := st.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", dynamo.ErrSurface, err)
	}

	result.Path = st.Path(export.FileName(e.cfg, ext))
	if err := canvas.Save(result.Path); err != nil {
		return nil, err
	}

	return result, nil
}
