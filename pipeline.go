package iconkit

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/esimov/iconkit/svgop"
)

// DefaultArtifact is the file name of the artifact written into the source
// directory when no output path is configured.
const DefaultArtifact = "icons8-color.json"

// State is a step of the build.
type State int

// The build moves through the states in declaration order, or to Failed.
const (
	Importing State = iota
	Optimizing
	Sanitizing
	Normalizing
	Recoloring
	Exporting
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Importing:
		return "Importing"
	case Optimizing:
		return "Optimizing"
	case Sanitizing:
		return "Sanitizing"
	case Normalizing:
		return "Normalizing"
	case Recoloring:
		return "Recoloring"
	case Exporting:
		return "Exporting"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// Terminal reports whether no transition leaves the state.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}

// BuildOptions configures a build.
type BuildOptions struct {
	Import   ImportOptions
	Optimize OptimizeOptions
	Palette  PaletteOptions
	Export   ExportOptions
	// Output is the artifact path. Empty means DefaultArtifact in the
	// source directory.
	Output string
	// Workers bounds the concurrent re-optimizations of moved icons.
	Workers int
}

// DefaultBuildOptions returns the options of the standard icon build.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Optimize: svgop.DefaultOptimizeOptions(),
		Export:   ExportOptions{Optimize: true},
		Workers:  1,
	}
}

// Report summarizes a successful build.
type Report struct {
	Source   string
	Output   string
	Icons    int
	Moved    []string
	Duration time.Duration
}

// Pipeline runs one build: import, the stages in fixed order, and export.
// Any fatal error moves it to Failed and stops the build. A Pipeline is not
// reusable.
type Pipeline struct {
	// OnTransition, when set, is called after every state change.
	OnTransition func(from, to State)

	provider Provider
	opts     BuildOptions
	state    State
	started  bool
	coll     *Collection
}

// NewPipeline returns a pipeline in the Importing state.
func NewPipeline(p Provider, opts BuildOptions) *Pipeline {
	return &Pipeline{provider: p, opts: opts}
}

// State returns the current state.
func (p *Pipeline) State() State { return p.state }

// Collection returns the in-memory collection, including the partially
// processed one of a failed build. It is nil before import succeeds.
func (p *Pipeline) Collection() *Collection { return p.coll }

// Output returns the artifact path used for the given source directory.
func (p *Pipeline) Output(source string) string {
	if p.opts.Output != "" {
		return p.opts.Output
	}
	return filepath.Join(source, DefaultArtifact)
}

// Run builds the collection artifact from the source directory. Errors are
// returned as a *BuildError carrying the state the build failed in.
func (p *Pipeline) Run(source string) (*Report, error) {
	if p.started {
		return nil, errors.New("pipeline already ran")
	}
	p.started = true
	start := time.Now()
	output := p.Output(source)

	c, err := Import(p.provider, source, p.opts.Import)
	if err != nil {
		return nil, p.fail(err)
	}
	p.coll = c
	Logger().Info("icons imported", "count", c.Len(), "source", source)

	p.advance(Optimizing)
	optimizer := Optimizer{Provider: p.provider, Options: p.opts.Optimize}
	if err := RunStage(c, optimizer, true); err != nil {
		return nil, p.fail(err)
	}

	p.advance(Sanitizing)
	if err := RunStage(c, Sanitizer{Provider: p.provider}, true); err != nil {
		return nil, p.fail(err)
	}

	p.advance(Normalizing)
	normalizer := OriginNormalizer{Optimizer: optimizer, Workers: p.opts.Workers}
	moved, err := normalizer.Run(c)
	if err != nil {
		return nil, p.fail(err)
	}

	p.advance(Recoloring)
	if !p.opts.Palette.Empty() {
		if err := RunStage(c, Palette{Provider: p.provider, Options: p.opts.Palette}, true); err != nil {
			return nil, p.fail(err)
		}
	}

	p.advance(Exporting)
	if err := Export(p.provider, c, output, p.opts.Export); err != nil {
		return nil, p.fail(err)
	}
	p.advance(Done)

	return &Report{
		Source:   source,
		Output:   output,
		Icons:    c.Len(),
		Moved:    moved,
		Duration: time.Since(start),
	}, nil
}

func (p *Pipeline) advance(to State) {
	from := p.state
	p.state = to
	Logger().Debug("pipeline transition", "from", from, "to", to)
	if p.OnTransition != nil {
		p.OnTransition(from, to)
	}
}

func (p *Pipeline) fail(err error) error {
	from := p.state
	p.advance(Failed)
	return &BuildError{State: from, Err: err}
}
