package iconkit

import (
	"github.com/esimov/iconkit/svgop"
	"github.com/esimov/iconkit/utils"
	"golang.org/x/sync/errgroup"
)

// Stage names, as reported in failures.
const (
	StageOptimize  = "optimize"
	StageSanitize  = "sanitize"
	StageNormalize = "normalize"
	StageReorigin  = "reorigin"
	StageRecolor   = "recolor"
)

// Optimizer rewrites every icon with the provider optimizer.
type Optimizer struct {
	Provider Provider
	Options  OptimizeOptions
}

func (o Optimizer) Name() string { return StageOptimize }

func (o Optimizer) Transform(icon Icon) (Icon, error) {
	markup, err := o.Provider.Optimize(icon.Markup, o.Options)
	if err != nil {
		return icon, err
	}
	return icon.Load(markup)
}

// Sanitizer validates and cleans up the structure of every icon.
type Sanitizer struct {
	Provider Provider
}

func (s Sanitizer) Name() string { return StageSanitize }

func (s Sanitizer) Transform(icon Icon) (Icon, error) {
	markup, err := s.Provider.ValidateTags(icon.Markup)
	if err != nil {
		return icon, err
	}
	return icon.Load(markup)
}

// OriginNormalizer moves icons whose viewport does not start at (0,0) to
// the origin by wrapping their content in a translating group. Icons with
// a <defs> block are left alone: references into the block would not move
// along with the content.
type OriginNormalizer struct {
	// Optimizer flattens the translating group of moved icons.
	Optimizer Optimizer
	// Workers bounds the concurrent re-optimizations.
	Workers int
}

func (n OriginNormalizer) Name() string { return StageNormalize }

// Applies reports whether the icon would be rewritten.
func (n OriginNormalizer) Applies(icon Icon) bool {
	if icon.Top == 0 && icon.Left == 0 {
		return false
	}
	return !icon.HasDefs()
}

// Transform re-anchors a single icon. It does not re-optimize it.
func (n OriginNormalizer) Transform(icon Icon) (Icon, error) {
	if !n.Applies(icon) {
		return icon, nil
	}
	markup, err := svgop.Reorigin(icon.Markup, svgop.Box{
		Left:   icon.Left,
		Top:    icon.Top,
		Width:  icon.Width,
		Height: icon.Height,
	})
	if err != nil {
		return icon, err
	}
	return icon.Load(markup)
}

// Run normalizes the whole collection and re-optimizes the moved icons.
// Returns the keys of the moved icons.
func (n OriginNormalizer) Run(c *Collection) ([]string, error) {
	var moved []string
	for _, key := range c.Keys() {
		if icon, _ := c.Get(key); n.Applies(icon) {
			moved = append(moved, key)
		}
	}
	if err := RunStage(c, n, true); err != nil {
		return nil, err
	}
	if err := n.reoptimize(c, moved); err != nil {
		return nil, err
	}
	return moved, nil
}

// reoptimize runs the optimizer on the given icons concurrently. The icons
// are independent of each other; results are applied in collection order.
func (n OriginNormalizer) reoptimize(c *Collection, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	var (
		results = make([]Icon, len(keys))
		errs    = make([]error, len(keys))
		g       errgroup.Group
	)
	g.SetLimit(utils.Max(n.Workers, 1))

	for i, key := range keys {
		i := i // per-iteration copy; go directive is below 1.22
		icon, _ := c.Get(key)
		g.Go(func() error {
			results[i], errs[i] = n.Optimizer.Transform(icon)
			return nil
		})
	}
	// Failures are kept per icon in errs, so the group never fails.
	_ = g.Wait()

	var failures []*StageError
	for i, key := range keys {
		if errs[i] == nil {
			errs[i] = c.Set(results[i])
		}
		if errs[i] != nil {
			Logger().Debug("icon failed", "stage", StageReorigin, "icon", key, "error", errs[i])
			failures = append(failures, &StageError{Stage: StageReorigin, Key: key, Err: errs[i]})
		}
	}
	if len(failures) > 0 {
		return &AggregateError{Stage: StageReorigin, Errors: failures}
	}
	return nil
}

// Palette rewrites the colors of every icon.
type Palette struct {
	Provider Provider
	Options  PaletteOptions
}

func (p Palette) Name() string { return StageRecolor }

// Transform passes the icon through untouched when no option is set.
func (p Palette) Transform(icon Icon) (Icon, error) {
	if p.Options.Empty() {
		return icon, nil
	}
	markup, err := p.Provider.RecolorPalette(icon.Markup, p.Options)
	if err != nil {
		return icon, err
	}
	return icon.Load(markup)
}
