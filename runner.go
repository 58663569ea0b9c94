package iconkit

import "fmt"

// Stage is a transformation applied to every icon of a collection.
// Transform must depend on the given icon only.
type Stage interface {
	Name() string
	Transform(Icon) (Icon, error)
}

type stageFunc struct {
	name string
	fn   func(Icon) (Icon, error)
}

func (s stageFunc) Name() string { return s.name }

func (s stageFunc) Transform(icon Icon) (Icon, error) { return s.fn(icon) }

// StageFunc adapts a function to the Stage interface.
func StageFunc(name string, fn func(Icon) (Icon, error)) Stage {
	return stageFunc{name: name, fn: fn}
}

// RunStage applies the stage to every icon of the collection, one at a time
// and in insertion order, replacing each icon with the result.
//
// A failing icon keeps its previous value. With continueOnError the
// remaining icons are still processed and all failures are returned
// together as an *AggregateError; otherwise the first failure is returned
// as a *StageError. The number and order of icons never change.
func RunStage(c *Collection, s Stage, continueOnError bool) error {
	var failures []*StageError

	for _, key := range c.Keys() {
		icon, _ := c.Get(key)
		out, err := s.Transform(icon)
		if err == nil && out.Key() != key {
			err = fmt.Errorf("transform renamed the icon to %q", out.Key())
		}
		if err == nil {
			err = c.Set(out)
		}
		if err != nil {
			se := &StageError{Stage: s.Name(), Key: key, Err: err}
			Logger().Debug("icon failed", "stage", s.Name(), "icon", key, "error", err)
			if !continueOnError {
				return se
			}
			failures = append(failures, se)
		}
	}

	if len(failures) > 0 {
		return &AggregateError{Stage: s.Name(), Errors: failures}
	}
	return nil
}
