package effect

import (
	"strings"

	"github.com/gogpu/sight/internal/image"
)

// Stage is one step of an effect. Apply must not modify src and returns a
// new buffer; target is the size of the view the effect renders into.
type Stage interface {
	Kind() Kind
	Apply(src *image.Buffer, target image.Size) *image.Buffer
	String() string
}

// Effect is an immutable, ordered list of stages. The zero value is the
// identity effect.
type Effect struct {
	stages []Stage
}

// None returns the identity effect.
func None() Effect {
	return Effect{}
}

// Concat returns an effect running the stages of each argument in order.
// Concat() is None, and Concat(e) equals e.
func Concat(effects ...Effect) Effect {
	n := 0
	for _, e := range effects {
		n += len(e.stages)
	}
	if n == 0 {
		return Effect{}
	}
	stages := make([]Stage, 0, n)
	for _, e := range effects {
		stages = append(stages, e.stages...)
	}
	return Effect{stages: stages}
}

// Of wraps stages in an effect. Nil stages are skipped.
func Of(stages ...Stage) Effect {
	out := make([]Stage, 0, len(stages))
	for _, s := range stages {
		if s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return Effect{}
	}
	return Effect{stages: out}
}

// Len returns the number of stages.
func (e Effect) Len() int {
	return len(e.stages)
}

// IsNone reports whether the effect has no stages.
func (e Effect) IsNone() bool {
	return len(e.stages) == 0
}

// Stages returns a copy of the stage list.
func (e Effect) Stages() []Stage {
	out := make([]Stage, len(e.stages))
	copy(out, e.stages)
	return out
}

// Stage returns the i-th stage. It panics if i is out of range.
func (e Effect) Stage(i int) Stage {
	return e.stages[i]
}

// Equal reports whether both effects hold the same stages, compared by
// identity, in the same order.
func (e Effect) Equal(other Effect) bool {
	if len(e.stages) != len(other.stages) {
		return false
	}
	for i := range e.stages {
		if e.stages[i] != other.stages[i] {
			return false
		}
	}
	return true
}

// Apply folds src through every stage, first to last. Runs of adjacent
// color matrix stages are multiplied into one pass. The identity effect
// returns src itself.
func (e Effect) Apply(src *image.Buffer, target image.Size) *image.Buffer {
	out := src
	for i := 0; i < len(e.stages); {
		ms, ok := e.stages[i].(*matrixStage)
		if !ok {
			out = e.stages[i].Apply(out, target)
			i++
			continue
		}
		m := ms.m
		for i++; i < len(e.stages); i++ {
			next, ok := e.stages[i].(*matrixStage)
			if !ok {
				break
			}
			m = m.Then(next.m)
		}
		out = m.Apply(out)
	}
	return out
}

// String lists the stages, joined by arrows.
func (e Effect) String() string {
	if len(e.stages) == 0 {
		return "None"
	}
	var sb strings.Builder
	for i, s := range e.stages {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}
