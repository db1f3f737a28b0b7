// Package worker runs region traces off the interactive thread. A Tracer
// owns one goroutine that executes requests in arrival order and delivers
// responses tagged with the caller's request id, so a caller that fires
// several traces during a drag gesture can keep the newest response and
// discard the rest. The request and response shapes double as the wire
// protocol of the serve bridge.
package worker

import (
	"github.com/lucentlab/lucent/pkg/colour"
	"github.com/lucentlab/lucent/pkg/gamut"
	"github.com/lucentlab/lucent/pkg/region"
)

// AxisConfig is the sampling grid of a trace request. Both counts must be
// at least 2.
type AxisConfig struct {
	LightnessSteps int `json:"lightnessSteps"`
	ChromaSteps    int `json:"chromaSteps"`
}

// TraceOptions carries the tracer controls of a request. Threshold accepts
// a bare ratio or a named WCAG level on the wire; the zero values of the
// remaining fields mean the region package's defaults.
type TraceOptions struct {
	Threshold         region.Threshold `json:"threshold"`
	EdgeInterpolation region.Interp    `json:"edgeInterpolation,omitempty"`
	Gamut             gamut.Target     `json:"gamut,omitempty"`
	Tolerance         float64          `json:"tolerance,omitempty"`
	MaxChroma         float64          `json:"maxChroma,omitempty"`
	MaxIterations     int              `json:"maxIterations,omitempty"`
	Alpha             float64          `json:"alpha,omitempty"`
}

// Request asks for one region trace. The id is the caller's correlation
// tag and is echoed on the response untouched.
type Request struct {
	ID        int          `json:"id"`
	Reference colour.Color `json:"reference"`
	Hue       float64      `json:"hue"`
	Axes      AxisConfig   `json:"axes"`
	Options   TraceOptions `json:"options"`
}

// Response answers the request with the same id: the traced paths on
// success, an empty path list and the failure text otherwise.
type Response struct {
	ID    int           `json:"id"`
	Paths []region.Path `json:"paths"`
	Error string        `json:"error,omitempty"`
}

// run executes the request synchronously, folding any failure into the
// response.
func (r Request) run() Response {
	paths, err := region.Trace(r.Reference, r.Hue, r.Options.Threshold, region.Options{
		LightnessSteps:    r.Axes.LightnessSteps,
		ChromaSteps:       r.Axes.ChromaSteps,
		EdgeInterpolation: r.Options.EdgeInterpolation,
		Gamut:             r.Options.Gamut,
		Tolerance:         r.Options.Tolerance,
		MaxChroma:         r.Options.MaxChroma,
		MaxIterations:     r.Options.MaxIterations,
		Alpha:             r.Options.Alpha,
	})
	if err != nil {
		return Response{ID: r.ID, Paths: []region.Path{}, Error: err.Error()}
	}
	return Response{ID: r.ID, Paths: paths}
}
