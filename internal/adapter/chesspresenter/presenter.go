package chesspresenter

import (
	"errors"

	"github.com/park285/cheese-termchess/pkg/chessdto"
)

// Renderer draws a frame. It must not hold on to or mutate the frame.
type Renderer interface {
	Render(frame chessdto.Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(frame chessdto.Frame) error

func (fn RendererFunc) Render(frame chessdto.Frame) error { return fn(frame) }

// Presenter fills in the status text and hands each frame to its renderers.
type Presenter struct {
	formatter *Formatter
	renderers []Renderer
}

func NewPresenter(formatter *Formatter, renderers ...Renderer) *Presenter {
	return &Presenter{formatter: formatter, renderers: renderers}
}

func (p *Presenter) Present(frame chessdto.Frame) error {
	if p == nil {
		return nil
	}
	if p.formatter != nil {
		frame.Status = p.formatter.Status(&frame)
	}
	var errs []error
	for _, r := range p.renderers {
		if err := r.Render(frame); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
