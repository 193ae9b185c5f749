package cpu

import (
	"github.com/thelolagemann/regfile/internal/types"
	"github.com/thelolagemann/regfile/pkg/log"
)

// Opt is a function that modifies a Registers
// instance.
type Opt func(r *Registers)

// WithModel loads the post-boot register values of the given model.
func WithModel(m types.Model) Opt {
	return func(r *Registers) {
		r.Reset(m)
	}
}

// WithModelName loads the post-boot register values of the model with
// the given name, falling back to the Unset values for unknown names.
func WithModelName(name string) Opt {
	return WithModel(types.StringToModel(name))
}

// WithLogger sets the logger, a nil logger disables logging.
func WithLogger(log log.Logger) Opt {
	return func(r *Registers) {
		r.log = log
	}
}
