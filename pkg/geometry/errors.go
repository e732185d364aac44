package geometry

import "errors"

// ErrConstruction is returned when a primitive is created with
// geometrically invalid parameters. Rejecting these at construction time
// keeps NaNs out of the shading math.
var ErrConstruction = errors.New("invalid shape construction")
