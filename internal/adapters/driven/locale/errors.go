package locale

import "errors"

// ErrUnknownRegion is returned when the locale carries no recognisable
// country region.
var ErrUnknownRegion = errors.New("locale: no recognisable region")
