package film

import "errors"

// ErrInvalidImage reports a decoded buffer the pipeline cannot work with:
// nil, or zero width/height.
var ErrInvalidImage = errors.New("invalid image")

// ErrInvalidParameter reports a style, position, or numeric parameter outside
// its documented range. The CLI layer validates input first; the pipeline
// checks again so library callers get the same guarantee.
var ErrInvalidParameter = errors.New("invalid parameter")
