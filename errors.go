package spritecut

import "errors"

// Sentinel errors for sprite extraction and rendering.
var (
	// ErrNilImage indicates a nil image was passed where pixels are required.
	ErrNilImage = errors.New("spritecut: image is nil")
	// ErrEmptyImage indicates an image with zero width or height.
	ErrEmptyImage = errors.New("spritecut: image has zero width or height")
	// ErrInvalidGeometry indicates sprite coordinates that violate
	// label ≥ 0, x1 ≤ x2, y1 ≤ y2 with all values non-negative.
	ErrInvalidGeometry = errors.New("spritecut: invalid sprite geometry")
	// ErrInvalidLabelMap indicates a nil label map or one whose buffer
	// length does not match its declared dimensions.
	ErrInvalidLabelMap = errors.New("spritecut: label map is nil or malformed")
	// ErrDimensionMismatch indicates a sprite whose bounding box falls
	// outside the label map it is rendered against.
	ErrDimensionMismatch = errors.New("spritecut: sprite bounds exceed label map dimensions")
)
