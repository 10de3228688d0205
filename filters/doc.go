// Package filters is the built-in filter catalog for ggfx.
//
// Importing the package registers every filter kind by name, so
// ggfx.FilterNamed("gaussianBlur") works after a blank import. Typed
// constructors such as [GaussianBlur] and [Crop] return filters with their
// parameters already set.
//
// The pixel work is done by image libraries: gift for most adjustments and
// geometry, bild for box blur, exposure and convolution effects,
// nfnt/resize for Lanczos scaling and x/image/draw for affine transforms.
//
// Parameters use the "input" prefix. Angles are in radians, intensities are
// fractions (1 is 100%). A parameter of the wrong type or out of range makes
// the filter produce no output, which chains treat as a skipped filter.
package filters
