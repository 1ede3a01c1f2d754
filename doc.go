// Package glass provides the software texture layer of a small 2D engine.
//
// # Overview
//
// glass copies rectangular pixel regions between in-memory bitmaps with
// boundary clipping, and layers a monospace bitmap-font renderer (package
// text) on top of that primitive. Window creation, presentation and input
// belong to the caller: it supplies a width and height, asks glass to blit
// or write text, and presents the resulting pixel buffer itself.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glass"
//	    "github.com/gogpu/glass/geom"
//	)
//
//	canvas := glass.NewRGBATexture(320, 200)
//	sprite := glass.NewRGBATexture(16, 16)
//
//	// Copy the sprite to (10, 20); anything outside the canvas is clipped.
//	sprite.BlitTo(canvas,
//	    geom.NewRect(0, 0, 16, 16),
//	    geom.NewRect(10, 20, 16, 16))
//
// # Textures
//
// A Texture owns exactly one bitmap (see package bitmap). Textures are
// created blank; for RGBA textures that means every pixel is opaque black.
// Resize returns a new blank texture and discards the old contents.
//
// # Blitting
//
// Blit clips the source rectangle against the source bitmap and the target
// rectangle against the destination bitmap independently, then copies the
// overlap of the two clipped extents. It never fails and never writes
// outside the destination. Writes overwrite; there is no blending.
//
// # Non-owning references
//
// A Registry owns textures (or any other value) and issues Handles. A Weak
// reference built from a handle must be resolved on every use and fails
// once the owner releases the value, even if the registry slot is reused
// afterwards. The font renderer holds its glyph atlas this way.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Textures and fonts are meant for single-goroutine use. Registry and the
// package logger are safe for concurrent use.
package glass

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
