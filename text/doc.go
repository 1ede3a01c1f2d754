// Package text renders monospace bitmap fonts into glass textures.
//
// A MonospaceFont reads glyphs from an atlas: a single texture holding a
// grid of equally sized cells, sixteen cells per row, indexed by character
// code. Writing a character is one blit from the glyph's cell to the
// destination; writing a string repeats that at successive cell widths.
//
// # Atlas ownership
//
// The font never owns its atlas. It is given a glass.Weak reference and
// re-resolves it on every write:
//
//	atlases := glass.NewRegistry[glass.RGBATexture]()
//	h := atlases.Insert(atlas.Builtin())
//
//	font, err := text.NewMonospaceFont(atlases.Weak(h), 7, 13)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = font.WriteString("Hello", canvas, 10, 10)
//
//	atlases.Release(h)
//	err = font.WriteString("again", canvas, 10, 30) // ErrAtlasReleased
//
// # Code pages
//
// By default a rune's code point is its cell index. Atlases laid out by a
// single-byte code page can be addressed with WithEncoding, for example
// WithEncoding(charmap.CodePage437).
package text
