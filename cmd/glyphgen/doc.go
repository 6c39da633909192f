// Command glyphgen renders glyph images from a JSON specification by driving
// external tools: ImageMagick's pango coder for markup rendering, or xelatex
// followed by ImageMagick rasterization for typeset glyphs.
package main
