/*
Package svgop implements the SVG markup operations used by the icon build:
parsing and measuring documents, path data manipulation, the size reducing
optimizer, the structural tag sanitizer and the palette rewriter.

Every exported operation takes a markup string and returns a new markup
string, leaving the input untouched, so the callers are free to run them
concurrently on different icons.
*/
package svgop
