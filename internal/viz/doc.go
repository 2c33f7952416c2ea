// Package viz renders paintings and their statistics in the terminal.
//
//   - [Preview]: truecolor half-block rendition of a canvas
//   - [Braille]: monochrome dot rendition for terminals without color
//   - [Histogram], [ChannelHistogram]: asciigraph plots of the pixel distribution
//   - Themes and lipgloss styles shared by the CLI and the TUI
//
// Canvases larger than the terminal are downscaled with golang.org/x/image/draw
// before rendering.
package viz
