// Package internal contains the core infrastructure for the vetro showcase:
// SDL initialization, input processing, theming, glass-effect rendering, and
// icon rasterization. Types and functions in this package are not part of
// the public API.
package internal
