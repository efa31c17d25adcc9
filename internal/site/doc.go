// Package site composes configuration fragments into one validated, immutable site
// configuration and renders it in the documentation generator's field naming.
//
// Composition is a pure function of the fragments and an injected Clock. It either returns
// a complete configuration or a configuration error listing every field violation; it never
// returns partial output. Preset and theme identifiers are checked for shape only; whether
// the generator can resolve them is outside this package (see the preset package).
package site
