// Package presentation turns a domain.Breakdown into display models: a textual
// list of denominations and a grid of colored blocks, one block per unit.
//
// The models are plain data so the same breakdown can be written to a terminal,
// serialized as JSON or rendered by an HTML template.
package presentation
