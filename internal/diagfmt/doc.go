// Package diagfmt renders diagnostics, token streams and syntax trees for humans and tools.
//
// Pretty is the halting-mode report: a header, up to five source lines ending at
// the error line, a caret under the column and the message. Short and JSON are
// for editors and scripts.
package diagfmt
