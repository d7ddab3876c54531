// Package gen defines the contract between a validated module and a code generator.
//
// A generator is a deterministic function from (module, config) to a doc.Doc.
// It dispatches on declaration and type variants through ast visitors and never
// manages indentation itself. Registry maps target names to generators.
package gen
