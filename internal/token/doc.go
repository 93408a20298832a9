// Package token defines the binary operator vocabulary the front end hands
// to code generation.
// Invariants:
//   - Every Operator belongs to exactly one Class.
//   - Class membership says nothing about dispatch: an operator may be part
//     of the vocabulary yet have no lowering for a given operand family
//     (shifts, for now).
//   - Operators() iterates in declaration order; table dumps rely on it.
package token
