// Package codegen lowers typed numeric expressions to IR: implicit
// promotion between scalar kinds, boolean coercion, scalar casts, binary
// operator dispatch and fixed-length array plumbing.
// Invariants:
//   - Promotion follows one strict order, f64 > f32 > i64 > i32 > i16 > i8 >
//     bool, encoded in a rank table.
//   - Dispatch is total over the published type/operator tables; anything
//     outside them fails with a kinded Error before any instruction is
//     emitted for that operation.
//   - Emission is deterministic: the same resolved operation against the
//     same builder state appends the same instructions.
//   - Two rewrites are intentional and the only implicit ones: logical
//     operators coerce both operands to bool, and bitwise operators on
//     floats cast both operands to i64 (with a GEN1001 warning).
//   - Equal element count between array operands is a precondition; length
//     mismatches panic rather than error.
package codegen
