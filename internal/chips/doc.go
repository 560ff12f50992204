// Field vs. machine integers: chips operate in gnark's native scalar
// field (BN254 Fr via groth16, or the curve the selected backend fixes),
// whose modulus exceeds 2^64. ALU64 ADD wraps mod 2^64 in the tracer's
// interpreter, but the ADD chips here add in the field with no range
// check, so a step whose sum overflows 2^64 is not provable; only
// executions whose values stay below 2^64 are covered. Wrapping would
// need a limb-decomposition plus range-check layer; this is the
// documented soundness gap spec.md §9 calls out, and the Synthesize
// signature leaves room for such a layer without changing existing chips.
package chips
