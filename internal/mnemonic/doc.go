// Package mnemonic provides the mnemonic tables of the Hack computation instruction.
//
// # Instruction Layout
//
// A computation instruction is a 16 bit word, most significant bit first:
//
//	111a cccc ccdd djjj
//	   |    |    |   |
//	   |    |    |   +-- jump:        lt eq gt (result compared to zero)
//	   |    |    +------ destination: A D M
//	   |    +----------- function:    zx nx zy ny f no
//	   +---------------- selector:    0 = A register, 1 = memory cell M
//
// # Tables
//
// The package holds three closed tables that are built once at package
// initialization and only read afterwards:
//   - Computation: 28 mnemonics mapped to selector and function bits
//   - Destination: 7 mnemonics mapped to the A, D and M store flags
//   - Jump: 7 mnemonics mapped to the lt, eq and gt conditions
//
// The function table is keyed by the accumulator form of a computation. The
// memory form (D+M, M-1, ...) shares the function bits of the accumulator
// form (D+A, A-1, ...) and only sets the selector bit.
//
// An absent destination or jump is encoded as 000 and is not a table entry,
// NoDestination and NoJump represent it.
//
// # Usage Example
//
//	comp, err := mnemonic.ParseComputation("D+M")
//	if err != nil {
//		return fmt.Errorf("parsing computation: %w", err)
//	}
//	word := comp.Bits() << 6
package mnemonic
