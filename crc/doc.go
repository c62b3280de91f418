// Package crc implements parametrized table-driven CRC-8 checksums.
//
// Every algorithm in the 8-bit family is described by a Params value:
// generator polynomial, initial value, final xor, and whether bits are
// processed LSB-first (reflected). MakeTable turns Params into a 256-entry
// lookup table; Checksum and Digest consume it. The catalogued algorithms
// follow the reveng CRC catalogue, https://reveng.sourceforge.io/crc-catalogue/1-15.htm.
//
//	tab := crc.MakeTable(crc.CRC8Maxim)
//	sum := crc.Checksum(tab, data)
//
// The package is self-contained and independent of the allocator packages.
package crc
