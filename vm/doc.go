// Package vm implements the value and dispatch core of the ember virtual
// machine.
//
// This package contains:
//   - Tagged value representation (nil, booleans, fixnums, strings)
//   - Symbol interning for selector names
//   - Flat per-kind method tables and Send
//   - Built-in methods for each kind, including String
package vm
