// Package dbbase defines the records of the DBBase document the simulation
// server loads at startup, and the constructors that build them from table
// cells.
//
// Constructors apply the cell normalizers: list fields are scrubbed of the
// "なし" placeholder and empty cells, O/X markers become booleans, and the
// protection zone becomes an optional integer. Runtime-only fields (Last, On,
// Phase) get their initial values here and nowhere else.
package dbbase
