// Package hcl loads unit definitions written in HCL.
//
// The format is a structured alternative to the classic line-oriented
// convert.def syntax:
//
//	unit "meV" {
//	  name = "milli-electron-volt"
//	}
//
//	relation {
//	  from   = "meV"
//	  factor = 0.001
//	  to     = "eV"
//	}
//
// A relation block may set `invert = true` to declare an invertive factor,
// and the factor attribute is a full HCL expression, so physical constants
// can be spelled out as arithmetic (`factor = 1.0 / 137.036`).
package hcl
