// Package buffer provides reusable coefficient rows and a pool for
// allocation-free scratch space in polynomial arithmetic. All poly
// functions accept raw slices; Buffer only helps callers and the poly
// package itself manage reuse in hot paths.
package buffer
