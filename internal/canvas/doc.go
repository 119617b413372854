// Package canvas holds the pixel raster edited by pixday and the algorithms
// that operate on it.
//
// # Overview
//
// A Grid is a square N×N matrix of cells. Each cell is either Empty
// (transparent, rendered as the paper background) or filled with an opaque
// Color. The zero Cell is Empty, so a freshly allocated grid needs no
// initialisation pass.
//
// # Mutation Contract
//
// Set reports whether a cell actually changed. Renderers use that bit to skip
// redundant draws; coordinates outside [0, N) are rejected without touching
// the grid. At is the read counterpart and reports out-of-range reads through
// its second return value.
//
// # Snapshots
//
// Snapshot returns an immutable deep copy of the cell matrix. Snapshots are
// what the undo history stores and what the export path rasterizes; a live
// *Grid is never handed outside the engine.
//
// # Flood Fill
//
// FloodFill replaces the 4-connected region of cells equal to a target value.
// It walks an explicit work list of coordinates and marks cells in a boolean
// mask sized to the grid, so each cell is examined at most once per call.
// Empty is matched like any other value: filling a transparent region works
// the same way as filling a coloured one.
package canvas
