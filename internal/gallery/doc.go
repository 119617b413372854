// Package gallery persists finished artworks and the daily calendar.
//
// Saved works are rasterized from a canvas.Snapshot into a PNG at the grid's
// own resolution (one pixel per cell, empty cells white) and stored in a
// SQLite database together with their grid size and creation time. The
// calendar binds a date key (YYYY-MM-DD) to at most one gallery entry;
// deleting an entry removes the calendar days that pointed at it.
//
// Exports write PNG files named pixel-art-YYYY-MM-DDTHH-MM-SS.png either at
// the stored resolution or scaled up with nearest-neighbour sampling.
package gallery
