// Package curve models 2D curve plots: a host curve with its styling,
// axes and frame, plus an ordered list of overlays drawn on the same
// axes.
//
// # Curves
//
// A Curve holds everything needed to draw a curve except the data itself:
// window size, the data region (Frame) as fractions of the window, title,
// legend, frame border, two Axes and the Layout of the host series.
// Every setter validates its input and returns an *Error on rejection;
// the model is left unchanged in that case.
//
// # Overlays
//
// Other curves can be drawn on top of a curve. They are referenced by ID
// in the SeriesList Extras, each with its own private Layout. The host
// takes the z-order slot DrawID among the Extras.Len()+1 series:
//
//	extras:     head ... tail
//	draw order: tail ... head, with the host inserted at slot DrawID
//
// ResolveDrawOrder returns the series from back to front; Order and
// Reorder expose and change the list order with the host included, as
// a list view with drag and drop would.
//
// # Rendering
//
// Rendering lives in package render. The data of a curve and of its
// overlays is looked up through a Source, e.g. a Registry. A render pass
// builds a RenderContext holding the canvas, the data region and the axis
// transformations and hands it to the series drawers of package geom.
//
// Every modification of a curve, its axes or layouts invalidates the
// cached raster used during interactive zooming (package zoom).
//
// # Records
//
// Package record reads and writes curves as flat binary records.
package curve
