// Package curves samples and renders closed-form parametric curves.
//
// # Overview
//
// A [Shape] names one of a fixed set of curves (astroid, cycloid, Huygens
// cycloid, hypocycloid, line, circle, ellipse, fancy, starfish). Each has a
// closed-form x(t), y(t) and default [Params]: a scale in pixels per unit,
// the length L of the parameter interval [0, L] and a step count N.
//
// Rendering is three stages:
//
//   - [Sample] evaluates the curve at t = 0, L/N, 2L/N, ..., L, giving N+1 points.
//   - [PixelMatrix] maps each point to pixel = point*scale + center.
//   - [Renderer] connects consecutive pixels with straight segments (or draws
//     them as dots) into a [Pixmap].
//
// # Quick Start
//
//	area := curves.NewArea()
//	area.SetShape(curves.Starfish)
//	pm, err := area.Snapshot(400, 400)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = pm.SavePNG("starfish.png")
//
// # Coordinate System
//
// Pixel coordinates have the origin at the top-left with Y increasing down.
// Curve coordinates are not flipped, so a curve's positive Y points down on
// screen.
package curves
