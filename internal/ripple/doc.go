// Package ripple animates expanding rings on a monochrome pixel surface in
// response to key presses.
//
// An Engine owns a fixed pool of ripples. OnKeyEvent spawns one per press;
// TickAndRender, called once per render loop iteration, advances the pool at
// most once per frame interval and reports whether the surface changed so
// the caller knows when to flush it.
package ripple
