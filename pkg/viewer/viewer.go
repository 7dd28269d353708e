// Package viewer shows finished renders in a desktop window.
package viewer

// minWindowSide is the smallest window edge before small renders are scaled up
const minWindowSide = 480

// windowScale returns the integer zoom that keeps a width x height image at
// least minWindowSide pixels along its longer edge
func windowScale(width, height int) int {
	longest := width
	if height > longest {
		longest = height
	}
	if longest <= 0 {
		return 1
	}

	scale := 1
	for longest*scale < minWindowSide {
		scale++
	}
	return scale
}
