package viewer

// NDC is a point in normalized device coordinates, both axes in [-1, 1], Y up
type NDC struct {
	X, Y float64
}

// ScreenToNDC converts pixel coordinates (origin top-left, Y down) to NDC
func ScreenToNDC(screenX, screenY, width, height float64) NDC {
	if width <= 0 || height <= 0 {
		return NDC{}
	}
	return NDC{
		X: (2.0 * screenX / width) - 1.0,
		Y: 1.0 - (2.0 * screenY / height),
	}
}

// NDCToScreen converts NDC back to pixel coordinates
func NDCToScreen(x, y, width, height float64) (float64, float64) {
	return (x*0.5 + 0.5) * width, (-y*0.5 + 0.5) * height
}
