package fractal3d

// Drag converts a pointer-motion delta into an incremental rotation composed
// into the stored orientation: yaw from +dx, pitch from -dy, both scaled by
// the fixed drag sensitivity. uiCaptured must be true whenever the control
// surface owns the pointer; the drag is then ignored.
func (st *Store) Drag(dx, dy Real, uiCaptured bool) {
	if uiCaptured || (dx == 0 && dy == 0) {
		return
	}
	yaw := QuatRotY(dx * DragSensitivity)
	pitch := QuatRotX(-dy * DragSensitivity)
	st.ComposeOrientation(yaw.Mul(pitch))
}
