package fractal3d

import "math"

// Quat is a rotation quaternion with the scalar part last (x, y, z, w).
// Stored orientations are kept unit-length; every composition goes through
// Normalize so drift stays bounded.
type Quat struct {
	X, Y, Z, W Real
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat { return Quat{0, 0, 0, 1} }

// QuatRotX returns a rotation of angle radians about the X axis.
func QuatRotX(angle Real) Quat {
	h := angle * 0.5
	return Quat{math.Sin(h), 0, 0, math.Cos(h)}
}

// QuatRotY returns a rotation of angle radians about the Y axis.
func QuatRotY(angle Real) Quat {
	h := angle * 0.5
	return Quat{0, math.Sin(h), 0, math.Cos(h)}
}

// Mul composes two rotations: the result applies b first, then a.
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Len returns the quaternion norm.
func (q Quat) Len() Real {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns a unit-length version of q.
// A degenerate (zero) quaternion normalizes to the identity.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l == 0 {
		return QuatIdentity()
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Conj returns the conjugate. For unit quaternions this is the inverse.
func (q Quat) Conj() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Rotate applies the rotation to a vector: q * v * q^-1.
// q must be unit-length.
func (q Quat) Rotate(v Vec3) Vec3 {
	// t = 2 * cross(q.xyz, v)
	tx := 2 * (q.Y*v.Z - q.Z*v.Y)
	ty := 2 * (q.Z*v.X - q.X*v.Z)
	tz := 2 * (q.X*v.Y - q.Y*v.X)
	// v' = v + w*t + cross(q.xyz, t)
	return Vec3{
		v.X + q.W*tx + q.Y*tz - q.Z*ty,
		v.Y + q.W*ty + q.Z*tx - q.X*tz,
		v.Z + q.W*tz + q.X*ty - q.Y*tx,
	}
}
