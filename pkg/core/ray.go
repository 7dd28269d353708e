package core

// Ray represents a ray with an origin and direction.
// Direction is expected to be unit length; distances along the ray assume it.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// NewReflectionRay builds the mirror reflection of incident about normal at hitPoint.
// The origin is pushed off the surface by bias along the normal so the new ray
// does not immediately hit the surface it leaves.
func NewReflectionRay(normal, incident, hitPoint Vec3, bias float64) Ray {
	return Ray{
		Origin:    hitPoint.Add(normal.Multiply(bias)),
		Direction: Reflect(incident, normal),
	}
}

// Reflect mirrors direction d about the unit normal n
func Reflect(d, n Vec3) Vec3 {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}
