package geo

import "fmt"

type OutOfRangeError struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Name, e.Value, e.Min, e.Max)
}

type OutOfDomainError struct {
	Lat float64
}

func (e OutOfDomainError) Error() string {
	return fmt.Sprintf("latitude %g outside grid domain [%g, %g]", e.Lat, MinGridLat, MaxGridLat)
}

type MalformedReferenceError struct {
	Ref    string
	Reason string
}

func (e MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed grid reference %q: %s", e.Ref, e.Reason)
}

type InvalidEllipsoidError struct {
	A float64
	F float64
}

func (e InvalidEllipsoidError) Error() string {
	return fmt.Sprintf("invalid ellipsoid (a=%g, f=%g)", e.A, e.F)
}

// ConvergenceError reports an iteration that hit its cap without converging.
// It indicates a defect in the conversion itself, not a bad input.
type ConvergenceError struct {
	Op         string
	Iterations int
}

func (e ConvergenceError) Error() string {
	return fmt.Sprintf("%s did not converge after %d iterations", e.Op, e.Iterations)
}
