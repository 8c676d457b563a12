package forecast

// Route is an ordered journey: start, zero or more intermediate points in
// append order, end. Once handed to the aggregator it is never mutated.
type Route struct {
	Start         string
	Intermediates []string
	End           string
}

// Points returns the resolution order: start, intermediates, end.
func (r Route) Points() []string {
	points := make([]string, 0, len(r.Intermediates)+2)
	points = append(points, r.Start)
	points = append(points, r.Intermediates...)
	points = append(points, r.End)
	return points
}
