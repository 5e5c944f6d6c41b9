package matcher

// Collector receives diagnostics about scholarships excluded by the hard
// filters. It is called once per excluded scholarship, in catalog order.
type Collector interface {
	HardFailure(name, reason string)
}

// ListCollector records hard-filter exclusions in order.
type ListCollector struct {
	Failures []HardFailure
}

// HardFailure implements Collector.
func (c *ListCollector) HardFailure(name, reason string) {
	c.Failures = append(c.Failures, HardFailure{Scholarship: name, Reason: reason})
}
