package grouping

import (
	"fmt"

	"github.com/diagmc/magcheck/internal/dataset"
)

// Group is the subset of sweep records sharing one transverse-field value.
type Group struct {
	// Gamma is the shared transverse-field value.
	Gamma float64

	// Index is the ordinal by first appearance in the dataset. It drives
	// color assignment together with the total group count.
	Index int

	// Records holds the member rows in their original relative order.
	Records []dataset.SweepRecord
}

// Label returns the legend label for the group: the Γ value rounded to one
// decimal place.
func (g Group) Label() string {
	return fmt.Sprintf("Γ=%.1f", g.Gamma)
}

// Discover partitions sweep records into groups, one per distinct Γ value,
// ordered by first appearance. Member records keep their relative dataset
// order within each group.
func Discover(recs []dataset.SweepRecord) ([]Group, error) {
	var order []float64
	members := make(map[float64][]dataset.SweepRecord)
	for _, r := range recs {
		if _, seen := members[r.Gamma]; !seen {
			order = append(order, r.Gamma)
		}
		members[r.Gamma] = append(members[r.Gamma], r)
	}

	groups := make([]Group, len(order))
	for i, gamma := range order {
		rs := members[gamma]
		// Unreachable via the discovery above, but a group without records
		// would render an empty series under a legend entry.
		if len(rs) == 0 {
			return nil, NewEmptyGroupError(gamma)
		}
		groups[i] = Group{Gamma: gamma, Index: i, Records: rs}
	}
	return groups, nil
}
