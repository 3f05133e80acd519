package core

// ScopedLaboratories returns the subset of the catalog visible to the
// actor. A top-role actor implicitly holds every laboratory in scope
// regardless of its membership list; every other role sees exactly the
// laboratories whose id appears in the list, in catalog order.
func ScopedLaboratories(actor Actor, catalog []Laboratory) []Laboratory {
	if actor.Role == RoleTop {
		out := make([]Laboratory, len(catalog))
		for i, lab := range catalog {
			out[i] = lab.Clone()
		}
		return out
	}
	member := make(map[string]struct{}, len(actor.LabMemberships))
	for _, id := range actor.LabMemberships {
		member[id] = struct{}{}
	}
	var out []Laboratory
	for _, lab := range catalog {
		if _, ok := member[lab.ID]; ok {
			out = append(out, lab.Clone())
		}
	}
	return out
}

// Aggregate flattens the records of every given laboratory into one
// read-only composite tagged with the sentinel id "all". The aggregate is
// rebuilt on every read and never mutated directly: mutations always
// target one concrete laboratory.
func Aggregate(labs []Laboratory) Laboratory {
	agg := Laboratory{Base: Base{ID: AggregateID}, Name: "All laboratories"}
	for _, lab := range labs {
		clone := lab.Clone()
		agg.Inventory = append(agg.Inventory, clone.Inventory...)
		agg.Members = append(agg.Members, clone.Members...)
		agg.Reservations = append(agg.Reservations, clone.Reservations...)
		agg.LostObjects = append(agg.LostObjects, clone.LostObjects...)
		agg.LoanReports = append(agg.LoanReports, clone.LoanReports...)
		agg.Schedules = append(agg.Schedules, clone.Schedules...)
	}
	return agg
}
