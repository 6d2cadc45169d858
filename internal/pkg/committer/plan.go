// Package committer applies ordered batches of Spanner mutations.
package committer

import "cloud.google.com/go/spanner"

// Plan is an ordered list of mutations. Parents must be added before the rows
// that reference them.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan(muts ...*spanner.Mutation) *Plan {
	p := &Plan{mutations: make([]*spanner.Mutation, 0, len(muts))}
	for _, m := range muts {
		p.Add(m)
	}
	return p
}

func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

func (p *Plan) Len() int {
	return len(p.mutations)
}

// Chunks splits the plan into consecutive slices of at most size mutations.
func (p *Plan) Chunks(size int) [][]*spanner.Mutation {
	if size <= 0 {
		size = len(p.mutations)
	}
	var out [][]*spanner.Mutation
	for start := 0; start < len(p.mutations); start += size {
		end := min(start+size, len(p.mutations))
		out = append(out, p.mutations[start:end])
	}
	return out
}
