package converter

import "github.com/theoremus-urban-solutions/metlink-to-cot/cot"

// featureStore is the per-run deduplication map, keyed by feature id.
// Inserting under a seen key overwrites the earlier feature (last record in
// feed order wins) without disturbing its position. The store is built,
// drained and discarded inside one invocation; there is no cross-run state.
type featureStore struct {
	byID  map[string]cot.Feature
	order []string
}

func newFeatureStore() *featureStore {
	return &featureStore{byID: map[string]cot.Feature{}}
}

func (s *featureStore) put(f cot.Feature) {
	if _, seen := s.byID[f.ID]; !seen {
		s.order = append(s.order, f.ID)
	}
	s.byID[f.ID] = f
}

func (s *featureStore) len() int { return len(s.byID) }

// drain returns the features in insertion order.
func (s *featureStore) drain() []cot.Feature {
	out := make([]cot.Feature, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}
