package pipeline

import "readarrbridge.app/bridge/model"

// Selector picks the match among ranked search candidates.
type Selector interface {
	Select(candidates []model.Candidate) (model.Candidate, bool)
}

// FirstCandidate trusts the catalog's ranking and takes rank 0.
type FirstCandidate struct{}

func (FirstCandidate) Select(candidates []model.Candidate) (model.Candidate, bool) {
	if len(candidates) == 0 {
		return model.Candidate{}, false
	}
	return candidates[0], true
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(candidates []model.Candidate) (model.Candidate, bool)

func (f SelectorFunc) Select(candidates []model.Candidate) (model.Candidate, bool) {
	return f(candidates)
}
