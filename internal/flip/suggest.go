package flip

import "sort"

// Suggest runs one refresh cycle: filter every item in the snapshot,
// price a candidate against the per-slot budget, rank by expected profit
// and keep the top openSlots picks. Pure with respect to its inputs and
// the tracker state at call time; ties keep snapshot order (stable sort).
func Suggest(snapshot *Snapshot, availableGP int64, openSlots int, cfg Settings, tracker *OfferTracker) []Candidate {
	if snapshot == nil || openSlots <= 0 {
		return nil
	}

	perSlotBudget := availableGP
	if cfg.EvenlyAllocate && availableGP > 0 {
		perSlotBudget = availableGP / int64(openSlots)
	}

	var candidates []Candidate
	for i := range snapshot.Items {
		info := &snapshot.Items[i]
		if !Passes(info, cfg, tracker) {
			continue
		}
		if c, ok := MakeCandidate(info, perSlotBudget, cfg); ok {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ExpectedProfit > candidates[j].ExpectedProfit
	})

	if len(candidates) > openSlots {
		candidates = candidates[:openSlots]
	}
	return candidates
}
