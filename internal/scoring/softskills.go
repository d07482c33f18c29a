package scoring

// AggregateSoftSkills reduces an interview's per-category assessment to a
// single 0..10 score, the arithmetic mean of all categories. Category names
// are free-form; any set is accepted. Returns nil when there is no data:
// "not yet interviewed" must stay distinct from "scored zero", or candidates
// who simply have not interviewed would be penalized.
func AggregateSoftSkills(assessment map[string]float64) *float64 {
	if len(assessment) == 0 {
		return nil
	}

	sum := 0.0
	for _, score := range assessment {
		sum += score
	}
	mean := sum / float64(len(assessment))
	return &mean
}

// MergeAssessments averages per-answer assessments into one per-category
// map. Categories missing from some answers are averaged over the answers
// that scored them.
func MergeAssessments(perAnswer []map[string]float64) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, assessment := range perAnswer {
		for category, score := range assessment {
			sums[category] += score
			counts[category]++
		}
	}

	if len(sums) == 0 {
		return nil
	}

	merged := make(map[string]float64, len(sums))
	for category, sum := range sums {
		merged[category] = roundTenth(sum / float64(counts[category]))
	}
	return merged
}
