package prediction

import "sort"

// Oracle thresholds: long-run calibration, not a lucky run.
const (
	oracleAccuracyBar = 0.70
	oracleMinResolved = 10
)

// Stats summarizes a scout's resolved prediction record.
type Stats struct {
	Resolved int
	Correct  int

	// Accuracy is Correct / Resolved, 0 when nothing has resolved yet.
	Accuracy float64

	// Streak counts consecutive correct calls walking back from the most
	// recently created resolved prediction.
	Streak int

	IsOracle bool
}

// Accuracy computes the calibration record over a scout's predictions.
// Unresolved entries are ignored entirely.
func Accuracy(predictions []Prediction) Stats {
	resolved := make([]Prediction, 0, len(predictions))
	for _, p := range predictions {
		if p.Resolved {
			resolved = append(resolved, p)
		}
	}

	var s Stats
	s.Resolved = len(resolved)
	if s.Resolved == 0 {
		return s
	}

	for _, p := range resolved {
		if p.WasCorrect {
			s.Correct++
		}
	}
	s.Accuracy = float64(s.Correct) / float64(s.Resolved)

	// Most recent first by creation time; the streak stops at the first miss.
	sort.SliceStable(resolved, func(i, j int) bool {
		if resolved[i].CreatedSeason != resolved[j].CreatedSeason {
			return resolved[i].CreatedSeason > resolved[j].CreatedSeason
		}
		return resolved[i].CreatedWeek > resolved[j].CreatedWeek
	})
	for _, p := range resolved {
		if !p.WasCorrect {
			break
		}
		s.Streak++
	}

	s.IsOracle = s.Accuracy >= oracleAccuracyBar && s.Resolved >= oracleMinResolved
	return s
}
