// Package bench implements the comparison bench: a bounded set of reference
// players a scout measures targets against.
//
// Every operation is a total, pure function. Invalid input (full bench,
// duplicate id, missing id) returns the bench unchanged rather than failing;
// bench composition only changes through explicit add and remove.
package bench

import (
	"math"
	"strings"

	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// MaxSize caps how many reference players a bench holds.
const MaxSize = 8

// Delta-to-tier thresholds on the mean attribute difference.
const (
	clearlyThreshold  = 3.0
	slightlyThreshold = 1.0
)

// Confidence model constants. Confidence never reaches 0 or 1: a scout is
// never certain and never completely in the dark.
const (
	overlapSaturation  = 5.0
	sparsitySaturation = 8.0
	confidenceJitter   = 0.05
	confidenceMin      = 0.05
	confidenceMax      = 0.99
)

// Player is a bench entry with a sparse map of perceived attributes.
type Player struct {
	ID         string
	Name       string
	Attributes map[model.Attribute]float64
}

// Bench holds up to MaxSize reference players in insertion order.
type Bench struct {
	Players []Player
}

// New returns an empty bench.
func New() Bench {
	return Bench{}
}

// Add returns a bench with p appended. Adding past capacity or adding a
// duplicate id is a no-op; the prior bench comes back unchanged.
func (b Bench) Add(p Player) Bench {
	if len(b.Players) >= MaxSize {
		return b
	}
	for _, existing := range b.Players {
		if existing.ID == p.ID {
			return b
		}
	}
	players := make([]Player, len(b.Players), len(b.Players)+1)
	copy(players, b.Players)
	return Bench{Players: append(players, p)}
}

// Remove returns a bench without the given id. Missing ids are a no-op.
func (b Bench) Remove(id string) Bench {
	idx := -1
	for i, p := range b.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return b
	}
	players := make([]Player, 0, len(b.Players)-1)
	players = append(players, b.Players[:idx]...)
	players = append(players, b.Players[idx+1:]...)
	return Bench{Players: players}
}

// Tier is the relative judgment of target versus reference.
type Tier int

// Comparison tiers, ordered worst to best.
const (
	TierClearlyWorse Tier = iota
	TierSlightlyWorse
	TierComparable
	TierSlightlyBetter
	TierClearlyBetter
)

// String returns the wire name for a tier.
func (t Tier) String() string {
	switch t {
	case TierClearlyWorse:
		return "clearly_worse"
	case TierSlightlyWorse:
		return "slightly_worse"
	case TierSlightlyBetter:
		return "slightly_better"
	case TierClearlyBetter:
		return "clearly_better"
	default:
		return "comparable"
	}
}

// Comparison is one relative judgment against a bench player.
type Comparison struct {
	BenchID    string
	BenchName  string
	Domain     model.Domain
	Delta      float64
	Tier       Tier
	Confidence float64
	Narrative  string
}

// Compare judges the target's perceived attributes against one reference in
// one domain. It consumes exactly two RNG draws: confidence jitter first,
// then template selection.
func Compare(src *rng.Source, targetName string, target map[model.Attribute]float64, ref Player, domain model.Domain) Comparison {
	targetScoped := filterDomain(target, domain)
	refScoped := filterDomain(ref.Attributes, domain)

	// Mean delta over the overlap; no overlap means no measurable gap.
	var sum float64
	var overlap int
	for attr, tv := range targetScoped {
		rv, ok := refScoped[attr]
		if !ok {
			continue
		}
		sum += tv - rv
		overlap++
	}
	var delta float64
	if overlap > 0 {
		delta = sum / float64(overlap)
	}

	tier := tierForDelta(delta)

	overlapScore := math.Min(1, float64(overlap)/overlapSaturation)
	sparsity := math.Min(1, float64(len(refScoped))/sparsitySaturation)
	confidence := overlapScore*sparsity + src.Jitter(confidenceJitter)
	confidence = math.Max(confidenceMin, math.Min(confidenceMax, confidence))

	return Comparison{
		BenchID:    ref.ID,
		BenchName:  ref.Name,
		Domain:     domain,
		Delta:      delta,
		Tier:       tier,
		Confidence: confidence,
		Narrative:  narrativeFor(src, tier, targetName, ref.Name, domain),
	}
}

// CompareAgainstBench judges the target against every bench entry in order.
func CompareAgainstBench(src *rng.Source, targetName string, target map[model.Attribute]float64, b Bench, domain model.Domain) []Comparison {
	out := make([]Comparison, 0, len(b.Players))
	for _, ref := range b.Players {
		out = append(out, Compare(src, targetName, target, ref, domain))
	}
	return out
}

// ClosestMatch returns the comparison whose tier sits nearest to comparable.
// Ties keep the earliest entry, so bench order is the stable tie-break.
// The second return is false for an empty slice.
func ClosestMatch(comparisons []Comparison) (Comparison, bool) {
	if len(comparisons) == 0 {
		return Comparison{}, false
	}
	best := comparisons[0]
	bestDist := tierDistance(best.Tier)
	for _, c := range comparisons[1:] {
		if d := tierDistance(c.Tier); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, true
}

// filterDomain scopes a map to attributes in the domain. When nothing
// matches it returns the unfiltered map: a domain must never produce zero
// signal just because the scout's knowledge is lopsided.
func filterDomain(attrs map[model.Attribute]float64, domain model.Domain) map[model.Attribute]float64 {
	scoped := make(map[model.Attribute]float64)
	for attr, v := range attrs {
		if strings.HasPrefix(string(attr), string(domain)) {
			scoped[attr] = v
		}
	}
	if len(scoped) == 0 {
		return attrs
	}
	return scoped
}

func tierForDelta(delta float64) Tier {
	switch {
	case delta >= clearlyThreshold:
		return TierClearlyBetter
	case delta >= slightlyThreshold:
		return TierSlightlyBetter
	case delta <= -clearlyThreshold:
		return TierClearlyWorse
	case delta <= -slightlyThreshold:
		return TierSlightlyWorse
	default:
		return TierComparable
	}
}

func tierDistance(t Tier) int {
	d := int(t) - int(TierComparable)
	if d < 0 {
		return -d
	}
	return d
}
