package hypothesis

import (
	"strings"

	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// band buckets a session's average moment quality.
type band int

const (
	bandHigh band = iota
	bandMixed
	bandLow
)

// Band thresholds on average moment quality.
const (
	highBandThreshold = 7.0
	lowBandThreshold  = 5.0
)

func bandForQuality(avg float64) band {
	switch {
	case avg >= highBandThreshold:
		return bandHigh
	case avg < lowBandThreshold:
		return bandLow
	default:
		return bandMixed
	}
}

// questionTemplates pools investigative questions by (moment type, band).
// {player} is substituted with the player's name.
var questionTemplates = map[model.MomentType]map[band][]string{
	model.MomentTechnical: {
		bandHigh: {
			"Is {player}'s touch genuinely elite, or flattered by easy matches?",
			"Can {player} reproduce that technical level against organized pressing?",
		},
		bandMixed: {
			"Does {player}'s technique hold up when the tempo rises?",
			"Is {player} technically inconsistent or just short of match sharpness?",
		},
		bandLow: {
			"Is {player}'s poor control a habit or a rough patch?",
			"Has {player} got the technical floor for this level at all?",
		},
	},
	model.MomentPhysical: {
		bandHigh: {
			"Is {player}'s athleticism sustainable over a full season?",
			"Does {player}'s physical edge translate against stronger opposition?",
		},
		bandMixed: {
			"Can {player} add the physical consistency the role demands?",
			"Is {player}'s engine good enough for two games a week?",
		},
		bandLow: {
			"Is {player} carrying a conditioning problem?",
			"Will {player}'s physical shortcomings be coached out or are they structural?",
		},
	},
	model.MomentMental: {
		bandHigh: {
			"Is {player}'s composure real leadership material?",
			"Does {player} read the game a level above the team's?",
		},
		bandMixed: {
			"Does {player} drift out of matches mentally?",
			"Is {player}'s decision-making trustworthy under pressure?",
		},
		bandLow: {
			"Does {player} hide when the game turns hostile?",
			"Is {player}'s concentration a liability in big moments?",
		},
	},
	model.MomentTactical: {
		bandHigh: {
			"Is {player}'s positional sense system-taught or innate?",
			"Could {player} carry tactical instructions in a more demanding setup?",
		},
		bandMixed: {
			"Does {player} understand the role or just follow the ball?",
			"Is {player} tactically flexible enough to switch systems?",
		},
		bandLow: {
			"Is {player} being played out of position, or lost in any position?",
			"Can {player} learn the defensive side of the role?",
		},
	},
	model.MomentCharacter: {
		bandHigh: {
			"Is {player}'s professionalism as solid behind closed doors?",
			"Does {player}'s temperament scale to a bigger stage?",
		},
		bandMixed: {
			"Is {player} coachable when things go wrong?",
			"Does {player}'s body language tell the real story?",
		},
		bandLow: {
			"Is {player} a dressing-room risk?",
			"Will {player}'s attitude sink the obvious talent?",
		},
	},
}

// questionFor selects a template from the (type, band) pool, falling back to
// every template of that type when the exact band pool is empty. One IntN
// draw.
func questionFor(src *rng.Source, t model.MomentType, b band, playerName string) string {
	pool := questionTemplates[t][b]
	if len(pool) == 0 {
		// Fall back to every template of the type, in fixed band order so
		// template choice stays deterministic for a given draw.
		for _, alt := range [...]band{bandHigh, bandMixed, bandLow} {
			pool = append(pool, questionTemplates[t][alt]...)
		}
	}
	text := pool[src.IntN(len(pool))]
	return strings.ReplaceAll(text, "{player}", playerName)
}
