package bench

import (
	"strings"

	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// templatesPerTier keeps the narrative tables a closed, fixed-size lookup so
// adding a tier forces a table entry.
const templatesPerTier = 5

// narrativeTemplates holds five phrasings per tier. Placeholders: {target},
// {ref}, {domain}.
var narrativeTemplates = map[Tier][templatesPerTier]string{
	TierClearlyBetter: {
		"{target} is operating on a different level to {ref} in the {domain} department.",
		"No contest: {target} leaves {ref} behind for {domain} quality.",
		"{target}'s {domain} game makes {ref} look ordinary.",
		"Put them side by side and {target} wins the {domain} battle every time against {ref}.",
		"{target} is comfortably ahead of {ref} on everything {domain}.",
	},
	TierSlightlyBetter: {
		"{target} edges {ref} in the {domain} areas, though not by much.",
		"There is a small but real {domain} gap in {target}'s favour over {ref}.",
		"{target} looks a shade sharper than {ref} on the {domain} side.",
		"On {domain} qualities {target} just about shades it over {ref}.",
		"{target} holds a narrow {domain} advantage over {ref}.",
	},
	TierComparable: {
		"{target} and {ref} are hard to separate on {domain} qualities.",
		"Call it level: {target} matches {ref} in the {domain} department.",
		"Little between {target} and {ref} when it comes to {domain} play.",
		"{target} profiles a lot like {ref} on the {domain} side of the game.",
		"On {domain} measures {target} and {ref} are peers.",
	},
	TierSlightlyWorse: {
		"{target} gives up a little to {ref} in the {domain} areas.",
		"{ref} has the slight {domain} edge over {target} right now.",
		"{target} is close behind {ref} on {domain} qualities, but behind.",
		"A small {domain} gap separates {target} from {ref}, in {ref}'s favour.",
		"{target} doesn't quite match {ref}'s {domain} level yet.",
	},
	TierClearlyWorse: {
		"{target} is some way short of {ref} in the {domain} department.",
		"{ref} is simply a class above {target} on {domain} qualities.",
		"The {domain} comparison flatters nobody: {ref} is well clear of {target}.",
		"{target} has real ground to make up on {ref} in {domain} terms.",
		"On everything {domain}, {ref} outstrips {target} comfortably.",
	},
}

// narrativeFor picks one of the tier's five templates via the RNG and
// substitutes names. One IntN draw.
func narrativeFor(src *rng.Source, tier Tier, targetName, refName string, domain model.Domain) string {
	pool := narrativeTemplates[tier]
	text := pool[src.IntN(templatesPerTier)]
	text = strings.ReplaceAll(text, "{target}", targetName)
	text = strings.ReplaceAll(text, "{ref}", refName)
	text = strings.ReplaceAll(text, "{domain}", string(domain))
	return text
}
