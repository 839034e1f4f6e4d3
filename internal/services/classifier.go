package services

import "smartcv/analyzer/internal/models"

// Score tier labels, from best to worst.
const (
	LevelExcellent        = "Excellent"
	LevelVeryGood         = "Very Good"
	LevelGood             = "Good"
	LevelRegular          = "Regular"
	LevelNeedsImprovement = "Needs Improvement"
)

// ClassifyScore maps a numeric score to its presentation badge using five
// fixed tiers with inclusive lower bounds (90/80/70/60). Total over any
// input; upstream validation already keeps scores in [0,100].
func ClassifyScore(score float64) models.ScoreBadge {
	switch {
	case score >= 90:
		return models.ScoreBadge{
			Emoji:       "🟢",
			Color:       "#34a853",
			Level:       LevelExcellent,
			Class:       "score-excellent",
			Description: "Exceptional résumé!",
		}
	case score >= 80:
		return models.ScoreBadge{
			Emoji:       "🟢",
			Color:       "#34a853",
			Level:       LevelVeryGood,
			Class:       "score-excellent",
			Description: "Very well structured résumé",
		}
	case score >= 70:
		return models.ScoreBadge{
			Emoji:       "🟡",
			Color:       "#fbbc04",
			Level:       LevelGood,
			Class:       "score-good",
			Description: "Good résumé with potential",
		}
	case score >= 60:
		return models.ScoreBadge{
			Emoji:       "🟡",
			Color:       "#fbbc04",
			Level:       LevelRegular,
			Class:       "score-good",
			Description: "Adequate résumé, but it can improve",
		}
	default:
		return models.ScoreBadge{
			Emoji:       "🔴",
			Color:       "#ea4335",
			Level:       LevelNeedsImprovement,
			Class:       "score-poor",
			Description: "Résumé needs important improvements",
		}
	}
}

// ScoreAccent is the coarser three-tier mapping used for visual accents only;
// report text always uses the five-tier levels from ClassifyScore.
func ScoreAccent(score float64) (emoji, class string) {
	switch {
	case score >= 80:
		return "🟢", "score-excellent"
	case score >= 60:
		return "🟡", "score-good"
	default:
		return "🔴", "score-poor"
	}
}
