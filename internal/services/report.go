package services

import (
	"fmt"
	"strings"
	"time"

	"smartcv/analyzer/internal/models"
)

const (
	summaryImprovementLimit = 5
	summaryStrengthLimit    = 3
)

// ReportGenerator renders a validated analysis into downloadable plain-text
// reports. Given the same analysis, filename and timestamp the output is
// byte-for-byte identical.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// FileName builds the download name for a report, e.g.
// SmartCV_Report_20260830_1542.txt.
func (rg *ReportGenerator) FileName(detailed bool, now time.Time) string {
	kind := "Report"
	if !detailed {
		kind = "Summary"
	}
	return fmt.Sprintf("SmartCV_%s_%s.txt", kind, now.Format("20060102_1504"))
}

// Detailed renders the full report: per-dimension scores with tier levels,
// all feedback, suggestions, keyword lists, strengths, improvements and the
// score-banded closing recommendation.
func (rg *ReportGenerator) Detailed(analysis *models.AnalysisResult, filename string, now time.Time) string {
	var b strings.Builder

	line := strings.Repeat("=", 65)
	dash := strings.Repeat("-", 45)

	fmt.Fprintf(&b, "DETAILED RÉSUMÉ ANALYSIS REPORT - SmartCV\n%s\n\n", line)

	fmt.Fprintf(&b, "📄 ANALYSIS INFORMATION\n")
	fmt.Fprintf(&b, "Date: %s\n", now.Format("02/01/2006 at 15:04"))
	fmt.Fprintf(&b, "File: %s\n", orUnspecified(filename))
	fmt.Fprintf(&b, "AI Model: Google Gemini\n")
	fmt.Fprintf(&b, "SmartCV Version: 2.0\n\n")

	fmt.Fprintf(&b, "🎯 OVERALL ASSESSMENT\n")
	fmt.Fprintf(&b, "Final Score: %s\n\n", scoreLine(analysis.OverallScore))
	fmt.Fprintf(&b, "Executive Summary:\n%s\n\n", analysis.Summary)

	fmt.Fprintf(&b, "%s\n📊 DETAILED ANALYSIS BY CRITERION\n%s\n\n", line, line)

	fmt.Fprintf(&b, "📝 CLARITY AND COHESION\n")
	fmt.Fprintf(&b, "Score: %s\n%s\n%s\n\n", scoreLine(analysis.Clarity.Score), dash, analysis.Clarity.Feedback)
	fmt.Fprintf(&b, "💡 Improvement Suggestions:\n%s\n\n",
		bulletList(analysis.Clarity.Suggestions, "No suggestions provided"))

	fmt.Fprintf(&b, "🏗️ STRUCTURE AND ORGANIZATION\n")
	fmt.Fprintf(&b, "Score: %s\n%s\n%s\n\n", scoreLine(analysis.Structure.Score), dash, analysis.Structure.Feedback)
	fmt.Fprintf(&b, "💡 Improvement Suggestions:\n%s\n\n",
		bulletList(analysis.Structure.Suggestions, "No suggestions provided"))

	fmt.Fprintf(&b, "🔑 KEYWORDS AND RELEVANCE\n")
	fmt.Fprintf(&b, "Score: %s\n%s\n\n", scoreLine(analysis.Keywords.Score), dash)
	fmt.Fprintf(&b, "✅ Keywords Identified:\n%s\n\n",
		bulletList(analysis.Keywords.Present, "No relevant keywords identified"))
	fmt.Fprintf(&b, "❌ Missing Keywords (Suggested):\n%s\n\n",
		bulletList(analysis.Keywords.Missing, "All important keywords are present"))
	fmt.Fprintf(&b, "💡 Recommendations:\n%s\n\n",
		bulletList(analysis.Keywords.Suggestions, "No recommendations provided"))

	fmt.Fprintf(&b, "%s\n⭐ STRENGTHS IDENTIFIED\n%s\n", line, line)
	fmt.Fprintf(&b, "%s\n\n", prefixedList(analysis.Strengths, "✅ ", "No strengths identified"))

	fmt.Fprintf(&b, "%s\n🔧 IMPROVEMENT OPPORTUNITIES\n%s\n", line, line)
	fmt.Fprintf(&b, "%s\n\n", prefixedList(analysis.Improvements, "🔧 ", "No improvements identified"))

	fmt.Fprintf(&b, "%s\n📈 FINAL RECOMMENDATIONS\n%s\n\n", line, line)
	fmt.Fprintf(&b, "Based on this analysis, your résumé received a score of %s/100.\n\n",
		formatScore(analysis.OverallScore))
	fmt.Fprintf(&b, "%s\n\n", finalRecommendation(analysis.OverallScore))

	fmt.Fprintf(&b, "RECOMMENDED NEXT STEPS:\n")
	fmt.Fprintf(&b, "1. Apply the highest-impact suggestions first\n")
	fmt.Fprintf(&b, "2. Review the overall formatting and structure\n")
	fmt.Fprintf(&b, "3. Add keywords relevant to your field\n")
	fmt.Fprintf(&b, "4. Quantify your achievements with numbers and results\n")
	fmt.Fprintf(&b, "5. Tailor the résumé to each specific opening\n\n")

	fmt.Fprintf(&b, "EXTRA TIPS:\n")
	fmt.Fprintf(&b, "• Keep your résumé up to date\n")
	fmt.Fprintf(&b, "• Start descriptions with action verbs\n")
	fmt.Fprintf(&b, "• Highlight measurable results\n")
	fmt.Fprintf(&b, "• Keep the formatting consistent\n")
	fmt.Fprintf(&b, "• Review spelling and grammar carefully\n\n")

	fmt.Fprintf(&b, "---\nReport generated automatically by SmartCV\n")
	fmt.Fprintf(&b, "AI-powered résumé analyzer\nPowered by Google Gemini\n")

	return b.String()
}

// Summary renders the short report: overall and dimension scores, the first
// 5 improvements and the first 3 strengths.
func (rg *ReportGenerator) Summary(analysis *models.AnalysisResult, filename string, now time.Time) string {
	var b strings.Builder

	line := strings.Repeat("=", 35)

	fmt.Fprintf(&b, "SMARTCV - SUMMARY REPORT\n%s\n\n", line)

	fmt.Fprintf(&b, "📄 File: %s\n", orUnspecified(filename))
	fmt.Fprintf(&b, "📅 Date: %s\n", now.Format("02/01/2006 at 15:04"))
	fmt.Fprintf(&b, "🤖 AI: Google Gemini\n\n")

	fmt.Fprintf(&b, "🎯 OVERALL SCORE: %s/100\n", formatScore(analysis.OverallScore))
	fmt.Fprintf(&b, "Rating: %s\n\n", ClassifyScore(analysis.OverallScore).Level)

	fmt.Fprintf(&b, "📊 DETAILED SCORES:\n")
	fmt.Fprintf(&b, "• Clarity and Cohesion: %s/100\n", formatScore(analysis.Clarity.Score))
	fmt.Fprintf(&b, "• Structure: %s/100\n", formatScore(analysis.Structure.Score))
	fmt.Fprintf(&b, "• Keywords: %s/100\n\n", formatScore(analysis.Keywords.Score))

	fmt.Fprintf(&b, "🔧 TOP IMPROVEMENTS:\n%s\n\n",
		shortList(analysis.Improvements, summaryImprovementLimit, "No improvements identified"))

	fmt.Fprintf(&b, "⭐ TOP STRENGTHS:\n%s\n\n",
		shortList(analysis.Strengths, summaryStrengthLimit, "No strengths identified"))

	fmt.Fprintf(&b, "---\nSmartCV - Powered by Google Gemini\n")

	return b.String()
}

func finalRecommendation(score float64) string {
	switch {
	case score >= 90:
		return "🎉 EXCELLENT! Your résumé is in exceptional shape. Keep refining the small details and keep it always up to date. You are on the right track to stand out in the job market."
	case score >= 80:
		return "👍 VERY GOOD! Your résumé has a solid foundation and is well structured. Apply the suggestions above to reach excellence and stand out even more in the selection process."
	case score >= 70:
		return "📈 GOOD POTENTIAL! Your résumé has a good base, but there are clear opportunities for improvement. Focus on the highest-impact suggestions to significantly raise your competitiveness."
	case score >= 60:
		return "⚠️ ATTENTION NEEDED! Your résumé needs important improvements. Take the time to apply the suggestions above, especially in the areas with the lowest scores."
	default:
		return "🚨 URGENT REVIEW! Your résumé needs a significant rework. Start with the basic structure and clarity, then address keywords and specific details."
	}
}

func scoreLine(score float64) string {
	return fmt.Sprintf("%s/100 (%s)", formatScore(score), ClassifyScore(score).Level)
}

func formatScore(score float64) string {
	if score == float64(int(score)) {
		return fmt.Sprintf("%d", int(score))
	}
	return fmt.Sprintf("%.1f", score)
}

func orUnspecified(filename string) string {
	if filename == "" {
		return "Not specified"
	}
	return filename
}

// bulletList renders items as indented bullets, or the placeholder when the
// list is empty. Empty sections are never rendered blank.
func bulletList(items []string, placeholder string) string {
	if len(items) == 0 {
		return "   • " + placeholder
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "   • "+item)
	}
	return strings.Join(lines, "\n")
}

func prefixedList(items []string, prefix, placeholder string) string {
	if len(items) == 0 {
		return prefix + placeholder
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, prefix+item)
	}
	return strings.Join(lines, "\n")
}

func shortList(items []string, limit int, placeholder string) string {
	if len(items) > limit {
		items = items[:limit]
	}
	if len(items) == 0 {
		return "• " + placeholder
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}
