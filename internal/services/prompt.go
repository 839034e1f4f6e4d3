package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt embeds the résumé content into the fixed evaluation
// template. The JSON skeleton and the formatting constraints are the contract
// the response parser validates against, so they must stay in sync with it.
func (pb *PromptBuilder) BuildAnalysisPrompt(content string) string {
	return fmt.Sprintf(`You are an expert résumé reviewer and human-resources specialist with more than 15 years of experience.
Analyze the résumé below in a detailed and critical way, returning your analysis as valid JSON with EXACTLY this structure:

{
  "overallScore": [number from 0 to 100],
  "clarity": {
    "score": [number from 0 to 100],
    "feedback": "[detailed feedback on clarity and cohesion of the text]",
    "suggestions": ["suggestion 1", "suggestion 2", "suggestion 3"]
  },
  "structure": {
    "score": [number from 0 to 100],
    "feedback": "[feedback on organization and structure]",
    "suggestions": ["suggestion 1", "suggestion 2", "suggestion 3"]
  },
  "keywords": {
    "score": [number from 0 to 100],
    "missing": ["missing keyword 1", "missing keyword 2"],
    "present": ["present keyword 1", "present keyword 2"],
    "suggestions": ["suggestion 1", "suggestion 2"]
  },
  "improvements": ["improvement 1", "improvement 2", "improvement 3"],
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "summary": "[overall summary of the analysis in 2-3 sentences]"
}

EVALUATION CRITERIA:

1. CLARITY AND COHESION (0-100):
- Clear, objective and professional language
- Absence of grammar and spelling mistakes
- Reading flow and connection between ideas
- Proper use of action verbs

2. STRUCTURE AND ORGANIZATION (0-100):
- Logical organization of sections (personal details, objective, experience, education, skills)
- Consistent and professional formatting
- Clear hierarchy of information
- Proper use of bullet points and spacing
- Adequate chronology (most recent first)

3. KEYWORDS AND RELEVANCE (0-100):
- Presence of technical terms relevant to the field
- Technical skills and soft skills mentioned
- Alignment with current job-market trends
- Use of keywords that pass ATS screening systems

IMPORTANT INSTRUCTIONS:
- Be specific and constructive in the suggestions
- Focus on practical, actionable improvements
- Return ONLY the valid JSON, with no additional text
- Use double quotes for all strings
- Do not use line breaks inside JSON strings

RÉSUMÉ TO ANALYZE:
%s`, content)
}
