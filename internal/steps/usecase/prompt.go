package usecase

const synthesisPromptHeader = `You are a product analyst turning App Store review feedback into a
prioritized action plan for the developers of %q.

The corpus below contains %d reviews grouped by star rating.
`

const synthesisPromptSchema = `
Respond with a single JSON object matching this schema exactly, nothing else:
{
  "steps": [
    {
      "title": "<short imperative>",
      "description": "<what to do and why>",
      "priority": "critical|high|medium|low",
      "category": "bug|performance|feature|ui|content|other",
      "estimatedImpact": "<expected effect>",
      "affectedUsers": <integer estimate>,
      "confidence": <0.0-1.0>,
      "tags": ["<tag>"],
      "timeframe": "immediate|short-term|long-term"
    }
  ],
  "summary": {"totalSteps": 0, "criticalCount": 0, "highCount": 0, "mediumCount": 0, "lowCount": 0},
  "insights": {"keyThemes": ["<theme>"], "overallAssessment": "<one paragraph>"}
}`

const mergePromptTmpl = `The JSON below is a list of actionable steps derived from app reviews.
Merge steps that address the same underlying issue: combine their
descriptions, union their tags, keep the maximum confidence, the highest
priority, the most urgent timeframe, and sum affectedUsers. Leave
unrelated steps untouched.

%s

Respond with the merged result as a single JSON object in the same
schema, nothing else.`
