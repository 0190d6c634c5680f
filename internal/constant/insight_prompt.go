package constant

// Insight generation prompts. Each template receives a pre-built context
// block describing the user's recent entries and emotional trends.
const (
	WeeklySummaryPrompt = `You are an empathetic emotional wellness companion. Write a warm, supportive 3-paragraph weekly summary based on these journal entries:

%s

Focus on:
1. Emotional patterns you notice
2. Positive moments and growth
3. Encouragement and perspective

Keep it warm and supportive. Use "you" to speak directly to the person. Write in a caring, friendly tone.`

	FutureLetterPrompt = `Write a heartfelt letter to someone's future self, %d months from now.

Based on their recent emotional state:
%s

Start with "Dear Future You," and write 3-4 warm, personal paragraphs that:
- Reflect on their current emotional state
- Remind them of their strengths and resilience
- Offer hope, encouragement, and perspective
- Ask thoughtful questions about their growth

Write as if you're a close friend who deeply cares about them. Be genuine and supportive.`

	PatternAnalysisPrompt = `You are an emotional intelligence coach. Analyze these emotional journal patterns and provide 2-3 supportive, insightful paragraphs:

%s

Identify and discuss:
- Recurring emotional patterns and themes
- Possible triggers or situations affecting mood
- Positive coping mechanisms or growth you observe
- Gentle observations about their emotional journey

Be supportive, insightful, and practical. Avoid being overly clinical.`

	RecommendationPrompt = `Based on these emotional patterns, provide 3-4 practical, actionable recommendations:

%s

Suggest specific activities, practices, or approaches that could help them based on their emotional state. Be:
- Specific and actionable (not vague advice)
- Supportive and encouraging
- Considerate of their current emotional state
- Practical and realistic

Format as a friendly paragraph followed by bullet points.`
)

// Empty-state messages returned when a user lacks the entries an insight needs.
const (
	WeeklySummaryEmptyMessage   = "You haven't written any entries this week. Start journaling to see your summary!"
	FutureLetterEmptyMessage    = "Start writing to unlock letters to your future self!"
	PatternAnalysisEmptyMessage = "Keep writing! Pattern analysis becomes available after 5 entries."
	RecommendationEmptyMessage  = "Start journaling to get personalized recommendations!"
)
