package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"echoverse-be/internal/constant"
	"echoverse-be/internal/dto"
	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/specification"
	"echoverse-be/internal/repository/unitofwork"
	"echoverse-be/pkg/events"
	"echoverse-be/pkg/llm"
	pktNats "echoverse-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	defaultMonthsAhead   = 3
	minPatternEntries    = 5
	insightPreviewLength = 120
)

type IInsightService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateInsightRequest) (*dto.InsightResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.InsightResponse, error)
	List(ctx context.Context, userId uuid.UUID, req *dto.ListInsightsRequest) (*dto.ListInsightsResponse, error)
	MarkAsRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type insightService struct {
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.LLMProvider
	model          string
	eventPublisher *pktNats.Publisher
}

func NewInsightService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	model string,
	eventPublisher *pktNats.Publisher,
) IInsightService {
	return &insightService{
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		model:          model,
		eventPublisher: eventPublisher,
	}
}

// entrySnapshot is the per-entry view the prompt builders work from,
// ordered oldest first.
type entrySnapshot struct {
	Date      string
	Emotion   string
	Sentiment float64
	Preview   string
}

func (s *insightService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateInsightRequest) (*dto.InsightResponse, error) {
	insightType := entity.InsightType(req.InsightType)
	if !entity.ValidInsightType(insightType) {
		return nil, errors.New("unsupported insight type")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	start, end := s.resolvePeriod(insightType, req)

	snapshots, err := s.loadSnapshots(ctx, uow, userId, start, end)
	if err != nil {
		return nil, err
	}

	months := req.MonthsAhead
	if months < 1 {
		months = defaultMonthsAhead
	}

	content, generated := s.composeInsight(ctx, insightType, snapshots, months)

	insight := &entity.Insight{
		Id:          uuid.New(),
		UserId:      userId,
		InsightType: insightType,
		Title:       insightTitle(insightType),
		Content:     content,
		PeriodStart: start,
		PeriodEnd:   end,
		Generated:   generated,
		CreatedAt:   time.Now(),
	}

	if err := uow.InsightRepository().Create(ctx, insight); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(events.TypeInsightReady, map[string]interface{}{
			"user_id":      userId.String(),
			"insight_id":   insight.Id.String(),
			"insight_type": string(insightType),
			"entity_type":  "insight",
			"entity_id":    insight.Id.String(),
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish INSIGHT_READY event: %v\n", err)
		}
	}

	return insightToResponse(insight), nil
}

func (s *insightService) resolvePeriod(insightType entity.InsightType, req *dto.GenerateInsightRequest) (time.Time, time.Time) {
	now := time.Now()
	end := now

	var start time.Time
	switch insightType {
	case entity.InsightTypePatternAnalysis:
		start = now.AddDate(0, 0, -30)
	default:
		start = now.AddDate(0, 0, -7)
	}

	if req.PeriodStart != "" {
		if t, err := time.Parse("2006-01-02", req.PeriodStart); err == nil {
			start = t
		}
	}
	if req.PeriodEnd != "" {
		if t, err := time.Parse("2006-01-02", req.PeriodEnd); err == nil {
			// End date is inclusive
			end = t.AddDate(0, 0, 1)
		}
	}

	return start, end
}

func (s *insightService) loadSnapshots(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, start, end time.Time) ([]entrySnapshot, error) {
	analyses, err := uow.EmotionAnalysisRepository().FindForUser(ctx, userId, start, end)
	if err != nil {
		return nil, err
	}
	if len(analyses) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(analyses))
	for _, a := range analyses {
		ids = append(ids, a.EntryId)
	}

	entries, err := uow.EntryRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.Entry, len(entries))
	for _, e := range entries {
		byId[e.Id] = e
	}

	snapshots := make([]entrySnapshot, 0, len(analyses))
	for _, a := range analyses {
		entry, ok := byId[a.EntryId]
		if !ok {
			continue
		}
		snapshots = append(snapshots, entrySnapshot{
			Date:      entry.CreatedAt.Format("2006-01-02"),
			Emotion:   a.PrimaryEmotion,
			Sentiment: a.SentimentPolarity,
			Preview:   previewText(entry.Content),
		})
	}
	return snapshots, nil
}

func (s *insightService) composeInsight(ctx context.Context, insightType entity.InsightType, snapshots []entrySnapshot, months int) (string, bool) {
	switch insightType {
	case entity.InsightTypeWeeklySummary:
		if len(snapshots) == 0 {
			return constant.WeeklySummaryEmptyMessage, false
		}
		prompt := fmt.Sprintf(constant.WeeklySummaryPrompt, weeklyContext(snapshots))
		if text := s.callModel(ctx, prompt); text != "" {
			return text, true
		}
		return fallbackSummary(snapshots), false

	case entity.InsightTypeFutureLetter:
		if len(snapshots) == 0 {
			return constant.FutureLetterEmptyMessage, false
		}
		prompt := fmt.Sprintf(constant.FutureLetterPrompt, months, letterContext(snapshots))
		if text := s.callModel(ctx, prompt); text != "" {
			return text, true
		}
		return fallbackLetter(months), false

	case entity.InsightTypePatternAnalysis:
		if len(snapshots) < minPatternEntries {
			return constant.PatternAnalysisEmptyMessage, false
		}
		prompt := fmt.Sprintf(constant.PatternAnalysisPrompt, patternContext(snapshots))
		if text := s.callModel(ctx, prompt); text != "" {
			return text, true
		}
		return fallbackPatternAnalysis(snapshots), false

	default: // recommendation
		if len(snapshots) == 0 {
			return constant.RecommendationEmptyMessage, false
		}
		prompt := fmt.Sprintf(constant.RecommendationPrompt, recommendationContext(snapshots))
		if text := s.callModel(ctx, prompt); text != "" {
			return text, true
		}
		return fallbackRecommendations(snapshots), false
	}
}

func (s *insightService) callModel(ctx context.Context, prompt string) string {
	if s.llmProvider == nil {
		return ""
	}

	opts := []llm.Option{
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(1024),
	}
	if s.model != "" {
		opts = append(opts, llm.WithModel(s.model))
	}

	text, err := s.llmProvider.Generate(ctx, prompt, opts...)
	if err != nil {
		fmt.Printf("[WARN] Insight generation failed, using fallback: %v\n", err)
		return ""
	}
	return strings.TrimSpace(text)
}

// lastN returns the trailing n snapshots.
func lastN(snapshots []entrySnapshot, n int) []entrySnapshot {
	if len(snapshots) <= n {
		return snapshots
	}
	return snapshots[len(snapshots)-n:]
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// emotionCounts tallies primary emotions, preserving first-seen order for ties.
func emotionCounts(snapshots []entrySnapshot) ([]string, map[string]int) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, snap := range snapshots {
		if _, seen := counts[snap.Emotion]; !seen {
			order = append(order, snap.Emotion)
		}
		counts[snap.Emotion]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order, counts
}

func dominantEmotion(snapshots []entrySnapshot) string {
	order, _ := emotionCounts(snapshots)
	if len(order) == 0 {
		return "neutral"
	}
	return order[0]
}

func averageSentiment(snapshots []entrySnapshot) float64 {
	if len(snapshots) == 0 {
		return 0
	}
	var sum float64
	for _, snap := range snapshots {
		sum += snap.Sentiment
	}
	return sum / float64(len(snapshots))
}

func weeklyContext(snapshots []entrySnapshot) string {
	recent := lastN(snapshots, 7)
	parts := make([]string, 0, len(recent))
	for i, snap := range recent {
		parts = append(parts, fmt.Sprintf(
			"Entry %d (%s):\nPrimary emotion: %s\nSentiment: %.2f\nPreview: %s\n",
			i+1, snap.Date, snap.Emotion, snap.Sentiment, truncateRunes(snap.Preview, 100),
		))
	}
	return strings.Join(parts, "\n")
}

func letterContext(snapshots []entrySnapshot) string {
	recent := lastN(snapshots, 10)

	order, counts := emotionCounts(recent)
	top := order
	if len(top) > 3 {
		top = top[:3]
	}
	common := make([]string, 0, len(top))
	for _, name := range top {
		common = append(common, fmt.Sprintf("%s (%d)", name, counts[name]))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Recent emotional state:
- Most common emotions: %s
- Average sentiment: %.2f (-1 to 1 scale)
- Number of entries: %d

Sample recent thoughts:
`, strings.Join(common, ", "), averageSentiment(recent), len(recent))

	for _, snap := range lastN(recent, 3) {
		fmt.Fprintf(&b, "- %s\n", truncateRunes(snap.Preview, 150))
	}
	return b.String()
}

func patternContext(snapshots []entrySnapshot) string {
	recent := lastN(snapshots, 30)

	order, counts := emotionCounts(recent)
	freq := make([]string, 0, len(order))
	for _, name := range order {
		freq = append(freq, fmt.Sprintf("%s: %d", name, counts[name]))
	}

	minSent, maxSent := recent[0].Sentiment, recent[0].Sentiment
	for _, snap := range recent {
		if snap.Sentiment < minSent {
			minSent = snap.Sentiment
		}
		if snap.Sentiment > maxSent {
			maxSent = snap.Sentiment
		}
	}

	// Day-of-month activity
	dayCounts := make(map[string]int)
	dayOrder := make([]string, 0)
	for _, snap := range recent {
		parts := strings.Split(snap.Date, "-")
		if len(parts) != 3 {
			continue
		}
		day := parts[2]
		if _, seen := dayCounts[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		dayCounts[day]++
	}
	sort.SliceStable(dayOrder, func(i, j int) bool {
		return dayCounts[dayOrder[i]] > dayCounts[dayOrder[j]]
	})
	if len(dayOrder) > 3 {
		dayOrder = dayOrder[:3]
	}

	return fmt.Sprintf(`Analysis of last %d entries:

Emotion frequency:
%s

Average sentiment: %.2f

Most active days: %s

Sentiment range: %.2f to %.2f
`, len(recent), strings.Join(freq, ", "), averageSentiment(recent),
		strings.Join(dayOrder, ", "), minSent, maxSent)
}

func recommendationContext(snapshots []entrySnapshot) string {
	recent := lastN(snapshots, 7)
	order, _ := emotionCounts(recent)

	return fmt.Sprintf(`Recent week summary:
- Dominant emotion: %s
- Average sentiment: %.2f
- Entry frequency: %d entries in past 7 days
- Emotional variety: %d different emotions
`, dominantEmotion(recent), averageSentiment(recent), len(recent), len(order))
}

func fallbackSummary(snapshots []entrySnapshot) string {
	order, counts := emotionCounts(snapshots)
	dominant := "neutral"
	if len(order) > 0 {
		dominant = order[0]
	}
	avg := averageSentiment(snapshots)

	summary := fmt.Sprintf(`This week you wrote %d journal entries, showing great dedication to self-reflection!

Your emotional journey this week has been centered around %s, which appeared in %d entries. `,
		len(snapshots), dominant, counts[dominant])

	switch {
	case avg > 0.2:
		summary += "Overall, there's a positive tone to your reflections, which suggests you're finding moments of brightness even in challenging times. "
	case avg < -0.2:
		summary += "Your entries reflect some challenging emotions this week. Remember, it's okay to feel difficult emotions - acknowledging them is the first step to processing them. "
	default:
		summary += "Your emotional state has been fairly balanced this week, showing both ups and downs. "
	}

	if len(order) >= 4 {
		summary += "You experienced a wide range of emotions, which is completely normal and human. "
	}

	summary += "\n\nEach entry you write is valuable progress in understanding yourself better. Keep going - you're doing great work on your emotional wellness journey!"

	return summary
}

func fallbackPatternAnalysis(snapshots []entrySnapshot) string {
	dominant := dominantEmotion(snapshots)
	capitalized := strings.ToUpper(dominant[:1]) + dominant[1:]

	return fmt.Sprintf(`Based on your recent %d entries, I notice some interesting patterns in your emotional landscape.

%s appears to be a recurring theme in your journal. This emotion has shown up consistently, which might indicate it's connected to ongoing situations in your life. Recognizing this pattern is valuable - it gives you insight into what's affecting you emotionally.

Your entries show genuine self-reflection and emotional awareness. The fact that you're consistently journaling demonstrates a commitment to understanding yourself better, which is a powerful tool for emotional growth and well-being.`,
		len(snapshots), capitalized)
}

func fallbackRecommendations(snapshots []entrySnapshot) string {
	dominant := dominantEmotion(snapshots)

	recommendations := fmt.Sprintf(`Based on your recent emotional patterns, here are some supportive suggestions:

Since %s has been prominent in your entries, consider activities that help you process this emotion constructively. `, dominant)

	switch dominant {
	case "sadness", "anxiety", "fear":
		recommendations += `
• Practice gentle self-care activities like walking, listening to music, or connecting with supportive friends
• Consider mindfulness or breathing exercises to help manage difficult emotions
• Remember that seeking support from others is a sign of strength, not weakness
• Keep journaling - expressing your feelings is therapeutic`
	case "anger", "frustration":
		recommendations += `
• Channel energy into physical activities or creative outlets
• Practice identifying triggers before they escalate
• Take breaks when you notice tension building
• Express your needs clearly and calmly to others`
	case "joy", "love", "excitement":
		recommendations += `
• Savor these positive moments and reflect on what brings them about
• Share your happiness with others - joy multiplies when shared
• Document what's working well so you can recreate these feelings
• Use this positive energy to tackle challenges you've been postponing`
	default:
		recommendations += `
• Continue your journaling practice to build emotional awareness
• Try new activities to discover what brings you fulfillment
• Set small, achievable goals to build momentum
• Connect with others and nurture your relationships`
	}

	return recommendations
}

func fallbackLetter(months int) string {
	return fmt.Sprintf(`Dear Future You,

%d months from now, you'll look back at this moment and see how much you've grown. Right now, you're taking the time to understand your emotions and process your experiences through journaling.

Whatever challenges you're facing today, remember that you have the strength to work through them. The fact that you're writing and reflecting shows your commitment to personal growth.

Keep going. You're doing great.

With care,
Your Present Self`, months)
}

func insightTitle(insightType entity.InsightType) string {
	switch insightType {
	case entity.InsightTypeWeeklySummary:
		return "Weekly Emotional Summary"
	case entity.InsightTypeFutureLetter:
		return "Letter to Future You"
	case entity.InsightTypePatternAnalysis:
		return "Emotional Pattern Analysis"
	case entity.InsightTypeRecommendation:
		return "Personalized Recommendations"
	}
	return "Insight"
}

func insightToResponse(insight *entity.Insight) *dto.InsightResponse {
	return &dto.InsightResponse{
		Id:          insight.Id,
		InsightType: string(insight.InsightType),
		Title:       insight.Title,
		Content:     insight.Content,
		PeriodStart: insight.PeriodStart,
		PeriodEnd:   insight.PeriodEnd,
		Generated:   insight.Generated,
		IsRead:      insight.IsRead,
		CreatedAt:   insight.CreatedAt,
	}
}

func (s *insightService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.InsightResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	insight, err := uow.InsightRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if insight == nil {
		return nil, nil
	}

	// Opening an insight marks it read
	if !insight.IsRead {
		if err := uow.InsightRepository().MarkAsRead(ctx, insight.Id); err == nil {
			insight.IsRead = true
		}
	}

	return insightToResponse(insight), nil
}

func (s *insightService) List(ctx context.Context, userId uuid.UUID, req *dto.ListInsightsRequest) (*dto.ListInsightsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	filters := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
	}
	if req.InsightType != "" {
		filters = append(filters, specification.ByInsightType{InsightType: req.InsightType})
	}

	total, err := uow.InsightRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.UnreadFirst{},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	insights, err := uow.InsightRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.InsightListItem, 0, len(insights))
	for _, insight := range insights {
		preview := strings.Join(strings.Fields(insight.Content), " ")
		if len([]rune(preview)) > insightPreviewLength {
			preview = truncateRunes(preview, insightPreviewLength) + "..."
		}
		items = append(items, dto.InsightListItem{
			Id:          insight.Id,
			InsightType: string(insight.InsightType),
			Title:       insight.Title,
			Preview:     preview,
			Generated:   insight.Generated,
			IsRead:      insight.IsRead,
			CreatedAt:   insight.CreatedAt,
		})
	}

	return &dto.ListInsightsResponse{
		Insights: items,
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}

func (s *insightService) MarkAsRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	insight, err := uow.InsightRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if insight == nil {
		return errors.New("insight not found")
	}

	return uow.InsightRepository().MarkAsRead(ctx, insight.Id)
}
