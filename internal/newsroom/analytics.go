package newsroom

import (
	"context"
	"sort"

	"golang.org/x/sync/singleflight"

	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// EngagementMetrics totals the public-site engagement counters.
type EngagementMetrics struct {
	TotalViews    int
	TotalLikes    int
	TotalComments int
}

// DailyStat aggregates publishing output for one day.
type DailyStat struct {
	Date     string
	Articles int
	Views    int
}

// Analytics is the newsroom dashboard snapshot.
type Analytics struct {
	ArticlesPublished int
	ArticlesInQueue   int
	Engagement        EngagementMetrics
	DailyStats        []DailyStat
	StaffActivity     []shared.ActivityEntry
}

type analyticsState struct {
	group singleflight.Group
}

// Analytics computes the dashboard snapshot. Concurrent computations are
// collapsed into one.
func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	v, err, _ := s.analytics.group.Do("snapshot", func() (any, error) {
		return s.computeAnalytics(ctx)
	})
	if err != nil {
		return Analytics{}, err
	}
	return v.(Analytics), nil
}

func (s *Service) computeAnalytics(ctx context.Context) (Analytics, error) {
	articles, err := s.repo.ListArticles(ctx)
	if err != nil {
		return Analytics{}, err
	}
	queue, err := s.repo.ListQueue(ctx)
	if err != nil {
		return Analytics{}, err
	}

	var out Analytics
	daily := make(map[string]*DailyStat)
	for _, a := range articles {
		out.Engagement.TotalViews += a.Views
		out.Engagement.TotalLikes += a.Likes
		out.Engagement.TotalComments += a.Comments
		if a.Status != StatusPublished || a.PublishedAt == nil {
			continue
		}
		out.ArticlesPublished++
		day := a.PublishedAt.Format("2006-01-02")
		stat, ok := daily[day]
		if !ok {
			stat = &DailyStat{Date: day}
			daily[day] = stat
		}
		stat.Articles++
		stat.Views += a.Views
	}
	for _, item := range queue {
		if item.Status != StatusPublished && item.Status != StatusArchived {
			out.ArticlesInQueue++
		}
	}
	for _, stat := range daily {
		out.DailyStats = append(out.DailyStats, *stat)
	}
	sort.Slice(out.DailyStats, func(i, j int) bool {
		return out.DailyStats[i].Date < out.DailyStats[j].Date
	})

	if s.activity != nil {
		recent, err := s.activity.Recent(ctx, 20)
		if err != nil {
			return Analytics{}, err
		}
		out.StaffActivity = recent
	}
	return out, nil
}
