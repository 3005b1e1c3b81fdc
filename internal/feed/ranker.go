package feed

import (
	"math"
	"sort"
	"strings"
	"time"

	"gameotion/internal/dbmysql"
)

// Scoring weights. They sum to 1.0 so a well-formed item with a past
// timestamp always scores in [0, 1].
const (
	weightRecency    = 0.5
	weightUserMatch  = 0.3
	weightEngagement = 0.2

	// Recency decays linearly to zero over this many hours.
	recencyWindowHours = 24.0

	// Engagement saturates at this many likes+comments (or hint).
	engagementCeiling = 500.0
)

// ScoringContext carries the per-request inputs to the ranker. Now is
// captured once per request so every candidate ages against the same
// instant.
type ScoringContext struct {
	Game        string
	City        string
	FriendsOnly bool
	FriendIDs   map[string]struct{}
	Now         time.Time
}

// RankedResult is one page of the ranked feed. NextPage is nil once the
// feed is exhausted.
type RankedResult struct {
	Items    []dbmysql.FeedItem `json:"items"`
	NextPage *int               `json:"nextPage"`
}

type scoredItem struct {
	item  dbmysql.FeedItem
	score float64
}

// Rank filters, scores, sorts and paginates a snapshot of feed
// candidates. It is a pure function of its inputs: the candidate slice
// is never mutated and no external state is consulted.
//
// The game filter is applied twice on purpose — once as a hard
// exclusion here, and once more as a contribution to the user-match
// score. Clients rely on both.
func Rank(candidates []dbmysql.FeedItem, sc ScoringContext, page, limit int) RankedResult {
	// Callers pass 1-based pages; anything lower reads as the first page.
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	scored := make([]scoredItem, 0, len(candidates))
	for _, it := range candidates {
		if sc.Game != "" && !matchesGame(it, sc.Game) {
			continue
		}
		scored = append(scored, scoredItem{item: it, score: Score(it, sc)})
	}

	// Score descending; ties break on createdAt descending then id
	// ascending so identical requests always return identical pages.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		ti, tj := itemCreatedAt(scored[i].item), itemCreatedAt(scored[j].item)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return itemID(scored[i].item) < itemID(scored[j].item)
	})

	start := (page - 1) * limit
	end := start + limit

	items := make([]dbmysql.FeedItem, 0, limit)
	if start < len(scored) {
		if end > len(scored) {
			end = len(scored)
		}
		for _, s := range scored[start:end] {
			items = append(items, s.item)
		}
	}

	var nextPage *int
	if start+limit < len(scored) {
		next := page + 1
		nextPage = &next
	}

	return RankedResult{Items: items, NextPage: nextPage}
}

// Score computes the relevance of a single item:
//
//	0.5*recency + 0.3*userMatch + 0.2*engagement
//
// Recency is max(0, 1 - ageHours/24). Items dated in the future score
// above 1 and are deliberately not clamped. A zero createdAt reads as
// infinitely old and contributes nothing.
func Score(it dbmysql.FeedItem, sc ScoringContext) float64 {
	ageHours := sc.Now.Sub(itemCreatedAt(it)).Hours()
	recency := math.Max(0, 1-ageHours/recencyWindowHours)

	userMatch := 0.0
	if matchesRequester(it, sc) {
		userMatch = 1.0
	}

	engagement := math.Min(1, float64(engagementRaw(it))/engagementCeiling)

	return weightRecency*recency + weightUserMatch*userMatch + weightEngagement*engagement
}

// matchesRequester is the binary user-match signal: any one of a game
// match, a city match, or friendship with the author counts.
func matchesRequester(it dbmysql.FeedItem, sc ScoringContext) bool {
	if sc.Game != "" && matchesGame(it, sc.Game) {
		return true
	}

	// City comparison is case-insensitive; game comparison above is
	// not. The asymmetry is part of the contract.
	if city := itemCity(it); sc.City != "" && city != "" && strings.EqualFold(sc.City, city) {
		return true
	}

	if sc.FriendsOnly {
		if post, ok := it.(dbmysql.Post); ok {
			if _, isFriend := sc.FriendIDs[post.AuthorID]; isFriend {
				return true
			}
		}
	}

	return false
}

// matchesGame reads the variant-appropriate tag field: posts carry a
// tag set, events carry at most one tag. Matching is exact and
// case-sensitive.
func matchesGame(it dbmysql.FeedItem, game string) bool {
	switch v := it.(type) {
	case dbmysql.Post:
		for _, tag := range v.GameTags {
			if tag == game {
				return true
			}
		}
		return false
	case dbmysql.Event:
		return v.GameTag == game
	}
	return false
}

func engagementRaw(it dbmysql.FeedItem) int {
	switch v := it.(type) {
	case dbmysql.Post:
		return v.LikesCount + v.CommentsCount
	case dbmysql.Event:
		return v.EngagementHint
	}
	return 0
}

func itemCity(it dbmysql.FeedItem) string {
	switch v := it.(type) {
	case dbmysql.Post:
		return v.Location.City
	case dbmysql.Event:
		return v.City
	}
	return ""
}

func itemCreatedAt(it dbmysql.FeedItem) time.Time {
	switch v := it.(type) {
	case dbmysql.Post:
		return v.CreatedAt
	case dbmysql.Event:
		return v.CreatedAt
	}
	return time.Time{}
}

func itemID(it dbmysql.FeedItem) string {
	switch v := it.(type) {
	case dbmysql.Post:
		return v.PostID
	case dbmysql.Event:
		return v.EventID
	}
	return ""
}
