package home

import (
	"fitchallengeAPI/internal/types/challenge"
	"fitchallengeAPI/internal/types/community"
)

// Content is the combined home-feed payload: the newest challenges as
// trimmed previews plus the newest community messages in full.
type Content struct {
	LatestChallenges        []challenge.Preview `json:"latest_challenges"`
	LatestCommunityMessages []community.Message `json:"latest_community_messages"`
}
