package services

import (
	"context"

	"fitchallengeAPI/internal/types/home"
)

const (
	latestChallengeCount = 5
	latestMessageCount   = 7
)

// HomeService composes the home feed out of the challenge and community
// services. It is read-only.
type HomeService struct {
	challenges *ChallengeService
	community  *CommunityService
}

func NewHomeService(challenges *ChallengeService, community *CommunityService) *HomeService {
	return &HomeService{challenges: challenges, community: community}
}

// LatestContent returns the newest challenges and chat messages. Both lists
// are empty, never nil, when there is nothing to show.
func (s *HomeService) LatestContent(ctx context.Context) (*home.Content, error) {
	previews, err := s.challenges.LatestPreviews(ctx, latestChallengeCount)
	if err != nil {
		return nil, err
	}

	messages, err := s.community.LatestMessages(ctx, latestMessageCount)
	if err != nil {
		return nil, err
	}

	return &home.Content{
		LatestChallenges:        previews,
		LatestCommunityMessages: messages,
	}, nil
}
