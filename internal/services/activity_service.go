package services

import (
	"context"

	repository "flowt.dev/flowt/internal/repositories"
)

const (
	recentActivityLimit = 5
	fullActivityLimit   = 50
)

type ActivityService struct {
	activityRepo *repository.ActivityRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

func (s *ActivityService) Recent(ctx context.Context) ([]ActivityEntry, error) {
	return s.list(ctx, recentActivityLimit)
}

func (s *ActivityService) All(ctx context.Context) ([]ActivityEntry, error) {
	return s.list(ctx, fullActivityLimit)
}

func (s *ActivityService) list(ctx context.Context, limit int) ([]ActivityEntry, error) {
	entries, err := s.activityRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]ActivityEntry, 0, len(entries))
	for i := range entries {
		entry := ActivityEntry{
			ID:        entries[i].ID,
			Action:    entries[i].Action,
			Timestamp: entries[i].Timestamp,
			TaskID:    entries[i].TaskID,
			User:      userRef(entries[i].User),
		}
		if entries[i].Task != nil {
			entry.TaskTitle = entries[i].Task.Title
			if entries[i].Task.Column != nil && entries[i].Task.Column.Board != nil {
				entry.BoardID = entries[i].Task.Column.Board.ID
				entry.BoardTitle = entries[i].Task.Column.Board.Title
			}
		}
		out = append(out, entry)
	}
	return out, nil
}
