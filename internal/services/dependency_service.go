package services

import (
	"context"

	apperrors "flowt.dev/flowt/internal/errors"
	repository "flowt.dev/flowt/internal/repositories"
)

// DependencyService maintains the directed "blocks" relation between tasks
// and guards it against cycles.
type DependencyService struct {
	taskRepo *repository.TaskRepository
}

func NewDependencyService(taskRepo *repository.TaskRepository) *DependencyService {
	return &DependencyService{taskRepo: taskRepo}
}

// Add inserts the edge task -> blocking task. Self edges are rejected, and
// so is any edge that would close a cycle anywhere in the transitive graph:
// if the dependent task is reachable from the candidate blocking task by
// walking blocked-by edges, accepting the edge would deadlock both chains.
func (s *DependencyService) Add(ctx context.Context, taskID, blockingTaskID string) error {
	if taskID == blockingTaskID {
		return apperrors.ErrSelfDependency
	}

	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return apperrors.ErrTaskNotFound
	}
	if _, err := s.taskRepo.FindByID(ctx, blockingTaskID); err != nil {
		return apperrors.ErrTaskNotFound
	}

	reachable, err := s.reachable(ctx, blockingTaskID, taskID)
	if err != nil {
		return err
	}
	if reachable {
		return apperrors.ErrCircularDependency
	}

	return s.taskRepo.AddDependencyEdge(ctx, taskID, blockingTaskID)
}

// Remove deletes the edge unconditionally; a missing edge is not an error.
func (s *DependencyService) Remove(ctx context.Context, taskID, blockingTaskID string) error {
	return s.taskRepo.RemoveDependencyEdge(ctx, taskID, blockingTaskID)
}

// reachable walks blocked-by edges breadth-first from start looking for
// target.
func (s *DependencyService) reachable(ctx context.Context, start, target string) (bool, error) {
	visited := map[string]bool{start: true}
	frontier := []string{start}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		blockers, err := s.taskRepo.ListBlockedByIDs(ctx, current)
		if err != nil {
			return false, err
		}

		for _, id := range blockers {
			if id == target {
				return true, nil
			}
			if !visited[id] {
				visited[id] = true
				frontier = append(frontier, id)
			}
		}
	}
	return false, nil
}
