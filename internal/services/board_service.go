package services

import (
	"context"
	"fmt"

	"flowt.dev/flowt/internal/auth"
	"flowt.dev/flowt/internal/constants"
	apperrors "flowt.dev/flowt/internal/errors"
	model "flowt.dev/flowt/internal/models"
	repository "flowt.dev/flowt/internal/repositories"
)

// BoardService owns board and column mutations, keeping the ordering
// protocol consistent: columns renumber 0..N-1 on bulk reorder, creations
// append at the caller-supplied end position, and reads tie-break on id.
type BoardService struct {
	boardRepo   *repository.BoardRepository
	columnRepo  *repository.ColumnRepository
	taskRepo    *repository.TaskRepository
	settingRepo *repository.SettingRepository
	permissions *PermissionService
}

func NewBoardService(
	boardRepo *repository.BoardRepository,
	columnRepo *repository.ColumnRepository,
	taskRepo *repository.TaskRepository,
	settingRepo *repository.SettingRepository,
	permissions *PermissionService,
) *BoardService {
	return &BoardService{
		boardRepo:   boardRepo,
		columnRepo:  columnRepo,
		taskRepo:    taskRepo,
		settingRepo: settingRepo,
		permissions: permissions,
	}
}

// ListBoards returns every board for administrators, otherwise boards the
// caller owns or belongs to, with per-column task counts.
func (s *BoardService) ListBoards(ctx context.Context, caller auth.Caller) ([]BoardSummary, error) {
	var (
		boards []model.Board
		err    error
	)
	if caller.IsAdmin {
		boards, err = s.boardRepo.ListAll(ctx)
	} else {
		boards, err = s.boardRepo.ListForUser(ctx, caller.ID)
	}
	if err != nil {
		return nil, err
	}

	boardIDs := make([]string, 0, len(boards))
	for i := range boards {
		boardIDs = append(boardIDs, boards[i].ID)
	}
	counts, err := s.boardRepo.CountTasksByColumn(ctx, boardIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]BoardSummary, 0, len(boards))
	for i := range boards {
		summary := BoardSummary{
			ID:      boards[i].ID,
			Title:   boards[i].Title,
			OwnerID: boards[i].OwnerID,
		}
		for j := range boards[i].Columns {
			col := boards[i].Columns[j]
			summary.Columns = append(summary.Columns, ColumnSummary{
				ID:        col.ID,
				Title:     col.Title,
				Order:     col.Order,
				TaskCount: counts[col.ID],
			})
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetBoard returns the full nested board payload for the board view.
func (s *BoardService) GetBoard(ctx context.Context, id string) (*BoardDetail, error) {
	board, err := s.boardRepo.FindWithData(ctx, id)
	if err != nil {
		return nil, apperrors.ErrBoardNotFound
	}

	detail := &BoardDetail{
		ID:      board.ID,
		Title:   board.Title,
		OwnerID: board.OwnerID,
		Labels:  board.Labels,
	}
	if detail.Labels == nil {
		detail.Labels = []model.Label{}
	}

	for i := range board.Columns {
		col := board.Columns[i]
		columnDetail := ColumnDetail{
			ID:    col.ID,
			Title: col.Title,
			Order: col.Order,
			Tasks: []TaskCard{},
		}
		for j := range col.Tasks {
			task := col.Tasks[j]
			columnDetail.Tasks = append(columnDetail.Tasks, TaskCard{
				ID:             task.ID,
				Title:          task.Title,
				Description:    task.Description,
				Order:          task.Order,
				IsCompleted:    task.IsCompleted,
				DueDate:        task.DueDate,
				ColumnID:       task.ColumnID,
				Assignee:       userRef(task.Assignee),
				Labels:         task.Labels,
				SubtaskCount:   len(task.Subtasks),
				BlockedByCount: len(task.BlockedBy),
			})
		}
		detail.Columns = append(detail.Columns, columnDetail)
	}
	return detail, nil
}

func (s *BoardService) CreateBoard(ctx context.Context, caller auth.Caller, title string) (*model.Board, error) {
	ok, err := s.permissions.Has(ctx, caller.ID, constants.PermCreateBoard)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrCreateBoardDenied
	}

	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	return s.boardRepo.Create(ctx, title, caller.ID)
}

// DeleteBoard is permitted for the owner or an administrator only,
// independent of the group-permission table.
func (s *BoardService) DeleteBoard(ctx context.Context, caller auth.Caller, id string) error {
	board, err := s.boardRepo.FindByID(ctx, id)
	if err != nil {
		return apperrors.ErrBoardNotFound
	}

	if board.OwnerID != caller.ID && !caller.IsAdmin {
		return apperrors.ErrDeleteBoardDenied
	}

	return s.boardRepo.Delete(ctx, id)
}

// CanCreateBoard is the UI gate: administrators always; other users only
// when the instance setting allows it.
func (s *BoardService) CanCreateBoard(ctx context.Context, caller auth.Caller) (bool, error) {
	if caller.IsAdmin {
		return true, nil
	}
	value, err := s.settingRepo.Get(ctx, constants.SettingAllowBoardCreation)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func (s *BoardService) CreateColumn(ctx context.Context, caller auth.Caller, boardID, title string, order int) (*model.Column, error) {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditBoard); err != nil {
		return nil, err
	}
	if _, err := s.boardRepo.FindByID(ctx, boardID); err != nil {
		return nil, apperrors.ErrBoardNotFound
	}
	return s.columnRepo.Create(ctx, boardID, title, order)
}

func (s *BoardService) UpdateColumn(ctx context.Context, caller auth.Caller, columnID, title string) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditBoard); err != nil {
		return err
	}
	if err := s.columnRepo.Rename(ctx, columnID, title); err != nil {
		return apperrors.ErrColumnNotFound
	}
	return nil
}

func (s *BoardService) DeleteColumn(ctx context.Context, caller auth.Caller, columnID string) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditBoard); err != nil {
		return err
	}
	if _, err := s.columnRepo.FindByID(ctx, columnID); err != nil {
		return apperrors.ErrColumnNotFound
	}
	return s.columnRepo.Delete(ctx, columnID)
}

func (s *BoardService) UpdateColumnOrder(ctx context.Context, caller auth.Caller, columnID string, order int) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditBoard); err != nil {
		return err
	}
	if err := s.columnRepo.UpdateOrder(ctx, columnID, order); err != nil {
		return apperrors.ErrColumnNotFound
	}
	return nil
}

// UpdateColumnsOrder renumbers the given sequence 0..N-1 atomically.
func (s *BoardService) UpdateColumnsOrder(ctx context.Context, caller auth.Caller, columnIDs []string) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditBoard); err != nil {
		return err
	}
	return s.columnRepo.UpdateOrders(ctx, columnIDs)
}

// Stats powers the dashboard header. Completion is membership in the done
// column, not the per-task completed flag.
func (s *BoardService) Stats(ctx context.Context) (DashboardStats, error) {
	total, err := s.taskRepo.CountAll(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	completed, err := s.taskRepo.CountInColumnsTitled(ctx, constants.DoneColumnTitle)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
		Efficiency:     "0%",
	}
	if total > 0 {
		stats.Efficiency = fmt.Sprintf("%d%%", int((float64(completed)/float64(total))*100+0.5))
	}
	return stats, nil
}
