package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"flowt.dev/flowt/internal/auth"
	apperrors "flowt.dev/flowt/internal/errors"
)

// boardFixture creates a board for the caller and returns the ids of its
// three default columns in order.
func boardFixture(t *testing.T, e *env, caller auth.Caller) (boardID string, columns []string) {
	ctx := context.Background()
	board, err := e.boards.CreateBoard(ctx, caller, "Sprint")
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	detail, err := e.boards.GetBoard(ctx, board.ID)
	if err != nil {
		t.Fatalf("GetBoard failed: %v", err)
	}
	for _, col := range detail.Columns {
		columns = append(columns, col.ID)
	}
	return board.ID, columns
}

func TestCreateTask_LogsActivity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	task, err := e.tasks.CreateTask(ctx, admin, cols[0], "Ship it", 0)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.ID == "" || task.ColumnID != cols[0] {
		t.Fatalf("unexpected task: %+v", task)
	}

	entries, err := e.activity.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one activity entry, got %d", len(entries))
	}
	if entries[0].Action != `created task "Ship it"` {
		t.Errorf("unexpected action: %q", entries[0].Action)
	}
	if entries[0].User == nil || entries[0].User.Username != "root" {
		t.Errorf("entry should carry the acting user, got %+v", entries[0].User)
	}
}

func TestCreateTask_RequiresPermission(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	loner := e.createLoner(t, "drifter")
	if _, err := e.tasks.CreateTask(ctx, loner, cols[0], "Nope", 0); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	member := e.createMember(t, "worker", `["create_task"]`)
	if _, err := e.tasks.CreateTask(ctx, member, cols[0], "Allowed", 0); err != nil {
		t.Fatalf("member with create_task should succeed, got %v", err)
	}
}

func TestCreateTask_TitleRequired(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	if _, err := e.tasks.CreateTask(ctx, admin, cols[0], "", 0); !errors.Is(err, apperrors.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
}

func TestToggleCompletion_RefusedWhileBlocked(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	blocked, _ := e.tasks.CreateTask(ctx, admin, cols[0], "blocked", 0)
	blocker, _ := e.tasks.CreateTask(ctx, admin, cols[0], "blocker", 1)

	if err := e.deps.Add(ctx, blocked.ID, blocker.ID); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := e.tasks.ToggleCompletion(ctx, admin, blocked.ID, true)
	if !errors.Is(err, apperrors.ErrTaskBlocked) {
		t.Fatalf("expected ErrTaskBlocked, got %v", err)
	}
	if err.Error() != "Cannot complete a blocked task" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	// Un-completing is never gated, and the blocker itself can complete.
	if err := e.tasks.ToggleCompletion(ctx, admin, blocked.ID, false); err != nil {
		t.Fatalf("un-completing should succeed, got %v", err)
	}
	if err := e.tasks.ToggleCompletion(ctx, admin, blocker.ID, true); err != nil {
		t.Fatalf("completing the blocker should succeed, got %v", err)
	}

	if err := e.deps.Remove(ctx, blocked.ID, blocker.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := e.tasks.ToggleCompletion(ctx, admin, blocked.ID, true); err != nil {
		t.Fatalf("completing after unblocking should succeed, got %v", err)
	}

	detail, _ := e.tasks.TaskDetails(ctx, blocked.ID)
	if !detail.IsCompleted {
		t.Error("task should be completed")
	}
}

func TestMoveTask_TouchesOnlyMovedTask(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	first, _ := e.tasks.CreateTask(ctx, admin, cols[0], "first", 0)
	second, _ := e.tasks.CreateTask(ctx, admin, cols[0], "second", 1)

	if err := e.tasks.MoveTask(ctx, admin, first.ID, cols[1], 0); err != nil {
		t.Fatalf("MoveTask failed: %v", err)
	}

	moved, _ := e.tasks.TaskDetails(ctx, first.ID)
	if moved.ColumnID != cols[1] || moved.Order != 0 {
		t.Errorf("moved task in wrong place: column=%s order=%d", moved.ColumnID, moved.Order)
	}

	stayed, _ := e.tasks.TaskDetails(ctx, second.ID)
	if stayed.ColumnID != cols[0] || stayed.Order != 1 {
		t.Errorf("sibling should be untouched: column=%s order=%d", stayed.ColumnID, stayed.Order)
	}
}

func TestMoveTask_SamePositionIsNoOp(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	task, _ := e.tasks.CreateTask(ctx, admin, cols[0], "still", 3)
	if err := e.tasks.MoveTask(ctx, admin, task.ID, cols[0], 3); err != nil {
		t.Fatalf("no-op move should succeed, got %v", err)
	}

	detail, _ := e.tasks.TaskDetails(ctx, task.ID)
	if detail.ColumnID != cols[0] || detail.Order != 3 {
		t.Errorf("task moved unexpectedly: column=%s order=%d", detail.ColumnID, detail.Order)
	}
}

func TestUpdateTask_PartialPatch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	task, _ := e.tasks.CreateTask(ctx, admin, cols[0], "draft", 0)

	title := "final"
	due := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	err := e.tasks.UpdateTask(ctx, admin, task.ID, TaskPatch{Title: &title, DueDate: &due})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	detail, _ := e.tasks.TaskDetails(ctx, task.ID)
	if detail.Title != "final" {
		t.Errorf("title not updated: %q", detail.Title)
	}
	if detail.DueDate == nil || !detail.DueDate.Equal(due) {
		t.Errorf("due date not persisted: %v", detail.DueDate)
	}

	if err := e.tasks.UpdateTask(ctx, admin, task.ID, TaskPatch{ClearDueDate: true}); err != nil {
		t.Fatalf("clearing due date failed: %v", err)
	}
	detail, _ = e.tasks.TaskDetails(ctx, task.ID)
	if detail.DueDate != nil {
		t.Errorf("due date should be cleared, got %v", detail.DueDate)
	}
	if detail.Title != "final" {
		t.Errorf("untouched field changed: %q", detail.Title)
	}
}

func TestAssignTask_LogsBothDirections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	task, _ := e.tasks.CreateTask(ctx, admin, cols[0], "handoff", 0)
	worker := e.createLoner(t, "worker")

	if err := e.tasks.AssignTask(ctx, admin, task.ID, &worker.ID); err != nil {
		t.Fatalf("AssignTask failed: %v", err)
	}
	detail, _ := e.tasks.TaskDetails(ctx, task.ID)
	if detail.Assignee == nil || detail.Assignee.ID != worker.ID {
		t.Fatalf("assignee not set: %+v", detail.Assignee)
	}

	if err := e.tasks.AssignTask(ctx, admin, task.ID, nil); err != nil {
		t.Fatalf("unassign failed: %v", err)
	}
	detail, _ = e.tasks.TaskDetails(ctx, task.ID)
	if detail.Assignee != nil {
		t.Fatalf("assignee should be cleared, got %+v", detail.Assignee)
	}

	entries, _ := e.activity.All(ctx)
	actions := make(map[string]bool)
	for _, entry := range entries {
		actions[entry.Action] = true
	}
	if !actions["assigned a user to task"] || !actions["unassigned user from task"] {
		t.Errorf("missing assignment audit entries: %v", actions)
	}
}

func TestDeleteTask_KeepsActivityWithoutTaskRef(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	task, _ := e.tasks.CreateTask(ctx, admin, cols[0], "ephemeral", 0)
	if err := e.tasks.CreateSubtask(ctx, admin, task.ID, "step one"); err != nil {
		t.Fatalf("CreateSubtask failed: %v", err)
	}

	if err := e.tasks.DeleteTask(ctx, admin, task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	if _, err := e.tasks.TaskDetails(ctx, task.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}

	var subtasks int64
	e.db.Table("subtasks").Where("task_id = ?", task.ID).Count(&subtasks)
	if subtasks != 0 {
		t.Errorf("subtasks should be removed with the task, found %d", subtasks)
	}

	entries, _ := e.activity.All(ctx)
	if len(entries) == 0 {
		t.Fatal("activity should survive task deletion")
	}
	for _, entry := range entries {
		if entry.TaskID != nil {
			t.Errorf("surviving entry still references the deleted task: %+v", entry)
		}
	}
}

func TestSubtaskLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	task, _ := e.tasks.CreateTask(ctx, admin, cols[0], "parent", 0)
	if err := e.tasks.CreateSubtask(ctx, admin, task.ID, "check"); err != nil {
		t.Fatalf("CreateSubtask failed: %v", err)
	}

	detail, _ := e.tasks.TaskDetails(ctx, task.ID)
	if len(detail.Subtasks) != 1 || detail.Subtasks[0].IsCompleted {
		t.Fatalf("unexpected subtasks: %+v", detail.Subtasks)
	}
	subtaskID := detail.Subtasks[0].ID

	if err := e.tasks.ToggleSubtask(ctx, subtaskID, true); err != nil {
		t.Fatalf("ToggleSubtask failed: %v", err)
	}
	detail, _ = e.tasks.TaskDetails(ctx, task.ID)
	if !detail.Subtasks[0].IsCompleted {
		t.Error("subtask should be completed")
	}

	if err := e.tasks.DeleteSubtask(ctx, admin, subtaskID); err != nil {
		t.Fatalf("DeleteSubtask failed: %v", err)
	}
	detail, _ = e.tasks.TaskDetails(ctx, task.ID)
	if len(detail.Subtasks) != 0 {
		t.Errorf("subtask should be gone, got %+v", detail.Subtasks)
	}

	if err := e.tasks.CreateSubtask(ctx, admin, "missing", "orphan"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for unknown parent, got %v", err)
	}
}

func TestTaskLabels_AttachAndDetach(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	boardID, cols := boardFixture(t, e, admin)

	label, err := e.tasks.CreateBoardLabel(ctx, admin, boardID, "urgent", "#ff0000")
	if err != nil {
		t.Fatalf("CreateBoardLabel failed: %v", err)
	}
	task, _ := e.tasks.CreateTask(ctx, admin, cols[0], "tagged", 0)

	if err := e.tasks.ToggleTaskLabel(ctx, admin, task.ID, label.ID, true); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	detail, _ := e.tasks.TaskDetails(ctx, task.ID)
	if len(detail.Labels) != 1 || detail.Labels[0].Name != "urgent" {
		t.Fatalf("label not attached: %+v", detail.Labels)
	}

	if err := e.tasks.ToggleTaskLabel(ctx, admin, task.ID, label.ID, false); err != nil {
		t.Fatalf("detach failed: %v", err)
	}
	detail, _ = e.tasks.TaskDetails(ctx, task.ID)
	if len(detail.Labels) != 0 {
		t.Fatalf("label should be detached, got %+v", detail.Labels)
	}

	if err := e.tasks.DeleteBoardLabel(ctx, admin, label.ID); err != nil {
		t.Fatalf("DeleteBoardLabel failed: %v", err)
	}
	board, _ := e.boards.GetBoard(ctx, boardID)
	if len(board.Labels) != 0 {
		t.Errorf("board should have no labels, got %+v", board.Labels)
	}
}

func TestListUserTasks_SkipsDoneColumn(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")
	_, cols := boardFixture(t, e, admin)

	open, _ := e.tasks.CreateTask(ctx, admin, cols[0], "open", 0)
	done, _ := e.tasks.CreateTask(ctx, admin, cols[2], "done", 0)

	if err := e.tasks.AssignTask(ctx, admin, open.ID, &admin.ID); err != nil {
		t.Fatalf("AssignTask failed: %v", err)
	}
	if err := e.tasks.AssignTask(ctx, admin, done.ID, &admin.ID); err != nil {
		t.Fatalf("AssignTask failed: %v", err)
	}

	tasks, err := e.tasks.ListUserTasks(ctx, admin)
	if err != nil {
		t.Fatalf("ListUserTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != open.ID {
		t.Fatalf("expected only the open task, got %+v", tasks)
	}
	if tasks[0].BoardTitle != "Sprint" || tasks[0].ColumnTitle != "To Do" {
		t.Errorf("projection missing board context: %+v", tasks[0])
	}
}
