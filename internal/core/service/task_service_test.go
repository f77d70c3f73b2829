package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
	"github.com/pruthvirajtarode/backendProject/internal/core/ports"
)

var (
	owner = &domain.User{ID: "owner-1", Role: domain.RoleUser, IsActive: true}
	other = &domain.User{ID: "other-1", Role: domain.RoleUser, IsActive: true}
	admin = &domain.User{ID: "admin-1", Role: domain.RoleAdmin, IsActive: true}
)

func createTask(t *testing.T, svc *TaskService, actor *domain.User, input ports.CreateTaskInput) *domain.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), actor, input)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestTaskCreate_Defaults(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())

	task := createTask(t, svc, owner, ports.CreateTaskInput{Title: "  Write report  "})
	if task.Title != "Write report" {
		t.Fatalf("title = %q", task.Title)
	}
	if task.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", task.Status)
	}
	if task.Priority != domain.PriorityMedium {
		t.Fatalf("priority = %q, want medium", task.Priority)
	}
	if task.UserID != owner.ID {
		t.Fatalf("owner = %q, want %q", task.UserID, owner.ID)
	}
	if task.CompletedAt != nil {
		t.Fatalf("CompletedAt set on a pending task")
	}
}

func TestTaskCreate_CompletedOnArrival(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())

	task := createTask(t, svc, owner, ports.CreateTaskInput{Title: "Done already", Status: "completed"})
	if task.Status != domain.StatusCompleted {
		t.Fatalf("status = %q", task.Status)
	}
	if task.CompletedAt == nil {
		t.Fatalf("CompletedAt not stamped for task created completed")
	}
}

func TestTaskGet_OwnershipPolicy(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())
	task := createTask(t, svc, owner, ports.CreateTaskInput{Title: "Private task"})

	if _, err := svc.Get(context.Background(), owner, task.ID); err != nil {
		t.Fatalf("owner denied: %v", err)
	}
	if _, err := svc.Get(context.Background(), admin, task.ID); err != nil {
		t.Fatalf("admin denied: %v", err)
	}
	if _, err := svc.Get(context.Background(), other, task.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestTaskGet_Unknown(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())
	if _, err := svc.Get(context.Background(), owner, "missing"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskUpdate_CompletedAtStableAcrossUpdates(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())
	task := createTask(t, svc, owner, ports.CreateTaskInput{Title: "Ship it"})

	status := "completed"
	done, err := svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if done.CompletedAt == nil {
		t.Fatalf("CompletedAt not stamped")
	}
	stamped := *done.CompletedAt

	time.Sleep(5 * time.Millisecond)
	title := "Ship it v2"
	again, err := svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{Title: &title, Status: &status})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if !again.CompletedAt.Equal(stamped) {
		t.Fatalf("CompletedAt moved from %v to %v", stamped, again.CompletedAt)
	}
}

func TestTaskUpdate_ForbiddenForNonOwner(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())
	task := createTask(t, svc, owner, ports.CreateTaskInput{Title: "Mine"})

	title := "Yours now"
	if _, err := svc.Update(context.Background(), other, task.ID, ports.UpdateTaskInput{Title: &title}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestTaskDelete_OwnershipPolicy(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())
	task := createTask(t, svc, owner, ports.CreateTaskInput{Title: "Disposable"})

	if err := svc.Delete(context.Background(), other, task.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), owner, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("task still present")
	}
}

func TestTaskList_ScopesNonAdminToOwnTasks(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())
	createTask(t, svc, owner, ports.CreateTaskInput{Title: "Owner task"})
	createTask(t, svc, other, ports.CreateTaskInput{Title: "Other task"})

	page, err := svc.List(context.Background(), owner, ports.ListTasksInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.UserID != owner.ID {
		t.Fatalf("filter.UserID = %q, want %q", repo.lastFilter.UserID, owner.ID)
	}
	if page.Total != 1 {
		t.Fatalf("total = %d, want 1", page.Total)
	}

	adminPage, err := svc.List(context.Background(), admin, ports.ListTasksInput{})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if repo.lastFilter.UserID != "" {
		t.Fatalf("admin list scoped to %q", repo.lastFilter.UserID)
	}
	if adminPage.Total != 2 {
		t.Fatalf("admin total = %d, want 2", adminPage.Total)
	}
}

func TestTaskStats(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())
	createTask(t, svc, owner, ports.CreateTaskInput{Title: "A"})
	createTask(t, svc, owner, ports.CreateTaskInput{Title: "B", Status: "in-progress"})
	createTask(t, svc, owner, ports.CreateTaskInput{Title: "C", Status: "completed"})
	createTask(t, svc, other, ports.CreateTaskInput{Title: "D"})

	stats, err := svc.Stats(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("total = %d, want 3", stats.Total)
	}
	if stats.Pending != 1 || stats.InProgress != 1 || stats.Completed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		in        string
		wantField string
		wantAsc   bool
	}{
		{"", "createdAt", false},
		{"dueDate", "dueDate", true},
		{"dueDate:asc", "dueDate", true},
		{"priority:desc", "priority", false},
		{"title:asc", "title", true},
		{"bogus:asc", "createdAt", false},
		{"createdAt:sideways", "createdAt", true},
	}
	for _, tt := range tests {
		field, asc := parseSortBy(tt.in)
		if field != tt.wantField || asc != tt.wantAsc {
			t.Errorf("parseSortBy(%q) = (%q, %v), want (%q, %v)", tt.in, field, asc, tt.wantField, tt.wantAsc)
		}
	}
}
