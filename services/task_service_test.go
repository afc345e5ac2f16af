package services

import (
	"testing"

	"goaltrack-service/models"
)

func TestCreateTaskValidation(t *testing.T) {
	users, tasks, _, _ := newServices(t)
	alice := registerUser(t, users, "Alice", "alice@example.com")

	tests := []struct {
		name string
		req  models.TaskRequest
		want string
	}{
		{"missing title", models.TaskRequest{Description: "d"}, "Task title is required"},
		{"whitespace title", models.TaskRequest{Title: "   "}, "Task title is required"},
		{"bad date", models.TaskRequest{Title: "t", DueDate: "31-12-2025"}, "Invalid date format. Use YYYY-MM-DD"},
		{"bad priority", models.TaskRequest{Title: "t", Priority: "Urgent"}, "Priority must be High, Medium, or Low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tasks.Create(alice.ID, tt.req)
			if err == nil || err.Error() != tt.want {
				t.Errorf("got %v, want %q", err, tt.want)
			}
		})
	}

	// Nothing was written by any of the rejected creates.
	list, err := tasks.ListByOwner(alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("rejected creates persisted %d tasks", len(list))
	}
}

func TestCreateTaskDefaultsPriority(t *testing.T) {
	users, tasks, _, _ := newServices(t)
	alice := registerUser(t, users, "Alice", "alice@example.com")

	task, err := tasks.Create(alice.ID, models.TaskRequest{Title: "Untagged", DueDate: "2025-12-31"})
	if err != nil {
		t.Fatal(err)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want Medium", task.Priority)
	}
	if task.Completed {
		t.Error("new task created completed")
	}
	if task.DueDate == nil || task.DueDate.Format("2006-01-02") != "2025-12-31" {
		t.Errorf("due date = %v", task.DueDate)
	}
}

func TestTaskOwnershipEnforced(t *testing.T) {
	users, tasks, _, _ := newServices(t)
	alice := registerUser(t, users, "Alice", "alice@example.com")
	bob := registerUser(t, users, "Bob", "bob@example.com")

	task, err := tasks.Create(alice.ID, models.TaskRequest{Title: "Alice's task"})
	if err != nil {
		t.Fatal(err)
	}

	// Every mutation path refuses a non-owner and leaves the row alone.
	if err := tasks.Update(task.ID, bob.ID, models.TaskRequest{Title: "hijacked"}); KindOf(err) != KindNotAuthorized {
		t.Errorf("update by non-owner: %v", err)
	}
	if err := tasks.Complete(task.ID, bob.ID); KindOf(err) != KindNotAuthorized {
		t.Errorf("complete by non-owner: %v", err)
	}
	if err := tasks.Delete(task.ID, bob.ID); KindOf(err) != KindNotAuthorized {
		t.Errorf("delete by non-owner: %v", err)
	}

	got, err := tasks.Get(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Alice's task" || got.Completed {
		t.Errorf("entity mutated by unauthorized calls: %+v", got)
	}
}

func TestTaskNotFoundDistinctFromUnauthorized(t *testing.T) {
	users, tasks, _, _ := newServices(t)
	alice := registerUser(t, users, "Alice", "alice@example.com")

	err := tasks.Complete(9999, alice.ID)
	if KindOf(err) != KindNotFound {
		t.Errorf("missing task should be not-found, got %v", err)
	}
	if err == nil || err.Error() != "Task not found" {
		t.Errorf("message = %v", err)
	}
}

func TestCompleteTaskIsOneWay(t *testing.T) {
	users, tasks, _, _ := newServices(t)
	alice := registerUser(t, users, "Alice", "alice@example.com")

	task, err := tasks.Create(alice.ID, models.TaskRequest{Title: "Done once"})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if err := tasks.Complete(task.ID, alice.ID); err != nil {
			t.Fatalf("complete #%d: %v", i+1, err)
		}
		got, err := tasks.Get(task.ID)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Completed {
			t.Fatalf("task not completed after complete #%d", i+1)
		}
	}
}

func TestUpdateTaskRelinksGoal(t *testing.T) {
	users, tasks, goals, _ := newServices(t)
	alice := registerUser(t, users, "Alice", "alice@example.com")

	goal, err := goals.Create(alice.ID, models.GoalRequest{Title: "Ship"})
	if err != nil {
		t.Fatal(err)
	}
	task, err := tasks.Create(alice.ID, models.TaskRequest{Title: "Loose"})
	if err != nil {
		t.Fatal(err)
	}

	err = tasks.Update(task.ID, alice.ID, models.TaskRequest{
		Title:    "Linked",
		Priority: models.PriorityHigh,
		GoalID:   &goal.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	linked, err := goals.LinkedTasks(goal.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(linked) != 1 || linked[0].ID != task.ID || linked[0].Priority != models.PriorityHigh {
		t.Errorf("linked tasks = %+v", linked)
	}
}
