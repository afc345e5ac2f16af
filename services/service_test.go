package services

import (
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"goaltrack-service/models"
	"goaltrack-service/repository"
)

// newTestDB opens an in-memory sqlite database with the real schema.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Every pooled connection would get its own :memory: database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../database/migrations/0001_create_core_tables.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// registerUser creates an account through the real registration flow
// and returns it.
func registerUser(t *testing.T, svc *UserService, name, email string) *models.User {
	t.Helper()
	user, err := svc.Register(models.RegisterRequest{
		FullName:        name,
		Email:           email,
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func newServices(t *testing.T) (*UserService, *TaskService, *GoalService, *sqlx.DB) {
	t.Helper()
	db := newTestDB(t)
	taskRepo := repository.NewTaskRepo(db)
	return NewUserService(repository.NewUserRepo(db)),
		NewTaskService(taskRepo),
		NewGoalService(repository.NewGoalRepo(db), taskRepo),
		db
}
