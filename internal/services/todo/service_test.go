package todo

import (
	"context"
	"testing"

	"github.com/bacheca-dev/bacheca/internal/database"
	"github.com/bacheca-dev/bacheca/internal/models"
	"github.com/bacheca-dev/bacheca/internal/testutil"
)

func TestCreateToDo(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	userID := testutil.CreateTestUser(t, db, "alice")
	boardID := testutil.CreateTestBoard(t, db, userID, "Università")
	svc := NewService(database.NewRepository(db))

	due := testutil.TestDate()
	req := CreateToDoRequest{
		Title:       "Studiare per l'esame",
		Description: "Capitoli 1-5",
		DueDate:     due,
		Color:       "#FF0000",
		URL:         "https://example.com",
		Position:    0,
		BoardID:     boardID,
		CreatorID:   userID,
	}

	result, err := svc.CreateToDo(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result == nil {
		t.Fatal("Expected to-do result, got nil")
	}
	if result.ID == 0 {
		t.Error("Expected to-do ID to be set")
	}
	if result.Status != models.StatusNotCompleted {
		t.Errorf("Expected new to-do to be not completed, got %s", result.Status)
	}
	if result.SharedBy != "" {
		t.Errorf("Expected no provenance on a directly created to-do, got '%s'", result.SharedBy)
	}
	if result.DueDate == nil || !result.DueDate.Equal(*due) {
		t.Errorf("Expected due date %v, got %v", due, result.DueDate)
	}
}

func TestCreateToDo_NoDedup(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	userID := testutil.CreateTestUser(t, db, "alice")
	boardID := testutil.CreateTestBoard(t, db, userID, "Università")
	svc := NewService(database.NewRepository(db))

	req := CreateToDoRequest{Title: "Studiare", BoardID: boardID, CreatorID: userID}

	first, err := svc.CreateToDo(context.Background(), req)
	if err != nil {
		t.Fatalf("First create failed: %v", err)
	}
	second, err := svc.CreateToDo(context.Background(), req)
	if err != nil {
		t.Fatalf("Second create failed: %v", err)
	}

	// Direct creation never deduplicates: same title twice means two to-dos
	if first.ID == second.ID {
		t.Error("Expected two distinct to-dos for repeated create")
	}
}

func TestCreateToDo_InvalidBoardID(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))

	_, err := svc.CreateToDo(context.Background(), CreateToDoRequest{Title: "Studiare"})
	if err == nil {
		t.Fatal("Expected validation error for missing board ID")
	}
	if err != ErrInvalidBoardID {
		t.Errorf("Expected ErrInvalidBoardID, got %v", err)
	}
}

func TestUpdateToDo(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	userID := testutil.CreateTestUser(t, db, "alice")
	boardID := testutil.CreateTestBoard(t, db, userID, "Università")
	svc := NewService(database.NewRepository(db))

	created, err := svc.CreateToDo(context.Background(), CreateToDoRequest{
		Title: "Studiare", BoardID: boardID, CreatorID: userID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	created.Title = "Studiare di più"
	created.Description = "Anche il capitolo 6"
	created.Color = "#22C55E"
	if err := svc.UpdateToDo(context.Background(), created); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, err := svc.GetToDo(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Title != "Studiare di più" {
		t.Errorf("Expected updated title, got '%s'", stored.Title)
	}
	if stored.Description != "Anche il capitolo 6" {
		t.Errorf("Expected updated description, got '%s'", stored.Description)
	}
	if stored.Color != "#22C55E" {
		t.Errorf("Expected updated color, got '%s'", stored.Color)
	}
	// Identity never changes on update
	if stored.ID != created.ID || stored.BoardID != boardID {
		t.Error("Expected identity fields to be unchanged")
	}
}

func TestGetToDo_NotFound(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))

	todo, err := svc.GetToDo(context.Background(), 999)
	if err != nil {
		t.Fatalf("Expected no error for missing to-do, got %v", err)
	}
	if todo != nil {
		t.Errorf("Expected nil for missing to-do, got %+v", todo)
	}
}

func TestDeleteToDo(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	userID := testutil.CreateTestUser(t, db, "alice")
	boardID := testutil.CreateTestBoard(t, db, userID, "Università")
	todoID := testutil.CreateTestToDo(t, db, boardID, userID, "Studiare")
	svc := NewService(database.NewRepository(db))

	if err := svc.DeleteToDo(context.Background(), todoID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	todo, err := svc.GetToDo(context.Background(), todoID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if todo != nil {
		t.Error("Expected to-do to be gone")
	}
}

func TestMarkCompleted(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	userID := testutil.CreateTestUser(t, db, "alice")
	boardID := testutil.CreateTestBoard(t, db, userID, "Università")
	svc := NewService(database.NewRepository(db))

	created, err := svc.CreateToDo(context.Background(), CreateToDoRequest{
		Title: "Studiare", BoardID: boardID, CreatorID: userID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.MarkCompleted(context.Background(), created); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}

	stored, err := svc.GetToDo(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Status != models.StatusCompleted {
		t.Errorf("Expected completed status, got %s", stored.Status)
	}

	// Completing an already-completed to-do is a no-op
	if err := svc.MarkCompleted(context.Background(), stored); err != nil {
		t.Fatalf("Second MarkCompleted failed: %v", err)
	}
}

func TestMarkAllCompletedForBoard(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	userID := testutil.CreateTestUser(t, db, "alice")
	boardID := testutil.CreateTestBoard(t, db, userID, "Università")
	otherBoardID := testutil.CreateTestBoard(t, db, userID, "Lavoro")
	testutil.CreateTestToDo(t, db, boardID, userID, "Studiare")
	testutil.CreateTestToDo(t, db, boardID, userID, "Esame")
	testutil.CreateTestToDo(t, db, boardID, userID, "Ripassare")
	otherID := testutil.CreateTestToDo(t, db, otherBoardID, userID, "Riunione")
	svc := NewService(database.NewRepository(db))

	if err := svc.MarkAllCompletedForBoard(context.Background(), boardID); err != nil {
		t.Fatalf("MarkAllCompletedForBoard failed: %v", err)
	}

	todos, err := svc.GetToDosForBoard(context.Background(), boardID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("Expected 3 to-dos, got %d", len(todos))
	}
	for _, td := range todos {
		if td.Status != models.StatusCompleted {
			t.Errorf("Expected '%s' to be completed, got %s", td.Title, td.Status)
		}
	}

	// Scoped to the board: other boards are untouched
	other, err := svc.GetToDo(context.Background(), otherID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if other.Status != models.StatusNotCompleted {
		t.Errorf("Expected to-do on other board untouched, got %s", other.Status)
	}
}

func TestMarkAllCompletedForBoard_EmptyBoard(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	userID := testutil.CreateTestUser(t, db, "alice")
	boardID := testutil.CreateTestBoard(t, db, userID, "Università")
	svc := NewService(database.NewRepository(db))

	// An empty board completes trivially
	if err := svc.MarkAllCompletedForBoard(context.Background(), boardID); err != nil {
		t.Fatalf("Expected no error on empty board, got %v", err)
	}
}
