package database

import (
	"context"
	"testing"
	"time"

	"github.com/bacheca-dev/bacheca/internal/models"
)

func seedBoard(t *testing.T, repo *Repository, userID int, title string) *models.Board {
	t.Helper()
	board := &models.Board{Title: title, OwnerID: userID}
	if err := repo.InsertBoard(context.Background(), board); err != nil {
		t.Fatalf("Failed to seed board: %v", err)
	}
	return board
}

func TestInsertToDo_RoundTrip(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)
	board := seedBoard(t, repo, userID, "Università")

	due := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	td := &models.ToDo{
		Title:       "Studiare per l'esame",
		Description: "Capitoli 1-5",
		DueDate:     &due,
		Color:       "#FF0000",
		URL:         "https://example.com",
		ImagePath:   "/tmp/cover.png",
		Position:    2,
		Status:      models.StatusNotCompleted,
		CreatorID:   userID,
		BoardID:     board.ID,
	}
	if err := repo.InsertToDo(context.Background(), td); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if td.ID == 0 {
		t.Fatal("Expected to-do ID to be populated on insert")
	}

	stored, err := repo.GetToDoByID(context.Background(), td.ID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if stored == nil {
		t.Fatal("Expected stored to-do, got nil")
	}
	if stored.Title != td.Title || stored.Description != td.Description {
		t.Error("Expected text fields to round-trip")
	}
	if stored.Color != td.Color || stored.URL != td.URL || stored.ImagePath != td.ImagePath {
		t.Error("Expected presentation fields to round-trip")
	}
	if stored.Position != 2 {
		t.Errorf("Expected position 2, got %d", stored.Position)
	}
	if stored.DueDate == nil || !stored.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, stored.DueDate)
	}
	if stored.SharedBy != "" {
		t.Errorf("Expected empty provenance, got '%s'", stored.SharedBy)
	}
}

func TestInsertToDo_NullableFields(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)
	board := seedBoard(t, repo, userID, "Università")

	// No due date, no provenance: both stored as NULL and read back as zero
	// values
	td := &models.ToDo{Title: "Studiare", CreatorID: userID, BoardID: board.ID, Status: models.StatusNotCompleted}
	if err := repo.InsertToDo(context.Background(), td); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	stored, err := repo.GetToDoByID(context.Background(), td.ID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if stored.DueDate != nil {
		t.Errorf("Expected nil due date, got %v", stored.DueDate)
	}
	if stored.SharedBy != "" {
		t.Errorf("Expected empty provenance, got '%s'", stored.SharedBy)
	}
}

func TestInsertToDo_SharedProvenance(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "bob")
	repo := NewRepository(db)
	board := seedBoard(t, repo, userID, "Università")

	td := &models.ToDo{
		Title:     "Studiare",
		Status:    models.StatusNotCompleted,
		CreatorID: userID,
		BoardID:   board.ID,
		SharedBy:  "alice",
	}
	if err := repo.InsertToDo(context.Background(), td); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	stored, err := repo.GetToDoByID(context.Background(), td.ID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if stored.SharedBy != "alice" {
		t.Errorf("Expected provenance 'alice', got '%s'", stored.SharedBy)
	}
	if !stored.IsShared() {
		t.Error("Expected IsShared to report true")
	}
}

func TestGetToDosByBoard(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)
	board := seedBoard(t, repo, userID, "Università")
	other := seedBoard(t, repo, userID, "Lavoro")

	for _, title := range []string{"Studiare", "Esame", "Ripassare"} {
		td := &models.ToDo{Title: title, CreatorID: userID, BoardID: board.ID, Status: models.StatusNotCompleted}
		if err := repo.InsertToDo(context.Background(), td); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	onOther := &models.ToDo{Title: "Riunione", CreatorID: userID, BoardID: other.ID, Status: models.StatusNotCompleted}
	if err := repo.InsertToDo(context.Background(), onOther); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	todos, err := repo.GetToDosByBoard(context.Background(), board.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("Expected 3 to-dos, got %d", len(todos))
	}
	// Stable insertion order
	if todos[0].Title != "Studiare" || todos[2].Title != "Ripassare" {
		t.Errorf("Expected insertion order, got %s ... %s", todos[0].Title, todos[2].Title)
	}
}

func TestUpdateToDo_Overwrite(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)
	board := seedBoard(t, repo, userID, "Università")

	td := &models.ToDo{Title: "Studiare", CreatorID: userID, BoardID: board.ID, Status: models.StatusNotCompleted}
	if err := repo.InsertToDo(context.Background(), td); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	due := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	td.Title = "Studiare di più"
	td.DueDate = &due
	td.Status = models.StatusCompleted
	if err := repo.UpdateToDo(context.Background(), td); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, err := repo.GetToDoByID(context.Background(), td.ID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if stored.Title != "Studiare di più" {
		t.Errorf("Expected updated title, got '%s'", stored.Title)
	}
	if stored.Status != models.StatusCompleted {
		t.Errorf("Expected completed status, got %s", stored.Status)
	}
	if stored.DueDate == nil || !stored.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, stored.DueDate)
	}
}

func TestSetToDoStatusByBoard(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)
	board := seedBoard(t, repo, userID, "Università")
	other := seedBoard(t, repo, userID, "Lavoro")

	for _, title := range []string{"Studiare", "Esame"} {
		td := &models.ToDo{Title: title, CreatorID: userID, BoardID: board.ID, Status: models.StatusNotCompleted}
		if err := repo.InsertToDo(context.Background(), td); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	onOther := &models.ToDo{Title: "Riunione", CreatorID: userID, BoardID: other.ID, Status: models.StatusNotCompleted}
	if err := repo.InsertToDo(context.Background(), onOther); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := repo.SetToDoStatusByBoard(context.Background(), board.ID, models.StatusCompleted); err != nil {
		t.Fatalf("Bulk update failed: %v", err)
	}

	var pending int
	if err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM todos WHERE board_id = ? AND status != ?",
		board.ID, string(models.StatusCompleted)).Scan(&pending); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if pending != 0 {
		t.Errorf("Expected all to-dos completed, %d still pending", pending)
	}

	stored, err := repo.GetToDoByID(context.Background(), onOther.ID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if stored.Status != models.StatusNotCompleted {
		t.Errorf("Expected to-do on other board untouched, got %s", stored.Status)
	}
}

func TestDeleteToDo(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)
	board := seedBoard(t, repo, userID, "Università")

	td := &models.ToDo{Title: "Studiare", CreatorID: userID, BoardID: board.ID, Status: models.StatusNotCompleted}
	if err := repo.InsertToDo(context.Background(), td); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := repo.DeleteToDo(context.Background(), td.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	stored, err := repo.GetToDoByID(context.Background(), td.ID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if stored != nil {
		t.Errorf("Expected to-do gone, got %+v", stored)
	}
}
