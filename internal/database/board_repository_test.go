package database

import (
	"context"
	"errors"
	"testing"

	"github.com/bacheca-dev/bacheca/internal/models"
)

func TestInsertBoard(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)

	board := &models.Board{Title: "Università", OwnerID: userID}
	if err := repo.InsertBoard(context.Background(), board); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if board.ID == 0 {
		t.Error("Expected board ID to be populated on insert")
	}
}

func TestInsertBoard_DuplicateNaturalKey(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)

	first := &models.Board{Title: "Università", OwnerID: userID}
	if err := repo.InsertBoard(context.Background(), first); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	// The unique constraint on (title, user_id) surfaces as the conflict
	// sentinel so callers can fall back to the winner's row
	dup := &models.Board{Title: "Università", OwnerID: userID}
	err := repo.InsertBoard(context.Background(), dup)
	if !errors.Is(err, models.ErrDuplicateBoard) {
		t.Fatalf("Expected ErrDuplicateBoard, got %v", err)
	}
}

func TestGetBoardByTitleAndOwner(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	aliceID := newTestUser(t, db, "alice")
	bobID := newTestUser(t, db, "bob")
	repo := NewRepository(db)

	board := &models.Board{Title: "Università", OwnerID: aliceID}
	if err := repo.InsertBoard(context.Background(), board); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	found, err := repo.GetBoardByTitleAndOwner(context.Background(), "Università", aliceID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if found == nil || found.ID != board.ID {
		t.Errorf("Expected board %d, got %+v", board.ID, found)
	}

	// Same title, other owner: no match
	miss, err := repo.GetBoardByTitleAndOwner(context.Background(), "Università", bobID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if miss != nil {
		t.Errorf("Expected nil for other owner, got %+v", miss)
	}
}

func TestGetBoardByID_Missing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)

	board, err := repo.GetBoardByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("Expected no error for missing board, got %v", err)
	}
	if board != nil {
		t.Errorf("Expected nil, got %+v", board)
	}
}

func TestGetBoardsByUsername(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	aliceID := newTestUser(t, db, "alice")
	bobID := newTestUser(t, db, "bob")
	repo := NewRepository(db)

	for _, title := range []string{"Università", "Lavoro"} {
		if err := repo.InsertBoard(context.Background(), &models.Board{Title: title, OwnerID: aliceID}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if err := repo.InsertBoard(context.Background(), &models.Board{Title: "Casa", OwnerID: bobID}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	boards, err := repo.GetBoardsByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(boards) != 2 {
		t.Errorf("Expected 2 boards for alice, got %d", len(boards))
	}
	for _, b := range boards {
		if b.OwnerID != aliceID {
			t.Errorf("Expected owner %d, got %d", aliceID, b.OwnerID)
		}
	}
}

func TestDeleteBoard_RemovesToDosInSameTransaction(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)

	board := &models.Board{Title: "Università", OwnerID: userID}
	if err := repo.InsertBoard(context.Background(), board); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	for _, title := range []string{"Studiare", "Esame"} {
		td := &models.ToDo{Title: title, CreatorID: userID, BoardID: board.ID, Status: models.StatusNotCompleted}
		if err := repo.InsertToDo(context.Background(), td); err != nil {
			t.Fatalf("Insert to-do failed: %v", err)
		}
	}

	if err := repo.DeleteBoard(context.Background(), board.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var todoCount, boardCount int
	if err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM todos WHERE board_id = ?", board.ID).Scan(&todoCount); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM boards WHERE id = ?", board.ID).Scan(&boardCount); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if todoCount != 0 || boardCount != 0 {
		t.Errorf("Expected board and to-dos gone, found %d todos and %d boards", todoCount, boardCount)
	}
}

func TestUpdateBoard(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userID := newTestUser(t, db, "alice")
	repo := NewRepository(db)

	board := &models.Board{Title: "Università", OwnerID: userID}
	if err := repo.InsertBoard(context.Background(), board); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	board.Title = "Università di Bologna"
	if err := repo.UpdateBoard(context.Background(), board); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, err := repo.GetBoardByID(context.Background(), board.ID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if stored.Title != "Università di Bologna" {
		t.Errorf("Expected renamed board, got '%s'", stored.Title)
	}
}
