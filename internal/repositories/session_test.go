package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"smartcv/analyzer/internal/models"
)

func TestSessionRepositoryCreateAndFind(t *testing.T) {
	repo := NewSessionRepository()

	session := &models.Session{
		ID:       uuid.New(),
		Filename: "resume.pdf",
		Analysis: &models.AnalysisResult{
			OverallScore: 85,
			Summary:      "solid",
		},
		CreatedAt: time.Now(),
	}

	if err := repo.Create(session); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByID(session.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Filename != "resume.pdf" || found.Analysis.OverallScore != 85 {
		t.Fatalf("unexpected session: %+v", found)
	}
}

func TestSessionRepositoryDuplicateCreate(t *testing.T) {
	repo := NewSessionRepository()
	session := &models.Session{ID: uuid.New()}

	if err := repo.Create(session); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := repo.Create(session); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}
}

func TestSessionRepositoryNotFound(t *testing.T) {
	repo := NewSessionRepository()
	if _, err := repo.FindByID(uuid.New()); err == nil {
		t.Fatalf("expected not-found error")
	}
}
