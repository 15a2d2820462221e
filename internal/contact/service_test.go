package contact

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSubmitStampsMessage(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	before := time.Now().UTC()

	msg, err := svc.Submit(context.Background(), Message{
		Name: "A", Email: "a@x.com", Phone: "1", Subject: "S", Body: "M",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if msg.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if msg.SentAt.Before(before) {
		t.Fatalf("sentAt %v earlier than submission at %v", msg.SentAt, before)
	}

	stored := repo.All()
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(stored))
	}
	if stored[0].Subject != "S" || stored[0].Body != "M" {
		t.Fatalf("unexpected stored message: %+v", stored[0])
	}
}

func TestSubmitMissingFieldRejected(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	_, err := svc.Submit(context.Background(), Message{Name: "A", Email: "a@x.com"})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if len(repo.All()) != 0 {
		t.Fatal("nothing should be stored on rejection")
	}
}
