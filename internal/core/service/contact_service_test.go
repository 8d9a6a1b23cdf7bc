package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

func TestContactService_Submit(t *testing.T) {
	repo := newStubContactRepo()
	notifier := &recordingNotifier{}
	svc := NewContactService(repo, notifier, zerolog.Nop())

	msg, err := svc.Submit(context.Background(), ports.ContactInput{
		Name:    "  Alice  ",
		Email:   "Alice@Example.com",
		Phone:   "0123456789",
		Subject: "Broken AC",
		Message: "It rattles.",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if msg.Status != domain.ContactNew {
		t.Fatalf("expected status new, got %q", msg.Status)
	}
	if msg.Name != "Alice" || msg.Email != "alice@example.com" {
		t.Fatalf("expected normalised fields, got %+v", msg)
	}

	if len(notifier.contacts) != 1 {
		t.Fatalf("expected 1 operator notification, got %d", len(notifier.contacts))
	}
	if notifier.contacts[0].Subject != "Broken AC" {
		t.Fatalf("unexpected notification: %+v", notifier.contacts[0])
	}
}

func TestContactService_List_NewestFirst(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo, &recordingNotifier{}, zerolog.Nop())

	first, _ := svc.Submit(context.Background(), ports.ContactInput{Name: "A", Email: "a@example.com", Subject: "one", Message: "m"})
	second, _ := svc.Submit(context.Background(), ports.ContactInput{Name: "B", Email: "b@example.com", Subject: "two", Message: "m"})

	messages, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].ID != second.ID || messages[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", messages[0].ID, messages[1].ID)
	}
}
