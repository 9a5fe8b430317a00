package services

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/anjiri1684/mockprep/data"
	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
)

func TestGreetingByTier(t *testing.T) {
	p := TrainerProfile{Name: "Alex", WeakAreas: []string{"Dynamic Programming", "Concurrency"}, TargetRole: "Software Engineer", TargetCompany: "Google"}

	tests := []struct {
		tier policy.Tier
		want string
	}{
		{policy.TierFree, "consider upgrading your plan"},
		{policy.TierBasic, "particularly in Dynamic Programming, Concurrency"},
		{policy.TierProfessional, "upcoming Software Engineer interview at Google?"},
		{policy.TierEnterprise, "focus on Dynamic Programming first"},
	}
	for _, tt := range tests {
		got := Greeting(tt.tier, p)
		if !strings.HasPrefix(got, "Hello Alex!") || !strings.Contains(got, tt.want) {
			t.Errorf("Greeting(%s) = %q, want it to contain %q", tt.tier, got, tt.want)
		}
	}
}

func TestResponseBankFallback(t *testing.T) {
	if got := ResponseBank(policy.Tier("platinum")); &got[0] != &ResponseBank(policy.TierBasic)[0] {
		t.Error("Unknown tier should share the basic bank")
	}
	if len(ResponseBank(policy.TierEnterprise)) != 3 {
		t.Error("Expected 3 enterprise responses")
	}
}

func TestTrainerConversationAndSend(t *testing.T) {
	s := seededStore(t)
	svc := NewTrainerService(s, 0, rand.New(rand.NewSource(1)))
	ctx := context.Background()

	conv, err := svc.Conversation(ctx, data.AlexID, policy.TierBasic)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(conv.Messages) != 1 || conv.Messages[0].Role != models.SpeakerAssistant {
		t.Fatalf("Expected a single greeting, got %+v", conv.Messages)
	}
	if !strings.Contains(conv.Messages[0].Content, "Dynamic Programming") {
		t.Errorf("Greeting should mention weak areas: %q", conv.Messages[0].Content)
	}

	again, _ := svc.Conversation(ctx, data.AlexID, policy.TierBasic)
	if len(again.Messages) != 1 {
		t.Errorf("Greeting was added twice: %d messages", len(again.Messages))
	}

	reply, err := svc.Send(ctx, data.AlexID, policy.TierBasic, "  How do I practise DP?  ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	found := false
	for _, r := range ResponseBank(policy.TierBasic) {
		if r == reply.Content {
			found = true
		}
	}
	if !found {
		t.Errorf("Reply %q not from the basic bank", reply.Content)
	}

	msgs, _ := s.ListTrainerMessages(ctx, data.AlexID)
	if len(msgs) != 3 || msgs[1].Content != "How do I practise DP?" {
		t.Errorf("Unexpected history: %+v", msgs)
	}
}

func TestTrainerSendCancelled(t *testing.T) {
	s := seededStore(t)
	svc := NewTrainerService(s, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reply, err := svc.Send(ctx, data.JamieID, policy.TierFree, "hello")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if reply.Content != TrainerErrorReply {
		t.Errorf("reply = %q, want error reply", reply.Content)
	}
}
