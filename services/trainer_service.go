package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
	"github.com/anjiri1684/mockprep/store"
	"github.com/google/uuid"
)

const TrainerErrorReply = "I'm sorry, I encountered an error. Please try again."

var trainerResponses = map[policy.Tier][]string{
	policy.TierFree: {
		"I can provide basic guidance on that topic. For more detailed help, consider upgrading your plan.",
		"Here's a simple explanation. Upgrade to get more personalized advice.",
		"That's a common interview question. I can give you general tips, but for company-specific advice, you'll need a higher tier plan.",
	},
	policy.TierBasic: {
		"That's a great question about dynamic programming. Let's break it down step by step...",
		"When it comes to system design scalability, it's important to consider factors like load balancing and caching...",
		"Concurrency can be tricky. Have you looked into concepts like mutex and semaphores?",
	},
	policy.TierProfessional: {
		"Great question! Based on your recent mock interview performance, I'd recommend focusing on these specific aspects of dynamic programming...",
		"For your upcoming Google interview, their system design questions often focus on scalability. Let me provide some company-specific tips...",
		"I've analyzed your code solutions, and I notice you're having trouble with concurrency patterns. Let's work through some examples together...",
	},
	policy.TierEnterprise: {
		"Based on your performance and the specific requirements for the Google SWE role you're targeting, here's a customized approach to dynamic programming questions...",
		"I've consulted with our Google interview specialists, and for your upcoming interview, you should prepare for these specific system design scenarios...",
		"Let me provide you with some insider knowledge about how Google evaluates concurrency solutions in their interviews...",
	},
}

var suggestedTopics = []string{
	"System design best practices",
	"Concurrency patterns in Java",
	"Dynamic programming techniques",
	"Google's leadership principles",
}

// TrainerProfile is what the trainer knows about a student when greeting them.
type TrainerProfile struct {
	Name          string
	WeakAreas     []string
	TargetRole    string
	TargetCompany string
}

// Greeting opens a trainer conversation. The copy depends on the tier.
func Greeting(t policy.Tier, p TrainerProfile) string {
	msg := fmt.Sprintf("Hello %s! I'm your personal interview trainer. ", p.Name)
	weak := strings.Join(p.WeakAreas, ", ")

	switch t {
	case policy.TierFree:
		msg += "I can provide basic guidance on interview preparation. For more personalized assistance, consider upgrading your plan."
	case policy.TierBasic:
		msg += fmt.Sprintf("I've analyzed your profile and noticed that you have some areas to improve, particularly in %s. How can I help you prepare for your upcoming interview?", weak)
	case policy.TierProfessional:
		msg += fmt.Sprintf("I've analyzed your profile and noticed that you have some areas to improve, particularly in %s. How can I help you prepare for your upcoming %s interview at %s?", weak, p.TargetRole, p.TargetCompany)
	case policy.TierEnterprise:
		focus := "your weakest area"
		if len(p.WeakAreas) > 0 {
			focus = p.WeakAreas[0]
		}
		msg += fmt.Sprintf("I've created a personalized preparation plan for your upcoming %s interview at %s. Based on your recent mock interviews, we should focus on %s first. Would you like to start there?", p.TargetRole, p.TargetCompany, focus)
	default:
		msg += "How can I help with your interview preparation today?"
	}
	return msg
}

// ResponseBank returns the canned replies for a tier. Tiers without their
// own bank share the basic one.
func ResponseBank(t policy.Tier) []string {
	if bank, ok := trainerResponses[t]; ok {
		return bank
	}
	return trainerResponses[policy.TierBasic]
}

type TrainerService struct {
	store   store.Store
	latency time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewTrainerService(s store.Store, latency time.Duration, rng *rand.Rand) *TrainerService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TrainerService{store: s, latency: latency, rng: rng}
}

type Conversation struct {
	Tier            policy.Tier              `json:"tier"`
	Messages        []models.TrainerMessage  `json:"messages"`
	Capability      policy.TrainerCapability `json:"capability"`
	SuggestedTopics []string                 `json:"suggested_topics"`
}

// Conversation returns the student's chat history, starting it with a
// greeting if it is empty.
func (s *TrainerService) Conversation(ctx context.Context, studentID uuid.UUID, t policy.Tier) (*Conversation, error) {
	msgs, err := s.store.ListTrainerMessages(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if len(msgs) == 0 {
		profile, err := s.profile(ctx, studentID)
		if err != nil {
			return nil, err
		}
		greeting := models.TrainerMessage{
			StudentID: studentID,
			Role:      models.SpeakerAssistant,
			Content:   Greeting(t, profile),
			CreatedAt: time.Now(),
		}
		if err := s.store.AppendTrainerMessages(ctx, greeting); err != nil {
			return nil, err
		}
		if msgs, err = s.store.ListTrainerMessages(ctx, studentID); err != nil {
			return nil, err
		}
	}

	return &Conversation{
		Tier:            t,
		Messages:        msgs,
		Capability:      policy.Capabilities(t).Trainer,
		SuggestedTopics: suggestedTopics,
	}, nil
}

// Send records the student's message and the trainer's reply. The reply
// arrives after the configured latency unless ctx ends first, in which case
// the stored reply is the generic error message.
func (s *TrainerService) Send(ctx context.Context, studentID uuid.UUID, t policy.Tier, content string) (*models.TrainerMessage, error) {
	user := models.TrainerMessage{
		StudentID: studentID,
		Role:      models.SpeakerUser,
		Content:   strings.TrimSpace(content),
		CreatedAt: time.Now(),
	}
	if err := s.store.AppendTrainerMessages(ctx, user); err != nil {
		return nil, err
	}

	reply := models.TrainerMessage{StudentID: studentID, Role: models.SpeakerAssistant}
	if text, err := s.respond(ctx, t); err != nil {
		log.Printf("Error generating trainer response: %v", err)
		reply.Content = TrainerErrorReply
	} else {
		reply.Content = text
	}
	reply.CreatedAt = time.Now()

	// the request context may be gone by now; the reply still belongs in the log
	if err := s.store.AppendTrainerMessages(context.WithoutCancel(ctx), reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (s *TrainerService) respond(ctx context.Context, t policy.Tier) (string, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	bank := ResponseBank(t)
	s.mu.Lock()
	i := s.rng.Intn(len(bank))
	s.mu.Unlock()
	return bank[i], nil
}

func (s *TrainerService) profile(ctx context.Context, studentID uuid.UUID) (TrainerProfile, error) {
	u, err := s.store.GetUser(ctx, studentID)
	if err != nil {
		return TrainerProfile{}, err
	}
	p := TrainerProfile{Name: u.FullName, TargetRole: "Software Engineer", TargetCompany: "your target company"}

	sp, err := s.store.GetStudentProfile(ctx, studentID)
	if err == nil {
		p.WeakAreas = sp.WeakAreas
		if sp.TargetRole != "" {
			p.TargetRole = sp.TargetRole
		}
		if sp.TargetCompany != "" {
			p.TargetCompany = sp.TargetCompany
		}
	}
	if len(p.WeakAreas) == 0 {
		p.WeakAreas = []string{"interview fundamentals"}
	}
	return p, nil
}
