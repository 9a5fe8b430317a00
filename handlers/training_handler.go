package handlers

import (
	"context"
	"math"
	"strings"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (h *Handler) ListPractice(c *fiber.Ctx) error {
	f := store.PracticeFilter{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Company:    c.Query("company"),
	}
	for _, tag := range strings.Split(c.Query("tags"), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			f.Tags = append(f.Tags, tag)
		}
	}

	questions, err := h.Store.ListPracticeQuestions(c.UserContext(), f)
	if err != nil {
		return storeError(err, "Practice questions")
	}
	return c.JSON(questions)
}

type ModuleProgress struct {
	models.TrainingModule
	CompletedLessons int     `json:"completed_lessons"`
	Progress         float64 `json:"progress"`
}

// ListTraining returns the training modules with the caller's progress.
func (h *Handler) ListTraining(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return err
	}
	modules, overall, err := h.trainingProgress(c.UserContext(), studentID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"modules": modules, "overall_progress": overall})
}

func (h *Handler) trainingProgress(ctx context.Context, studentID uuid.UUID) ([]ModuleProgress, float64, error) {
	modules, err := h.Store.ListTrainingModules(ctx)
	if err != nil {
		return nil, 0, storeError(err, "Training modules")
	}
	progress, err := h.Store.ListTrainingProgress(ctx, studentID)
	if err != nil {
		return nil, 0, storeError(err, "Training progress")
	}

	done := map[uuid.UUID]int{}
	for _, p := range progress {
		done[p.ModuleID] = p.CompletedLessons
	}

	out := make([]ModuleProgress, 0, len(modules))
	completed, total := 0, 0
	for _, m := range modules {
		mp := ModuleProgress{TrainingModule: m, CompletedLessons: done[m.ID]}
		mp.Progress = percent(mp.CompletedLessons, m.TotalLessons)
		completed += mp.CompletedLessons
		total += m.TotalLessons
		out = append(out, mp)
	}
	return out, percent(completed, total), nil
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)*1000/float64(total)) / 10
}
