package service

import (
	"context"
	"fmt"
	"time"

	"agrisetu/internal/model"
	"agrisetu/internal/repository"
)

// QuizQuestionCount is the number of questions in the discount quiz
const QuizQuestionCount = 5

// QuizDiscountPercent maps a quiz score to its reward: 5→20, 4→15, 3→10, 2→5, otherwise 0
func QuizDiscountPercent(correctAnswers int) int {
	switch correctAnswers {
	case 5:
		return 20
	case 4:
		return 15
	case 3:
		return 10
	case 2:
		return 5
	}
	return 0
}

// PromotionService tracks the discount each customer is entitled to
type PromotionService interface {
	GrantQuizReward(ctx context.Context, customerID string, correctAnswers int) (*model.Promotion, error)
	GetPromotion(ctx context.Context, customerID string) (*model.Promotion, error)
	DiscountPercent(ctx context.Context, customerID string) (int, error)
}

type promotionService struct {
	repo repository.PromotionRepository
}

// NewPromotionService creates a new PromotionService
func NewPromotionService(repo repository.PromotionRepository) PromotionService {
	return &promotionService{repo: repo}
}

// GrantQuizReward replaces the customer's promotion with the reward for the given score
func (s *promotionService) GrantQuizReward(ctx context.Context, customerID string, correctAnswers int) (*model.Promotion, error) {
	if correctAnswers < 0 || correctAnswers > QuizQuestionCount {
		return nil, fmt.Errorf("%w: correctAnswers must be between 0 and %d", ErrInvalidInput, QuizQuestionCount)
	}

	promotion := &model.Promotion{
		CustomerID: customerID,
		Percent:    QuizDiscountPercent(correctAnswers),
		Source:     model.PromotionSourceQuiz,
		GrantedAt:  time.Now(),
	}
	if err := s.repo.Upsert(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to store promotion: %w", err)
	}
	return promotion, nil
}

// GetPromotion returns the stored promotion, or a zero-percent one if none was granted
func (s *promotionService) GetPromotion(ctx context.Context, customerID string) (*model.Promotion, error) {
	promotion, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load promotion: %w", err)
	}
	if promotion == nil {
		return &model.Promotion{CustomerID: customerID}, nil
	}
	return promotion, nil
}

func (s *promotionService) DiscountPercent(ctx context.Context, customerID string) (int, error) {
	promotion, err := s.GetPromotion(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return promotion.Percent, nil
}
