package model

import "time"

const PromotionSourceQuiz = "quiz"

// Promotion is a server-tracked discount granted to a customer
type Promotion struct {
	CustomerID string    `json:"customer"`
	Percent    int       `json:"percent"`
	Source     string    `json:"source"`
	GrantedAt  time.Time `json:"grantedAt"`
}

// QuizRewardRequest is the payload for POST /promotions/quiz
type QuizRewardRequest struct {
	CorrectAnswers *int `json:"correctAnswers" binding:"required"`
}
