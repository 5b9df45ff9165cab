package dto

import "profilehub/internal/microservices/http-api/models"

// QuestionResponse is a single localized question.
type QuestionResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
}

// QuestionsResponse is the body of a non-empty questions result.
type QuestionsResponse struct {
	Questions      []QuestionResponse `json:"questions"`
	TotalUserCount int64              `json:"total_user_count"`
	LanguageID     int                `json:"language_id"`
}

func FromModelToQuestionResponses(questions []models.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionResponse{ID: q.ID, Question: q.Question})
	}
	return out
}
