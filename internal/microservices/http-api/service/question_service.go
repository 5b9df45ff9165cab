package service

import (
	"context"

	"profilehub/internal/microservices/http-api/dto"
	"profilehub/internal/microservices/http-api/repository"
)

type QuestionService interface {
	// Questions returns the questions of a language with the platform-wide
	// active user count. An empty Questions slice is not an error.
	Questions(ctx context.Context, languageID int) (*dto.QuestionsResponse, error)
}

type questionService struct {
	users     repository.UserRepository
	questions repository.QuestionRepository
}

func NewQuestionService(users repository.UserRepository, questions repository.QuestionRepository) QuestionService {
	return &questionService{users: users, questions: questions}
}

func (s *questionService) Questions(ctx context.Context, languageID int) (*dto.QuestionsResponse, error) {
	total, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, classify("count active users", err, KindUserCount)
	}

	questions, err := s.questions.ForLanguage(ctx, languageID)
	if err != nil {
		return nil, classify("select questions", err, KindQuery)
	}

	return &dto.QuestionsResponse{
		Questions:      dto.FromModelToQuestionResponses(questions),
		TotalUserCount: total,
		LanguageID:     languageID,
	}, nil
}
