package repository

import (
	"context"

	"profilehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	// ForLanguage returns the questions of a language ordered by question id.
	ForLanguage(ctx context.Context, languageID int) ([]models.Question, error)
}

type questionRepository struct {
	db             *gorm.DB
	baseLanguageID int
}

// NewQuestionRepository reads base-language questions from their own table
// and every other language from the translations table.
func NewQuestionRepository(db *gorm.DB, baseLanguageID int) QuestionRepository {
	return &questionRepository{db: db, baseLanguageID: baseLanguageID}
}

func (r *questionRepository) ForLanguage(ctx context.Context, languageID int) ([]models.Question, error) {
	questions := []models.Question{}
	err := withConn(ctx, r.db, func(tx *gorm.DB) error {
		if languageID == r.baseLanguageID {
			return tx.Table(models.QuestionsTable).
				Select("id, question").
				Where("language_id = ?", languageID).
				Order("id").
				Find(&questions).Error
		}
		return tx.Table(models.QuestionTranslationsTable).
			Select("question_id AS id, question").
			Where("language_id = ?", languageID).
			Order("question_id").
			Find(&questions).Error
	})
	if err != nil {
		return nil, err
	}
	return questions, nil
}
