package models

// Question is one localized assessment question. Base-language rows come from
// questions_120, translations from questions_120_translations.
type Question struct {
	ID       int64  `gorm:"column:id" json:"id"`
	Question string `gorm:"column:question" json:"question"`
}

const (
	QuestionsTable            = "questions_120"
	QuestionTranslationsTable = "questions_120_translations"
)
