package service

import (
	"context"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"

	"profilehub/internal/microservices/http-api/models"
	"profilehub/internal/microservices/http-api/repository"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) LanguageOf(ctx context.Context, recordID int64) (int, error) {
	args := m.Called(ctx, recordID)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) ClearPicture(ctx context.Context, recordID int64) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockQuestionRepository mocks the QuestionRepository interface
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) ForLanguage(ctx context.Context, languageID int) ([]models.Question, error) {
	args := m.Called(ctx, languageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

// MockObjectStore mocks the ObjectStore interface
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// memoryNotifications is an in-memory NotificationRepository with the same
// read-and-mark semantics as the SQL statement.
type memoryNotifications struct {
	mu            sync.Mutex
	users         map[int64]models.User
	notifications []models.Notification
	err           error
}

var _ repository.NotificationRepository = (*memoryNotifications)(nil)

func newMemoryNotifications() *memoryNotifications {
	return &memoryNotifications{users: map[int64]models.User{}}
}

func (m *memoryNotifications) CountAndLanguage(ctx context.Context, recordID int64, userID string) (int64, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, 0, m.err
	}
	u, ok := m.users[recordID]
	if !ok || u.UserID != userID {
		return 0, 0, nil
	}
	return 1, u.LanguageID, nil
}

func (m *memoryNotifications) FetchAndMarkVisited(ctx context.Context, recordID int64) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Notification
	for i := range m.notifications {
		n := &m.notifications[i]
		if n.RecordID == recordID && !n.Visited {
			n.Visited = true
			out = append(out, *n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (m *memoryNotifications) add(n models.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = int64(len(m.notifications) + 1)
	m.notifications = append(m.notifications, n)
}
