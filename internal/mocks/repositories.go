package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/content-archive-api/internal/models"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mu            sync.Mutex
	Articles      map[int64]*models.Article
	SlugToArticle map[string]*models.Article
	NextID        int64
	InsertError   error
	InsertCalls   int
	InsertFunc    func(ctx context.Context, article *models.Article) error
	SlugExistsErr error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:      make(map[int64]*models.Article),
		SlugToArticle: make(map[string]*models.Article),
		NextID:        1,
	}
}

func (m *MockArticleRepository) Insert(ctx context.Context, article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls++
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, article)
	}
	if m.InsertError != nil {
		return m.InsertError
	}
	article.ID = m.NextID
	m.NextID++
	m.Articles[article.ID] = article
	m.SlugToArticle[article.Slug] = article
	return nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Articles[article.ID]
	if !ok {
		return sql.ErrNoRows
	}
	delete(m.SlugToArticle, existing.Slug)
	m.Articles[article.ID] = article
	m.SlugToArticle[article.Slug] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SlugToArticle[slug], nil
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SlugExistsErr != nil {
		return false, m.SlugExistsErr
	}
	_, exists := m.SlugToArticle[slug]
	return exists, nil
}

func (m *MockArticleRepository) List(ctx context.Context) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	articles := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		articles = append(articles, a)
	}
	return articles, nil
}

func (m *MockArticleRepository) Search(ctx context.Context, query string) ([]*models.Article, error) {
	return m.List(ctx)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.Articles[id]; ok {
		delete(m.SlugToArticle, a.Slug)
		delete(m.Articles, id)
	}
	return nil
}

func (m *MockArticleRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if a, ok := m.Articles[id]; ok {
			delete(m.SlugToArticle, a.Slug)
			delete(m.Articles, id)
			deleted++
		}
	}
	return deleted, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu                 sync.Mutex
	Users              map[string]*models.User
	UpdateProfileCalls int
	UpdateProfileErr   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Users[id], nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id, name, image string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateProfileCalls++
	if m.UpdateProfileErr != nil {
		return m.UpdateProfileErr
	}
	if user, ok := m.Users[id]; ok {
		user.Name = name
		user.Image = image
	}
	return nil
}

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mu                sync.Mutex
	Accounts          map[string]*models.Account
	UpdateTokensCalls int
	UpdateTokensErr   error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		Accounts: make(map[string]*models.Account),
	}
}

func accountKey(provider, providerAccountID string) string {
	return provider + "/" + providerAccountID
}

func (m *MockAccountRepository) AddAccount(account *models.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Accounts[accountKey(account.Provider, account.ProviderAccountID)] = account
}

func (m *MockAccountRepository) GetByUserAndProvider(ctx context.Context, userID, provider string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.Accounts {
		if account.UserID == userID && account.Provider == provider {
			return account, nil
		}
	}
	return nil, nil
}

func (m *MockAccountRepository) GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Accounts[accountKey(provider, providerAccountID)], nil
}

func (m *MockAccountRepository) UpdateTokens(ctx context.Context, provider, providerAccountID, accessToken, refreshToken string, expiresAt int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateTokensCalls++
	if m.UpdateTokensErr != nil {
		return m.UpdateTokensErr
	}
	if account, ok := m.Accounts[accountKey(provider, providerAccountID)]; ok {
		account.AccessToken = accessToken
		account.RefreshToken = refreshToken
		account.ExpiresAt = expiresAt
	}
	return nil
}
