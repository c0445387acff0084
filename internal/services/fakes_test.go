package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

// In-memory repository fakes. The repository interfaces keep the service
// layer testable without a live database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type fakeChallengeRepo struct {
	mu         sync.Mutex
	challenges map[uuid.UUID]*models.OtpChallenge
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{challenges: make(map[uuid.UUID]*models.OtpChallenge)}
}

func (r *fakeChallengeRepo) Create(ctx context.Context, c *models.OtpChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.challenges[c.ID] = &cp
	return nil
}

func (r *fakeChallengeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OtpChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.challenges[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeChallengeRepo) GetByEmail(ctx context.Context, email string) (*models.OtpChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var newest *models.OtpChallenge
	for _, c := range r.challenges {
		if c.Email != email {
			continue
		}
		if newest == nil || c.CreatedAt.After(newest.CreatedAt) {
			newest = c
		}
	}
	if newest == nil {
		return nil, nil
	}
	cp := *newest
	return &cp, nil
}

func (r *fakeChallengeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.challenges, id)
	return nil
}

func (r *fakeChallengeRepo) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.challenges[id]; ok {
		c.Attempts++
	}
	return nil
}

func (r *fakeChallengeRepo) CleanupExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.challenges {
		if c.IsExpired() {
			delete(r.challenges, id)
		}
	}
	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[uuid.UUID]*models.RefreshToken)}
}

func (r *fakeTokenRepo) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *token
	cp.Token = utils.HashToken(token.Token)
	r.tokens[token.ID] = &cp
	return nil
}

func (r *fakeTokenRepo) GetRefreshToken(ctx context.Context, rawToken string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	hashed := utils.HashToken(rawToken)
	for _, t := range r.tokens {
		if t.Token == hashed {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTokenRepo) RemoveRefreshToken(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, id)
	return nil
}

func (r *fakeTokenRepo) RemoveAllRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, id)
		}
	}
	return nil
}

func (r *fakeTokenRepo) CleanupExpiredRefreshTokens(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tokens {
		if t.IsExpired() {
			delete(r.tokens, id)
		}
	}
	return nil
}

type fakeRateLimiter struct {
	err error
}

func (f *fakeRateLimiter) CheckEmailRateLimits(ctx context.Context, ip, emailAddress string) error {
	return f.err
}

type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	codes []string
	err   error
}

func (f *fakeMailer) SendVerificationCode(toEmail, code string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toEmail)
	f.codes = append(f.codes, code)
	return nil
}

func (f *fakeMailer) lastCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.codes) == 0 {
		return ""
	}
	return f.codes[len(f.codes)-1]
}

type fakeSMSSender struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeSMSSender) SendVerificationCode(toPhone, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toPhone)
	return nil
}

// expireChallenge backdates a stored challenge for expiry tests.
func (r *fakeChallengeRepo) expireChallenge(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.challenges[id]; ok {
		c.ExpiresAt = time.Now().Add(-time.Minute)
	}
}
