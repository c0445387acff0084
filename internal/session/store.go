package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/jeebendu/glassy-property-hunter-97/internal/authclient"
	"github.com/jeebendu/glassy-property-hunter-97/internal/dtos"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

// State is the authentication phase the store is in.
type State int

const (
	StateAnonymous State = iota
	StateOtpPending
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateOtpPending:
		return "otp_pending"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is the signed-in identity as the client sees it.
type Session struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	AvatarURL string   `json:"avatar,omitempty"`
	Provider  string   `json:"provider,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	IDToken   string   `json:"-"`
}

var (
	// ErrNoPendingChallenge is returned by VerifyOtp when no SendOtp preceded it.
	ErrNoPendingChallenge = errors.New("no_pending_challenge")

	// ErrBusy is returned when another operation is still in flight.
	ErrBusy = errors.New("operation_in_flight")
)

// persistedToken is the JSON shape of the "token" storage key.
type persistedToken struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Store is the client-side authentication state machine. All transitions
// are serialized; observers see each one in order.
type Store struct {
	mu      sync.Mutex
	client  authclient.Client
	storage Storage

	state        State
	session      *Session
	refreshToken string

	pendingEmail     string
	pendingAuthToken string

	busy bool

	subs    map[int]func(State, *Session)
	nextSub int
}

// NewStore builds a store and rehydrates any persisted session. The stored
// identity is trusted as-is; a stale token surfaces on the next API call.
func NewStore(client authclient.Client, storage Storage) *Store {
	s := &Store{
		client:  client,
		storage: storage,
		state:   StateAnonymous,
		subs:    make(map[int]func(State, *Session)),
	}
	s.rehydrate()
	return s
}

func (s *Store) rehydrate() {
	userRaw, ok, err := s.storage.Get(StorageKeyUser)
	if err != nil || !ok {
		if err != nil {
			utils.Logger.WithError(err).Warn("session rehydration failed; starting anonymous")
		}
		return
	}
	tokenRaw, ok, err := s.storage.Get(StorageKeyToken)
	if err != nil || !ok {
		// The halves are written together; a lone user key is stale.
		_ = s.storage.Delete(StorageKeyUser)
		return
	}

	var sess Session
	if err := json.Unmarshal(userRaw, &sess); err != nil {
		utils.Logger.WithError(err).Warn("corrupt persisted session; starting anonymous")
		_ = s.storage.Delete(StorageKeyUser)
		_ = s.storage.Delete(StorageKeyToken)
		return
	}
	var tok persistedToken
	if err := json.Unmarshal(tokenRaw, &tok); err != nil || tok.IDToken == "" {
		utils.Logger.Warn("corrupt persisted token; starting anonymous")
		_ = s.storage.Delete(StorageKeyUser)
		_ = s.storage.Delete(StorageKeyToken)
		return
	}

	sess.IDToken = tok.IDToken
	s.session = &sess
	s.refreshToken = tok.RefreshToken
	s.state = StateAuthenticated
}

// ---------------------------------------------------------------------
// Observation
// ---------------------------------------------------------------------

// State returns the current phase and session snapshot.
func (s *Store) State() (State, *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.snapshot()
}

// PendingEmail returns the address awaiting verification, if any.
func (s *Store) PendingEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingEmail
}

// Subscribe registers an observer called on every transition. The returned
// function removes it. The observer is invoked immediately with the current
// state so late subscribers do not miss the rehydrated session.
func (s *Store) Subscribe(fn func(State, *Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	state, snap := s.state, s.snapshot()
	s.mu.Unlock()

	fn(state, snap)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// notify runs observers outside s.mu so they may call back into the store.
func (s *Store) notify() {
	s.mu.Lock()
	state, snap := s.state, s.snapshot()
	fns := make([]func(State, *Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(state, snap)
	}
}

func (s *Store) snapshot() *Session {
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// ---------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------

// SendOtp requests a verification code and moves to OtpPending.
func (s *Store) SendOtp(ctx context.Context, email string) error {
	if err := s.beginOp(); err != nil {
		return err
	}
	defer s.endOp()

	authToken, err := s.client.SendOtp(ctx, email)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = StateOtpPending
	s.pendingEmail = email
	s.pendingAuthToken = authToken
	s.session = nil
	s.mu.Unlock()

	s.notify()
	return nil
}

// VerifyOtp completes the pending challenge. A wrong code leaves the
// challenge in place so the user can retry.
func (s *Store) VerifyOtp(ctx context.Context, phone, otp string) error {
	if err := s.beginOp(); err != nil {
		return err
	}
	defer s.endOp()

	s.mu.Lock()
	if s.state != StateOtpPending {
		s.mu.Unlock()
		return ErrNoPendingChallenge
	}
	email, authToken := s.pendingEmail, s.pendingAuthToken
	s.mu.Unlock()

	sess, err := s.client.VerifyOtp(ctx, email, phone, otp, authToken)
	if err != nil {
		return err
	}

	return s.adopt(sess)
}

// CancelOtp abandons the pending challenge and returns to Anonymous.
func (s *Store) CancelOtp() {
	s.mu.Lock()
	changed := s.state == StateOtpPending
	s.state = StateAnonymous
	s.pendingEmail = ""
	s.pendingAuthToken = ""
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Register creates a password-backed account and signs in directly.
func (s *Store) Register(ctx context.Context, req dtos.RegisterRequest) error {
	if err := s.beginOp(); err != nil {
		return err
	}
	defer s.endOp()

	sess, err := s.client.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.adopt(sess)
}

// LoginWithGoogle exchanges an external credential for a session.
func (s *Store) LoginWithGoogle(ctx context.Context, credential string) error {
	if err := s.beginOp(); err != nil {
		return err
	}
	defer s.endOp()

	sess, err := s.client.GoogleLogin(ctx, credential)
	if err != nil {
		return err
	}
	return s.adopt(sess)
}

// Logout clears the session locally and best-effort revokes the refresh
// token server side. It never fails.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	idToken, refreshToken := "", s.refreshToken
	if s.session != nil {
		idToken = s.session.IDToken
	}
	s.state = StateAnonymous
	s.session = nil
	s.refreshToken = ""
	s.pendingEmail = ""
	s.pendingAuthToken = ""
	s.mu.Unlock()

	if err := s.storage.Delete(StorageKeyUser); err != nil {
		utils.Logger.WithError(err).Warn("failed to remove persisted session")
	}
	if err := s.storage.Delete(StorageKeyToken); err != nil {
		utils.Logger.WithError(err).Warn("failed to remove persisted token")
	}

	if idToken != "" || refreshToken != "" {
		if err := s.client.Logout(ctx, idToken, refreshToken); err != nil {
			utils.Logger.WithError(err).Warn("server-side logout failed; local session cleared")
		}
	}

	s.notify()
}

// ---------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------

// adopt installs an authenticated session, persisting both storage keys
// together.
func (s *Store) adopt(src *authclient.Session) error {
	sess := &Session{
		ID:        src.User.ID.String(),
		Name:      src.User.Name,
		Email:     src.User.Email,
		AvatarURL: src.User.AvatarURL,
		Provider:  src.User.Provider,
		Roles:     src.User.Roles,
		IDToken:   src.IDToken,
	}
	if src.User.PhoneNumber != nil {
		sess.Phone = *src.User.PhoneNumber
	}

	userRaw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	tokenRaw, err := json.Marshal(persistedToken{
		IDToken:      src.IDToken,
		RefreshToken: src.RefreshToken,
	})
	if err != nil {
		return err
	}
	if err := s.storage.Set(StorageKeyUser, userRaw); err != nil {
		return err
	}
	if err := s.storage.Set(StorageKeyToken, tokenRaw); err != nil {
		_ = s.storage.Delete(StorageKeyUser)
		return err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.session = sess
	s.refreshToken = src.RefreshToken
	s.pendingEmail = ""
	s.pendingAuthToken = ""
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *Store) beginOp() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Store) endOp() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
