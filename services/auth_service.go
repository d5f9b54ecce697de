package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/storage"
)

// ProfileUpdate carries the optional fields a profile update may change.
// Nil / empty fields are left untouched.
type ProfileUpdate struct {
	Username     string
	ShippingInfo *models.ShippingInfo
	PaymentInfo  *models.PaymentInfo
}

// AuthService owns the current session and the registered-users table.
// The users table lives under the "users" key and is read fresh on each
// operation; the session is cached in memory and persisted under
// "authState" on login/logout/update.
type AuthService struct {
	mu      sync.Mutex
	store   storage.Store
	log     *zap.Logger
	session models.AuthState
}

func NewAuthService(store storage.Store, log *zap.Logger) *AuthService {
	s := &AuthService{store: store, log: log}

	data, err := store.Get(context.Background(), storage.KeyAuthState)
	switch {
	case err == nil:
		var session models.AuthState
		if jsonErr := json.Unmarshal(data, &session); jsonErr != nil {
			log.Warn("could not parse persisted session, starting logged out", zap.Error(jsonErr))
		} else {
			s.session = session
		}
	case !errors.Is(err, storage.ErrNotFound):
		log.Warn("could not read persisted session, starting logged out", zap.Error(err))
	}
	return s
}

// Signup registers a new user. The password is bcrypt-hashed before it
// reaches the table; length and confirmation checks belong to the
// request boundary, not here.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers(ctx)
	for i := range users {
		if users[i].Email == email {
			return ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	users = append(users, models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	})
	return s.saveUsers(ctx, users)
}

// Login checks the credentials against the users table and, on success,
// installs a password-free copy of the record as the session. Unknown
// email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.AuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers(ctx)
	var user *models.User
	for i := range users {
		if users[i].Email == email {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return models.AuthState{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.AuthState{}, ErrInvalidCredentials
	}

	session := *user
	session.Password = ""
	s.session = models.AuthState{User: &session, IsAuthenticated: true}
	s.persistSession(ctx)
	return s.snapshot(), nil
}

// Logout clears the session and removes the persisted entry. The users
// table is untouched.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.AuthState{}
	if err := s.store.Delete(ctx, storage.KeyAuthState); err != nil {
		s.log.Error("failed to delete persisted session", zap.Error(err))
	}
}

// UpdateProfile merges the update into the users-table record matching
// the session email, then refreshes the session copy from the updated
// record so both stay aligned.
func (s *AuthService) UpdateProfile(ctx context.Context, update ProfileUpdate) (models.AuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.IsAuthenticated || s.session.User == nil {
		return models.AuthState{}, ErrNotAuthenticated
	}

	users := s.loadUsers(ctx)
	idx := -1
	for i := range users {
		if users[i].Email == s.session.User.Email {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Session exists but the table entry is gone; update the
		// session copy alone so the caller still sees the change.
		s.log.Warn("profile update with no matching users entry",
			zap.String("email", s.session.User.Email))
		applyUpdate(s.session.User, update)
		s.persistSession(ctx)
		return s.snapshot(), nil
	}

	applyUpdate(&users[idx], update)
	if err := s.saveUsers(ctx, users); err != nil {
		return models.AuthState{}, err
	}

	refreshed := users[idx]
	refreshed.Password = ""
	s.session.User = &refreshed
	s.persistSession(ctx)
	return s.snapshot(), nil
}

// Current returns a copy of the session state.
func (s *AuthService) Current() models.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func applyUpdate(user *models.User, update ProfileUpdate) {
	if update.Username != "" {
		user.Username = update.Username
	}
	if update.ShippingInfo != nil {
		user.ShippingInfo = update.ShippingInfo
	}
	if update.PaymentInfo != nil {
		user.PaymentInfo = update.PaymentInfo
	}
}

// loadUsers reads the users table, falling back to an empty table on a
// read or parse failure.
func (s *AuthService) loadUsers(ctx context.Context) []models.User {
	data, err := s.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("could not read users table, treating as empty", zap.Error(err))
		}
		return nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Warn("could not parse users table, treating as empty", zap.Error(err))
		return nil
	}
	return users
}

func (s *AuthService) saveUsers(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users table: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyUsers, data); err != nil {
		return fmt.Errorf("persist users table: %w", err)
	}
	return nil
}

func (s *AuthService) persistSession(ctx context.Context) {
	data, err := json.Marshal(s.session)
	if err == nil {
		err = s.store.Set(ctx, storage.KeyAuthState, data)
	}
	if err != nil {
		s.log.Error("failed to persist session", zap.Error(err))
	}
}

// snapshot deep-copies the session so callers cannot reach back into
// the service through the profile pointers.
func (s *AuthService) snapshot() models.AuthState {
	out := s.session
	if s.session.User != nil {
		user := *s.session.User
		if user.ShippingInfo != nil {
			shipping := *user.ShippingInfo
			user.ShippingInfo = &shipping
		}
		if user.PaymentInfo != nil {
			payment := *user.PaymentInfo
			user.PaymentInfo = &payment
		}
		out.User = &user
	}
	return out
}
