// Package session holds the client's bearer credential and cached profile.
//
// The Store is the single owner of that state: the router reads it to gate
// navigation, the HTTP client reads the credential for every request and calls
// Logout on 401. It is hydrated from durable storage by Open, so nothing can
// observe an empty default before the saved session is loaded.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/dmitrijs2005/gophgallery/internal/dbx"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

// FallbackDisplayName is shown when the profile has neither username nor email.
const FallbackDisplayName = "User"

var (
	ErrEmptyCredential  = errors.New("empty credential")
	ErrNoProfileFetcher = errors.New("profile fetcher is not bound")
)

// ProfileFetcher loads the profile of the current credential holder.
type ProfileFetcher interface {
	Me(ctx context.Context) (*models.Profile, error)
}

type Store struct {
	db  *sql.DB
	log logging.Logger
	now func() time.Time

	mu         sync.RWMutex
	credential string
	profile    *models.Profile
	// generation changes on every SetCredential and Logout; a profile fetch
	// only lands if the generation it started with is still current.
	generation uint64
	fetcher    ProfileFetcher

	pending sync.WaitGroup
}

type Option func(*Store)

// WithClock overrides the time source used for credential expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open creates a Store and hydrates it from db. A stored credential that is a
// JWT with an expiry in the past is cleared during hydration.
func Open(ctx context.Context, db *sql.DB, log logging.Logger, opts ...Option) (*Store, error) {
	if log == nil {
		log = logging.Nop{}
	}
	s := &Store{db: db, log: log.With("component", "session"), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) repo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

func (s *Store) hydrate(ctx context.Context) error {
	repo := s.repo()

	token, err := repo.Get(ctx, common.StorageKeyAccessToken)
	if err != nil {
		return fmt.Errorf("hydrate session: %w", err)
	}
	rawProfile, err := repo.Get(ctx, common.StorageKeyUserInfo)
	if err != nil {
		return fmt.Errorf("hydrate session: %w", err)
	}

	credential := string(token)
	if credential != "" && credentialExpired(credential, s.now()) {
		s.log.Info(ctx, "stored credential has expired, clearing session")
		return s.Logout(ctx)
	}

	var profile *models.Profile
	if credential != "" && len(rawProfile) > 0 {
		p := &models.Profile{}
		if err := json.Unmarshal(rawProfile, p); err != nil {
			s.log.Warn(ctx, "ignoring unreadable cached profile", "error", err)
		} else {
			profile = p
		}
	}

	s.mu.Lock()
	s.credential = credential
	s.profile = profile
	s.mu.Unlock()

	s.log.Debug(ctx, "session hydrated", "has_session", credential != "", "has_profile", profile != nil)
	return nil
}

// BindProfileFetcher sets the profile source. The fetcher is built on top of
// the HTTP client, which itself reads from the Store, hence the late binding.
func (s *Store) BindProfileFetcher(f ProfileFetcher) {
	s.mu.Lock()
	s.fetcher = f
	s.mu.Unlock()
}

// Credential returns the current credential or "".
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

func (s *Store) HasSession() bool {
	return s.Credential() != ""
}

// Profile returns a copy of the cached profile, or nil.
func (s *Store) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// DisplayName resolves username, then email, then FallbackDisplayName.
func (s *Store) DisplayName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.profile == nil:
		return FallbackDisplayName
	case s.profile.Username != "":
		return s.profile.Username
	case s.profile.Email != "":
		return s.profile.Email
	default:
		return FallbackDisplayName
	}
}

// SetCredential persists token and returns once the write has committed.
// A profile fetch is started in the background; the profile may therefore
// still be the previous one when SetCredential returns.
func (s *Store) SetCredential(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyCredential
	}

	s.mu.Lock()
	if err := s.repo().Set(ctx, common.StorageKeyAccessToken, []byte(token)); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("store credential: %w", err)
	}
	s.credential = token
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	// The fetch outlives the caller; it is bounded by the HTTP client timeout.
	bg := context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		_ = s.fetchProfile(bg, gen)
	}()

	return nil
}

// FetchProfile refreshes the cached profile. It is a no-op without a
// credential. Failures are logged and returned; the previous profile and the
// credential are left untouched.
func (s *Store) FetchProfile(ctx context.Context) error {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()
	return s.fetchProfile(ctx, gen)
}

func (s *Store) fetchProfile(ctx context.Context, gen uint64) error {
	s.mu.RLock()
	credential, fetcher := s.credential, s.fetcher
	current := s.generation
	s.mu.RUnlock()

	if credential == "" || current != gen {
		return nil
	}
	if fetcher == nil {
		s.log.Warn(ctx, "cannot fetch profile", "error", ErrNoProfileFetcher)
		return ErrNoProfileFetcher
	}

	profile, err := fetcher.Me(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to fetch profile", "error", err)
		return fmt.Errorf("fetch profile: %w", err)
	}
	if profile == nil {
		profile = &models.Profile{}
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		s.log.Debug(ctx, "discarding stale profile response", "generation", gen, "current", s.generation)
		return nil
	}

	if err := s.repo().Set(ctx, common.StorageKeyUserInfo, raw); err != nil {
		s.log.Warn(ctx, "failed to persist profile", "error", err)
		return fmt.Errorf("store profile: %w", err)
	}
	s.profile = profile
	return nil
}

// Logout clears credential and profile from memory and durable storage.
// It never touches the network. In-flight profile fetches are invalidated.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = ""
	s.profile = nil
	s.generation++

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.StorageKeyAccessToken); err != nil {
			return err
		}
		return repo.Delete(ctx, common.StorageKeyUserInfo)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Wait blocks until background profile fetches have finished.
func (s *Store) Wait() {
	s.pending.Wait()
}
