package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/dmitrijs2005/estatehub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/estatehub/internal/logging"
)

// Storage keys.
const (
	KeyListings  = "estate_properties"
	KeySession   = "estate_current_user"
	KeyFavorites = "estate_favorites"
	KeyToken     = "token"
)

// ErrStorageUnavailable is returned by writes when the local backend could
// not be opened.
var ErrStorageUnavailable = errors.New("local storage unavailable")

// Opener opens the backend on first use.
type Opener func(ctx context.Context) (metadata.Repository, error)

// Store is the typed facade over the local key/value backend.
type Store struct {
	open   Opener
	once   sync.Once
	repo   metadata.Repository
	logger logging.Logger

	// favMu serializes read-modify-write of the favorite set.
	favMu sync.Mutex
}

// New returns a store over an already opened backend.
func New(repo metadata.Repository, logger logging.Logger) *Store {
	s := &Store{repo: repo, logger: orNop(logger)}
	s.once.Do(func() {})
	return s
}

// NewLazy returns a store that calls open on first access. When open fails
// the store falls back to a disabled backend: reads are empty and writes
// return ErrStorageUnavailable.
func NewLazy(open Opener, logger logging.Logger) *Store {
	return &Store{open: open, logger: orNop(logger)}
}

func orNop(l logging.Logger) logging.Logger {
	if l == nil {
		return logging.Nop()
	}
	return l
}

func (s *Store) backend(ctx context.Context) metadata.Repository {
	s.once.Do(func() {
		repo, err := s.open(ctx)
		if err != nil {
			s.logger.Warn(ctx, "local storage disabled", "error", err)
			repo = disabledRepository{}
		}
		s.repo = repo
	})
	return s.repo
}

// Available reports whether the backend opened successfully.
func (s *Store) Available(ctx context.Context) bool {
	_, disabled := s.backend(ctx).(disabledRepository)
	return !disabled
}

func (s *Store) read(ctx context.Context, key string, dst any) bool {
	raw, err := s.backend(ctx).Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "storage read failed", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn(ctx, "stored value is corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend(ctx).Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// SaveSession overwrites the stored session.
func (s *Store) SaveSession(ctx context.Context, sess models.Session) error {
	return s.write(ctx, KeySession, sess)
}

// GetSession returns the stored session, or false when there is none, it is
// null or it cannot be read.
func (s *Store) GetSession(ctx context.Context) (*models.Session, bool) {
	var sess *models.Session
	if !s.read(ctx, KeySession, &sess) || sess == nil {
		return nil, false
	}
	return sess, true
}

// ClearSession removes only the session record.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.backend(ctx).Delete(ctx, KeySession)
}

func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.write(ctx, KeyToken, token)
}

// Token returns the stored bearer token, or "" when none is stored. It
// satisfies client.TokenSource.
func (s *Store) Token(ctx context.Context) string {
	var token string
	s.read(ctx, KeyToken, &token)
	return token
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.backend(ctx).Delete(ctx, KeyToken)
}

// SaveLogin stores the session and token together; either both are written
// or neither is.
func (s *Store) SaveLogin(ctx context.Context, sess models.Session, token string) error {
	rawSession, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	rawToken, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := s.backend(ctx).SetMany(ctx, map[string][]byte{
		KeySession: rawSession,
		KeyToken:   rawToken,
	}); err != nil {
		return fmt.Errorf("save login: %w", err)
	}
	return nil
}

// Logout removes the session and the token. Favorites and the listings
// cache are kept.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.backend(ctx).Delete(ctx, KeySession, KeyToken); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Favorites returns the favorite listing IDs in the order they were added.
func (s *Store) Favorites(ctx context.Context) []string {
	var ids []string
	if !s.read(ctx, KeyFavorites, &ids) || ids == nil {
		return []string{}
	}
	return ids
}

// ToggleFavorite removes id from the favorite set if present and appends it
// otherwise. It returns the updated set.
func (s *Store) ToggleFavorite(ctx context.Context, id string) ([]string, error) {
	s.favMu.Lock()
	defer s.favMu.Unlock()

	ids := s.Favorites(ctx)
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, id)
	}

	if err := s.write(ctx, KeyFavorites, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IsFavorite reports whether id is in the favorite set.
func (s *Store) IsFavorite(ctx context.Context, id string) bool {
	return slices.Contains(s.Favorites(ctx), id)
}

// CacheListings replaces the listings cache.
func (s *Store) CacheListings(ctx context.Context, listings []models.Listing) error {
	return s.write(ctx, KeyListings, listings)
}

// CachedListings returns the cached listings, or an empty slice.
func (s *Store) CachedListings(ctx context.Context) []models.Listing {
	var listings []models.Listing
	if !s.read(ctx, KeyListings, &listings) || listings == nil {
		return []models.Listing{}
	}
	return listings
}
