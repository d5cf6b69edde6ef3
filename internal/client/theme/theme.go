// Package theme keeps the light/dark preference of the CLI.
//
// The mode is one of light, dark or auto and is persisted under the "theme"
// storage key. In auto mode the effective palette follows a SystemSource and
// is re-applied whenever the source reports a change.
package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophgallery/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeAuto  Mode = "auto"
)

const DefaultMode = ModeAuto

var ErrInvalidMode = errors.New("invalid theme mode")

// ParseMode accepts light, dark or auto in any case.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLight, ModeDark, ModeAuto:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// SystemSource reports the system color scheme preference.
type SystemSource interface {
	PrefersDark() bool
	// Watch calls fn on every change until ctx is done. It must not block.
	Watch(ctx context.Context, fn func(dark bool)) error
}

// Applier switches the actual output palette.
type Applier interface {
	Apply(dark bool)
}

type Store struct {
	db      *sql.DB
	source  SystemSource
	applier Applier
	log     logging.Logger

	mu   sync.Mutex
	mode Mode
}

// Open loads the persisted mode. A missing or unknown value falls back to
// DefaultMode. Nothing is applied until Init.
func Open(ctx context.Context, db *sql.DB, source SystemSource, applier Applier, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.Nop{}
	}
	if source == nil {
		source = Static(false)
	}
	s := &Store{db: db, source: source, applier: applier, log: log.With("component", "theme"), mode: DefaultMode}

	raw, err := kv.NewSQLiteRepository(db).Get(ctx, common.StorageKeyTheme)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	if len(raw) > 0 {
		if m, err := ParseMode(string(raw)); err != nil {
			s.log.Warn(ctx, "ignoring stored theme", "error", err)
		} else {
			s.mode = m
		}
	}
	return s, nil
}

// Init applies the current mode and subscribes to system changes.
func (s *Store) Init(ctx context.Context) error {
	s.apply()
	if err := s.source.Watch(ctx, s.onSystemChange); err != nil {
		return fmt.Errorf("watch system theme: %w", err)
	}
	return nil
}

// SetTheme validates, persists and applies mode.
func (s *Store) SetTheme(ctx context.Context, mode Mode) error {
	m, err := ParseMode(string(mode))
	if err != nil {
		return err
	}

	if err := kv.NewSQLiteRepository(s.db).Set(ctx, common.StorageKeyTheme, []byte(m)); err != nil {
		return fmt.Errorf("store theme: %w", err)
	}

	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()

	s.apply()
	return nil
}

func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// IsDark is the effective palette: dark, or auto with a dark system preference.
func (s *Store) IsDark() bool {
	mode := s.Mode()
	return mode == ModeDark || (mode == ModeAuto && s.source.PrefersDark())
}

func (s *Store) apply() {
	if s.applier != nil {
		s.applier.Apply(s.IsDark())
	}
}

func (s *Store) onSystemChange(bool) {
	if s.Mode() == ModeAuto {
		s.apply()
	}
}
