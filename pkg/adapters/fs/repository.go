package fs

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/git"
)

// DefaultLockTimeout bounds how long Save waits for another process to
// release the data file lock.
const DefaultLockTimeout = 5 * time.Second

// ErrNotVersioned is returned by History when versioning is disabled.
var ErrNotVersioned = errors.New("data file is not versioned")

// Repository implements core.Repository on top of a single data file,
// optionally recording every save as a git commit.
type Repository struct {
	Path       string
	dir        string
	file       string
	git        *git.Client
	serializer Serializer
	config     Config

	mu            sync.RWMutex
	lastHash      [sha256.Size]byte
	watcherActive bool
	lastLoad      *time.Time
	lastSave      *time.Time
	saves         int
}

// Config holds the configuration for the file repository.
type Config struct {
	Path         string // data file, e.g. "data/fitbook.json"
	Format       string // json, yaml or csv; derived from Path when empty
	ReadOnly     bool
	MustExist    bool // fail Initialize when the data file is absent
	Versioned    bool // commit every save to git
	AutoInit     bool // run git init when Versioned and no repository exists
	LockTimeout  time.Duration
	Logger       *slog.Logger
	ErrorHandler func(error) // receives watcher failures
}

// NewRepository creates a file-backed repository. It fails only when the
// data format is not supported.
func NewRepository(config Config) (*Repository, error) {
	if config.Path == "" {
		return nil, errors.New("data file path is empty")
	}
	s, err := SerializerFor(config.Path, config.Format)
	if err != nil {
		return nil, err
	}
	if config.LockTimeout <= 0 {
		config.LockTimeout = DefaultLockTimeout
	}

	path := filepath.Clean(config.Path)
	dir := filepath.Dir(path)
	return &Repository{
		Path:       path,
		dir:        dir,
		file:       filepath.Base(path),
		git:        git.NewClient(dir, config.Logger),
		serializer: s,
		config:     config,
	}, nil
}

// Initialize prepares the directory holding the data file and, when
// versioning is on, its git repository.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("data file does not exist: %s", r.Path)
		}
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("data file is a directory: %s", r.Path)
		}
	} else if !r.config.ReadOnly {
		if err := os.MkdirAll(r.dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if !r.config.Versioned || r.config.ReadOnly {
		return nil
	}
	if !git.IsInstalled() {
		return errors.New("git is not installed")
	}

	wasNewRepo := false
	if !r.git.IsRepo(ctx) {
		if !r.config.AutoInit {
			return fmt.Errorf("path is not a git repository: %s", r.dir)
		}
		if err := r.git.Init(ctx); err != nil {
			return fmt.Errorf("failed to git init: %w", err)
		}
		wasNewRepo = true
	}

	mod, err := r.ensureIgnore()
	if err != nil {
		return fmt.Errorf("failed to ensure .gitignore: %w", err)
	}
	if mod && wasNewRepo {
		if err := r.git.Add(ctx, ".gitignore"); err != nil {
			return fmt.Errorf("failed to add .gitignore: %w", err)
		}
		if err := r.git.Commit(ctx, "chore: ignore fitbook lock and temp files"); err != nil {
			return fmt.Errorf("failed to commit .gitignore: %w", err)
		}
	}
	return nil
}

// ensureIgnore keeps the lock file and atomic-write leftovers out of the
// history.
func (r *Repository) ensureIgnore() (bool, error) {
	ignorePath := filepath.Join(r.dir, ".gitignore")
	content, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(content), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, entry := range []string{git.LockFile, TempFilePrefix + "*"} {
		if !present[entry] {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return false, nil
	}

	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		if _, err := f.WriteString("\n"); err != nil {
			return false, err
		}
	}
	if _, err := f.WriteString(strings.Join(missing, "\n") + "\n"); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads and validates the data file. A missing file yields
// core.ErrNoData; an empty one yields an empty address book.
func (r *Repository) Load(ctx context.Context) (*core.AddressBook, error) {
	data, err := os.ReadFile(r.Path)
	if os.IsNotExist(err) {
		return nil, core.ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	ab, err := r.decode(data)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.lastHash = sha256.Sum256(data)
	now := time.Now()
	r.lastLoad = &now
	r.mu.Unlock()

	if r.config.Logger != nil {
		r.config.Logger.Debug("data file loaded", "path", r.Path, "clients", ab.Len())
	}
	return ab, nil
}

func (r *Repository) decode(data []byte) (*core.AddressBook, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return core.NewAddressBook()
	}
	return r.serializer.Decode(bytes.NewReader(data))
}

// Save writes the whole address book. Concurrent writers, including other
// processes, are serialized through the lock file next to the data file.
//
// Workflow:
//  1. Serialize the address book.
//  2. Acquire the lock, bounded by LockTimeout.
//  3. Write atomically (temp file and rename).
//  4. (If versioned) 'git add' and 'git commit' using the change reason
//     carried by ctx.
func (r *Repository) Save(ctx context.Context, ab *core.AddressBook) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	data, err := r.serializer.Encode(ab)
	if err != nil {
		return fmt.Errorf("failed to serialize address book: %w", err)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, r.config.LockTimeout)
	defer cancel()
	unlock, err := r.git.Lock(lockCtx)
	if err != nil {
		return err
	}
	defer unlock()

	// Record the hash first so the watcher recognises our own write.
	r.mu.Lock()
	r.lastHash = sha256.Sum256(data)
	r.mu.Unlock()

	if err := writeFileAtomic(r.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if r.config.Versioned {
		if err := r.git.Add(ctx, r.file); err != nil {
			return fmt.Errorf("failed to git add: %w", err)
		}
		msg := core.ChangeReason(ctx)
		if msg == "" {
			msg = "update " + r.file
		}
		if err := r.git.Commit(ctx, msg); err != nil {
			return fmt.Errorf("failed to git commit: %w", err)
		}
	}

	r.mu.Lock()
	now := time.Now()
	r.lastSave = &now
	r.saves++
	r.mu.Unlock()

	if r.config.Logger != nil {
		r.config.Logger.Debug("data file saved", "path", r.Path, "clients", ab.Len(), "versioned", r.config.Versioned)
	}
	return nil
}

// History lists the recorded versions of the data file, newest first.
func (r *Repository) History(ctx context.Context, limit int) ([]git.Revision, error) {
	if !r.config.Versioned {
		return nil, ErrNotVersioned
	}
	return r.git.Log(ctx, r.file, limit)
}

// isOwnWrite reports whether data matches what this repository last read
// or wrote.
func (r *Repository) isOwnWrite(data []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sha256.Sum256(data) == r.lastHash
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
