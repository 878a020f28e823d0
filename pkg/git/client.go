// Package git records versions of the data file in a git repository.
package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// LockFile is created next to the data file while it is being written.
const LockFile = ".fitbook.lock"

// ErrLockTimeout is returned when another process holds the lock for
// longer than the context allows.
var ErrLockTimeout = errors.New("timed out waiting for data file lock")

// Client runs git commands in a working directory and guards writes with a
// lock file shared by every FitBook process using that directory.
type Client struct {
	WorkDir  string
	Logger   *slog.Logger
	lockPath string
}

func NewClient(workDir string, logger *slog.Logger) *Client {
	return &Client{
		WorkDir:  workDir,
		Logger:   logger,
		lockPath: LockFile,
	}
}

// IsInstalled reports whether the git binary is on PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Lock acquires the lock file, polling until ctx is done.
func (c *Client) Lock(ctx context.Context) (func(), error) {
	full := filepath.Join(c.WorkDir, c.lockPath)

	for {
		f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL, 0o666)
		if err == nil {
			f.Close()
			return func() { os.Remove(full) }, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrLockTimeout, ctx.Err())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// Run executes git with args in the working directory. It does not take
// the lock.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	if c.Logger != nil {
		c.Logger.Debug("executing git", "args", args, "dir", c.WorkDir)
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	output := string(out)
	if err != nil {
		return output, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, output)
	}
	return strings.TrimSpace(output), nil
}

// IsRepo reports whether WorkDir is inside a git work tree.
func (c *Client) IsRepo(ctx context.Context) bool {
	out, err := c.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

func (c *Client) Init(ctx context.Context) error {
	_, err := c.Run(ctx, "init")
	return err
}

func (c *Client) Add(ctx context.Context, files ...string) error {
	if len(files) == 0 {
		return nil
	}
	_, err := c.Run(ctx, append([]string{"add"}, files...)...)
	return err
}

// Commit records staged changes. A clean index is not an error.
func (c *Client) Commit(ctx context.Context, msg string) error {
	staged, err := c.Run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return err
	}
	if staged == "" {
		return nil
	}
	_, err = c.Run(ctx, "-c", "user.name=fitbook", "-c", "user.email=fitbook@localhost", "commit", "-m", msg)
	return err
}

// Revision is one recorded version of a file.
type Revision struct {
	Hash    string
	When    time.Time
	Message string
}

// Log lists the revisions touching file, newest first. limit <= 0 means no
// limit.
func (c *Client) Log(ctx context.Context, file string, limit int) ([]Revision, error) {
	args := []string{"log", "--format=%h%x09%cI%x09%s"}
	if limit > 0 {
		args = append(args, fmt.Sprintf("-n%d", limit))
	}
	args = append(args, "--", file)

	out, err := c.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var revs []Revision
	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		when, err := time.Parse(time.RFC3339, parts[1])
		if err != nil {
			return nil, fmt.Errorf("parse commit date %q: %w", parts[1], err)
		}
		revs = append(revs, Revision{Hash: parts[0], When: when, Message: parts[2]})
	}
	return revs, nil
}
