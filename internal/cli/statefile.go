package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dl/docsearch/internal/matcher"
	"github.com/dl/docsearch/internal/session"
)

// storedQuery is the on-disk form of the previous-query slot.
type storedQuery struct {
	Query     string `toml:"query"`
	IsRegex   bool   `toml:"is_regex"`
	MatchCase bool   `toml:"match_case"`
}

// DefaultStatePath returns where the previous query is kept between runs:
// DOCSEARCH_STATE_PATH, else $XDG_STATE_HOME/docsearch/state.toml, else
// ~/.local/state/docsearch/state.toml.
func DefaultStatePath() (string, error) {
	if p := os.Getenv("DOCSEARCH_STATE_PATH"); p != "" {
		return p, nil
	}
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate state file: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "docsearch", "state.toml"), nil
}

// LoadState reads path into st. A missing file leaves st as it is.
func LoadState(path string, st *session.State) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read state %s: %w", path, err)
	}

	var sq storedQuery
	if err := toml.Unmarshal(data, &sq); err != nil {
		return fmt.Errorf("parse state %s: %w", path, err)
	}
	st.SetPrevious(matcher.Query{Text: sq.Query, IsRegex: sq.IsRegex, MatchCase: sq.MatchCase})
	return nil
}

// SaveState writes st to path, creating its directory. The file is replaced
// atomically.
func SaveState(path string, st *session.State) error {
	data, err := marshalStored(st.Previous())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".state-*.toml")
	if err != nil {
		return fmt.Errorf("write state %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write state %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write state %s: %w", path, err)
	}
	return nil
}

func marshalStored(q matcher.Query) ([]byte, error) {
	data, err := toml.Marshal(storedQuery{Query: q.Text, IsRegex: q.IsRegex, MatchCase: q.MatchCase})
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// ClearState removes the state file. A missing file is not an error.
func ClearState(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear state %s: %w", path, err)
	}
	return nil
}
