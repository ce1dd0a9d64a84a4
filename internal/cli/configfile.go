package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LoadConfigArgs reads the docsearch config file and returns its arguments.
// Config file location: DOCSEARCH_CONFIG_PATH env var, or ~/.docsearch.
// Format: one flag per line, # comments, empty lines ignored.
// Returns nil if no config file found.
func LoadConfigArgs() []string {
	path := os.Getenv("DOCSEARCH_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".docsearch")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	return args
}

// withConfigArgs inserts defaults right after the search subcommand so flags
// given on the command line win. Other subcommands take no defaults.
func withConfigArgs(args, defaults []string) []string {
	if len(defaults) == 0 {
		return args
	}
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == statePathFlag {
			i++ // value follows
			continue
		}
		if strings.HasPrefix(a, "-") {
			continue
		}
		if a != searchCommandName {
			return args
		}
		out := make([]string, 0, len(args)+len(defaults))
		out = append(out, args[:i+1]...)
		out = append(out, defaults...)
		return append(out, args[i+1:]...)
	}
	return args
}
