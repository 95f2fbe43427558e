package completion

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
)

// EtcAccounts reads user and group names from passwd(5) and group(5) files
type EtcAccounts struct {
	PasswdFile string // "/etc/passwd" when empty
	GroupFile  string // "/etc/group" when empty
}

// UserNames implements Accounts
func (a EtcAccounts) UserNames() ([]string, error) {
	return readNames(orDefault(a.PasswdFile, "/etc/passwd"))
}

// GroupNames implements Accounts
func (a EtcAccounts) GroupNames() ([]string, error) {
	return readNames(orDefault(a.GroupFile, "/etc/group"))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// readNames returns the first colon separated field of every entry
func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, _, _ := strings.Cut(line, ":")
		// NIS compat entries ("+", "-name") are not names
		if name == "" || strings.HasPrefix(name, "+") || strings.HasPrefix(name, "-") {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return names, nil
}

// CompleteUserName completes a user name
func (e *Engine) CompleteUserName(list *candidates.List, prefix string) {
	e.completeAccounts(list, prefix, "users", func(a Accounts) ([]string, error) {
		return a.UserNames()
	})
}

// CompleteGroupName completes a group name
func (e *Engine) CompleteGroupName(list *candidates.List, prefix string) {
	e.completeAccounts(list, prefix, "groups", func(a Accounts) ([]string, error) {
		return a.GroupNames()
	})
}

func (e *Engine) completeAccounts(list *candidates.List, prefix, kind string, names func(Accounts) ([]string, error)) {
	if e.accounts != nil {
		all, err := names(e.accounts)
		if err != nil {
			e.log.Debug().Str("kind", kind).Err(err).Msg("Account enumeration failed")
		}
		for _, name := range all {
			if strings.HasPrefix(name, prefix) {
				list.Add(name)
			}
		}
	}
	list.EndGroup()
	list.Add(prefix)
}

// CompleteOwner completes a "user[:group]" ownership spec and returns the
// offset of the completed part within spec. Without an account directory the
// spec is only offered back.
func (e *Engine) CompleteOwner(list *candidates.List, spec string) int {
	if e.accounts == nil {
		list.Add(spec)
		return 0
	}

	colon := strings.IndexByte(spec, ':')
	if colon < 0 {
		e.CompleteUserName(list, spec)
		return 0
	}
	e.CompleteGroupName(list, spec[colon+1:])
	return colon + 1
}
