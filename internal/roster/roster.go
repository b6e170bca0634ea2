// Package roster reads the participant roster file.
//
// The roster is a plain text file with one participant per line in the
// form "email,name". Blank lines and lines starting with '#' are skipped.
// Everything after the first comma is the display name, so names may
// themselves contain commas.
package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Member is a single roster entry.
type Member struct {
	Email string
	Name  string
}

// Roster holds the participants of the current run.
type Roster struct {
	members []Member
	byEmail map[string]Member
}

// ParseError describes a malformed roster line.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Load reads a roster file from disk.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads roster entries from r. The path is used in error messages
// only.
func Parse(r io.Reader, path string) (*Roster, error) {
	roster := &Roster{byEmail: make(map[string]Member)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		email, name, found := strings.Cut(line, ",")
		if !found {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: "expected \"email,name\""}
		}
		email = strings.TrimSpace(email)
		name = strings.TrimSpace(name)
		if email == "" {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: "empty email"}
		}
		if name == "" {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("empty name for %s", email)}
		}
		if _, dup := roster.byEmail[email]; dup {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("duplicate email %s", email)}
		}

		m := Member{Email: email, Name: name}
		roster.members = append(roster.members, m)
		roster.byEmail[email] = m
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}

// Len returns the number of participants.
func (r *Roster) Len() int {
	return len(r.members)
}

// Members returns roster entries in file order.
func (r *Roster) Members() []Member {
	return r.members
}

// Emails returns all participant emails in sorted order.
func (r *Roster) Emails() []string {
	emails := make([]string, 0, len(r.members))
	for _, m := range r.members {
		emails = append(emails, m.Email)
	}
	sort.Strings(emails)
	return emails
}

// NameOf returns the display name for an email, falling back to the email
// itself for unknown members (past groups may reference people who have
// since left the roster).
func (r *Roster) NameOf(email string) string {
	if m, ok := r.byEmail[email]; ok {
		return m.Name
	}
	return email
}

// Contains reports whether the email belongs to the current roster.
func (r *Roster) Contains(email string) bool {
	_, ok := r.byEmail[email]
	return ok
}

// EmailSet returns the participants as a membership set.
func (r *Roster) EmailSet() map[string]bool {
	set := make(map[string]bool, len(r.members))
	for _, m := range r.members {
		set[m.Email] = true
	}
	return set
}
