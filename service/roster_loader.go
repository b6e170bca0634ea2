package service

import (
	"errors"
	"os"

	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/internal/roster"
)

// RosterLoaderImpl implements the RosterLoader interface
type RosterLoaderImpl struct{}

// NewRosterLoader creates a new roster loader service
func NewRosterLoader() *RosterLoaderImpl {
	return &RosterLoaderImpl{}
}

// Load reads "email,name" entries from the given file.
func (l *RosterLoaderImpl) Load(path string) ([]domain.Member, error) {
	r, err := roster.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, domain.NewRosterParseError(path, err)
	}

	members := make([]domain.Member, 0, r.Len())
	for _, m := range r.Members() {
		members = append(members, domain.Member{Email: m.Email, Name: m.Name})
	}
	return members, nil
}
