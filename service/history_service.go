package service

import (
	"fmt"
	"time"

	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/internal/history"
)

// HistoryServiceImpl implements the HistoryReader and HistoryWriter
// interfaces over the flat-file past-groups store.
type HistoryServiceImpl struct{}

// NewHistoryService creates a new history service
func NewHistoryService() *HistoryServiceImpl {
	return &HistoryServiceImpl{}
}

// Read returns all past groups under dir that match the patterns. A
// missing directory counts as empty history, so first runs need no setup.
func (h *HistoryServiceImpl) Read(dir string, includePatterns, excludePatterns []string) ([]domain.PastGrouping, error) {
	store := history.NewStore(dir, includePatterns, excludePatterns)
	groups, err := store.Read()
	if err != nil {
		return nil, domain.NewHistoryError(fmt.Sprintf("failed to read history from %s", dir), err)
	}

	past := make([]domain.PastGrouping, len(groups))
	for i, g := range groups {
		past[i] = domain.PastGrouping{Members: g.Members, Source: g.Source, Line: g.Line}
	}
	return past, nil
}

// Append persists the groups under dir as a new file and returns its
// path. An empty name defaults to a timestamped file name.
func (h *HistoryServiceImpl) Append(dir, name string, groups []domain.Group) (string, error) {
	if name == "" {
		name = fmt.Sprintf("groups_%s.txt", time.Now().Format("20060102_150405"))
	}

	raw := make([][]string, len(groups))
	for i, g := range groups {
		raw[i] = g.Emails()
	}

	store := history.NewStore(dir, nil, nil)
	path, err := store.Append(name, raw)
	if err != nil {
		return "", domain.NewHistoryError(fmt.Sprintf("failed to write grouping to %s", dir), err)
	}
	return path, nil
}
