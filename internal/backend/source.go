package backend

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/karpador/trombone/internal/place"
	"github.com/karpador/trombone/internal/sidebar"
	toml "github.com/pelletier/go-toml/v2"
)

// Source supplies the account's lists and unread counts. Implementations
// may block; the watcher only calls them from its own goroutines.
type Source interface {
	FetchLists(ctx context.Context) ([]sidebar.ListEntry, error)
	FetchBadges(ctx context.Context) (map[string]uint64, error)
}

// StaticSource serves fixed data. Badges may be updated between polls.
type StaticSource struct {
	mu     sync.Mutex
	lists  []sidebar.ListEntry
	badges map[string]uint64
}

// NewStaticSource serves lists and badges keyed by place.Key.
func NewStaticSource(lists []sidebar.ListEntry, badges map[string]uint64) *StaticSource {
	s := &StaticSource{}
	s.SetLists(lists)
	s.SetBadges(badges)
	return s
}

func (s *StaticSource) FetchLists(ctx context.Context) ([]sidebar.ListEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLists(s.lists), nil
}

func (s *StaticSource) FetchBadges(ctx context.Context) (map[string]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBadges(s.badges), nil
}

func (s *StaticSource) SetLists(lists []sidebar.ListEntry) {
	s.mu.Lock()
	s.lists = cloneLists(lists)
	s.mu.Unlock()
}

func (s *StaticSource) SetBadges(badges map[string]uint64) {
	s.mu.Lock()
	s.badges = cloneBadges(badges)
	s.mu.Unlock()
}

// FollowRequestsKey carries the pending follow request count alongside the
// per-place badges.
const FollowRequestsKey = "follow-requests"

// FileSource re-reads a TOML feed file on every fetch:
//
//	[[lists]]
//	id = "1"
//	name = "frems"
//
//	[badges]
//	notifications = 3
//	"list:1" = 2
//	follow-requests = 1
type FileSource struct {
	path string
}

// NewFileSource reads the feed at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type feedFile struct {
	Lists  []feedList        `toml:"lists"`
	Badges map[string]uint64 `toml:"badges"`
}

type feedList struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

func (f *FileSource) FetchLists(ctx context.Context) ([]sidebar.ListEntry, error) {
	feed, err := f.read(ctx)
	if err != nil {
		return nil, err
	}
	lists := make([]sidebar.ListEntry, 0, len(feed.Lists))
	for _, entry := range feed.Lists {
		lists = append(lists, sidebar.ListEntry{ID: place.ListID(entry.ID), Name: entry.Name})
	}
	return lists, nil
}

func (f *FileSource) FetchBadges(ctx context.Context) (map[string]uint64, error) {
	feed, err := f.read(ctx)
	if err != nil {
		return nil, err
	}
	badges := make(map[string]uint64, len(feed.Badges))
	for key, count := range feed.Badges {
		if key == FollowRequestsKey {
			badges[key] = count
			continue
		}
		p, err := place.ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("feed %s: badge %q: %w", f.path, key, err)
		}
		badges[p.Key()] = count
	}
	return badges, nil
}

func (f *FileSource) read(ctx context.Context) (feedFile, error) {
	if err := ctx.Err(); err != nil {
		return feedFile{}, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return feedFile{}, fmt.Errorf("read feed: %w", err)
	}
	var feed feedFile
	if err := toml.Unmarshal(data, &feed); err != nil {
		return feedFile{}, fmt.Errorf("parse feed %s: %w", f.path, err)
	}
	return feed, nil
}

func cloneLists(lists []sidebar.ListEntry) []sidebar.ListEntry {
	if len(lists) == 0 {
		return nil
	}
	dup := make([]sidebar.ListEntry, len(lists))
	copy(dup, lists)
	return dup
}

func cloneBadges(badges map[string]uint64) map[string]uint64 {
	dup := make(map[string]uint64, len(badges))
	for k, v := range badges {
		dup[k] = v
	}
	return dup
}
