// Package store persists progress history snapshots on disk.
package store

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/spbar/pkg/snapshot"
)

// Persistence defines the persistence contract for progress history.
type Persistence interface {
	ListAll(ctx context.Context) []*snapshot.Snapshot
	List(ctx context.Context, path string) []*snapshot.Snapshot
	Paths(ctx context.Context) []string
	Store(s *snapshot.Snapshot) error
	Delete(s *snapshot.Snapshot) error
}

// Load creates a Persistence backed by diskv rooted at basePath.
func Load(basePath string) (Persistence, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*snapshot.Snapshot, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	s := snapshot.Snapshot{}
	if err := json.Unmarshal(val, &s); err != nil {
		return nil, err
	}
	if s.Schema == "" {
		s.Schema = snapshot.CurrentSchema
	}
	pk := keyToPathTransform(key)
	s.ID = pk.FileName
	return &s, nil
}

func (p *persistence) ListAll(ctx context.Context) []*snapshot.Snapshot {
	all := make([]*snapshot.Snapshot, 0)
	for key := range p.d.Keys(ctx.Done()) {
		s, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, s)
	}
	sortSnapshots(all)
	return all
}

func (p *persistence) List(ctx context.Context, path string) []*snapshot.Snapshot {
	pk := toDocKey(path)
	all := make([]*snapshot.Snapshot, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if k := keyToPathTransform(key); k.Path[0] == pk {
			s, err := p.read(key)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
				continue
			}
			all = append(all, s)
		}
	}
	sortSnapshots(all)
	return all
}

func (p *persistence) Paths(ctx context.Context) []string {
	seen := make(map[string]struct{})
	for key := range p.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		path := fromDocKey(pk.Path[0])
		seen[path] = struct{}{}
	}
	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (p *persistence) Store(s *snapshot.Snapshot) error {
	if s.Schema == "" {
		s.Schema = snapshot.CurrentSchema
	}
	key := toKey(s)
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) Delete(s *snapshot.Snapshot) error {
	return p.d.Erase(toKey(s))
}

func sortSnapshots(all []*snapshot.Snapshot) {
	sort.SliceStable(all, func(i, j int) bool {
		left := all[i]
		right := all[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Recorded.Time
		rt := right.Recorded.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.Before(rt)
		}
	})
}

const layoutISO = "2006-01-02"

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `doc-date-id`.
func toKey(s *snapshot.Snapshot) string {
	doc := toDocKey(s.Path)
	then := s.Recorded.Format(layoutISO)

	if s.ID == "" {
		b, _ := json.Marshal(s)
		id := md5.Sum(b)
		s.ID = fmt.Sprintf("%x", id[:8])
	}

	return fmt.Sprintf("%s-%s-%s", doc, then, s.ID)
}

// toDocKey encodes a document path into a single key segment; paths
// contain separators and other characters diskv keys cannot carry.
func toDocKey(path string) string {
	return base64.StdEncoding.EncodeToString([]byte(path))
}

func fromDocKey(s string) string {
	path, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("fromDocKey: %s", err)
	}
	return string(path)
}
