package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
)

// ErrNotFound is returned when no stored item has the requested id.
var ErrNotFound = errors.New("store: item not found")

// Persistence defines the persistence contract for items.
type Persistence interface {
	BasePath() string
	ListAll(ctx context.Context) []item.Item
	Get(ctx context.Context, id string) (item.Item, error)
	Store(ctx context.Context, it item.Item) error
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	// No read cache: other processes write the same directory, and a cached
	// value would hide their edits from ListAll.
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

func (p *persistence) read(key string) (item.Item, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return item.Item{}, err
	}
	var it item.Item
	if err := json.Unmarshal(val, &it); err != nil {
		return item.Item{}, err
	}
	if it.ID == "" {
		it.ID = idFromKey(key)
	}
	return it, nil
}

func (p *persistence) ListAll(ctx context.Context) []item.Item {
	all := make([]item.Item, 0)
	for key := range p.d.Keys(ctx.Done()) {
		it, err := p.read(key)
		if err != nil {
			slog.Warn("store: skipping unreadable item", "key", key, "error", err)
			continue
		}
		all = append(all, it)
	}
	sortItems(all)
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (item.Item, error) {
	key, ok := p.keyFor(ctx, id)
	if !ok {
		return item.Item{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	it, err := p.read(key)
	if err != nil {
		return item.Item{}, fmt.Errorf("store: read %q: %w", id, err)
	}
	return it, nil
}

// Store writes it, replacing any stored item with the same id even when its
// category or day, and so its key, changed.
func (p *persistence) Store(ctx context.Context, it item.Item) error {
	if err := it.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	key := toKey(it)
	data, err := json.Marshal(it)
	if err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %q: %w", it.ID, err)
	}
	for _, old := range p.keysFor(ctx, it.ID) {
		if old == key {
			continue
		}
		if err := p.d.Erase(old); err != nil {
			return fmt.Errorf("store: erase previous %q: %w", it.ID, err)
		}
	}
	return nil
}

func (p *persistence) Delete(ctx context.Context, id string) error {
	keys := p.keysFor(ctx, id)
	if len(keys) == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	for _, key := range keys {
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %q: %w", id, err)
		}
	}
	return nil
}

func (p *persistence) keyFor(ctx context.Context, id string) (string, bool) {
	keys := p.keysFor(ctx, id)
	if len(keys) == 0 {
		return "", false
	}
	return keys[0], true
}

func (p *persistence) keysFor(ctx context.Context, id string) []string {
	if id == "" {
		return nil
	}
	suffix := "/" + encodeID(id)
	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasSuffix(key, suffix) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

const layoutKeyDay = "2006/01/02"

// sortItems orders newest first, falling back to id for equal timestamps.
func sortItems(items []item.Item) {
	slices.SortStableFunc(items, func(a, b item.Item) int {
		if c := b.Created.Compare(a.Created.Time); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(append(append([]string(nil), pathKey.Path...), pathKey.FileName), "/")
}

// toKey makes `category/yyyy/mm/dd/id` with the UTC creation day.
func toKey(it item.Item) string {
	then := it.Created.UTC().Format(layoutKeyDay)
	return fmt.Sprintf("%s/%s/%s", it.Category.String(), then, encodeID(it.ID))
}

func categoryFromKey(key string) (glyph.Category, bool) {
	head, _, _ := strings.Cut(key, "/")
	c, err := glyph.CategoryForAlias(head)
	return c, err == nil
}

func idFromKey(key string) string {
	pk := keyToPathTransform(key)
	id, err := base64.RawURLEncoding.DecodeString(pk.FileName)
	if err != nil {
		return pk.FileName
	}
	return string(id)
}

func encodeID(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

func ensureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	return nil
}
