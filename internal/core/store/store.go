// Package store holds the per-entity in-memory caches the UI reads from.
//
// Each Store owns the list of entities it last loaded or searched, a loading
// state and the search text that produced the list. Reads go through an
// atomically swapped snapshot and never block. Every mutation of the snapshot
// happens under the store's exclusive section, and Add, Update and Delete are
// additionally serialized end to end with full loads, so only one of them is
// in flight and a load never drops a write that committed while it ran.
package store

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/platform/logging"
	"github.com/SscSPs/donation_tracker/internal/platform/metrics"
)

// RuleSearchUnsupported is returned by Search on stores without a text search.
const RuleSearchUnsupported = "search_unsupported"

// Entity is the constraint every cached type satisfies.
type Entity[E any] interface {
	RecordID() int64
	RecordUUID() string
	Audit() domain.AuditFields
	WithAudit(domain.AuditFields) E
	WithIdentity(domain.Identity) E
}

// Snapshot is a consistent view of a store. Version increases with every change.
type Snapshot[E any] struct {
	Entities   []E          `json:"entities"`
	State      LoadingState `json:"loadingState"`
	SearchText string       `json:"searchText"`
	Version    uint64       `json:"version"`
}

// Change is sent to subscribers after the snapshot changed.
type Change struct {
	Store   string       `json:"store"`
	Version uint64       `json:"version"`
	State   LoadingState `json:"loadingState"`
}

// Config wires a Store to its repository and entity rules.
type Config[E Entity[E]] struct {
	Name string
	Repo portsrepo.EntityRepository[E]

	// Search runs a text search in storage. Nil means the store has none.
	Search func(ctx context.Context, text string) ([]E, error)

	// Validate runs before every insert and update, including reference checks.
	Validate func(E) error

	// BeforeDelete may refuse a delete before storage is contacted.
	BeforeDelete func(ctx context.Context, id int64) error

	// ReloadFromError lets Load(ctx, false) retry after a failed load.
	ReloadFromError bool
}

// Option customizes a Store.
type Option func(*options)

type options struct {
	recorder metrics.StoreRecorder
	now      func() time.Time
}

// WithRecorder reports state and size changes to r.
func WithRecorder(r metrics.StoreRecorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithClock replaces time.Now for update timestamps and report windows.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// cache is immutable once published.
type cache[E Entity[E]] struct {
	snap Snapshot[E]
	// full is the result of the last full load, kept in step with writes.
	// nil until a load succeeds.
	full    []E
	fullIDs map[int64]struct{}
}

// Store is the observable cache for one entity type.
type Store[E Entity[E]] struct {
	cfg  Config[E]
	opts options
	logging.Helper

	cur atomic.Pointer[cache[E]]

	// mu is the exclusive section for publishing a new cache and for the
	// request sequence numbers.
	mu      sync.Mutex
	issued  uint64
	applied uint64

	// writeMu serializes Add, Update, Delete and full loads end to end.
	writeMu sync.Mutex

	subsMu  sync.Mutex
	subs    map[int]chan Change
	nextSub int
}

// New creates a store in the NotLoaded state.
func New[E Entity[E]](cfg Config[E], opts ...Option) *Store[E] {
	o := options{recorder: metrics.Nop{}, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store[E]{cfg: cfg, opts: o, subs: map[int]chan Change{}}
	s.cur.Store(&cache[E]{snap: Snapshot[E]{Entities: []E{}, State: NotLoaded()}})
	o.recorder.SetStoreState(cfg.Name, StateNotLoaded.String())
	o.recorder.SetStoreSize(cfg.Name, 0)
	return s
}

func (s *Store[E]) Name() string { return s.cfg.Name }

// Snapshot returns the current entities, state and search text together.
func (s *Store[E]) Snapshot() Snapshot[E] {
	snap := s.cur.Load().snap
	snap.Entities = slices.Clone(snap.Entities)
	return snap
}

func (s *Store[E]) Entities() []E {
	return slices.Clone(s.cur.Load().snap.Entities)
}

func (s *Store[E]) State() LoadingState {
	return s.cur.Load().snap.State
}

func (s *Store[E]) SearchText() string {
	return s.cur.Load().snap.SearchText
}

// Get returns the cached entity with the given id.
func (s *Store[E]) Get(id int64) (E, bool) {
	c := s.cur.Load()
	if i := indexOf(c.snap.Entities, id); i >= 0 {
		return c.snap.Entities[i], true
	}
	if i := indexOf(c.full, id); i >= 0 {
		return c.full[i], true
	}
	var zero E
	return zero, false
}

// Contains reports whether id is part of the last full load. checked is
// false when the store has never completed a full load.
func (s *Store[E]) Contains(id int64) (found, checked bool) {
	c := s.cur.Load()
	if c.fullIDs == nil {
		return false, false
	}
	_, found = c.fullIDs[id]
	return found, true
}

// Resolve returns the entity an editor in mode m works on: the zero value in
// add mode, the cached entity in edit mode.
func (s *Store[E]) Resolve(m Mode) (E, error) {
	var zero E
	if !m.IsEdit() {
		return zero, nil
	}
	e, ok := s.Get(m.ID())
	if !ok {
		return zero, apperrors.NotFound(s.cfg.Name, m.ID())
	}
	return e, nil
}

// Load fills the cache from storage. It does nothing unless the store is
// NotLoaded or force is set. On failure the state becomes Error and the
// previous entities stay in place. Writes wait for a running load and a load
// waits for a running write.
func (s *Store[E]) Load(ctx context.Context, force bool) error {
	if !force && !s.needsLoad(s.State()) {
		s.LogDebug(ctx, "Store already loaded, skipping", slog.String("store", s.cfg.Name), slog.String("state", s.State().String()))
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	// Another load may have finished while this one waited.
	if state := s.cur.Load().snap.State; !force && !s.needsLoad(state) {
		s.mu.Unlock()
		return nil
	}
	seq := s.beginLocked("")
	s.mu.Unlock()

	entities, err := s.cfg.Repo.GetAll(ctx)
	return s.finish(ctx, seq, "load", entities, err, true, "")
}

func (s *Store[E]) needsLoad(state LoadingState) bool {
	switch state.Kind {
	case StateNotLoaded:
		return true
	case StateError:
		return s.cfg.ReloadFromError
	}
	return false
}

// Search replaces the entities with the storage search result for text.
// Empty text restores the last full load without touching storage, or
// performs a forced load when there is none.
func (s *Store[E]) Search(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		s.mu.Lock()
		c := s.cur.Load()
		if c.full != nil {
			s.issued++
			s.applied = s.issued
			next := c.clone()
			next.snap.Entities = c.full
			next.snap.State = Loaded()
			next.snap.SearchText = ""
			s.publishLocked(next)
			s.mu.Unlock()
			return nil
		}
		s.mu.Unlock()
		return s.Load(ctx, true)
	}

	if s.cfg.Search == nil {
		return apperrors.NewValidationError(RuleSearchUnsupported, s.cfg.Name+" cannot be searched by text")
	}

	s.mu.Lock()
	seq := s.beginLocked(text)
	s.mu.Unlock()

	entities, err := s.cfg.Search(ctx, text)
	return s.finish(ctx, seq, "search", entities, err, false, text)
}

// SetNotLoaded moves the store back to NotLoaded and drops the cached full
// load so the next Load or empty Search goes to storage. Results of requests
// still in flight are discarded.
func (s *Store[E]) SetNotLoaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = s.issued
	next := s.cur.Load().clone()
	next.snap.State = NotLoaded()
	next.full, next.fullIDs = nil, nil
	s.publishLocked(next)
}

// beginLocked takes the next sequence number and marks the store Loading.
func (s *Store[E]) beginLocked(text string) uint64 {
	s.issued++
	next := s.cur.Load().clone()
	next.snap.State = Loading()
	next.snap.SearchText = text
	s.publishLocked(next)
	return s.issued
}

// finish applies a load or search result unless a newer request already
// applied its own.
func (s *Store[E]) finish(ctx context.Context, seq uint64, op string, entities []E, err error, full bool, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.applied {
		s.LogDebug(ctx, "Discarding superseded result",
			slog.String("store", s.cfg.Name),
			slog.String("op", op),
			slog.Uint64("seq", seq),
			slog.Uint64("applied", s.applied))
		return err
	}
	s.applied = seq

	next := s.cur.Load().clone()
	if err != nil {
		s.LogError(ctx, err, "Store "+op+" failed", slog.String("store", s.cfg.Name))
		next.snap.State = Failed(err.Error())
		s.publishLocked(next)
		return err
	}

	if entities == nil {
		entities = []E{}
	}
	next.snap.Entities = entities
	next.snap.State = Loaded()
	next.snap.SearchText = text
	if full {
		next.setFull(entities)
	}
	s.publishLocked(next)
	return nil
}

// Add validates e, inserts it and appends the stored entity to the cache.
func (s *Store[E]) Add(ctx context.Context, e E) (E, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var zero E
	if err := s.validate(ctx, "add", e); err != nil {
		return zero, err
	}
	stored, err := s.cfg.Repo.Insert(ctx, e)
	if err != nil {
		return zero, err
	}
	s.put(stored, true)
	return stored, nil
}

// Update validates e, stamps UpdatedAt and replaces the cached entry once
// storage accepted the change. The uuid and CreatedAt always come from the
// stored record, never from e.
func (s *Store[E]) Update(ctx context.Context, e E) (E, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var zero E
	if err := s.validate(ctx, "update", e); err != nil {
		return zero, err
	}
	id := e.RecordID()
	if id == 0 {
		return zero, apperrors.NotFound(s.cfg.Name, 0)
	}

	current, err := s.stored(ctx, id)
	if err != nil {
		return zero, err
	}
	e = e.WithIdentity(domain.Identity{ID: id, UUID: current.RecordUUID()})
	audit := e.Audit()
	audit.CreatedAt = current.Audit().CreatedAt
	audit.UpdatedAt = s.opts.now().UTC()
	e = e.WithAudit(audit)

	if err := s.cfg.Repo.Update(ctx, e); err != nil {
		return zero, err
	}
	s.put(e, false)
	return e, nil
}

// Delete removes e from storage, then from the cache.
func (s *Store[E]) Delete(ctx context.Context, e E) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.beforeDelete(ctx, e.RecordID()); err != nil {
		return err
	}
	if err := s.cfg.Repo.Delete(ctx, e); err != nil {
		return err
	}
	s.remove(e.RecordID())
	return nil
}

// DeleteByID removes the entity with the given id from storage, then from the cache.
func (s *Store[E]) DeleteByID(ctx context.Context, id int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.beforeDelete(ctx, id); err != nil {
		return err
	}
	if err := s.cfg.Repo.DeleteOne(ctx, id); err != nil {
		return err
	}
	s.remove(id)
	return nil
}

// stored returns the cached entity with id, reading storage when it is not cached.
func (s *Store[E]) stored(ctx context.Context, id int64) (E, error) {
	if cached, ok := s.Get(id); ok {
		return cached, nil
	}
	var zero E
	row, err := s.cfg.Repo.GetOne(ctx, id)
	if err != nil {
		return zero, err
	}
	if row == nil {
		return zero, apperrors.NotFound(s.cfg.Name, id)
	}
	return *row, nil
}

func (s *Store[E]) validate(ctx context.Context, op string, e E) error {
	if s.cfg.Validate == nil {
		return nil
	}
	if err := s.cfg.Validate(e); err != nil {
		s.LogDebug(ctx, "Rejected invalid entity",
			slog.String("store", s.cfg.Name),
			slog.String("op", op),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (s *Store[E]) beforeDelete(ctx context.Context, id int64) error {
	if s.cfg.BeforeDelete == nil {
		return nil
	}
	return s.cfg.BeforeDelete(ctx, id)
}

// put replaces the entry with e's id, or appends e when add is set and the
// id is not cached yet.
func (s *Store[E]) put(e E, add bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cur.Load()
	next := c.clone()
	next.snap.Entities = upsert(c.snap.Entities, e, add)
	if c.full != nil {
		next.setFull(upsert(c.full, e, add))
	}
	s.publishLocked(next)
}

func (s *Store[E]) remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cur.Load()
	next := c.clone()
	next.snap.Entities = without(c.snap.Entities, id)
	if c.full != nil {
		next.setFull(without(c.full, id))
	}
	s.publishLocked(next)
}

// replace swaps in an entity that changed in storage outside Update.
func (s *Store[E]) replace(e E) {
	s.put(e, false)
}

// Subscribe returns a channel that receives a Change after every snapshot
// change, and a function that cancels the subscription. Changes are
// coalesced: a slow subscriber sees at least the latest one.
func (s *Store[E]) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, 1)
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
			close(ch)
		})
	}
}

// publishLocked must be called with mu held.
func (s *Store[E]) publishLocked(next *cache[E]) {
	next.snap.Version = s.cur.Load().snap.Version + 1
	s.cur.Store(next)

	s.opts.recorder.SetStoreState(s.cfg.Name, next.snap.State.Kind.String())
	s.opts.recorder.SetStoreSize(s.cfg.Name, len(next.snap.Entities))

	change := Change{Store: s.cfg.Name, Version: next.snap.Version, State: next.snap.State}
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
			// Replace the pending change with the newer one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- change:
			default:
			}
		}
	}
}

func (c *cache[E]) clone() *cache[E] {
	next := *c
	return &next
}

func (c *cache[E]) setFull(entities []E) {
	ids := make(map[int64]struct{}, len(entities))
	for _, e := range entities {
		ids[e.RecordID()] = struct{}{}
	}
	c.full = entities
	c.fullIDs = ids
}

func indexOf[E Entity[E]](list []E, id int64) int {
	return slices.IndexFunc(list, func(e E) bool { return e.RecordID() == id })
}

func upsert[E Entity[E]](list []E, e E, add bool) []E {
	out := slices.Clone(list)
	if i := indexOf(out, e.RecordID()); i >= 0 {
		out[i] = e
		return out
	}
	if add {
		out = append(out, e)
	}
	if out == nil {
		out = []E{}
	}
	return out
}

func without[E Entity[E]](list []E, id int64) []E {
	out := slices.DeleteFunc(slices.Clone(list), func(e E) bool { return e.RecordID() == id })
	if out == nil {
		out = []E{}
	}
	return out
}
