package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/nstuweb/campus-backend/internal/apperr"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/mailer"
	"github.com/nstuweb/campus-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// seqGen mints deterministic ids: id-1, id-2, ...
type seqGen struct {
	mu sync.Mutex
	n  int
}

func (g *seqGen) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// plainHasher keeps passwords readable in assertions and skips bcrypt cost.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Verify(plain, hashed string) bool  { return "hashed:"+plain == hashed }

type memMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *memMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *memMailer) sentTo(addr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.sent {
		if msg.To == addr {
			n++
		}
	}
	return n
}

// memStore mimics the versioned document collection: inserts reject a taken
// shortid, replaces compare-and-swap on the version and bump it on success.
// Reads hand out clones so callers mutate stale copies, like decoded
// documents from a real cursor.
type memStore[T any, PT interface {
	*T
	types.Document
}] struct {
	mu         sync.Mutex
	docs       map[string]*T
	clone      func(*T) *T
	insertErr  error
	replaceErr error
}

func newMemStore[T any, PT interface {
	*T
	types.Document
}](clone func(*T) *T) *memStore[T, PT] {
	return &memStore[T, PT]{docs: map[string]*T{}, clone: clone}
}

func (s *memStore[T, PT]) findOne(match func(*T) bool) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if match(d) {
			return s.clone(d)
		}
	}
	return nil
}

func (s *memStore[T, PT]) findAll() []*T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*T, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, s.clone(d))
	}
	return out
}

func (s *memStore[T, PT]) insert(doc PT) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	id := doc.DocShortID()
	if _, ok := s.docs[id]; ok {
		return apperr.Duplicate("document %s already exists", id)
	}
	s.docs[id] = s.clone((*T)(doc))
	return nil
}

func (s *memStore[T, PT]) replace(doc PT) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.replaceErr != nil {
		return s.replaceErr
	}
	id := doc.DocShortID()
	stored, ok := s.docs[id]
	if !ok {
		return apperr.NotFound("document %s does not exist", id)
	}
	if PT(stored).DocVersion() != doc.DocVersion() {
		return apperr.Conflict("document %s was modified concurrently", id)
	}
	doc.SetDocVersion(doc.DocVersion() + 1)
	s.docs[id] = s.clone((*T)(doc))
	return nil
}

// snapshot returns a restore closure; the fake coordinator takes one per
// store before running the transaction body and invokes it on failure.
func (s *memStore[T, PT]) snapshot() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := make(map[string]*T, len(s.docs))
	for k, v := range s.docs {
		saved[k] = s.clone(v)
	}
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.docs = saved
	}
}

type snapshotter interface {
	snapshot() func()
}

// fakeCoordinator restores every participating store when the body fails,
// so the all-or-nothing contract of the real transaction holds in tests.
type fakeCoordinator struct {
	stores []snapshotter
}

func (c *fakeCoordinator) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	restores := make([]func(), 0, len(c.stores))
	for _, s := range c.stores {
		restores = append(restores, s.snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		return apperr.Transaction(err)
	}
	return nil
}

func cloneProfile(p *types.Profile) *types.Profile {
	cp := *p
	cp.Achievements = append([]types.Achievement(nil), p.Achievements...)
	cp.Projects = append([]types.Project(nil), p.Projects...)
	cp.Components = append([]types.Component(nil), p.Components...)
	return &cp
}

func cloneMaterial(m *types.Material) *types.Material {
	cm := *m
	cm.Subjects = append([]string(nil), m.Subjects...)
	cm.Resources = append([]types.Resource(nil), m.Resources...)
	cm.Conspects = append([]types.Conspect(nil), m.Conspects...)
	return &cm
}

func cloneRoom(r *types.Room) *types.Room {
	cr := *r
	cr.Members = append([]types.Member(nil), r.Members...)
	cr.Tasks = append([]types.Task(nil), r.Tasks...)
	return &cr
}

func cloneLecture(l *types.Lecture) *types.Lecture {
	cl := *l
	cl.Questions = append([]types.Question(nil), l.Questions...)
	cl.Details = append([]types.Detail(nil), l.Details...)
	return &cl
}

func cloneArea(a *types.Area) *types.Area {
	ca := *a
	ca.Locations = append([]types.Location(nil), a.Locations...)
	ca.Facts = append([]types.Fact(nil), a.Facts...)
	return &ca
}

func cloneIdea(i *types.Idea) *types.Idea {
	ci := *i
	ci.Roles = append([]string(nil), i.Roles...)
	ci.Thoughts = append([]types.Thought(nil), i.Thoughts...)
	ci.Quotes = append([]types.Quote(nil), i.Quotes...)
	return &ci
}

type fakeProfileRepo struct {
	store *memStore[types.Profile, *types.Profile]
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{store: newMemStore[types.Profile, *types.Profile](cloneProfile)}
}

func (r *fakeProfileRepo) GetByName(_ context.Context, name string) (*types.Profile, error) {
	return r.store.findOne(func(p *types.Profile) bool { return p.Name == name }), nil
}

func (r *fakeProfileRepo) GetByShortID(_ context.Context, shortid string) (*types.Profile, error) {
	return r.store.findOne(func(p *types.Profile) bool { return p.ShortID == shortid }), nil
}

func (r *fakeProfileRepo) GetByNameAndShortID(_ context.Context, name, shortid string) (*types.Profile, error) {
	return r.store.findOne(func(p *types.Profile) bool { return p.Name == name && p.ShortID == shortid }), nil
}

func (r *fakeProfileRepo) List(_ context.Context) ([]*types.Profile, error) {
	return r.store.findAll(), nil
}

func (r *fakeProfileRepo) Insert(_ context.Context, p *types.Profile) error  { return r.store.insert(p) }
func (r *fakeProfileRepo) Replace(_ context.Context, p *types.Profile) error { return r.store.replace(p) }

type fakeMaterialRepo struct {
	store *memStore[types.Material, *types.Material]
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{store: newMemStore[types.Material, *types.Material](cloneMaterial)}
}

func (r *fakeMaterialRepo) GetByShortID(_ context.Context, shortid string) (*types.Material, error) {
	return r.store.findOne(func(m *types.Material) bool { return m.ShortID == shortid }), nil
}

func (r *fakeMaterialRepo) GetByTitle(_ context.Context, title string) (*types.Material, error) {
	return r.store.findOne(func(m *types.Material) bool { return m.Title == title }), nil
}

func (r *fakeMaterialRepo) List(_ context.Context) ([]*types.Material, error) {
	return r.store.findAll(), nil
}

func (r *fakeMaterialRepo) Insert(_ context.Context, m *types.Material) error  { return r.store.insert(m) }
func (r *fakeMaterialRepo) Replace(_ context.Context, m *types.Material) error { return r.store.replace(m) }

type fakeRoomRepo struct {
	store *memStore[types.Room, *types.Room]
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{store: newMemStore[types.Room, *types.Room](cloneRoom)}
}

func (r *fakeRoomRepo) GetByShortID(_ context.Context, shortid string) (*types.Room, error) {
	return r.store.findOne(func(rm *types.Room) bool { return rm.ShortID == shortid }), nil
}

func (r *fakeRoomRepo) GetByDormitoryAndNum(_ context.Context, dormitory string, num float64) (*types.Room, error) {
	return r.store.findOne(func(rm *types.Room) bool { return rm.Dormitory == dormitory && rm.Num == num }), nil
}

func (r *fakeRoomRepo) List(_ context.Context) ([]*types.Room, error) {
	return r.store.findAll(), nil
}

func (r *fakeRoomRepo) Insert(_ context.Context, rm *types.Room) error  { return r.store.insert(rm) }
func (r *fakeRoomRepo) Replace(_ context.Context, rm *types.Room) error { return r.store.replace(rm) }

type fakeLectureRepo struct {
	store *memStore[types.Lecture, *types.Lecture]
}

func newFakeLectureRepo() *fakeLectureRepo {
	return &fakeLectureRepo{store: newMemStore[types.Lecture, *types.Lecture](cloneLecture)}
}

func (r *fakeLectureRepo) GetByShortID(_ context.Context, shortid string) (*types.Lecture, error) {
	return r.store.findOne(func(l *types.Lecture) bool { return l.ShortID == shortid }), nil
}

func (r *fakeLectureRepo) GetByTitle(_ context.Context, title string) (*types.Lecture, error) {
	return r.store.findOne(func(l *types.Lecture) bool { return l.Title == title }), nil
}

func (r *fakeLectureRepo) List(_ context.Context) ([]*types.Lecture, error) {
	return r.store.findAll(), nil
}

func (r *fakeLectureRepo) Insert(_ context.Context, l *types.Lecture) error  { return r.store.insert(l) }
func (r *fakeLectureRepo) Replace(_ context.Context, l *types.Lecture) error { return r.store.replace(l) }

type fakeAreaRepo struct {
	store *memStore[types.Area, *types.Area]
}

func newFakeAreaRepo() *fakeAreaRepo {
	return &fakeAreaRepo{store: newMemStore[types.Area, *types.Area](cloneArea)}
}

func (r *fakeAreaRepo) GetByShortID(_ context.Context, shortid string) (*types.Area, error) {
	return r.store.findOne(func(a *types.Area) bool { return a.ShortID == shortid }), nil
}

func (r *fakeAreaRepo) GetByTitle(_ context.Context, title string) (*types.Area, error) {
	return r.store.findOne(func(a *types.Area) bool { return a.Title == title }), nil
}

func (r *fakeAreaRepo) List(_ context.Context) ([]*types.Area, error) {
	return r.store.findAll(), nil
}

func (r *fakeAreaRepo) Insert(_ context.Context, a *types.Area) error  { return r.store.insert(a) }
func (r *fakeAreaRepo) Replace(_ context.Context, a *types.Area) error { return r.store.replace(a) }

type fakeIdeaRepo struct {
	store *memStore[types.Idea, *types.Idea]
}

func newFakeIdeaRepo() *fakeIdeaRepo {
	return &fakeIdeaRepo{store: newMemStore[types.Idea, *types.Idea](cloneIdea)}
}

func (r *fakeIdeaRepo) GetByShortID(_ context.Context, shortid string) (*types.Idea, error) {
	return r.store.findOne(func(i *types.Idea) bool { return i.ShortID == shortid }), nil
}

func (r *fakeIdeaRepo) GetByTitle(_ context.Context, title string) (*types.Idea, error) {
	return r.store.findOne(func(i *types.Idea) bool { return i.Title == title }), nil
}

func (r *fakeIdeaRepo) List(_ context.Context) ([]*types.Idea, error) {
	return r.store.findAll(), nil
}

func (r *fakeIdeaRepo) Insert(_ context.Context, i *types.Idea) error  { return r.store.insert(i) }
func (r *fakeIdeaRepo) Replace(_ context.Context, i *types.Idea) error { return r.store.replace(i) }
