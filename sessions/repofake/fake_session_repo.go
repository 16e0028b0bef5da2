package fakesessionrepo

import (
	"sync"

	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/sessions"
)

var _ sessions.Repo = (*FakeSessionRepo)(nil)

// FakeSessionRepo is a test double for sessions.Repo that also records
// which operations were performed, so tests can assert on repo traffic.
type FakeSessionRepo struct {
	sessions map[string]sessions.Session
	lock     sync.RWMutex

	UpsertCalls int
	DeleteCalls int
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{
		sessions: make(map[string]sessions.Session),
	}
}

func (sr *FakeSessionRepo) Upsert(sessionID string, session sessions.Session) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	sr.UpsertCalls++
	sr.sessions[sessionID] = session
	return nil
}

func (sr *FakeSessionRepo) Get(sessionID string) (sessions.Session, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	session, ok := sr.sessions[sessionID]
	if !ok {
		return sessions.Session{}, errors.ErrSessionNotFound
	}
	return session, nil
}

func (sr *FakeSessionRepo) Delete(sessionID string) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	sr.DeleteCalls++
	delete(sr.sessions, sessionID)
	return nil
}

// Len reports the number of stored sessions.
func (sr *FakeSessionRepo) Len() int {
	sr.lock.RLock()
	defer sr.lock.RUnlock()
	return len(sr.sessions)
}
