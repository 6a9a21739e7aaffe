package jsonstore

import (
	"context"
	"fmt"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository"
)

// tabURLs is the tabs.json document. A null or empty entry makes it corrupt.
type tabURLs []string

func (u tabURLs) Validate() error {
	for i, s := range u {
		if s == "" {
			return fmt.Errorf("tab %d has no url", i)
		}
	}
	return nil
}

type sessionRepo struct {
	store *Store
}

// NewSessionRepository returns a snapshot repository backed by tabs.json.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepo{store: store}
}

func (r *sessionRepo) Save(ctx context.Context, snapshot entity.SessionSnapshot) error {
	urls := snapshot.URLs
	if urls == nil {
		urls = []string{}
	}
	return r.store.Save(ctx, SessionDocument, urls)
}

func (r *sessionRepo) Load(ctx context.Context) (entity.SessionSnapshot, error) {
	var urls tabURLs
	if err := r.store.Load(ctx, SessionDocument, &urls); err != nil {
		return entity.SessionSnapshot{}, err
	}
	return entity.CaptureURLs(urls), nil
}

func (r *sessionRepo) Delete(ctx context.Context) error {
	return r.store.Remove(ctx, SessionDocument)
}
