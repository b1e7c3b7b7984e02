package repofake

import (
	"context"
	"sync"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/hero"
	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

var _ hero.Repo = (*FakeHeroRepo)(nil)

type FakeHeroRepo struct {
	current *hero.Hero
	lock    sync.RWMutex
}

func NewFakeHeroRepo() *FakeHeroRepo {
	return &FakeHeroRepo{}
}

func (r *FakeHeroRepo) Get(_ context.Context) (*hero.Hero, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.current == nil {
		return nil, apperrors.ErrNotFound
	}
	clone := *r.current
	return &clone, nil
}

func (r *FakeHeroRepo) Upsert(_ context.Context, h *hero.Hero) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	clone := *h
	r.current = &clone
	return nil
}
