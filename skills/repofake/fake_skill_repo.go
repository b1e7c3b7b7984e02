package repofake

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/skills"
)

var _ skills.Repo = (*FakeSkillRepo)(nil)

type FakeSkillRepo struct {
	skills map[string]*skills.Skill
	lock   sync.RWMutex
}

func NewFakeSkillRepo() *FakeSkillRepo {
	return &FakeSkillRepo{skills: make(map[string]*skills.Skill)}
}

func (r *FakeSkillRepo) List(_ context.Context) ([]*skills.Skill, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]*skills.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		clone := *s
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Category != list[j].Category {
			return list[i].Category < list[j].Category
		}
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r *FakeSkillRepo) Create(_ context.Context, s *skills.Skill) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	clone := *s
	r.skills[s.ID] = &clone
	return nil
}

func (r *FakeSkillRepo) Update(_ context.Context, s *skills.Skill) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.skills[s.ID]; !ok {
		return apperrors.ErrNotFound
	}
	clone := *s
	r.skills[s.ID] = &clone
	return nil
}

func (r *FakeSkillRepo) Delete(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.skills[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.skills, id)
	return nil
}
