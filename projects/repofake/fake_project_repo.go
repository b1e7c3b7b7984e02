package repofake

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/projects"
)

var _ projects.Repo = (*FakeProjectRepo)(nil)

type FakeProjectRepo struct {
	projects map[string]*projects.Project
	lock     sync.RWMutex
}

func NewFakeProjectRepo() *FakeProjectRepo {
	return &FakeProjectRepo{projects: make(map[string]*projects.Project)}
}

func (r *FakeProjectRepo) List(_ context.Context, offset, limit int) (projects.ListResponse, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]*projects.Project, 0, len(r.projects))
	for _, p := range r.projects {
		clone := *p
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})

	total := len(list)
	if offset >= total {
		return projects.ListResponse{Total: total, Offset: offset, Limit: limit, Projects: []*projects.Project{}}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return projects.ListResponse{Projects: list[offset:end], Total: total, Offset: offset, Limit: limit}, nil
}

func (r *FakeProjectRepo) Get(_ context.Context, id string) (*projects.Project, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *FakeProjectRepo) Create(_ context.Context, p *projects.Project) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *FakeProjectRepo) Update(_ context.Context, p *projects.Project) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.projects[p.ID]; !ok {
		return apperrors.ErrNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *FakeProjectRepo) Delete(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.projects[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *FakeProjectRepo) ReplaceTags(_ context.Context, projectID string, tags []string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	p, ok := r.projects[projectID]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.Tags = append([]string(nil), tags...)
	return nil
}
