package repofake

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/blog"
	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

var _ blog.Repo = (*FakeBlogRepo)(nil)

type FakeBlogRepo struct {
	posts map[string]*blog.Post
	tags  map[string]blog.Tag
	lock  sync.RWMutex
}

func NewFakeBlogRepo() *FakeBlogRepo {
	return &FakeBlogRepo{
		posts: make(map[string]*blog.Post),
		tags:  make(map[string]blog.Tag),
	}
}

func (r *FakeBlogRepo) ListPosts(_ context.Context, includeDrafts bool, offset, limit int) (blog.ListResponse, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]*blog.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if !p.Published && !includeDrafts {
			continue
		}
		clone := *p
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	total := len(list)
	if offset >= total {
		return blog.ListResponse{Total: total, Offset: offset, Limit: limit, Posts: []*blog.Post{}}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return blog.ListResponse{Posts: list[offset:end], Total: total, Offset: offset, Limit: limit}, nil
}

func (r *FakeBlogRepo) GetBySlug(_ context.Context, slug string, includeDrafts bool) (*blog.Post, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for _, p := range r.posts {
		if p.Slug == slug && (p.Published || includeDrafts) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *FakeBlogRepo) GetByID(_ context.Context, id string) (*blog.Post, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *FakeBlogRepo) CreatePost(_ context.Context, p *blog.Post) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, existing := range r.posts {
		if existing.Slug == p.Slug {
			return apperrors.ErrDuplicateIdentifier
		}
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	clone := *p
	r.posts[p.ID] = &clone
	return nil
}

func (r *FakeBlogRepo) UpdatePost(_ context.Context, p *blog.Post) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.posts[p.ID]; !ok {
		return apperrors.ErrNotFound
	}
	clone := *p
	r.posts[p.ID] = &clone
	return nil
}

func (r *FakeBlogRepo) DeletePost(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *FakeBlogRepo) ListTags(_ context.Context) ([]blog.Tag, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	tags := make([]blog.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (r *FakeBlogRepo) CreateTag(_ context.Context, t *blog.Tag) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, existing := range r.tags {
		if existing.Name == t.Name {
			return apperrors.ErrDuplicateIdentifier
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	r.tags[t.ID] = *t
	return nil
}

func (r *FakeBlogRepo) DeleteTag(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.tags[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.tags, id)
	return nil
}

func (r *FakeBlogRepo) ReplacePostTags(_ context.Context, postID string, tagIDs []string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	p, ok := r.posts[postID]
	if !ok {
		return apperrors.ErrNotFound
	}

	tags := make([]blog.Tag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		t, ok := r.tags[tagID]
		if !ok {
			return apperrors.ErrNotFound
		}
		tags = append(tags, t)
	}
	p.Tags = tags
	return nil
}
