package repofake

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/contact"
	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

var _ contact.Repo = (*FakeContactRepo)(nil)

type FakeContactRepo struct {
	messages map[string]*contact.Message
	lock     sync.RWMutex
}

func NewFakeContactRepo() *FakeContactRepo {
	return &FakeContactRepo{messages: make(map[string]*contact.Message)}
}

func (r *FakeContactRepo) Create(_ context.Context, m *contact.Message) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	clone := *m
	r.messages[m.ID] = &clone
	return nil
}

func (r *FakeContactRepo) List(_ context.Context, offset, limit int) (contact.ListResponse, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]*contact.Message, 0, len(r.messages))
	for _, m := range r.messages {
		clone := *m
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })

	total := len(list)
	if offset >= total {
		return contact.ListResponse{Total: total, Offset: offset, Limit: limit, Messages: []*contact.Message{}}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return contact.ListResponse{Messages: list[offset:end], Total: total, Offset: offset, Limit: limit}, nil
}

func (r *FakeContactRepo) Delete(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.messages[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.messages, id)
	return nil
}
