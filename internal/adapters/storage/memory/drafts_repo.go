package memory

import (
	"context"
	"sync"

	"care-portals/internal/domain/wizard"
)

// draftsRepo: visitor key => form id => draft.
type draftsRepo struct {
	mu    sync.RWMutex
	byKey map[string]map[string]wizard.Draft
}

func NewDraftsRepo() wizard.Repository {
	return &draftsRepo{byKey: map[string]map[string]wizard.Draft{}}
}

func (r *draftsRepo) Get(ctx context.Context, key, formID string) (wizard.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byKey[key][formID]
	if !ok {
		return wizard.Draft{}, wizard.ErrDraftNotFound
	}
	return d.Clone(), nil
}

func (r *draftsRepo) Put(ctx context.Context, key string, d wizard.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	forms, ok := r.byKey[key]
	if !ok {
		forms = map[string]wizard.Draft{}
		r.byKey[key] = forms
	}
	forms[d.FormID] = d.Clone()
	return nil
}

func (r *draftsRepo) Delete(ctx context.Context, key, formID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byKey[key], formID)
	if len(r.byKey[key]) == 0 {
		delete(r.byKey, key)
	}
	return nil
}

func (r *draftsRepo) DeleteExcept(ctx context.Context, key, keepFormID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	forms, ok := r.byKey[key]
	if !ok {
		return nil
	}
	for formID := range forms {
		if formID != keepFormID {
			delete(forms, formID)
		}
	}
	if len(forms) == 0 {
		delete(r.byKey, key)
	}
	return nil
}
