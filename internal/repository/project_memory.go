package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/patrickmn/go-cache"
)

var _ ProjectRepository = &ProjectMemory{}

// ProjectMemory keeps projects in process memory. Values are deep-copied on
// the way in and out so callers never share slices with the store.
type ProjectMemory struct {
	mu    sync.Mutex
	items *cache.Cache
	now   func() time.Time
}

func NewProjectMemory() *ProjectMemory {
	return &ProjectMemory{
		items: cache.New(cache.NoExpiration, 0),
		now:   time.Now,
	}
}

func (r *ProjectMemory) Create(_ context.Context, project entity.Project) (*entity.Project, error) {
	id, err := parseID(project.ID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	stored := entity.Project{
		ID:        id.String(),
		Name:      project.Name,
		Schema:    project.Schema.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.items.Add(stored.ID, stored, cache.NoExpiration); err != nil {
		return nil, entity.ErrInvalidProject
	}

	return copyProject(stored), nil
}

func (r *ProjectMemory) Get(_ context.Context, id string) (*entity.Project, error) {
	stored, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return copyProject(stored), nil
}

func (r *ProjectMemory) List(_ context.Context, skip, limit int) ([]*entity.Project, error) {
	items := r.items.Items()
	all := make([]entity.Project, 0, len(items))
	for _, item := range items {
		all = append(all, item.Object.(entity.Project))
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].UpdatedAt.After(all[j].UpdatedAt)
		}
		return all[i].ID < all[j].ID
	})

	projects := make([]*entity.Project, 0, limit)
	for i := skip; i < len(all) && len(projects) < limit; i++ {
		projects = append(projects, copyProject(all[i]))
	}
	return projects, nil
}

func (r *ProjectMemory) UpdateSchema(_ context.Context, id string, schema entity.SiteSchema) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	stored.Name = schema.Name
	stored.Schema = schema.Clone()
	stored.UpdatedAt = r.now().UTC()
	r.items.Set(stored.ID, stored, cache.NoExpiration)

	return copyProject(stored), nil
}

func (r *ProjectMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.lookup(id)
	if err != nil {
		return err
	}
	r.items.Delete(stored.ID)
	return nil
}

func (r *ProjectMemory) lookup(id string) (entity.Project, error) {
	parsed, err := parseID(id)
	if err != nil {
		return entity.Project{}, err
	}
	item, ok := r.items.Get(parsed.String())
	if !ok {
		return entity.Project{}, entity.ErrProjectNotFound
	}
	return item.(entity.Project), nil
}

func copyProject(p entity.Project) *entity.Project {
	p.Schema = p.Schema.Clone()
	return &p
}
