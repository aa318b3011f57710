package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"campaign-studio/models"
	"campaign-studio/repository"
)

type memoryOrganizations struct {
	mu        sync.Mutex
	orgs      map[uuid.UUID]models.Organization
	logoCalls int
}

func newMemoryOrganizations(orgs ...models.Organization) *memoryOrganizations {
	m := &memoryOrganizations{orgs: make(map[uuid.UUID]models.Organization)}
	for _, o := range orgs {
		m.orgs[o.ID] = o
	}
	return m
}

func (m *memoryOrganizations) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Organization{}
	for _, o := range m.orgs {
		if o.CreatedBy == ownerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memoryOrganizations) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orgs[id]
	if !ok || o.CreatedBy != ownerID {
		return nil, repository.ErrOrganizationNotFound
	}
	return &o, nil
}

func (m *memoryOrganizations) Create(ctx context.Context, org *models.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	org.ID = uuid.New()
	m.orgs[org.ID] = *org
	return nil
}

func (m *memoryOrganizations) Update(ctx context.Context, org *models.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orgs[org.ID]
	if !ok || o.CreatedBy != org.CreatedBy {
		return repository.ErrOrganizationNotFound
	}
	m.orgs[org.ID] = *org
	return nil
}

func (m *memoryOrganizations) UpdateLogoURL(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, logoURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orgs[id]
	if !ok || o.CreatedBy != ownerID {
		return repository.ErrOrganizationNotFound
	}
	o.LogoURL = logoURL
	m.orgs[id] = o
	m.logoCalls++
	return nil
}

func (m *memoryOrganizations) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orgs[id]
	if !ok || o.CreatedBy != ownerID {
		return repository.ErrOrganizationNotFound
	}
	delete(m.orgs, id)
	return nil
}

// memoryProducts ignores ownership; organization checks happen through memoryOrganizations
type memoryProducts struct {
	products []models.Product
}

func (m *memoryProducts) ListByOrganization(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.products {
		if p.OrganizationID == organizationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryProducts) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *memoryProducts) Create(ctx context.Context, product *models.Product, ownerID uuid.UUID) error {
	product.ID = uuid.New()
	m.products = append(m.products, *product)
	return nil
}

func (m *memoryProducts) Update(ctx context.Context, product *models.Product, ownerID uuid.UUID) error {
	for i, p := range m.products {
		if p.ID == product.ID {
			m.products[i] = *product
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (m *memoryProducts) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

type memoryPersonas struct {
	personas []models.BuyerPersona
}

func (m *memoryPersonas) ListByOrganization(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID) ([]models.BuyerPersona, error) {
	out := []models.BuyerPersona{}
	for _, p := range m.personas {
		if p.OrganizationID == organizationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryPersonas) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.BuyerPersona, error) {
	for _, p := range m.personas {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrPersonaNotFound
}

func (m *memoryPersonas) Create(ctx context.Context, persona *models.BuyerPersona, ownerID uuid.UUID) error {
	persona.ID = uuid.New()
	m.personas = append(m.personas, *persona)
	return nil
}

func (m *memoryPersonas) Update(ctx context.Context, persona *models.BuyerPersona, ownerID uuid.UUID) error {
	for i, p := range m.personas {
		if p.ID == persona.ID {
			m.personas[i] = *persona
			return nil
		}
	}
	return repository.ErrPersonaNotFound
}

func (m *memoryPersonas) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	for i, p := range m.personas {
		if p.ID == id {
			m.personas = append(m.personas[:i], m.personas[i+1:]...)
			return nil
		}
	}
	return repository.ErrPersonaNotFound
}
