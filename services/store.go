package services

import (
	"context"
	"log"
)

// Store groups the durable collections that share one KVStore
type Store struct {
	backend   KVStore
	Projects  *ProjectRepository
	Suppliers *SupplierRepository
	Sessions  *SessionService
}

// StoreStatus describes the backend and the state of every collection
type StoreStatus struct {
	Backend     string             `json:"backend"`
	Collections []CollectionStatus `json:"collections"`
}

// NewStore creates the projects, suppliers and session collections over
// backend, seeded with the demo data
func NewStore(backend KVStore) *Store {
	return &Store{
		backend:   backend,
		Projects:  NewProjectRepository(backend, SeedProjects),
		Suppliers: NewSupplierRepository(backend, SeedSuppliers),
		Sessions:  NewSessionService(backend, SeedUsers),
	}
}

// Hydrate loads every collection. Failures fall back to seed data and are
// logged; hydration itself never fails.
func (s *Store) Hydrate(ctx context.Context) {
	if err := s.Projects.Hydrate(ctx); err != nil {
		log.Printf("warning: projects hydrated from seed: %v", err)
	}
	if err := s.Suppliers.Hydrate(ctx); err != nil {
		log.Printf("warning: suppliers hydrated from seed: %v", err)
	}
	if err := s.Sessions.Hydrate(ctx); err != nil {
		log.Printf("warning: users hydrated from seed: %v", err)
	}
	log.Printf("Store hydrated from %s backend", s.backend.Name())
}

// Status reports the backend name and each collection's status
func (s *Store) Status() StoreStatus {
	collections := []CollectionStatus{s.Projects.Status(), s.Suppliers.Status()}
	collections = append(collections, s.Sessions.Status()...)
	return StoreStatus{
		Backend:     s.backend.Name(),
		Collections: collections,
	}
}
