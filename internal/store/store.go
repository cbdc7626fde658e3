package store

import (
	"sync"

	"github.com/property-admin/internal/domain"
)

// Store is the single source of truth for the six entity collections, their
// loading flags, and their filter state. It is constructed explicitly and
// passed by reference to every consumer; no other component mutates the
// collections directly.
//
// Every operation is synchronous, total, and free of I/O: the mutex makes
// each mutation atomic with respect to concurrent readers. Mutating one
// collection never affects another.
type Store struct {
	mu sync.RWMutex

	properties   collection[domain.Property]
	tenants      collection[domain.Tenant]
	maintenance  collection[domain.MaintenanceRequest]
	payments     collection[domain.Payment]
	messages     collection[domain.Message]
	appointments collection[domain.Appointment]

	loading map[string]bool
	filters map[string]map[string]interface{}
}

func New() *Store {
	return &Store{
		loading: make(map[string]bool),
		filters: make(map[string]map[string]interface{}),
	}
}

// --- properties ---

// SetProperties replaces the whole collection. Duplicate ids in the input
// pass through as-is; later lookups act on the first match.
func (s *Store) SetProperties(list []domain.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties.set(list)
}

func (s *Store) AddProperty(p domain.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties.add(p)
}

// UpdateProperty replaces the element matching p's id; no-op if none matches.
func (s *Store) UpdateProperty(p domain.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties.update(p)
}

// DeleteProperty removes at most one element; no-op if the id is absent.
func (s *Store) DeleteProperty(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties.remove(id)
}

// Properties returns a snapshot copy of the collection.
func (s *Store) Properties() []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.properties.snapshot()
}

// --- tenants ---

func (s *Store) SetTenants(list []domain.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants.set(list)
}

func (s *Store) AddTenant(t domain.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants.add(t)
}

func (s *Store) UpdateTenant(t domain.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants.update(t)
}

func (s *Store) DeleteTenant(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants.remove(id)
}

func (s *Store) Tenants() []domain.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenants.snapshot()
}

// --- maintenance requests ---

func (s *Store) SetMaintenanceRequests(list []domain.MaintenanceRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maintenance.set(list)
}

func (s *Store) AddMaintenanceRequest(m domain.MaintenanceRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maintenance.add(m)
}

func (s *Store) UpdateMaintenanceRequest(m domain.MaintenanceRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maintenance.update(m)
}

func (s *Store) DeleteMaintenanceRequest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maintenance.remove(id)
}

func (s *Store) MaintenanceRequests() []domain.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maintenance.snapshot()
}

// --- payments ---

func (s *Store) SetPayments(list []domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.set(list)
}

func (s *Store) AddPayment(p domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.add(p)
}

func (s *Store) UpdatePayment(p domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.update(p)
}

func (s *Store) DeletePayment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.remove(id)
}

func (s *Store) Payments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments.snapshot()
}

// --- messages ---

func (s *Store) SetMessages(list []domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages.set(list)
}

func (s *Store) AddMessage(m domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages.add(m)
}

func (s *Store) UpdateMessage(m domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages.update(m)
}

func (s *Store) DeleteMessage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages.remove(id)
}

func (s *Store) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages.snapshot()
}

// --- appointments ---

func (s *Store) SetAppointments(list []domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments.set(list)
}

func (s *Store) AddAppointment(a domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments.add(a)
}

func (s *Store) UpdateAppointment(a domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments.update(a)
}

func (s *Store) DeleteAppointment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments.remove(id)
}

func (s *Store) Appointments() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments.snapshot()
}

// --- loading flags ---

// SetLoading flips the per-collection loading flag, independent of the
// collection's contents.
func (s *Store) SetLoading(collection string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading[collection] = loading
}

func (s *Store) Loading(collection string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[collection]
}

// --- filters ---

// SetFilter replaces the opaque filter object for a named collection. The
// store does not interpret filter contents; filtering is applied by
// consumers.
func (s *Store) SetFilter(collection string, filter map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if filter == nil {
		filter = map[string]interface{}{}
	}
	s.filters[collection] = filter
}

// Filter returns the filter object for a named collection; an empty object
// when none was set.
func (s *Store) Filter(collection string) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f, ok := s.filters[collection]; ok {
		return f
	}
	return map[string]interface{}{}
}

// ClearFilter resets the filter for a named collection to an empty object.
func (s *Store) ClearFilter(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters[collection] = map[string]interface{}{}
}
