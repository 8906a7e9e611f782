package tests

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"easypark/internal/domain"
	"easypark/internal/redis"
	"easypark/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK VEHICLE REPOSITORY
// ──────────────────────────────────────────────

// MockVehicleRepository is a mock implementation of VehicleRepository.
type MockVehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]*domain.Vehicle

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockVehicleRepository creates a new mock vehicle repository.
func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{
		vehicles: make(map[string]*domain.Vehicle),
	}
}

// AddVehicle adds a vehicle to the mock repository.
func (m *MockVehicleRepository) AddVehicle(vehicle *domain.Vehicle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[vehicle.ID] = vehicle
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[vehicle.ID] = vehicle
	return nil
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	vehicle, ok := m.vehicles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *vehicle
	return &copy, nil
}

func (m *MockVehicleRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Vehicle, 0)
	for _, v := range m.vehicles {
		if v.BusinessID == businessID {
			copy := *v
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EntryAt.After(result[j].EntryAt) })
	return result, nil
}

func (m *MockVehicleRepository) GetInsideByBusiness(ctx context.Context, businessID string) ([]*domain.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Vehicle, 0)
	for _, v := range m.vehicles {
		if v.BusinessID == businessID && v.Status == domain.VehicleStatusInside {
			copy := *v
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EntryAt.Before(result[j].EntryAt) })
	return result, nil
}

func (m *MockVehicleRepository) GetInsideByPlate(ctx context.Context, businessID, plate string) (*domain.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.vehicles {
		if v.BusinessID == businessID && v.Plate == plate && v.Status == domain.VehicleStatusInside {
			copy := *v
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockVehicleRepository) CountInside(ctx context.Context, businessID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, v := range m.vehicles {
		if v.BusinessID == businessID && v.Status == domain.VehicleStatusInside {
			count++
		}
	}
	return count, nil
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vehicles[vehicle.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *vehicle
	m.vehicles[vehicle.ID] = &copy
	return nil
}

// GetVehicle returns a vehicle for test assertions.
func (m *MockVehicleRepository) GetVehicle(id string) *domain.Vehicle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.vehicles[id]
}

// ──────────────────────────────────────────────
// MOCK SETTINGS REPOSITORY
// ──────────────────────────────────────────────

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mu       sync.RWMutex
	settings map[string]*domain.ParkingSettings

	GetCallCount  int32
	SaveCallCount int32
	SaveError     error
}

// NewMockSettingsRepository creates a new mock settings repository.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{
		settings: make(map[string]*domain.ParkingSettings),
	}
}

// AddSettings adds settings to the mock repository.
func (m *MockSettingsRepository) AddSettings(settings *domain.ParkingSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[settings.BusinessID] = settings
}

func (m *MockSettingsRepository) GetByBusiness(ctx context.Context, businessID string) (*domain.ParkingSettings, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	settings, ok := m.settings[businessID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *settings
	return &copy, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.ParkingSettings) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *settings
	m.settings[settings.BusinessID] = &copy
	return nil
}

// ──────────────────────────────────────────────
// MOCK OPERATIONS REPOSITORY
// ──────────────────────────────────────────────

// MockOperationsRepository is a mock implementation of OperationsRepository.
type MockOperationsRepository struct {
	mu   sync.RWMutex
	days map[string]*domain.OperationsDay

	CreateCallCount int32
	UpdateCallCount int32

	CreateError error
	UpdateError error
}

// NewMockOperationsRepository creates a new mock operations repository.
func NewMockOperationsRepository() *MockOperationsRepository {
	return &MockOperationsRepository{
		days: make(map[string]*domain.OperationsDay),
	}
}

// AddDay adds an operations day to the mock repository.
func (m *MockOperationsRepository) AddDay(day *domain.OperationsDay) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.days[day.ID] = day
}

func (m *MockOperationsRepository) Create(ctx context.Context, day *domain.OperationsDay) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *day
	m.days[day.ID] = &copy
	return nil
}

func (m *MockOperationsRepository) GetByID(ctx context.Context, id string) (*domain.OperationsDay, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	day, ok := m.days[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *day
	return &copy, nil
}

func (m *MockOperationsRepository) GetOpenByBusiness(ctx context.Context, businessID string) (*domain.OperationsDay, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.days {
		if d.BusinessID == businessID && d.Status == domain.OperationsDayOpen {
			copy := *d
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockOperationsRepository) GetByBusinessAndDate(ctx context.Context, businessID, date string) (*domain.OperationsDay, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.days {
		if d.BusinessID == businessID && d.Date == date {
			copy := *d
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockOperationsRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.OperationsDay, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.OperationsDay, 0)
	for _, d := range m.days {
		if d.BusinessID == businessID {
			copy := *d
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (m *MockOperationsRepository) ListOpen(ctx context.Context) ([]*domain.OperationsDay, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.OperationsDay, 0)
	for _, d := range m.days {
		if d.Status == domain.OperationsDayOpen {
			copy := *d
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockOperationsRepository) Update(ctx context.Context, day *domain.OperationsDay) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.days[day.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *day
	m.days[day.ID] = &copy
	return nil
}

// GetDay returns a day for test assertions.
func (m *MockOperationsRepository) GetDay(id string) *domain.OperationsDay {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.days[id]
}

// ──────────────────────────────────────────────
// MOCK DEBT REPOSITORY
// ──────────────────────────────────────────────

// MockDebtRepository is a mock implementation of DebtRepository.
type MockDebtRepository struct {
	mu    sync.RWMutex
	debts map[string]*domain.VehicleDebt

	UpsertCallCount   int32
	MarkPaidCallCount int32

	UpsertError   error
	MarkPaidError error
}

// NewMockDebtRepository creates a new mock debt repository.
func NewMockDebtRepository() *MockDebtRepository {
	return &MockDebtRepository{
		debts: make(map[string]*domain.VehicleDebt),
	}
}

// AddDebt adds a debt to the mock repository.
func (m *MockDebtRepository) AddDebt(debt *domain.VehicleDebt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debts[debt.ID] = debt
}

func (m *MockDebtRepository) Upsert(ctx context.Context, debt *domain.VehicleDebt) error {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// Mirror the ON CONFLICT (vehicle_id) behavior.
	for id, d := range m.debts {
		if d.VehicleID == debt.VehicleID {
			copy := *debt
			copy.ID = d.ID
			m.debts[id] = &copy
			return nil
		}
	}
	copy := *debt
	m.debts[debt.ID] = &copy
	return nil
}

func (m *MockDebtRepository) GetByID(ctx context.Context, id string) (*domain.VehicleDebt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	debt, ok := m.debts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *debt
	return &copy, nil
}

func (m *MockDebtRepository) GetUnpaidByVehicle(ctx context.Context, vehicleID string) (*domain.VehicleDebt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.debts {
		if d.VehicleID == vehicleID && !d.Paid {
			copy := *d
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockDebtRepository) GetByVehicle(ctx context.Context, vehicleID string) (*domain.VehicleDebt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.debts {
		if d.VehicleID == vehicleID {
			copy := *d
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockDebtRepository) GetByBusiness(ctx context.Context, businessID string, unpaidOnly bool) ([]*domain.VehicleDebt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.VehicleDebt, 0)
	for _, d := range m.debts {
		if d.BusinessID != businessID {
			continue
		}
		if unpaidOnly && d.Paid {
			continue
		}
		copy := *d
		result = append(result, &copy)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UpdatedAt.After(result[j].UpdatedAt) })
	return result, nil
}

func (m *MockDebtRepository) MarkPaid(ctx context.Context, id string) error {
	atomic.AddInt32(&m.MarkPaidCallCount, 1)
	if m.MarkPaidError != nil {
		return m.MarkPaidError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	debt, ok := m.debts[id]
	if !ok {
		return repository.ErrNotFound
	}
	debt.Paid = true
	return nil
}

// CountDebts returns the number of stored debts for test assertions.
func (m *MockDebtRepository) CountDebts() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.debts)
}

// GetDebtByVehicle returns the debt for a vehicle for test assertions.
func (m *MockDebtRepository) GetDebtByVehicle(vehicleID string) *domain.VehicleDebt {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.debts {
		if d.VehicleID == vehicleID {
			return d
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// MOCK ACCOUNTING REPOSITORY
// ──────────────────────────────────────────────

// MockAccountingRepository is a mock implementation of AccountingRepository.
type MockAccountingRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.AccountingRecord

	CreateCallCount int32
	CreateError     error
}

// NewMockAccountingRepository creates a new mock accounting repository.
func NewMockAccountingRepository() *MockAccountingRepository {
	return &MockAccountingRepository{
		records: make(map[string]*domain.AccountingRecord),
	}
}

// AddRecord adds a record to the mock repository.
func (m *MockAccountingRepository) AddRecord(record *domain.AccountingRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
}

func (m *MockAccountingRepository) Create(ctx context.Context, record *domain.AccountingRecord) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *record
	m.records[record.ID] = &copy
	return nil
}

func (m *MockAccountingRepository) GetByID(ctx context.Context, id string) (*domain.AccountingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *record
	return &copy, nil
}

func (m *MockAccountingRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.AccountingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.AccountingRecord, 0)
	for _, r := range m.records {
		if r.BusinessID == businessID {
			copy := *r
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *MockAccountingRepository) GetByDateRange(ctx context.Context, businessID, from, to string) ([]*domain.AccountingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.AccountingRecord, 0)
	for _, r := range m.records {
		if r.BusinessID == businessID && r.OperationDate >= from && r.OperationDate <= to {
			copy := *r
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockAccountingRepository) SearchByPlate(ctx context.Context, businessID, plate string) ([]*domain.AccountingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.AccountingRecord, 0)
	for _, r := range m.records {
		if r.BusinessID == businessID && r.Plate == plate {
			copy := *r
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockAccountingRepository) Summarize(ctx context.Context, businessID string) (*domain.AccountingSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	summary := &domain.AccountingSummary{}
	var totalStay float64
	var settlements int
	for _, r := range m.records {
		if r.BusinessID != businessID {
			continue
		}
		summary.TotalRecords++
		summary.TotalRevenue += r.Amount
		if r.Kind == domain.AccountingSettlement {
			settlements++
			totalStay += r.HoursParked
			if r.Category == domain.CategoryMotorcycle {
				summary.MotorcycleRevenue += r.Amount
			} else {
				summary.CarTruckRevenue += r.Amount
			}
		}
	}
	if settlements > 0 {
		summary.AverageStayHours = totalStay / float64(settlements)
	}
	return summary, nil
}

func (m *MockAccountingRepository) RevenueByDay(ctx context.Context, businessID string) ([]domain.DailyRevenue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	buckets := make(map[string]float64)
	for _, r := range m.records {
		if r.BusinessID == businessID {
			buckets[r.OperationDate] += r.Amount
		}
	}
	result := make([]domain.DailyRevenue, 0, len(buckets))
	for date, revenue := range buckets {
		result = append(result, domain.DailyRevenue{Date: date, Revenue: revenue})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (m *MockAccountingRepository) RevenueForDate(ctx context.Context, businessID, date string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total float64
	for _, r := range m.records {
		if r.BusinessID == businessID && r.OperationDate == date {
			total += r.Amount
		}
	}
	return total, nil
}

// CountRecords returns the number of stored records for test assertions.
func (m *MockAccountingRepository) CountRecords() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// ──────────────────────────────────────────────
// MOCK INCIDENT REPOSITORY
// ──────────────────────────────────────────────

// MockIncidentRepository is a mock implementation of IncidentRepository.
type MockIncidentRepository struct {
	mu        sync.RWMutex
	incidents map[string]*domain.Incident

	CreateError error
	UpdateError error
}

// NewMockIncidentRepository creates a new mock incident repository.
func NewMockIncidentRepository() *MockIncidentRepository {
	return &MockIncidentRepository{
		incidents: make(map[string]*domain.Incident),
	}
}

// AddIncident adds an incident to the mock repository.
func (m *MockIncidentRepository) AddIncident(incident *domain.Incident) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incidents[incident.ID] = incident
}

func (m *MockIncidentRepository) Create(ctx context.Context, incident *domain.Incident) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *incident
	m.incidents[incident.ID] = &copy
	return nil
}

func (m *MockIncidentRepository) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	incident, ok := m.incidents[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *incident
	return &copy, nil
}

func (m *MockIncidentRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.Incident, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Incident, 0)
	for _, i := range m.incidents {
		if i.BusinessID == businessID {
			copy := *i
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockIncidentRepository) GetPendingByBusiness(ctx context.Context, businessID string) ([]*domain.Incident, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Incident, 0)
	for _, i := range m.incidents {
		if i.BusinessID == businessID && i.Status == domain.IncidentPending {
			copy := *i
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockIncidentRepository) CountPending(ctx context.Context, businessID string) (int, error) {
	pending, err := m.GetPendingByBusiness(ctx, businessID)
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

func (m *MockIncidentRepository) Update(ctx context.Context, incident *domain.Incident) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.incidents[incident.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *incident
	m.incidents[incident.ID] = &copy
	return nil
}

// ──────────────────────────────────────────────
// MOCK SUBSCRIBER REPOSITORY
// ──────────────────────────────────────────────

// MockSubscriberRepository is a mock implementation of SubscriberRepository.
type MockSubscriberRepository struct {
	mu          sync.RWMutex
	subscribers map[string]*domain.Subscriber
}

// NewMockSubscriberRepository creates a new mock subscriber repository.
func NewMockSubscriberRepository() *MockSubscriberRepository {
	return &MockSubscriberRepository{
		subscribers: make(map[string]*domain.Subscriber),
	}
}

func (m *MockSubscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *subscriber
	m.subscribers[subscriber.ID] = &copy
	return nil
}

func (m *MockSubscriberRepository) GetByID(ctx context.Context, id string) (*domain.Subscriber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	subscriber, ok := m.subscribers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *subscriber
	return &copy, nil
}

func (m *MockSubscriberRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.Subscriber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Subscriber, 0)
	for _, s := range m.subscribers {
		if s.BusinessID == businessID {
			copy := *s
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockSubscriberRepository) Update(ctx context.Context, subscriber *domain.Subscriber) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subscribers[subscriber.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *subscriber
	m.subscribers[subscriber.ID] = &copy
	return nil
}

func (m *MockSubscriberRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subscribers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.subscribers, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK USER / BUSINESS REPOSITORIES
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *user
	m.users[user.ID] = &copy
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ──────────────────────────────────────────────
// MOCK REDIS STORES
// ──────────────────────────────────────────────

// MockSettingsCache is an in-memory implementation of SettingsCache.
type MockSettingsCache struct {
	mu       sync.RWMutex
	settings map[string]*domain.ParkingSettings

	GetCallCount int32
	SetCallCount int32
}

// NewMockSettingsCache creates a new mock settings cache.
func NewMockSettingsCache() *MockSettingsCache {
	return &MockSettingsCache{
		settings: make(map[string]*domain.ParkingSettings),
	}
}

func (m *MockSettingsCache) GetSettings(ctx context.Context, businessID string) (*domain.ParkingSettings, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	settings, ok := m.settings[businessID]
	if !ok {
		return nil, nil
	}
	copy := *settings
	return &copy, nil
}

func (m *MockSettingsCache) SetSettings(ctx context.Context, settings *domain.ParkingSettings) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *settings
	m.settings[settings.BusinessID] = &copy
	return nil
}

func (m *MockSettingsCache) InvalidateSettings(ctx context.Context, businessID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.settings, businessID)
	return nil
}

// MockLockStore is an in-memory implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]bool),
	}
}

func (m *MockLockStore) AcquireDayLock(ctx context.Context, businessID string, ttl time.Duration) (bool, error) {
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[businessID] {
		return false, nil
	}
	m.locks[businessID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseDayLock(ctx context.Context, businessID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, businessID)
	return nil
}

// Hold marks the lock as taken so contention paths can be exercised.
func (m *MockLockStore) Hold(businessID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locks[businessID] = true
}

// Interface conformance checks.
var (
	_ repository.VehicleRepository    = (*MockVehicleRepository)(nil)
	_ repository.SettingsRepository   = (*MockSettingsRepository)(nil)
	_ repository.OperationsRepository = (*MockOperationsRepository)(nil)
	_ repository.DebtRepository       = (*MockDebtRepository)(nil)
	_ repository.AccountingRepository = (*MockAccountingRepository)(nil)
	_ repository.IncidentRepository   = (*MockIncidentRepository)(nil)
	_ repository.SubscriberRepository = (*MockSubscriberRepository)(nil)
	_ repository.UserRepository       = (*MockUserRepository)(nil)
	_ redis.SettingsCache             = (*MockSettingsCache)(nil)
	_ redis.LockStoreInterface        = (*MockLockStore)(nil)
)
