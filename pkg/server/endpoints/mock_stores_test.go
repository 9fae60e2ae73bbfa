package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

// MockDrugsStore implements store.DrugsStore for testing using testify/mock
type MockDrugsStore struct {
	mock.Mock
}

func NewMockDrugsStore() *MockDrugsStore {
	return &MockDrugsStore{}
}

func (m *MockDrugsStore) FetchDrug(drugID string) (*store.Drug, error) {
	args := m.Called(drugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Drug), args.Error(1)
}

func (m *MockDrugsStore) Synonyms(drugID string) ([]string, error) {
	args := m.Called(drugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDrugsStore) Products(drugID string) ([]tables.Product, error) {
	args := m.Called(drugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tables.Product), args.Error(1)
}

func (m *MockDrugsStore) Targets(drugID string) ([]tables.TargetRow, error) {
	args := m.Called(drugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tables.TargetRow), args.Error(1)
}

func (m *MockDrugsStore) Interactions(drugID string) ([]tables.InteractionRow, error) {
	args := m.Called(drugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tables.InteractionRow), args.Error(1)
}

func (m *MockDrugsStore) PathwayCount(drugID string) (int, error) {
	args := m.Called(drugID)
	return args.Int(0), args.Error(1)
}

func (m *MockDrugsStore) Pathways() ([]tables.PathwayRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tables.PathwayRow), args.Error(1)
}

func (m *MockDrugsStore) Statuses() (tables.StatusSummary, error) {
	args := m.Called()
	return args.Get(0).(tables.StatusSummary), args.Error(1)
}

func (m *MockDrugsStore) GeneProducts(gene string) ([]tables.GeneRow, error) {
	args := m.Called(gene)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tables.GeneRow), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
