package destination

import "github.com/stretchr/testify/mock"

type DestinationRepositoryMock struct {
	mock.Mock
}

func (m *DestinationRepositoryMock) FindByID(id string) (*Destination, error) {
	args := m.Called(id)
	d, _ := args.Get(0).(*Destination)
	return d, args.Error(1)
}

func (m *DestinationRepositoryMock) Random() (*Destination, error) {
	args := m.Called()
	d, _ := args.Get(0).(*Destination)
	return d, args.Error(1)
}

func (m *DestinationRepositoryMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *DestinationRepositoryMock) NextUnanswered(excludeIDs []string) (*Destination, error) {
	args := m.Called(excludeIDs)
	d, _ := args.Get(0).(*Destination)
	return d, args.Error(1)
}

func (m *DestinationRepositoryMock) Create(d *Destination) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *DestinationRepositoryMock) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}
