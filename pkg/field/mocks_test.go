package field_test

import (
	"github.com/stretchr/testify/mock"
)

// MockView is a mock implementation of field.View.
type MockView struct {
	mock.Mock
}

func (m *MockView) UpdateValue() {
	m.Called()
}

// MockValidityView is a mock implementation of field.ValidityView.
type MockValidityView struct {
	mock.Mock
}

func (m *MockValidityView) UpdateValue() {
	m.Called()
}

func (m *MockValidityView) UpdateValidity(err error) {
	m.Called(err)
}

// MockRandom is a mock implementation of field.Random.
type MockRandom struct {
	mock.Mock
}

func (m *MockRandom) NextInteger(min, max int64) int64 {
	args := m.Called(min, max)
	return args.Get(0).(int64)
}

func (m *MockRandom) NextFloat(min, max float64) float64 {
	args := m.Called(min, max)
	return args.Get(0).(float64)
}
