// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
//

// Package matching_test is a generated GoMock package.
package matching_test

import (
	context "context"
	reflect "reflect"
	entities "safiridocs/internal/entities"

	gomock "go.uber.org/mock/gomock"
)

// MockRequestRepository is a mock of RequestRepository interface.
type MockRequestRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRequestRepositoryMockRecorder
	isgomock struct{}
}

// MockRequestRepositoryMockRecorder is the mock recorder for MockRequestRepository.
type MockRequestRepositoryMockRecorder struct {
	mock *MockRequestRepository
}

// NewMockRequestRepository creates a new mock instance.
func NewMockRequestRepository(ctrl *gomock.Controller) *MockRequestRepository {
	mock := &MockRequestRepository{ctrl: ctrl}
	mock.recorder = &MockRequestRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRequestRepository) EXPECT() *MockRequestRepositoryMockRecorder {
	return m.recorder
}

// BindMatch mocks base method.
func (m *MockRequestRepository) BindMatch(ctx context.Context, match entities.Match) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BindMatch", ctx, match)
	ret0, _ := ret[0].(error)
	return ret0
}

// BindMatch indicates an expected call of BindMatch.
func (mr *MockRequestRepositoryMockRecorder) BindMatch(ctx, match any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BindMatch", reflect.TypeOf((*MockRequestRepository)(nil).BindMatch), ctx, match)
}

// GetByID mocks base method.
func (m *MockRequestRepository) GetByID(ctx context.Context, id string) (*entities.DeliveryRequest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.DeliveryRequest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRequestRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRequestRepository)(nil).GetByID), ctx, id)
}

// GetCandidatesForTrip mocks base method.
func (m *MockRequestRepository) GetCandidatesForTrip(ctx context.Context, departureCity, destinationCity string) ([]entities.RequestCandidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCandidatesForTrip", ctx, departureCity, destinationCity)
	ret0, _ := ret[0].([]entities.RequestCandidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCandidatesForTrip indicates an expected call of GetCandidatesForTrip.
func (mr *MockRequestRepositoryMockRecorder) GetCandidatesForTrip(ctx, departureCity, destinationCity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCandidatesForTrip", reflect.TypeOf((*MockRequestRepository)(nil).GetCandidatesForTrip), ctx, departureCity, destinationCity)
}

// MockTripRepository is a mock of TripRepository interface.
type MockTripRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTripRepositoryMockRecorder
	isgomock struct{}
}

// MockTripRepositoryMockRecorder is the mock recorder for MockTripRepository.
type MockTripRepositoryMockRecorder struct {
	mock *MockTripRepository
}

// NewMockTripRepository creates a new mock instance.
func NewMockTripRepository(ctrl *gomock.Controller) *MockTripRepository {
	mock := &MockTripRepository{ctrl: ctrl}
	mock.recorder = &MockTripRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTripRepository) EXPECT() *MockTripRepositoryMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*entities.Trip, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.Trip)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTripRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTripRepository)(nil).GetByID), ctx, id)
}

// GetCandidatesForRequest mocks base method.
func (m *MockTripRepository) GetCandidatesForRequest(ctx context.Context, departureCity, destinationCity string) ([]entities.TravelerCandidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCandidatesForRequest", ctx, departureCity, destinationCity)
	ret0, _ := ret[0].([]entities.TravelerCandidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCandidatesForRequest indicates an expected call of GetCandidatesForRequest.
func (mr *MockTripRepositoryMockRecorder) GetCandidatesForRequest(ctx, departureCity, destinationCity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCandidatesForRequest", reflect.TypeOf((*MockTripRepository)(nil).GetCandidatesForRequest), ctx, departureCity, destinationCity)
}

// ReserveSlot mocks base method.
func (m *MockTripRepository) ReserveSlot(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReserveSlot", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReserveSlot indicates an expected call of ReserveSlot.
func (mr *MockTripRepositoryMockRecorder) ReserveSlot(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReserveSlot", reflect.TypeOf((*MockTripRepository)(nil).ReserveSlot), ctx, id)
}

// MockUserService is a mock of UserService interface.
type MockUserService struct {
	ctrl     *gomock.Controller
	recorder *MockUserServiceMockRecorder
	isgomock struct{}
}

// MockUserServiceMockRecorder is the mock recorder for MockUserService.
type MockUserServiceMockRecorder struct {
	mock *MockUserService
}

// NewMockUserService creates a new mock instance.
func NewMockUserService(ctrl *gomock.Controller) *MockUserService {
	mock := &MockUserService{ctrl: ctrl}
	mock.recorder = &MockUserServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserService) EXPECT() *MockUserServiceMockRecorder {
	return m.recorder
}

// GetUser mocks base method.
func (m *MockUserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUser", ctx, id)
	ret0, _ := ret[0].(*entities.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUser indicates an expected call of GetUser.
func (mr *MockUserServiceMockRecorder) GetUser(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUser", reflect.TypeOf((*MockUserService)(nil).GetUser), ctx, id)
}

// MockCodeFactory is a mock of CodeFactory interface.
type MockCodeFactory struct {
	ctrl     *gomock.Controller
	recorder *MockCodeFactoryMockRecorder
	isgomock struct{}
}

// MockCodeFactoryMockRecorder is the mock recorder for MockCodeFactory.
type MockCodeFactoryMockRecorder struct {
	mock *MockCodeFactory
}

// NewMockCodeFactory creates a new mock instance.
func NewMockCodeFactory(ctrl *gomock.Controller) *MockCodeFactory {
	mock := &MockCodeFactory{ctrl: ctrl}
	mock.recorder = &MockCodeFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCodeFactory) EXPECT() *MockCodeFactoryMockRecorder {
	return m.recorder
}

// Generate mocks base method.
func (m *MockCodeFactory) Generate() (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate")
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Generate indicates an expected call of Generate.
func (mr *MockCodeFactoryMockRecorder) Generate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockCodeFactory)(nil).Generate))
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
