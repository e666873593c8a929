// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
//

// Package payment_test is a generated GoMock package.
package payment_test

import (
	context "context"
	reflect "reflect"
	entities "safiridocs/internal/entities"
	logger "safiridocs/pkg/logger"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, payment)
	ret0, _ := ret[0].(*entities.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, payment any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, payment)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, paymentID string) (*entities.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, paymentID)
	ret0, _ := ret[0].(*entities.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, paymentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, paymentID)
}

// GetByRequestID mocks base method.
func (m *MockRepository) GetByRequestID(ctx context.Context, requestID string) (*entities.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByRequestID", ctx, requestID)
	ret0, _ := ret[0].(*entities.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByRequestID indicates an expected call of GetByRequestID.
func (mr *MockRepositoryMockRecorder) GetByRequestID(ctx, requestID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByRequestID", reflect.TypeOf((*MockRepository)(nil).GetByRequestID), ctx, requestID)
}

// GetByTxRef mocks base method.
func (m *MockRepository) GetByTxRef(ctx context.Context, txRef string) (*entities.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByTxRef", ctx, txRef)
	ret0, _ := ret[0].(*entities.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByTxRef indicates an expected call of GetByTxRef.
func (mr *MockRepositoryMockRecorder) GetByTxRef(ctx, txRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByTxRef", reflect.TypeOf((*MockRepository)(nil).GetByTxRef), ctx, txRef)
}

// MarkHeld mocks base method.
func (m *MockRepository) MarkHeld(ctx context.Context, requestID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkHeld", ctx, requestID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkHeld indicates an expected call of MarkHeld.
func (mr *MockRepositoryMockRecorder) MarkHeld(ctx, requestID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkHeld", reflect.TypeOf((*MockRepository)(nil).MarkHeld), ctx, requestID)
}

// MarkPayoutCompleted mocks base method.
func (m *MockRepository) MarkPayoutCompleted(ctx context.Context, paymentID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkPayoutCompleted", ctx, paymentID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkPayoutCompleted indicates an expected call of MarkPayoutCompleted.
func (mr *MockRepositoryMockRecorder) MarkPayoutCompleted(ctx, paymentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkPayoutCompleted", reflect.TypeOf((*MockRepository)(nil).MarkPayoutCompleted), ctx, paymentID)
}

// MarkPayoutProcessing mocks base method.
func (m *MockRepository) MarkPayoutProcessing(ctx context.Context, paymentID, providerPayoutID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkPayoutProcessing", ctx, paymentID, providerPayoutID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkPayoutProcessing indicates an expected call of MarkPayoutProcessing.
func (mr *MockRepositoryMockRecorder) MarkPayoutProcessing(ctx, paymentID, providerPayoutID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkPayoutProcessing", reflect.TypeOf((*MockRepository)(nil).MarkPayoutProcessing), ctx, paymentID, providerPayoutID)
}

// MarkRefunded mocks base method.
func (m *MockRepository) MarkRefunded(ctx context.Context, requestID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkRefunded", ctx, requestID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkRefunded indicates an expected call of MarkRefunded.
func (mr *MockRepositoryMockRecorder) MarkRefunded(ctx, requestID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkRefunded", reflect.TypeOf((*MockRepository)(nil).MarkRefunded), ctx, requestID)
}

// MarkReleased mocks base method.
func (m *MockRepository) MarkReleased(ctx context.Context, requestID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkReleased", ctx, requestID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkReleased indicates an expected call of MarkReleased.
func (mr *MockRepositoryMockRecorder) MarkReleased(ctx, requestID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkReleased", reflect.TypeOf((*MockRepository)(nil).MarkReleased), ctx, requestID)
}

// MockRequestProvider is a mock of RequestProvider interface.
type MockRequestProvider struct {
	ctrl     *gomock.Controller
	recorder *MockRequestProviderMockRecorder
	isgomock struct{}
}

// MockRequestProviderMockRecorder is the mock recorder for MockRequestProvider.
type MockRequestProviderMockRecorder struct {
	mock *MockRequestProvider
}

// NewMockRequestProvider creates a new mock instance.
func NewMockRequestProvider(ctrl *gomock.Controller) *MockRequestProvider {
	mock := &MockRequestProvider{ctrl: ctrl}
	mock.recorder = &MockRequestProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRequestProvider) EXPECT() *MockRequestProviderMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockRequestProvider) GetByID(ctx context.Context, requestID string) (*entities.DeliveryRequest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, requestID)
	ret0, _ := ret[0].(*entities.DeliveryRequest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRequestProviderMockRecorder) GetByID(ctx, requestID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRequestProvider)(nil).GetByID), ctx, requestID)
}

// MockUserProvider is a mock of UserProvider interface.
type MockUserProvider struct {
	ctrl     *gomock.Controller
	recorder *MockUserProviderMockRecorder
	isgomock struct{}
}

// MockUserProviderMockRecorder is the mock recorder for MockUserProvider.
type MockUserProviderMockRecorder struct {
	mock *MockUserProvider
}

// NewMockUserProvider creates a new mock instance.
func NewMockUserProvider(ctrl *gomock.Controller) *MockUserProvider {
	mock := &MockUserProvider{ctrl: ctrl}
	mock.recorder = &MockUserProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserProvider) EXPECT() *MockUserProviderMockRecorder {
	return m.recorder
}

// GetUser mocks base method.
func (m *MockUserProvider) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUser", ctx, userID)
	ret0, _ := ret[0].(*entities.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUser indicates an expected call of GetUser.
func (mr *MockUserProviderMockRecorder) GetUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUser", reflect.TypeOf((*MockUserProvider)(nil).GetUser), ctx, userID)
}

// MockGateway is a mock of Gateway interface.
type MockGateway struct {
	ctrl     *gomock.Controller
	recorder *MockGatewayMockRecorder
	isgomock struct{}
}

// MockGatewayMockRecorder is the mock recorder for MockGateway.
type MockGatewayMockRecorder struct {
	mock *MockGateway
}

// NewMockGateway creates a new mock instance.
func NewMockGateway(ctrl *gomock.Controller) *MockGateway {
	mock := &MockGateway{ctrl: ctrl}
	mock.recorder = &MockGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGateway) EXPECT() *MockGatewayMockRecorder {
	return m.recorder
}

// CreateCharge mocks base method.
func (m *MockGateway) CreateCharge(ctx context.Context, charge entities.GatewayCharge) (*entities.GatewayChargeResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCharge", ctx, charge)
	ret0, _ := ret[0].(*entities.GatewayChargeResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCharge indicates an expected call of CreateCharge.
func (mr *MockGatewayMockRecorder) CreateCharge(ctx, charge any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCharge", reflect.TypeOf((*MockGateway)(nil).CreateCharge), ctx, charge)
}

// CreateTransfer mocks base method.
func (m *MockGateway) CreateTransfer(ctx context.Context, transfer entities.GatewayTransfer) (*entities.GatewayTransferResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTransfer", ctx, transfer)
	ret0, _ := ret[0].(*entities.GatewayTransferResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTransfer indicates an expected call of CreateTransfer.
func (mr *MockGatewayMockRecorder) CreateTransfer(ctx, transfer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTransfer", reflect.TypeOf((*MockGateway)(nil).CreateTransfer), ctx, transfer)
}

// VerifyTransaction mocks base method.
func (m *MockGateway) VerifyTransaction(ctx context.Context, txRef string) (*entities.GatewayTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyTransaction", ctx, txRef)
	ret0, _ := ret[0].(*entities.GatewayTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyTransaction indicates an expected call of VerifyTransaction.
func (mr *MockGatewayMockRecorder) VerifyTransaction(ctx, txRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyTransaction", reflect.TypeOf((*MockGateway)(nil).VerifyTransaction), ctx, txRef)
}

// MockWebhookVerifier is a mock of WebhookVerifier interface.
type MockWebhookVerifier struct {
	ctrl     *gomock.Controller
	recorder *MockWebhookVerifierMockRecorder
	isgomock struct{}
}

// MockWebhookVerifierMockRecorder is the mock recorder for MockWebhookVerifier.
type MockWebhookVerifierMockRecorder struct {
	mock *MockWebhookVerifier
}

// NewMockWebhookVerifier creates a new mock instance.
func NewMockWebhookVerifier(ctrl *gomock.Controller) *MockWebhookVerifier {
	mock := &MockWebhookVerifier{ctrl: ctrl}
	mock.recorder = &MockWebhookVerifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWebhookVerifier) EXPECT() *MockWebhookVerifierMockRecorder {
	return m.recorder
}

// Verify mocks base method.
func (m *MockWebhookVerifier) Verify(signature string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", signature)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Verify indicates an expected call of Verify.
func (mr *MockWebhookVerifierMockRecorder) Verify(signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockWebhookVerifier)(nil).Verify), signature)
}

// MockserviceLogger is a mock of serviceLogger interface.
type MockserviceLogger struct {
	ctrl     *gomock.Controller
	recorder *MockserviceLoggerMockRecorder
	isgomock struct{}
}

// MockserviceLoggerMockRecorder is the mock recorder for MockserviceLogger.
type MockserviceLoggerMockRecorder struct {
	mock *MockserviceLogger
}

// NewMockserviceLogger creates a new mock instance.
func NewMockserviceLogger(ctrl *gomock.Controller) *MockserviceLogger {
	mock := &MockserviceLogger{ctrl: ctrl}
	mock.recorder = &MockserviceLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockserviceLogger) EXPECT() *MockserviceLoggerMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MockserviceLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MockserviceLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockserviceLogger)(nil).Error), varargs...)
}

// Info mocks base method.
func (m *MockserviceLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MockserviceLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockserviceLogger)(nil).Info), varargs...)
}

// Warn mocks base method.
func (m *MockserviceLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MockserviceLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockserviceLogger)(nil).Warn), varargs...)
}
