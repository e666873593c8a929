// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"net/http"
	"safiridocs/internal/gateway/flutterwave"
	"safiridocs/internal/gateway/sms"
	"safiridocs/internal/handlers/rest/booking_delivery_post"
	"safiridocs/internal/handlers/rest/booking_pickup_post"
	"safiridocs/internal/handlers/rest/booking_refuse_post"
	"safiridocs/internal/handlers/rest/booking_status_post"
	"safiridocs/internal/handlers/rest/chat_message_post"
	"safiridocs/internal/handlers/rest/chat_messages_get"
	"safiridocs/internal/handlers/rest/chat_read_put"
	"safiridocs/internal/handlers/rest/login_post"
	"safiridocs/internal/handlers/rest/payment_initiate_post"
	"safiridocs/internal/handlers/rest/payment_payout_post"
	"safiridocs/internal/handlers/rest/payment_status_get"
	"safiridocs/internal/handlers/rest/payment_webhook_post"
	"safiridocs/internal/handlers/rest/request_delete"
	"safiridocs/internal/handlers/rest/request_get"
	"safiridocs/internal/handlers/rest/request_match_post"
	"safiridocs/internal/handlers/rest/request_post"
	"safiridocs/internal/handlers/rest/request_travelers_get"
	"safiridocs/internal/handlers/rest/requests_get"
	"safiridocs/internal/handlers/rest/review_post"
	"safiridocs/internal/handlers/rest/reviews_user_get"
	"safiridocs/internal/handlers/rest/signup_post"
	"safiridocs/internal/handlers/rest/trip_apply_post"
	"safiridocs/internal/handlers/rest/trip_get"
	"safiridocs/internal/handlers/rest/trip_post"
	"safiridocs/internal/handlers/rest/trip_requests_get"
	"safiridocs/internal/handlers/rest/trips_get"
	"safiridocs/internal/handlers/rest/verify_otp_post"
	"safiridocs/internal/handlers/tasks/trip_cleanup"
	"safiridocs/internal/pkg/config"
	"safiridocs/internal/pkg/factory/secure_code"
	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/internal/repository/chat"
	"safiridocs/internal/repository/payment"
	"safiridocs/internal/repository/request"
	"safiridocs/internal/repository/review"
	"safiridocs/internal/repository/trip"
	"safiridocs/internal/repository/user"
	chat2 "safiridocs/internal/service/chat"
	"safiridocs/internal/service/matching"
	payment2 "safiridocs/internal/service/payment"
	request2 "safiridocs/internal/service/request"
	review2 "safiridocs/internal/service/review"
	"safiridocs/internal/service/token"
	trip2 "safiridocs/internal/service/trip"
	user2 "safiridocs/internal/service/user"
	"safiridocs/pkg/background"
	"safiridocs/pkg/logger"
	"safiridocs/pkg/password"
	"safiridocs/pkg/querier"
	"safiridocs/pkg/tx"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideUserRepository(querier)
	hasher := password.NewHasher()
	client := provideHTTPClient()
	gateway := provideSMSGateway(client, cfg)
	codeFactory := secure_code.New()
	manager := provideTxManager(pool)
	user := provideServiceUser(log, repository, hasher, gateway, codeFactory, manager)
	service, err := provideTokenService(cfg)
	if err != nil {
		return nil, err
	}
	requestRepository := provideRequestRepository(querier)
	tripRepository := provideTripRepository(querier)
	trip := provideServiceTrip(tripRepository, manager)
	paymentRepository := providePaymentRepository(querier)
	flutterwaveGateway := provideFlutterwaveGateway(client, cfg)
	webhookVerifier := provideWebhookVerifier(cfg)
	payment := provideServicePayment(log, paymentRepository, requestRepository, user, flutterwaveGateway, webhookVerifier)
	request := provideServiceRequest(requestRepository, trip, payment, user, manager)
	matching := provideServiceMatching(requestRepository, tripRepository, user, codeFactory, manager)
	reviewRepository := provideReviewRepository(querier)
	review := provideServiceReview(reviewRepository, requestRepository, manager)
	chatRepository := provideChatRepository(querier)
	chat := provideServiceChat(chatRepository, requestRepository)
	cleanupInterval := provideCleanupInterval(cfg)
	tripCleanup := provideTripCleanupTask(log, trip, cleanupInterval)
	v := provideTaskList(tripCleanup)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceUser:       user,
		ServiceToken:      service,
		ServiceRequest:    request,
		ServiceTrip:       trip,
		ServiceMatching:   matching,
		ServicePayment:    payment,
		ServiceReview:     review,
		ServiceChat:       chat,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// wire.go:

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceToken      *token.Service
	ServiceRequest    ServiceRequest
	ServiceTrip       ServiceTrip
	ServiceMatching   ServiceMatching
	ServicePayment    ServicePayment
	ServiceReview     ServiceReview
	ServiceChat       ServiceChat
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	signup_post.Service
	login_post.Service
	verify_otp_post.Service
	auth.UserProvider
}

type ServiceRequest interface {
	request_post.Service
	request_get.Service
	requests_get.Service
	request_delete.Service
	booking_pickup_post.Service
	booking_status_post.Service
	booking_delivery_post.Service
	booking_refuse_post.Service
}

type ServiceTrip interface {
	trip_post.Service
	trips_get.Service
	trip_get.Service
}

type ServiceMatching interface {
	request_match_post.Service
	request_travelers_get.Service
	trip_apply_post.Service
	trip_requests_get.Service
}

type ServicePayment interface {
	payment_initiate_post.Service
	payment_webhook_post.Service
	payment_status_get.Service
	payment_payout_post.Service
}

type ServiceReview interface {
	review_post.Service
	reviews_user_get.Service
}

type ServiceChat interface {
	chat_message_post.Service
	chat_messages_get.Service
	chat_read_put.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.TripCleanupInterval)
}

// provideHTTPClient - общий клиент для внешних провайдеров (платежи, SMS).
func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func provideUserRepository(querier2 *querier.Querier) *user.Repository {
	return user.New(querier2)
}

func provideTripRepository(querier2 *querier.Querier) *trip.Repository {
	return trip.New(querier2)
}

func provideRequestRepository(querier2 *querier.Querier) *request.Repository {
	return request.New(querier2)
}

func providePaymentRepository(querier2 *querier.Querier) *payment.Repository {
	return payment.New(querier2)
}

func provideReviewRepository(querier2 *querier.Querier) *review.Repository {
	return review.New(querier2)
}

func provideChatRepository(querier2 *querier.Querier) *chat.Repository {
	return chat.New(querier2)
}

func provideTokenService(cfg *config.Config) (*token.Service, error) {
	return token.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideFlutterwaveGateway(client *http.Client, cfg *config.Config) *flutterwave.Gateway {
	return flutterwave.New(client, cfg.Flutterwave.BaseURL, cfg.Flutterwave.SecretKey)
}

func provideWebhookVerifier(cfg *config.Config) *flutterwave.WebhookVerifier {
	return flutterwave.NewWebhookVerifier(cfg.Flutterwave.WebhookSecretHash)
}

func provideSMSGateway(client *http.Client, cfg *config.Config) *sms.Gateway {
	return sms.New(client, cfg.SMS.BaseURL, cfg.SMS.APIKey, cfg.SMS.Sender)
}

func provideServiceUser(
	log logger.Logger,
	repository user2.Repository,
	hasher user2.PasswordHasher,
	otpSender user2.OTPSender,
	codes user2.CodeFactory,
	txManager user2.TxManager,
) *user2.User {
	return user2.New(log, repository, hasher, otpSender, codes, txManager)
}

func provideServiceTrip(
	repository trip2.Repository,
	txManager trip2.TxManager,
) *trip2.Trip {
	return trip2.New(repository, txManager)
}

func provideServicePayment(
	log logger.Logger,
	repository payment2.Repository,
	requests payment2.RequestProvider,
	users payment2.UserProvider,
	gateway payment2.Gateway,
	verifier payment2.WebhookVerifier,
) *payment2.Payment {
	return payment2.New(log, repository, requests, users, gateway, verifier)
}

func provideServiceRequest(
	repository request2.Repository,
	trips request2.TripService,
	payments request2.PaymentService,
	users request2.UserService,
	txManager request2.TxManager,
) *request2.Request {
	return request2.New(repository, trips, payments, users, txManager)
}

func provideServiceMatching(
	requestRepository matching.RequestRepository,
	tripRepository matching.TripRepository,
	users matching.UserService,
	codes matching.CodeFactory,
	txManager matching.TxManager,
) *matching.Matching {
	return matching.New(requestRepository, tripRepository, users, codes, txManager)
}

func provideServiceReview(
	repository review2.Repository,
	requests review2.RequestProvider,
	txManager review2.TxManager,
) *review2.Review {
	return review2.New(repository, requests, txManager)
}

func provideServiceChat(
	repository chat2.Repository,
	requests chat2.RequestProvider,
) *chat2.Chat {
	return chat2.New(repository, requests)
}

func provideTripCleanupTask(
	log logger.Logger,
	tripService trip_cleanup.Service,
	interval CleanupInterval,
) *trip_cleanup.TripCleanup {
	return trip_cleanup.NewTripCleanup(log, tripService, time.Duration(interval))
}

func provideTaskList(
	tripCleanupTask *trip_cleanup.TripCleanup,
) []background.Task {
	return []background.Task{
		tripCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
