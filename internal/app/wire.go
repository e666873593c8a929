//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"safiridocs/internal/gateway/flutterwave"
	smsGateway "safiridocs/internal/gateway/sms"
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

	chatRepo "safiridocs/internal/repository/chat"
	paymentRepo "safiridocs/internal/repository/payment"
	requestRepo "safiridocs/internal/repository/request"
	reviewRepo "safiridocs/internal/repository/review"
	tripRepo "safiridocs/internal/repository/trip"
	userRepo "safiridocs/internal/repository/user"
	chatService "safiridocs/internal/service/chat"
	matchingService "safiridocs/internal/service/matching"
	paymentService "safiridocs/internal/service/payment"
	requestService "safiridocs/internal/service/request"
	reviewService "safiridocs/internal/service/review"
	tokenService "safiridocs/internal/service/token"
	tripService "safiridocs/internal/service/trip"
	userService "safiridocs/internal/service/user"

	"safiridocs/pkg/background"
	"safiridocs/pkg/logger"
	"safiridocs/pkg/password"
	"safiridocs/pkg/querier"
	"safiridocs/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceToken      *tokenService.Service
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

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideHTTPClient,

		provideUserRepository,
		provideTripRepository,
		provideRequestRepository,
		providePaymentRepository,
		provideReviewRepository,
		provideChatRepository,

		password.NewHasher,
		secure_code.New,
		provideTokenService,
		provideFlutterwaveGateway,
		provideWebhookVerifier,
		provideSMSGateway,

		provideServiceUser,
		provideServiceTrip,
		provideServicePayment,
		provideServiceRequest,
		provideServiceMatching,
		provideServiceReview,
		provideServiceChat,

		provideTripCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceRequest), new(*requestService.Request)),
		wire.Bind(new(ServiceTrip), new(*tripService.Trip)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Matching)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceReview), new(*reviewService.Review)),
		wire.Bind(new(ServiceChat), new(*chatService.Chat)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(userService.PasswordHasher), new(*password.Hasher)),
		wire.Bind(new(userService.OTPSender), new(*smsGateway.Gateway)),
		wire.Bind(new(userService.CodeFactory), new(*secure_code.CodeFactory)),

		wire.Bind(new(tripService.Repository), new(*tripRepo.Repository)),

		wire.Bind(new(requestService.Repository), new(*requestRepo.Repository)),
		wire.Bind(new(requestService.TripService), new(*tripService.Trip)),
		wire.Bind(new(requestService.PaymentService), new(*paymentService.Payment)),
		wire.Bind(new(requestService.UserService), new(*userService.User)),

		wire.Bind(new(matchingService.RequestRepository), new(*requestRepo.Repository)),
		wire.Bind(new(matchingService.TripRepository), new(*tripRepo.Repository)),
		wire.Bind(new(matchingService.UserService), new(*userService.User)),
		wire.Bind(new(matchingService.CodeFactory), new(*secure_code.CodeFactory)),

		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.RequestProvider), new(*requestRepo.Repository)),
		wire.Bind(new(paymentService.UserProvider), new(*userService.User)),
		wire.Bind(new(paymentService.Gateway), new(*flutterwave.Gateway)),
		wire.Bind(new(paymentService.WebhookVerifier), new(*flutterwave.WebhookVerifier)),

		wire.Bind(new(reviewService.Repository), new(*reviewRepo.Repository)),
		wire.Bind(new(reviewService.RequestProvider), new(*requestRepo.Repository)),

		wire.Bind(new(chatService.Repository), new(*chatRepo.Repository)),
		wire.Bind(new(chatService.RequestProvider), new(*requestRepo.Repository)),

		wire.Bind(new(userService.TxManager), new(*tx.Manager)),
		wire.Bind(new(tripService.TxManager), new(*tx.Manager)),
		wire.Bind(new(requestService.TxManager), new(*tx.Manager)),
		wire.Bind(new(matchingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(reviewService.TxManager), new(*tx.Manager)),

		wire.Bind(new(trip_cleanup.Service), new(*tripService.Trip)),
	)
	return &Application{}, nil
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

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideTripRepository(querier *querier.Querier) *tripRepo.Repository {
	return tripRepo.New(querier)
}

func provideRequestRepository(querier *querier.Querier) *requestRepo.Repository {
	return requestRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideChatRepository(querier *querier.Querier) *chatRepo.Repository {
	return chatRepo.New(querier)
}

func provideTokenService(cfg *config.Config) (*tokenService.Service, error) {
	return tokenService.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideFlutterwaveGateway(client *http.Client, cfg *config.Config) *flutterwave.Gateway {
	return flutterwave.New(client, cfg.Flutterwave.BaseURL, cfg.Flutterwave.SecretKey)
}

func provideWebhookVerifier(cfg *config.Config) *flutterwave.WebhookVerifier {
	return flutterwave.NewWebhookVerifier(cfg.Flutterwave.WebhookSecretHash)
}

func provideSMSGateway(client *http.Client, cfg *config.Config) *smsGateway.Gateway {
	return smsGateway.New(client, cfg.SMS.BaseURL, cfg.SMS.APIKey, cfg.SMS.Sender)
}

func provideServiceUser(
	log logger.Logger,
	repository userService.Repository,
	hasher userService.PasswordHasher,
	otpSender userService.OTPSender,
	codes userService.CodeFactory,
	txManager userService.TxManager,
) *userService.User {
	return userService.New(log, repository, hasher, otpSender, codes, txManager)
}

func provideServiceTrip(
	repository tripService.Repository,
	txManager tripService.TxManager,
) *tripService.Trip {
	return tripService.New(repository, txManager)
}

func provideServicePayment(
	log logger.Logger,
	repository paymentService.Repository,
	requests paymentService.RequestProvider,
	users paymentService.UserProvider,
	gateway paymentService.Gateway,
	verifier paymentService.WebhookVerifier,
) *paymentService.Payment {
	return paymentService.New(log, repository, requests, users, gateway, verifier)
}

func provideServiceRequest(
	repository requestService.Repository,
	trips requestService.TripService,
	payments requestService.PaymentService,
	users requestService.UserService,
	txManager requestService.TxManager,
) *requestService.Request {
	return requestService.New(repository, trips, payments, users, txManager)
}

func provideServiceMatching(
	requestRepository matchingService.RequestRepository,
	tripRepository matchingService.TripRepository,
	users matchingService.UserService,
	codes matchingService.CodeFactory,
	txManager matchingService.TxManager,
) *matchingService.Matching {
	return matchingService.New(requestRepository, tripRepository, users, codes, txManager)
}

func provideServiceReview(
	repository reviewService.Repository,
	requests reviewService.RequestProvider,
	txManager reviewService.TxManager,
) *reviewService.Review {
	return reviewService.New(repository, requests, txManager)
}

func provideServiceChat(
	repository chatService.Repository,
	requests chatService.RequestProvider,
) *chatService.Chat {
	return chatService.New(repository, requests)
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
