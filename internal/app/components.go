package app

import (
	"hotel/internal/config"
	"hotel/internal/events"
	"hotel/internal/metrics"
	"hotel/internal/modules/admin"
	"hotel/internal/modules/auth"
	"hotel/internal/modules/contact"
	"hotel/internal/modules/invoice"
	"hotel/internal/modules/notification"
	"hotel/internal/modules/payment"
	"hotel/internal/modules/reservation"
	"hotel/internal/modules/room"
	"hotel/internal/pkg/cache"
	"hotel/internal/pkg/clock"
	"hotel/internal/pkg/jwt"
	"hotel/internal/repository"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(db *gorm.DB, log *zap.Logger) *repository.UnitOfWork { return repository.NewUnitOfWork(db, log) },
		repository.NewUserRepository,
		repository.NewRoomRepository,
		repository.NewReservationRepository,
		repository.NewPaymentRepository,
		repository.NewInvoiceRepository,
		repository.NewContactRepository,
		repository.NewNotificationRepository,
		repository.NewActivityRepository,
	),
)

var ServiceModule = fx.Module("service",
	fx.Provide(
		newAuthService,
		newRoomService,
		newNotificationService,
		newReservationService,
		newPaymentService,
		newInvoiceService,
		newContactService,
		newAdminService,
	),
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		auth.NewHandler,
		room.NewHandler,
		reservation.NewHandler,
		payment.NewHandler,
		invoice.NewHandler,
		contact.NewHandler,
		notification.NewHandler,
		admin.NewHandler,
		newWSHandler,
		NewRouter,
	),
)

// Module is everything except the HTTP listener.
var Module = fx.Options(
	InfraModule,
	RepositoryModule,
	ServiceModule,
	HandlerModule,
)

func newAuthService(users *repository.UserRepository, tokens *jwt.Service, log *zap.Logger) *auth.Service {
	return auth.NewService(users, tokens, log.Named("auth"))
}

func newRoomService(
	rooms *repository.RoomRepository,
	uow *repository.UnitOfWork,
	store cache.Store,
	cfg *config.Config,
	publisher events.Publisher,
	clk clock.Clock,
	log *zap.Logger,
) *room.Service {
	return room.NewService(rooms, uow, store, cfg.Cache.TTL, publisher, clk, log.Named("room"))
}

func newNotificationService(repo *repository.NotificationRepository, hub *notification.Hub, log *zap.Logger) *notification.Service {
	return notification.NewService(repo, hub, log.Named("notification"))
}

func newReservationService(
	reservations *repository.ReservationRepository,
	uow *repository.UnitOfWork,
	notifier *notification.Service,
	rooms *room.Service,
	publisher events.Publisher,
	m *metrics.Metrics,
	clk clock.Clock,
	log *zap.Logger,
) *reservation.Service {
	return reservation.NewService(reservations, uow, notifier, rooms, publisher, m, clk, log.Named("reservation"))
}

func newPaymentService(
	payments *repository.PaymentRepository,
	uow *repository.UnitOfWork,
	reservations *reservation.Service,
	notifier *notification.Service,
	publisher events.Publisher,
	m *metrics.Metrics,
	clk clock.Clock,
	log *zap.Logger,
) *payment.Service {
	return payment.NewService(payments, uow, reservations, notifier, publisher, m, clk, log.Named("payment"))
}

func newInvoiceService(
	invoices *repository.InvoiceRepository,
	uow *repository.UnitOfWork,
	notifier *notification.Service,
	publisher events.Publisher,
	m *metrics.Metrics,
	cfg *config.Config,
	clk clock.Clock,
	log *zap.Logger,
) *invoice.Service {
	settings := invoice.Settings{
		TaxRate:      cfg.Invoice.TaxRate,
		NumberPrefix: cfg.Invoice.NumberPrefix,
		HotelName:    cfg.Invoice.HotelName,
		HotelTaxID:   cfg.Invoice.HotelTaxID,
	}
	return invoice.NewService(invoices, uow, notifier, publisher, m, settings, clk, log.Named("invoice"))
}

func newContactService(
	contacts *repository.ContactRepository,
	uow *repository.UnitOfWork,
	publisher events.Publisher,
	clk clock.Clock,
	log *zap.Logger,
) *contact.Service {
	return contact.NewService(contacts, uow, publisher, clk, log.Named("contact"))
}

func newAdminService(
	users *repository.UserRepository,
	rooms *repository.RoomRepository,
	reservations *repository.ReservationRepository,
	payments *repository.PaymentRepository,
	contacts *repository.ContactRepository,
	activities *repository.ActivityRepository,
	uow *repository.UnitOfWork,
	log *zap.Logger,
) *admin.Service {
	return admin.NewService(users, rooms, reservations, payments, contacts, activities, uow, log.Named("admin"))
}

func newWSHandler(hub *notification.Hub, tokens *jwt.Service, cfg *config.Config, log *zap.Logger) *notification.WSHandler {
	return notification.NewWSHandler(hub, tokens, cfg.CORS.AllowOrigins, log.Named("ws"))
}
