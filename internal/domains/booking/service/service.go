package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"cowork/config"
	"cowork/infras/kafka"
	"cowork/infras/metrics"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/infras/s3"
	billingModel "cowork/internal/domains/billing/model"
	billingService "cowork/internal/domains/billing/service"
	"cowork/internal/domains/booking/model"
	"cowork/internal/domains/booking/model/dto"
	"cowork/internal/domains/booking/policy"
	"cowork/internal/domains/booking/repository"
	"cowork/internal/domains/guest"
	ledgerService "cowork/internal/domains/ledger/service"
	memberService "cowork/internal/domains/member/service"
	roomService "cowork/internal/domains/room/service"
	"cowork/shared"
	"cowork/shared/cache"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.CancelBookingResponse, error)
	PreviewCredits(ctx context.Context, roomID string, query dto.IntervalQuery) (dto.PreviewCreditsResponse, error)
	IsAvailable(ctx context.Context, roomID string, query dto.IntervalQuery) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GuestReport(ctx context.Context, month time.Time) (dto.GuestReportResponse, error)
	ExportGuestReport(ctx context.Context, month time.Time) (dto.ExportResponse, error)
}

type serviceImpl struct {
	repo    repository.Booking
	tx      postgres.Transactor
	room    roomService.Room
	member  memberService.Member
	billing billingService.Resolver
	ledger  ledgerService.Ledger
	policy  policy.Policy
	events  kafka.Client
	storage s3.S3
	metrics metrics.Metrics
	clock   timezone.Clock
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.Booking,
	tx postgres.Transactor,
	room roomService.Room,
	member memberService.Member,
	billing billingService.Resolver,
	ledger ledgerService.Ledger,
	events kafka.Client,
	storage s3.S3,
	metrics metrics.Metrics,
	clock timezone.Clock,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:    repo,
		tx:      tx,
		room:    room,
		member:  member,
		billing: billing,
		ledger:  ledger,
		policy:  policy.New(cfg),
		events:  events,
		storage: storage,
		metrics: metrics,
		clock:   clock,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer s.recordRejection(&err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	requester, err := s.member.Requester(ctx, userID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	interval, err := req.Interval()
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	now := s.clock.Now()

	if err = s.policy.CheckCreate(requester.Role, interval, now); err != nil {
		return res, err // nolint:wrapcheck
	}

	room, err := s.room.Get(ctx, req.RoomID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !room.IsAvailable {
		return res, model.ErrRoomUnavailable
	}

	decision, err := s.billing.Resolve(requester, req.BillingTarget)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	info := req.Guest()
	if decision.Target == billingModel.TargetExternal && !isCompleteGuest(info) {
		return res, model.ErrInvalidGuestInfo
	}

	quote := s.billing.Quote(interval.Duration(), room.CreditCostPerHour)

	booking := model.Booking{
		ID:             uuid.NewString(),
		RoomID:         room.ID,
		RequesterID:    requester.ID,
		StartTime:      interval.Start,
		EndTime:        interval.End,
		CreditsCharged: quote.Credits,
		Status:         model.StatusConfirmed,
		BillingTarget:  decision.Target,
		Notes:          req.Notes,
		Site:           room.Site,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  requester.ID,
			ModifiedBy: requester.ID,
		},
	}

	if decision.OrganizationID != constant.Empty {
		booking.OrganizationID = &decision.OrganizationID
	}

	if !info.IsEmpty() {
		booking.GuestName = optional(info.Name)
		booking.GuestEmail = optional(info.Email)
		booking.GuestPhone = optional(info.Phone)
	}

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.reserveTx(ctx, tx, booking)
	})
	if err != nil {
		if failure.IsFailure(err) {
			return res, err // nolint:wrapcheck
		}

		log.Error().Err(err).Str("room_id", booking.RoomID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().
		Str("booking_id", booking.ID).
		Str("room_id", booking.RoomID).
		Str("billing_target", booking.BillingTarget).
		Str("credits", booking.CreditsCharged.String()).
		Msg("booking created")

	s.metrics.BookingCreated(booking.BillingTarget, booking.CreditsCharged.InexactFloat64())
	s.publish(ctx, dto.NewBookingEvent(dto.EventBookingCreated, booking, booking.CreditsCharged, now))
	s.invalidate(ctx, constant.Empty)

	res.FromModel(booking, now)

	return res, nil
}

// reserveTx holds the room lock from the overlap check until commit, so two
// requests for the same room cannot both see it free.
func (s *serviceImpl) reserveTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	if err := s.repo.LockRoomTx(ctx, tx, booking.RoomID); err != nil {
		return fmt.Errorf("failed to lock room: %w", err)
	}

	overlap, err := s.repo.HasOverlapTx(ctx, tx, booking.RoomID, booking.Interval())
	if err != nil {
		return fmt.Errorf("failed to check availability: %w", err)
	}

	if overlap {
		return model.ErrRoomUnavailable
	}

	if err = s.ledger.DebitTx(ctx, tx, booking.Charge()); err != nil {
		return err // nolint:wrapcheck
	}

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		if postgres.IsExclusionViolation(err) {
			return model.ErrRoomUnavailable
		}

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer s.recordRejection(&err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("missing authenticated user") // nolint:wrapcheck
	}

	now := s.clock.Now()

	var (
		booking  model.Booking
		refunded decimal.Decimal
	)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		locked, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if locked.ID == constant.Empty {
			return model.ErrBookingNotFound
		}

		if err = s.policy.CheckCancel(locked, userID, now); err != nil {
			return err // nolint:wrapcheck
		}

		err = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			model.FieldCancelledAt:   now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: userID,
		}, filter)
		if err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		refunded, err = s.ledger.RefundTx(ctx, tx, locked.Charge())
		if err != nil {
			return err // nolint:wrapcheck
		}

		locked.Status = model.StatusCancelled
		locked.CancelledAt = &now
		booking = locked

		return nil
	})
	if err != nil {
		if failure.IsFailure(err) {
			return res, err // nolint:wrapcheck
		}

		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	log.Info().Str("booking_id", id).Str("refunded", refunded.String()).Msg("booking cancelled")

	s.metrics.BookingCancelled(booking.BillingTarget, refunded.InexactFloat64())
	s.publish(ctx, dto.NewBookingEvent(dto.EventBookingCancelled, booking, refunded, now))
	s.invalidate(ctx, id)

	res.BookingID = booking.ID
	res.RefundedCredits = refunded

	return res, nil
}

// PreviewCredits prices an interval with the same rule Create charges with.
func (s *serviceImpl) PreviewCredits(ctx context.Context, roomID string, query dto.IntervalQuery) (res dto.PreviewCreditsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.PreviewCredits")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	interval, err := query.Interval()
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	room, err := s.room.Get(ctx, roomID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	quote := s.billing.Quote(interval.Duration(), room.CreditCostPerHour)

	res.RoomID = room.ID
	res.StartTime = timezone.Format(interval.Start, constant.DateFormat)
	res.EndTime = timezone.Format(interval.End, constant.DateFormat)
	res.BilledMinutes = quote.BilledMinutes
	res.Credits = quote.Credits

	return res, nil
}

// IsAvailable is a point-in-time answer; Create re-checks under the room lock.
func (s *serviceImpl) IsAvailable(ctx context.Context, roomID string, query dto.IntervalQuery) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.IsAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	interval, err := query.Interval()
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	room, err := s.room.Get(ctx, roomID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res.RoomID = room.ID
	res.StartTime = timezone.Format(interval.Start, constant.DateFormat)
	res.EndTime = timezone.Format(interval.End, constant.DateFormat)

	if !room.IsAvailable {
		return res, nil
	}

	overlap, err := s.repo.HasOverlap(ctx, room.ID, interval)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	res.Available = !overlap

	return res, nil
}

type bookingPage struct {
	Bookings []model.Booking `json:"bookings"`
	Total    int             `json:"total"`
}

// GetAll caches stored rows rather than responses, so the derived completed
// status is always computed against the current time.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	page, err := cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (page bookingPage, err error) {
		page.Total, err = s.count(ctx, req, filter)
		if err != nil {
			return page, err
		}

		page.Bookings, err = s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to list bookings")

			return page, fmt.Errorf("failed to list bookings: %w", err)
		}

		return page, nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res.FromModels(page.Bookings, page.Total, req.Limit, s.clock.Now())

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error) {
	key := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings")

			return 0, fmt.Errorf("failed to count bookings: %w", err)
		}

		return total, nil
	})
}

// Get returns a booking to its requester or to staff.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetBooking, id), s.cfg.Cache.TTL, func(ctx context.Context) (model.Booking, error) {
		booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

			return booking, fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return booking, model.ErrBookingNotFound
		}

		return booking, nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res.FromModel(booking, s.clock.Now())

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if res.RequesterID != userID && !s.policy.IsExempt(role) {
		return dto.BookingResponse{}, failure.ResourceRestrictedError
	}

	return res, nil
}

// GuestReport lists the month's bookings made on behalf of external guests,
// including legacy rows that only carry the guest in their notes.
func (s *serviceImpl) GuestReport(ctx context.Context, month time.Time) (res dto.GuestReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GuestReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to := shared.MonthRange(shared.MonthOf(month, s.clock.Now()))

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "range_start", Field: model.FieldStartTime, Value: from, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: "range_end", Field: model.FieldStartTime, Value: to, Operator: gDto.FilterOperatorLess, Table: model.TableName},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{Field: model.FieldBillingTarget, Value: billingModel.TargetExternal, Operator: gDto.FilterOperatorEq, Table: model.TableName},
					gDto.Filter{Field: model.FieldGuestName, Operator: gDto.FilterIsNotNull, Table: model.TableName},
					gDto.Filter{Field: model.FieldNotes, Value: guest.Marker, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				},
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("month", from.Format(constant.MonthFormat)).Msg("failed to get guest bookings")

		return res, fmt.Errorf("failed to get guest bookings: %w", err)
	}

	res.FromModels(models, from, s.clock.Now())

	return res, nil
}

func (s *serviceImpl) ExportGuestReport(ctx context.Context, month time.Time) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ExportGuestReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.GuestReport(ctx, month)
	if err != nil {
		return res, err
	}

	data, err := report.CSV()
	if err != nil {
		log.Error().Err(err).Msg("failed to render guest report")

		return res, fmt.Errorf("failed to render guest report: %w", err)
	}

	fileName := fmt.Sprintf("guests-%s-%d.csv", report.Month, s.clock.Now().Unix())

	url, err := s.storage.UploadFileBytes(ctx, s.cfg.Booking.GuestReportDirectory, fileName, constant.ContentTypeCSV, data)
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to upload guest report")

		return res, fmt.Errorf("failed to upload guest report: %w", err)
	}

	res.URL = url
	res.Rows = len(report.Rows)

	return res, nil
}

// publish never fails the caller; the booking is already committed.
func (s *serviceImpl) publish(ctx context.Context, event dto.BookingEvent) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking."+event.Type)
	defer scope.End()

	// keyed by booking so created and cancelled land on one partition in order
	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
		Headers: map[string]string{
			model.FieldRoomID: event.RoomID,
		},
	}

	if err := s.events.SendMessages(ctx, s.cfg.Booking.EventTopic, message); err != nil {
		log.Error().Err(err).Str("event", event.Type).Str("booking_id", event.BookingID).Msg("failed to publish booking event")
		scope.TraceError(err)
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) recordRejection(err *error) {
	if *err == nil {
		return
	}

	var f *failure.Failure
	if errors.As(*err, &f) {
		s.metrics.BookingRejected(f.Kind)

		return
	}

	s.metrics.BookingRejected(failure.KindInternal)
}

func isCompleteGuest(info guest.Info) bool {
	return info.Name != constant.Empty && (info.Email != constant.Empty || info.Phone != constant.Empty)
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}
