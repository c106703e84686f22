package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"cowork/infras/otel"
	"cowork/internal/domains/member/model"
	"cowork/internal/domains/member/repository"
	"cowork/shared"
	"cowork/shared/constant"
	"cowork/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrMemberNotFound = failure.NotFound("member not found")

// Member resolves authenticated user ids into requesters. Rows are never cached:
// the permission flag and credit columns must be read fresh for every booking.
type Member interface {
	Get(ctx context.Context, id string) (model.Member, error)
	Requester(ctx context.Context, id string) (model.Requester, error)
}

type serviceImpl struct {
	repo repository.Member
	otel otel.Otel
}

func New(repo repository.Member, otel otel.Otel) Member {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Member, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".member.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return res, failure.Unauthorized("missing authenticated user") // nolint:wrapcheck
	}

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("member_id", id).Msg("failed to get member")

		return res, fmt.Errorf("failed to get member: %w", err)
	}

	if res.ID == constant.Empty {
		return res, ErrMemberNotFound
	}

	return res, nil
}

func (s *serviceImpl) Requester(ctx context.Context, id string) (model.Requester, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return model.Requester{}, err
	}

	return member.ToRequester(), nil
}
