package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/member/model"
	gDto "cowork/shared/dto"
	gRepo "cowork/shared/repository"
)

type Member interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Member, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Member]
}

func New(db *postgres.Connection, otel otel.Otel) Member {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Member](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
