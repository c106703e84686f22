package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/organization/model"
	gDto "cowork/shared/dto"
	gRepo "cowork/shared/repository"
)

type Organization interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Organization, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Organization]
}

func New(db *postgres.Connection, otel otel.Otel) Organization {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Organization](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
