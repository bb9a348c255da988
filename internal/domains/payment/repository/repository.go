package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/payment/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"
)

// Payment is append-only: no update or delete.
type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SumAmount(ctx context.Context, filter gDto.FilterGroup) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumAmount totals the recorded amounts matching the filter.
func (repo *repositoryImpl) SumAmount(ctx context.Context, filter gDto.FilterGroup) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".SumAmount")
	defer scope.End()

	query := fmt.Sprintf("SELECT COALESCE(SUM(%s), 0) FROM %s", model.FieldAmount, model.TableName)

	where, args := repo.BuildWhereClause(ctx, filter)
	if where != "" {
		query += " WHERE " + where
	}

	namedQuery, namedArgs, err := repo.db.Read.BindNamed(query, args)
	if err != nil {
		return 0, fmt.Errorf("failed to bind sum query: %w", err)
	}

	var total float64
	if err := repo.db.Read.GetContext(ctx, &total, namedQuery, namedArgs...); err != nil {
		return 0, fmt.Errorf("failed to sum payment amounts: %w", err)
	}

	return total, nil
}
