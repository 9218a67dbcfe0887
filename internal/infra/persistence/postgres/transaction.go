// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory creates repositories bound to one *gorm.DB transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewPairAggregateRepository() repository.PairAggregateRepository {
	return NewPairAggregateRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRankingRepository() repository.RankingRepository {
	return NewRankingRepository(f.tx)
}

func (f *gormRepositoryFactory) NewHiddenSnapshotRepository() repository.HiddenSnapshotRepository {
	return NewHiddenSnapshotRepository(f.tx)
}

func (f *gormRepositoryFactory) NewMatchRecordRepository() repository.MatchRecordRepository {
	return NewMatchRecordRepository(f.tx)
}

func (f *gormRepositoryFactory) NewGeoPointRepository() repository.GeoPointRepository {
	return NewGeoPointRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. A panic in fn rolls back and re-panics.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "commit transaction")
	}

	return nil
}
