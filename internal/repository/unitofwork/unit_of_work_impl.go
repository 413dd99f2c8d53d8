package unitofwork

import (
	"context"
	"fmt"

	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // non-nil between Begin and Commit/Rollback
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) TeamRepository() contract.TeamRepository {
	return implementation.NewTeamRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SeasonRepository() contract.SeasonRepository {
	return implementation.NewSeasonRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MeetRepository() contract.MeetRepository {
	return implementation.NewMeetRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EventRepository() contract.EventRepository {
	return implementation.NewEventRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PersonRepository() contract.PersonRepository {
	return implementation.NewPersonRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AthleteRepository() contract.AthleteRepository {
	return implementation.NewAthleteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ResultRepository() contract.ResultRepository {
	return implementation.NewResultRepository(u.getDB())
}
