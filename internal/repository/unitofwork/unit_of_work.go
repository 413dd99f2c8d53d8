package unitofwork

import (
	"context"

	"swimtrack-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TeamRepository() contract.TeamRepository
	SeasonRepository() contract.SeasonRepository
	MeetRepository() contract.MeetRepository
	EventRepository() contract.EventRepository
	PersonRepository() contract.PersonRepository
	AthleteRepository() contract.AthleteRepository
	ResultRepository() contract.ResultRepository
}
