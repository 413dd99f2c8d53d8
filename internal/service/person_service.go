package service

import (
	"context"
	"fmt"
	"strings"

	"swimtrack-be/internal/dto"
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/internal/repository/specification"
	"swimtrack-be/internal/repository/unitofwork"
	"swimtrack-be/pkg/selection"

	"github.com/google/uuid"
)

type IPersonService interface {
	CrudService[dto.PersonRequest, dto.PersonResponse]
}

type personService struct {
	uowFactory unitofwork.RepositoryFactory
	scope      *ListScope
}

func NewPersonService(uowFactory unitofwork.RepositoryFactory, scope *ListScope) IPersonService {
	return &personService{
		uowFactory: uowFactory,
		scope:      scope,
	}
}

func (s *personService) List(ctx context.Context) (*dto.ListResponse[dto.PersonResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return scopedList(ctx, s.scope, selection.KindPerson, uow.PersonRepository(),
		[]specification.Specification{
			specification.OrderBy{Field: "last_name"},
			specification.OrderBy{Field: "first_name"},
		},
		mapEach(toPersonResponse),
	)
}

func (s *personService) Show(ctx context.Context, id uuid.UUID) (*dto.PersonResponse, error) {
	person, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toPersonResponse(person)
	return &res, nil
}

func (s *personService) Create(ctx context.Context, req *dto.PersonRequest) (*dto.PersonResponse, error) {
	person := entity.Person{}
	if err := applyPerson(&person, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PersonRepository().Create(ctx, &person); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindPerson)

	res := toPersonResponse(&person)
	return &res, nil
}

func (s *personService) Update(ctx context.Context, id uuid.UUID, req *dto.PersonRequest) (*dto.PersonResponse, error) {
	person, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPerson(person, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PersonRepository().Update(ctx, person); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindPerson)

	return s.Show(ctx, id)
}

func (s *personService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PersonRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.scope.Cache.Invalidate(selection.KindPerson)
	return nil
}

func (s *personService) find(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	person, err := uow.PersonRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, fmt.Errorf("person %s: %w", id, contract.ErrNotFound)
	}
	return person, nil
}

func applyPerson(p *entity.Person, req *dto.PersonRequest) error {
	birth, err := parseOptionalDate("birth_date", req.BirthDate)
	if err != nil {
		return err
	}
	p.FirstName = strings.TrimSpace(req.FirstName)
	p.LastName = strings.TrimSpace(req.LastName)
	p.BirthDate = birth
	p.Gender = req.Gender
	p.Email = strings.ToLower(strings.TrimSpace(req.Email))
	return nil
}

func toPersonResponse(p *entity.Person) dto.PersonResponse {
	return dto.PersonResponse{
		Id:        p.Id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName(),
		BirthDate: p.BirthDate,
		Age:       ageOf(p.BirthDate),
		Gender:    p.Gender,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
