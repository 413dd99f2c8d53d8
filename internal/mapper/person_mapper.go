package mapper

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/model"
)

type PersonMapper struct{}

func NewPersonMapper() *PersonMapper {
	return &PersonMapper{}
}

func (m *PersonMapper) ToEntity(p *model.Person) *entity.Person {
	if p == nil {
		return nil
	}
	return &entity.Person{
		Id:        p.Id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate,
		Gender:    p.Gender,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAtPtr(p.UpdatedAt),
	}
}

func (m *PersonMapper) ToModel(p *entity.Person) *model.Person {
	if p == nil {
		return nil
	}
	return &model.Person{
		Id:        p.Id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate,
		Gender:    p.Gender,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAtValue(p.UpdatedAt),
	}
}
