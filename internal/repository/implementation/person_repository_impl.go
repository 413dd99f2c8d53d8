package implementation

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/mapper"
	"swimtrack-be/internal/model"
	"swimtrack-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type personRepository struct {
	baseRepository[entity.Person, model.Person]
}

func NewPersonRepository(db *gorm.DB) contract.PersonRepository {
	return &personRepository{
		baseRepository: newBaseRepository[entity.Person, model.Person](
			db,
			mapper.NewPersonMapper(),
			func(e *entity.Person) *uuid.UUID { return &e.Id },
		),
	}
}
