package contract

import "swimtrack-be/internal/entity"

type SeasonRepository interface {
	Repository[entity.Season]
}

type MeetRepository interface {
	Repository[entity.Meet]
}

type EventRepository interface {
	Repository[entity.Event]
}

type PersonRepository interface {
	Repository[entity.Person]
}

type AthleteRepository interface {
	Repository[entity.Athlete]
}

type ResultRepository interface {
	Repository[entity.Result]
}
