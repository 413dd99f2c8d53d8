package controller

import (
	"swimtrack-be/internal/dto"
	"swimtrack-be/internal/service"
)

func NewTeamController(svc service.ITeamService) ICrudController {
	return newCrudController[dto.TeamRequest, dto.TeamResponse](svc, "teams", "team")
}

func NewSeasonController(svc service.ISeasonService) ICrudController {
	return newCrudController[dto.SeasonRequest, dto.SeasonResponse](svc, "seasons", "season")
}

func NewMeetController(svc service.IMeetService) ICrudController {
	return newCrudController[dto.MeetRequest, dto.MeetResponse](svc, "meets", "meet")
}

func NewEventController(svc service.IEventService) ICrudController {
	return newCrudController[dto.EventRequest, dto.EventResponse](svc, "events", "event")
}

func NewPersonController(svc service.IPersonService) ICrudController {
	return newCrudController[dto.PersonRequest, dto.PersonResponse](svc, "people", "person")
}

func NewAthleteController(svc service.IAthleteService) ICrudController {
	return newCrudController[dto.AthleteRequest, dto.AthleteResponse](svc, "athletes", "athlete")
}

func NewResultController(svc service.IResultService) ICrudController {
	return newCrudController[dto.ResultRequest, dto.ResultResponse](svc, "results", "result")
}
