package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/repository/specification"
	"swimtrack-be/internal/repository/unitofwork"
	"swimtrack-be/pkg/database"
	"swimtrack-be/pkg/utils"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

var (
	ok   = color.New(color.FgGreen).PrintfFunc()
	skip = color.New(color.FgYellow).PrintfFunc()
	fail = color.New(color.FgRed, color.Bold).PrintfFunc()
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print what would be created without writing")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	db, err := database.NewGormDBFromDSN(os.Getenv("DB_CONNECTION_STRING"), false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewUnitOfWork(db)
	if *dryRun {
		skip("dry run: no rows will be written\n")
	}

	color.Cyan("Seeding events...")
	for i, e := range standardEvents() {
		e.SortOrder = i + 1
		existing, err := uow.EventRepository().FindOne(ctx,
			specification.Filter("distance", e.Distance),
			specification.Filter("stroke", e.Stroke),
			specification.Filter("course", e.Course),
			specification.Filter("relay", e.Relay),
		)
		if err != nil {
			fail("  %s: %v\n", e.Label(), err)
			continue
		}
		if existing != nil {
			skip("  %s exists\n", e.Label())
			continue
		}
		if *dryRun {
			ok("  would create %s\n", e.Label())
			continue
		}
		if err := uow.EventRepository().Create(ctx, e); err != nil {
			fail("  %s: %v\n", e.Label(), err)
			continue
		}
		ok("  created %s\n", e.Label())
	}

	if *dryRun {
		return
	}

	color.Cyan("Seeding demo team...")
	if err := seedDemoTeam(ctx, uow); err != nil {
		fail("demo team: %v\n", err)
		os.Exit(1)
	}
	color.Green("Seeding completed!")
}

func standardEvents() []*entity.Event {
	var out []*entity.Event
	add := func(distance int, stroke string, relay bool) {
		out = append(out, &entity.Event{Distance: distance, Stroke: stroke, Course: entity.CourseSCY, Gender: "X", Relay: relay})
	}
	for _, d := range []int{50, 100, 200, 500, 1000, 1650} {
		add(d, "Free", false)
	}
	for _, s := range []string{"Back", "Breast", "Fly"} {
		add(100, s, false)
		add(200, s, false)
	}
	add(200, "IM", false)
	add(400, "IM", false)
	add(200, "Medley", true)
	add(200, "Free", true)
	add(400, "Free", true)
	return out
}

// seedDemoTeam writes one team with a season, a meet, a swimmer and a
// result. Running it twice adds nothing.
func seedDemoTeam(ctx context.Context, uow unitofwork.UnitOfWork) error {
	existing, err := uow.TeamRepository().FindOne(ctx, specification.Filter("name", "Demo Aquatics"))
	if err != nil {
		return err
	}
	if existing != nil {
		skip("  Demo Aquatics exists\n")
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			uow.Rollback()
			panic(r)
		}
	}()

	abort := func(err error) error {
		uow.Rollback()
		return err
	}

	team := &entity.Team{Name: "Demo Aquatics", ShortName: "DEMO", City: "Springfield"}
	if err := uow.TeamRepository().Create(ctx, team); err != nil {
		return abort(err)
	}

	start, _ := utils.ParseDate("2025-09-01")
	end, _ := utils.ParseDate("2026-03-15")
	season := &entity.Season{TeamId: team.Id, Name: "2025-26 Short Course", StartDate: start, EndDate: &end}
	if err := uow.SeasonRepository().Create(ctx, season); err != nil {
		return abort(err)
	}
	// No event bus here; apply what the counter worker would.
	if err := uow.TeamRepository().AdjustSeasonCount(ctx, team.Id, 1); err != nil {
		return abort(err)
	}

	meetDate := start.AddDate(0, 2, 0)
	meet := &entity.Meet{SeasonId: season.Id, TeamId: team.Id, Name: "Fall Invitational", Location: "Springfield Natatorium", Course: entity.CourseSCY, StartDate: meetDate}
	if err := uow.MeetRepository().Create(ctx, meet); err != nil {
		return abort(err)
	}

	birth := time.Date(2011, time.May, 4, 0, 0, 0, 0, time.UTC)
	person := &entity.Person{FirstName: "Jamie", LastName: "Rivera", BirthDate: &birth, Gender: "F"}
	if err := uow.PersonRepository().Create(ctx, person); err != nil {
		return abort(err)
	}
	athlete := &entity.Athlete{PersonId: person.Id, TeamId: team.Id, SeasonId: season.Id}
	if err := uow.AthleteRepository().Create(ctx, athlete); err != nil {
		return abort(err)
	}

	event, err := uow.EventRepository().FindOne(ctx,
		specification.Filter("distance", 100),
		specification.Filter("stroke", "Free"),
		specification.Filter("relay", false),
	)
	if err != nil {
		return abort(err)
	}
	if event != nil {
		result := &entity.Result{
			AthleteId: athlete.Id, MeetId: meet.Id, EventId: event.Id,
			TeamId: team.Id, SeasonId: season.Id,
			TimeHundredths: 6234, Place: 3, Splits: []int{2950, 6234},
		}
		if err := uow.ResultRepository().Create(ctx, result); err != nil {
			return abort(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}
	ok("  created %s with season %q\n", team.Name, season.Name)
	return nil
}
