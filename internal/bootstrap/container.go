package bootstrap

import (
	"context"
	"log"
	"time"

	"swimtrack-be/internal/config"
	"swimtrack-be/internal/controller"
	"swimtrack-be/internal/pkg/logger"
	"swimtrack-be/internal/repository/implementation"
	"swimtrack-be/internal/repository/unitofwork"
	"swimtrack-be/internal/service"
	"swimtrack-be/internal/websocket"
	"swimtrack-be/pkg/selection"

	pktNats "swimtrack-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TeamController      controller.ICrudController
	SeasonController    controller.ICrudController
	MeetController      controller.ICrudController
	EventController     controller.ICrudController
	PersonController    controller.ICrudController
	AthleteController   controller.ICrudController
	ResultController    controller.ICrudController
	SelectionController controller.ISelectionController

	// Background pieces started by Start
	ConsumerService      service.IConsumerService // nil when NATS carries season events
	SeasonCounterService *service.SeasonCounterService
	WebSocketHub         *websocket.Hub

	Logger logger.ILogger

	natsPub    *pktNats.Publisher
	natsSub    *pktNats.Subscriber
	pubSub     *gochannel.GoChannel
	rdb        *redis.Client
	asyncStore *selection.AsyncStore
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	// 2. Infrastructure
	// Redis
	var rdb *redis.Client
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb = redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Selection state is kept in memory", err)
		rdb.Close()
		rdb = nil
	}
	cancel()

	// Selection store: redis when reachable, in-process otherwise
	var backing selection.Store
	if rdb != nil {
		backing = selection.NewRedisStore(rdb, cfg.Selection.StateKey)
	} else {
		backing = selection.NewMemoryStore(cfg.Selection.StateKey)
	}
	asyncStore := selection.NewAsyncStore(backing, 128, sysLogger)
	engine := selection.NewEngine(context.Background(), asyncStore, sysLogger)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/selection_ws.log")
	wsHub := websocket.NewHub(rdb, cfg.Selection.WebsocketChannel, engine.Snapshot(), wsLogger)
	engine.OnChange(wsHub.PublishSnapshot)
	engine.OnReplace(wsHub.BroadcastSnapshot)
	wsHub.OnRemote(engine.Replace)

	// 3. Season event bus
	c := &Container{
		Logger:       sysLogger,
		WebSocketHub: wsHub,
		rdb:          rdb,
		asyncStore:   asyncStore,
	}

	var publisherService service.IPublisherService
	if cfg.Events.Transport == "nats" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v. Falling back to in-process events", err)
		} else {
			natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
			if err != nil {
				log.Printf("[WARN] Failed to connect to NATS Subscriber: %v. Falling back to in-process events", err)
				natsPub.Close()
			} else {
				c.natsPub = natsPub
				c.natsSub = natsSub
				publisherService = service.NewNatsPublisherService(natsPub)
			}
		}
	}

	listCache := service.NewListCache(time.Duration(cfg.Selection.ListCacheTTLSec) * time.Second)
	listScope := service.NewListScope(engine, cfg.Selection.QueryLimit, listCache)

	counterService := service.NewSeasonCounterService(implementation.NewTeamRepository(db), listCache, sysLogger)
	c.SeasonCounterService = counterService

	if publisherService == nil {
		watermillLogger := watermill.NewStdLogger(false, false)
		pubSub := gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 256},
			watermillLogger,
		)
		c.pubSub = pubSub
		publisherService = service.NewChannelPublisherService(pubSub, cfg.Events.Topic)
		c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.Topic, counterService.Handle, sysLogger)
	}

	// 4. Services
	teamService := service.NewTeamService(uowFactory, listScope)
	seasonService := service.NewSeasonService(uowFactory, listScope, publisherService, sysLogger)
	meetService := service.NewMeetService(uowFactory, listScope)
	eventService := service.NewEventService(uowFactory, listScope)
	personService := service.NewPersonService(uowFactory, listScope)
	athleteService := service.NewAthleteService(uowFactory, listScope)
	resultService := service.NewResultService(uowFactory, listScope)
	selectionService := service.NewSelectionService(engine)

	// 5. Controllers
	c.TeamController = controller.NewTeamController(teamService)
	c.SeasonController = controller.NewSeasonController(seasonService)
	c.MeetController = controller.NewMeetController(meetService)
	c.EventController = controller.NewEventController(eventService)
	c.PersonController = controller.NewPersonController(personService)
	c.AthleteController = controller.NewAthleteController(athleteService)
	c.ResultController = controller.NewResultController(resultService)
	c.SelectionController = controller.NewSelectionController(selectionService, wsHub)

	return c
}

// Start launches the hub and the season counter worker. They stop when ctx
// is cancelled.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)

	if c.natsSub != nil {
		return c.SeasonCounterService.StartNats(c.natsSub)
	}
	if err := c.ConsumerService.Consume(ctx); err != nil {
		return err
	}
	c.Logger.Info("Container", "Season counter listening on in-process channel", nil)
	return nil
}

// Close flushes pending selection writes and releases connections.
func (c *Container) Close() {
	c.asyncStore.Close()
	if c.natsSub != nil {
		c.natsSub.Close()
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.pubSub != nil {
		c.pubSub.Close()
	}
	if c.rdb != nil {
		c.rdb.Close()
	}
	c.Logger.Sync()
}
