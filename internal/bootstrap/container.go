package bootstrap

import (
	"context"
	"fmt"

	"ai-assistant-be/internal/config"
	"ai-assistant-be/internal/controller"
	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/repository/contract"
	"ai-assistant-be/internal/repository/memory"
	"ai-assistant-be/internal/repository/redisstore"
	"ai-assistant-be/internal/repository/unitofwork"
	"ai-assistant-be/internal/service"
	"ai-assistant-be/pkg/events"
	"ai-assistant-be/pkg/llm/factory"

	pktNats "ai-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PromptController    controller.IPromptController
	AiMessageController controller.IAiMessageController

	// Background Services (nil when events leave the process)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	// 1. Repositories
	uowFactory := unitofwork.NewRepositoryFactory(db)

	sessionRepo, err := c.newSessionRepository(cfg)
	if err != nil {
		return nil, err
	}

	// 2. Event Bus
	publisher := c.newPublisher(cfg)

	// 3. LLM
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.Provider, cfg.Ai.ModelName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	sysLogger.Info("Bootstrap", "LLM provider ready", map[string]interface{}{
		"provider": cfg.Ai.Provider,
		"model":    llmProvider.ModelName(),
		"base_url": cfg.Ai.BaseURL,
		"api_key":  cfg.Ai.APIKey != "",
	})

	// 4. Services
	promptService := service.NewPromptService(sessionRepo, llmProvider, sysLogger)
	aiMessageService := service.NewAiMessageService(uowFactory, publisher, sysLogger)

	// 5. Controllers
	c.PromptController = controller.NewPromptController(promptService)
	c.AiMessageController = controller.NewAiMessageController(aiMessageService)

	return c, nil
}

func (c *Container) newSessionRepository(cfg *config.Config) (contract.SessionRepository, error) {
	switch cfg.Session.Store {
	case "", "memory":
		return memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval), nil
	case "redis":
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			c.Logger.Warn("Bootstrap", "Failed to parse Redis URL, using it as address", map[string]interface{}{
				"error": err.Error(),
			})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			c.Logger.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{
				"error": err.Error(),
			})
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		return redisstore.NewSessionRepository(rdb, cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Session.Store)
	}
}

// newPublisher prefers NATS when configured and falls back to the
// in-process channel, which also starts the audit consumer.
func (c *Container) newPublisher(cfg *config.Config) events.Publisher {
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err == nil {
			c.closers = append(c.closers, natsPub.Close)
			return natsPub
		}
		c.Logger.Warn("Bootstrap", "NATS unavailable, keeping events in-process", map[string]interface{}{
			"error": err.Error(),
		})
		if natsPub != nil {
			natsPub.Close()
		}
	}

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	publisher := events.NewChannelPublisher(pubSub)
	c.closers = append(c.closers, publisher.Close)
	c.ConsumerService = service.NewConsumerService(pubSub, c.Logger)

	return publisher
}

// Close releases the event bus and session store connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
