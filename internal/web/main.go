// Package web wires the fiber application: middleware, the JSON API handlers,
// the embedded UI and the operational endpoints.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	accesslog "github.com/GoMySQL-Admin/GoMySQL-Admin/internal/logger/adapter/fiber"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/role"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web/handler"
	granthandler "github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web/handler/grant"
	rolehandler "github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web/handler/role"
	userhandler "github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web/handler/user"
)

const (
	// CheckAlivePath answers 200 while serving and 503 during graceful shutdown.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus registry.
	MetricsPath = "/metrics"

	defaultAllowOrigins = "*"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	registry     *role.Registry
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and stops the server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails checkalive for the configured grace time, then stops fiber.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether checkalive currently answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, accounts handler.Accounts, registry *role.Registry) (*Service, error) {
	if cfg == nil || accounts == nil || registry == nil {
		return nil, errors.New(handler.ErrNilDepsFatalLogMsg)
	}

	templateEngine := html.NewFileSystem(subFS(embeddedTemplates, "templates"), ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("join", privilege.Join)

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
			ErrorHandler:   handler.ErrorHandler,
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		registry:     registry,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New())

	app.Use(accesslog.New(accesslog.Config{
		Config:            cfg.Log,
		CacheControlError: accesslog.ConfigDefault.CacheControlError,
		CheckAliveURI:     CheckAlivePath,
	}))

	origins := cfg.Webserver.AllowOrigins
	if origins == "" {
		origins = defaultAllowOrigins
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:   subFS(embeddedStaticFiles, "static"),
				Browse: cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	app.Get(handler.RootPath, service.index)

	for _, h := range []handler.Service{
		new(userhandler.Service),
		new(granthandler.Service),
		new(rolehandler.Service),
	} {
		if err := h.Init(app, cfg, accounts, registry); err != nil {
			return nil, err
		}
	}

	return service, nil
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

func (s *Service) index(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":      s.cfg.Title,
		"Roles":      s.registry.List(),
		"Privileges": privilege.All(),
	})
}
