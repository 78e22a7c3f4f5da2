package main

import (
	"log/syslog"
	"os"
	"os/signal"
	"time"

	"github.com/buzkaaclicker/social"
	"github.com/buzkaaclicker/social/bunt"
	"github.com/buzkaaclicker/social/inmem"
	"github.com/buzkaaclicker/social/transport/rest"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/sirupsen/logrus"
	logrusys "github.com/sirupsen/logrus/hooks/syslog"
)

func newApp(stores social.Stores, cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: rest.ErrorHandler,
	})
	app.Use(rest.LogHandler())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))

	app.Get("/status", monitor.New())
	(&rest.UserController{Store: stores.Users}).InstallTo(app)
	(&rest.PostController{Store: stores.Posts}).InstallTo(app)
	(&rest.ProfileController{Store: stores.Profiles}).InstallTo(app)
	(&rest.MemberTypeController{Store: stores.MemberTypes}).InstallTo(app)

	app.Use(rest.NotFoundHandler)
	return app
}

// openStores returns the stores of the configured backend and a function
// releasing it.
func openStores(backend string) (social.Stores, func() error, error) {
	switch backend {
	case backendBunt:
		s, b, err := bunt.NewStore()
		if err != nil {
			return social.Stores{}, nil, err
		}
		return s.Stores(), b.Close, nil
	default:
		return inmem.NewStore().Stores(), func() error { return nil }, nil
	}
}

func setupLogger(verbose bool, useSyslog bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.Stamp,
		FullTimestamp:   true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if !useSyslog {
		return
	}

	syslogHook, err := logrusys.NewSyslogHook("", "", syslog.LOG_USER, "social_backend")
	if err != nil {
		logrus.WithError(err).Errorln("Could not create syslog hook.")
		return
	}
	logrus.AddHook(syslogHook)
}

func awaitInterruption() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
}

func serve(cfg Config) error {
	setupLogger(cfg.Debug, cfg.Syslog)
	logrus.WithField("backend", cfg.Backend).Infoln("Starting backend.")

	stores, closeStores, err := openStores(cfg.Backend)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStores(); err != nil {
			logrus.WithError(err).Warningln("Could not close store backend.")
		}
	}()

	app := newApp(stores, cfg)
	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			logrus.WithError(err).Fatalln("Listen failed.")
		}
	}()
	logrus.WithField("addr", cfg.Addr).Infoln("Listening... To shut down use ^C")

	awaitInterruption()

	logrus.Infoln("Shutting down...")
	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Warningln("Fiber shutdown failed.")
	}
	return nil
}

func main() {
	loadDotEnvs("")
	if err := newServerCommand(serve).Execute(); err != nil {
		os.Exit(1)
	}
}
