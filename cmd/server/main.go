package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-print"
	flags "github.com/jessevdk/go-flags"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type options struct {
	Listen  string `long:"listen" env:"BLOG_LISTEN" default:":8572" description:"Address the HTTP server binds to"`
	DSN     string `long:"dsn" env:"BLOG_DSN" default:"file:blog.db" description:"SQLite database path"`
	BaseURL string `long:"base-url" env:"BLOG_BASE_URL" default:"http://localhost:8572" description:"Public base URL used in activation links"`

	MailHost       string `long:"mail-host" env:"BLOG_MAIL_HOST" description:"SMTP host, mail is disabled when empty"`
	MailUser       string `long:"mail-user" env:"BLOG_MAIL_USER" description:"SMTP username"`
	MailPass       string `long:"mail-pass" env:"BLOG_MAIL_PASS" description:"SMTP password"`
	MailAddress    string `long:"mail-address" env:"BLOG_MAIL_ADDRESS" default:"Blog <noreply@localhost>" description:"From address for outbound email"`
	MailSkipVerify bool   `long:"mail-skip-verify" env:"BLOG_MAIL_SKIP_VERIFY" description:"Skip SMTP TLS certificate verification"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Debug),
		glog.WithName("blog"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)
	logger := lgr.GetLogger("server")

	redacted := opts
	if redacted.MailPass != "" {
		redacted.MailPass = "[redacted]"
	}
	fmt.Println(print.MaybeHighlightJSON(redacted))

	sqldb, err := sql.Open(sqliteshim.ShimName, opts.DSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// SQLite allows a single writer; the pragmas keep FK cascades and
	// concurrent readers working.
	sqldb.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := sqldb.Exec(pragma); err != nil {
			logger.Error("failed to set pragma", "pragma", pragma, "error", err)
			os.Exit(1)
		}
	}

	if err := blog.RunMigrations(sqldb); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	repo := blog.NewRepositoryManager(db)
	repo.MustValidate()

	tokens := blog.NewTokenService(repo.AccessTokens(), lgr.GetLogger("tokens"))

	mailer, err := blog.NewSMTPMailer(opts.MailHost, opts.MailUser, opts.MailPass, opts.MailAddress, opts.MailSkipVerify)
	if err != nil {
		logger.Error("failed to configure mailer", "error", err)
		os.Exit(1)
	}
	if !mailer.IsEnabled() {
		logger.Info("mail delivery disabled, activation links will be logged")
	}

	users := blog.NewUsersController(repo, tokens, mailer,
		blog.WithUsersLogger(lgr.GetLogger("users")),
		blog.WithBaseURL(opts.BaseURL),
	)
	posts := blog.NewPostsController(repo, blog.WithPostsLogger(lgr.GetLogger("posts")))
	comments := blog.NewCommentsController(repo, blog.WithCommentsLogger(lgr.GetLogger("comments")))

	app := fiber.New(fiber.Config{
		AppName:      "go-blog",
		Views:        blog.NewViewEngine(),
		ErrorHandler: blog.HTTPErrorHandler(lgr.GetLogger("http")),
	})

	blog.RegisterRoutes(app, users, posts, comments, tokens)

	go func() {
		if err := app.Listen(opts.Listen); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	waitExitSignal()

	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("closing database failed", "error", err)
	}
}

func waitExitSignal() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
}
