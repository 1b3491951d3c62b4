package main

import (
	"os"

	"github.com/MotionP/obsidian-english-words/app/clients/gigachat"
	"github.com/MotionP/obsidian-english-words/app/clients/transport"
	"github.com/MotionP/obsidian-english-words/app/config"
	"github.com/MotionP/obsidian-english-words/app/db"
	"github.com/MotionP/obsidian-english-words/app/lookup"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

type Opts struct {
	Config      string `long:"config" env:"CONFIG" description:"Path to settings file (default: $XDG_CONFIG_HOME/english-words/config.toml)"`
	Credentials string `long:"credentials" env:"GIGACHAT_CREDENTIALS" description:"GigaChat authorization key"`
	Document    string `long:"document" env:"DOCUMENT" description:"Document words are appended to"`
	Storage     string `long:"storage" env:"STORAGE" default:"file" choice:"file" choice:"bolt" choice:"redis" choice:"memory" description:"Document storage"`
	Vault       string `long:"vault" env:"VAULT" default:"." description:"Directory documents are stored in"`
	BoltDB      string `long:"boltdb" env:"BOLTDB" default:"./words.data" description:"Path to BoltDB"`
	RedisURL    string `long:"redis" env:"REDIS_URL" description:"Redis database URL"`
	Insecure    bool   `long:"insecure" env:"INSECURE" description:"Do not verify GigaChat TLS certificates"`
	Debug       bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	ConsoleLog  bool   `long:"console-log" description:"Human readable logs"`

	Lookup   LookupCommand `command:"lookup" description:"Look a word up and append it to the document"`
	Serve    ServeCommand  `command:"serve" description:"Run HTTP API"`
	Bot      BotCommand    `command:"bot" description:"Run Telegram bot"`
	Token    TokenCommand  `command:"token" description:"Issue HTTP API token"`
	Settings ConfigCommand `command:"config" description:"Manage settings file"`
}

var opts Opts

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLog(opts)
		return cmd.Execute(args)
	}
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

func setupLog(opts Opts) {
	if opts.ConsoleLog {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func settingsPath(opts Opts) string {
	if opts.Config != "" {
		return opts.Config
	}
	return config.DefaultPath()
}

// loadSettings reads settings file and applies command line overrides
func loadSettings(opts Opts) (config.Settings, error) {
	settings, err := config.Load(settingsPath(opts))
	if err != nil {
		return settings, err
	}
	return settings.Override(config.Settings{Credentials: opts.Credentials, DocumentPath: opts.Document}), nil
}

func getStorage(opts Opts) (db.Storage, func(), error) {
	switch opts.Storage {
	case "redis":
		redisStorage, err := db.NewRedisStorage(opts.RedisURL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		return redisStorage, func() {}, nil
	case "bolt":
		boltDB, err := bolt.Open(opts.BoltDB, 0600, nil)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create boltDB database")
		}
		boltStorage, err := db.NewBoltStorage(boltDB)
		if err != nil {
			boltDB.Close()
			return nil, nil, errors.Wrap(err, "failed to create bolt storage")
		}
		return boltStorage, func() {
			if err := boltDB.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close boltDB database")
			}
		}, nil
	case "memory":
		return db.NewInMemoryStorage(), func() {}, nil
	default:
		fileStorage, err := db.NewFileStorage(opts.Vault)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open vault")
		}
		return fileStorage, func() {}, nil
	}
}

// newRecorder wires lookup pipeline from options
func newRecorder(opts Opts) (*lookup.Recorder, func(), error) {
	settings, err := loadSettings(opts)
	if err != nil {
		return nil, nil, err
	}
	if settings.Credentials == "" {
		return nil, nil, errors.New("GigaChat credentials are not configured, pass --credentials or run `config set`")
	}
	storage, closeStorage, err := getStorage(opts)
	if err != nil {
		return nil, nil, err
	}
	client := gigachat.NewClient(transport.NewClient(transport.Options{VerifyServerCertificate: !opts.Insecure}))
	return &lookup.Recorder{
		Looker:   lookup.NewService(client),
		Storage:  storage,
		Settings: settings,
	}, closeStorage, nil
}
