package main

import (
	"context"
	"fmt"

	"github.com/MotionP/obsidian-english-words/app/api"
	"github.com/MotionP/obsidian-english-words/app/bot"
	"github.com/MotionP/obsidian-english-words/app/config"

	log "github.com/rs/zerolog/log"
)

// LookupCommand records a single word and prints appended block
type LookupCommand struct {
	Args struct {
		Word string `positional-arg-name:"word" required:"true"`
	} `positional-args:"yes"`
}

func (c *LookupCommand) Execute([]string) error {
	recorder, closeStorage, err := newRecorder(opts)
	if err != nil {
		return err
	}
	defer closeStorage()

	_, block, err := recorder.Record(context.Background(), c.Args.Word)
	if err != nil {
		return err
	}
	log.Info().Str("word", c.Args.Word).Str("document", recorder.Settings.DocumentPath).Msg("word added")
	fmt.Print(block)
	return nil
}

type ServeCommand struct {
	Port      int    `long:"port" env:"PORT" default:"8080" description:"Port to listen on"`
	JWTSecret string `long:"jwt-secret" env:"JWT_SECRET" required:"true" description:"JWT secret"`
}

func (c *ServeCommand) Execute([]string) error {
	recorder, closeStorage, err := newRecorder(opts)
	if err != nil {
		return err
	}
	defer closeStorage()

	log.Info().Int("port", c.Port).Msg("starting API server")
	return api.NewServer(recorder, c.JWTSecret).Run(c.Port)
}

type BotCommand struct {
	BotToken string  `long:"bot-token" env:"BOT_TOKEN" required:"true" description:"Telegram bot token"`
	Allow    []int64 `long:"allow" env:"BOT_ALLOW" env-delim:"," description:"Telegram user allowed to use the bot (repeatable)"`
}

func (c *BotCommand) Execute([]string) error {
	recorder, closeStorage, err := newRecorder(opts)
	if err != nil {
		return err
	}
	defer closeStorage()

	b, err := bot.NewTelegramBot(c.BotToken, recorder, c.Allow, []bot.Handler{
		bot.StartHandler{},
		bot.WordHandler{},
	})
	if err != nil {
		return err
	}
	b.Start()
	return nil
}

type TokenCommand struct {
	JWTSecret string `long:"jwt-secret" env:"JWT_SECRET" required:"true" description:"JWT secret"`
	Subject   string `long:"subject" default:"obsidian" description:"Client name"`
}

func (c *TokenCommand) Execute([]string) error {
	token, err := api.CreateToken(c.JWTSecret, c.Subject)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

type ConfigCommand struct {
	Set ConfigSetCommand `command:"set" description:"Persist --credentials and --document to settings file"`
}

type ConfigSetCommand struct{}

func (c *ConfigSetCommand) Execute([]string) error {
	path := settingsPath(opts)
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}
	if err := config.Save(path, settings); err != nil {
		return err
	}
	log.Info().Str("path", path).Str("document", settings.DocumentPath).Msg("settings saved")
	return nil
}
