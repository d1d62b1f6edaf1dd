package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"sts-agendamento/pkg/clients/formspree"
	"sts-agendamento/pkg/config"
	"sts-agendamento/pkg/services"
	"sts-agendamento/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	defer utils.GetLogger().Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := formspree.NewClient(nil, utils.GetLogger())
	if err := run(ctx, services.SettingsFromConfig(cfg), client, services.TimerScheduler{}, surveyPrompter{}, os.Stdout); err != nil {
		if errors.Is(err, errAborted) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

var errAborted = errors.New("aborted")

// run asks for the form until it is accepted by the relay, the user
// declines a retry or the endpoint turns out to be unset.
func run(
	ctx context.Context,
	settings services.Settings,
	client formspree.Client,
	scheduler services.Scheduler,
	prompts prompter,
	out io.Writer,
) error {
	view := newTerminalView(out)
	done := make(chan services.Outcome, 1)
	settings.OnComplete = func(o services.Outcome) { done <- o }

	navigator := services.NavigatorFunc(func(url string) {
		fmt.Fprintf(out, "\nRedirecionando para %s\n", url)
	})
	ctrl := services.NewController(client, view, navigator, scheduler, settings)

	for {
		if err := prompts.Ask(ctrl); err != nil {
			return errAborted
		}

		outcome, err := ctrl.Submit(ctx)
		if err != nil {
			if errors.Is(err, services.ErrEndpointNotConfigured) {
				return err
			}
			continue
		}

		if outcome.Result.Success {
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retry, err := prompts.Confirm("Tentar novamente?")
		if err != nil || !retry {
			return errAborted
		}
	}
}
