package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/metlink-to-cot/config"
	"github.com/theoremus-urban-solutions/metlink-to-cot/converter"
	"github.com/theoremus-urban-solutions/metlink-to-cot/internal"
	"github.com/theoremus-urban-solutions/metlink-to-cot/metlink"
)

func main() {
	app := &cli.App{
		Name:        "metlink-to-cot",
		Description: "Converts Metlink vehicle positions into CoT-style map features",

		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Fetch the feed once, convert it, and submit the feature collection",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Usage: "path to config.yml"},
					&cli.StringFlag{Name: "policy", Usage: "classification policy: trip-prefix|route-id"},
					&cli.StringFlag{Name: "feed", Usage: "override the feed URL"},
					&cli.BoolFlag{Name: "dry-run", Usage: "print the collection instead of submitting"},
					&cli.BoolFlag{Name: "debug", Usage: "debug logging"},
				},
				Action: runOnce,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func runOnce(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.String("policy") != "" {
		cfg.Classification.Policy = c.String("policy")
	}
	if c.String("feed") != "" {
		cfg.Feed.URL = c.String("feed")
	}
	internal.InitLogging(cfg.Debug || c.Bool("debug"))

	classifier, err := converter.NewClassifier(cfg.Classification.Policy)
	if err != nil {
		return err
	}

	var submitter converter.Submitter
	if c.Bool("dry-run") || cfg.Submit.URL == "" {
		submitter = converter.WriterSubmitter{W: os.Stdout}
	} else {
		submitter = converter.NewHTTPSubmitter(cfg.Submit.URL)
	}

	source := metlink.NewClient(cfg.Feed.URL, cfg.Feed.APIKey, cfg.Feed.Format)
	pipe := converter.New(source, classifier, submitter, converter.Options{
		Network:     cfg.Network,
		ShowBuses:   cfg.Classification.Buses(),
		ShowTrains:  cfg.Classification.Trains(),
		ShowFerries: cfg.Classification.Ferries(),
	})

	// An upstream failure is not an invocation failure: the pipeline has
	// already degraded to an empty submission.
	_, err = pipe.Run(context.Background())
	return err
}
