package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/naveenspark/pinestore/internal/buildinfo"
	"github.com/naveenspark/pinestore/internal/config"
	"github.com/naveenspark/pinestore/internal/httpclient"
	"github.com/naveenspark/pinestore/internal/logger"
	"github.com/naveenspark/pinestore/pkg/client"
)

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	cfgFile string
	query   string
	raw     bool

	cfg    config.Config
	log    *logrus.Logger
	client *client.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "pinestore",
		Short:         "Browse the Pinestore project catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./config.yaml or ~/.pinestore/config.yaml)")
	pf.String("api-url", "", "catalog base URL (default "+client.DefaultBaseURL+")")
	pf.StringP("output", "o", "", "output format: text|json|yaml")
	pf.Duration("timeout", 0, "overall request timeout, 0 waits until interrupted (default 30s)")
	pf.String("log-level", "", "log level: error|warn|info|debug")
	pf.String("log-format", "", "log format: text|json")
	pf.StringVarP(&a.query, "query", "q", "", "JSONPath expression applied to the result")
	pf.BoolVar(&a.raw, "raw", false, "print the response body as served, without conversion")

	cmd.AddCommand(
		projectCmd(a),
		projectByNameCmd(a),
		projectsCmd(a),
		searchCmd(a),
		commentsCmd(a),
		changelogCmd(a),
		changelogsCmd(a),
		userCmd(a),
		userProjectsCmd(a),
		routesCmd(a),
		browseCmd(a),
		versionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	a.client = client.New(cfg.APIURL,
		client.WithHTTPClient(httpclient.New(httpclient.WithTimeout(cfg.Timeout))),
		client.WithLogger(log),
		client.WithUserAgent(buildinfo.UserAgent()),
	)
	log.WithFields(logrus.Fields{
		"api_url": cfg.APIURL,
		"timeout": cfg.Timeout,
		"output":  cfg.Output,
	}).Debug("configured")
	return nil
}
