package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/monginis/export-api/config"
	"github.com/monginis/export-api/pkg/api"
	"github.com/monginis/export-api/pkg/constants"
	"github.com/monginis/export-api/pkg/core"
	"github.com/monginis/export-api/pkg/db"
	"github.com/monginis/export-api/pkg/emailnotifications"
	errs "github.com/monginis/export-api/pkg/errors"
	"github.com/monginis/export-api/pkg/lumber"
	"github.com/monginis/export-api/pkg/requestutils"
	"github.com/monginis/export-api/pkg/server"
	"github.com/monginis/export-api/pkg/store/brochureleads"
	"github.com/monginis/export-api/pkg/store/inquiries"

	"github.com/spf13/cobra"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:     constants.ServiceName,
		Long:    `export-api captures inquiry and brochure-download leads for the Monginis export site, persists them and notifies the export team over email.`,
		Version: constants.BinaryVersion,
		RunE:    run,
	}

	// define flags used for this command
	AttachCLIFlags(&rootCmd)

	return &rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	// a WaitGroup for the goroutines to tell us they've stopped
	wg := sync.WaitGroup{}

	cfg, err := config.Load(cmd)
	if err != nil {
		fmt.Printf("Failed to load config: %v", err)
		return err
	}

	// patch logconfig file location with root level log file location
	if cfg.LogFile != "" {
		cfg.LogConfig.FileLocation = filepath.Join(cfg.LogFile, constants.ServiceName+".log")
	}

	logger, err := lumber.NewLogger(&cfg.LogConfig, cfg.Verbose, lumber.InstanceZapLogger)
	if err != nil {
		log.Printf("could not instantiate logger %s", err.Error())
		return err
	}

	database, err := db.Connect(cfg, logger)
	if err != nil {
		logger.Errorf("failed to create database connection %v", err)
		return err
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			logger.Errorf("error while closing database connection %v", cerr)
		}
	}()

	// create a context that we can cancel
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	requests := requestutils.New(logger)

	dbStores := &core.DBStores{
		InquiryStore:      inquiries.New(database, logger),
		BrochureLeadStore: brochureleads.New(database, logger),
	}

	emailNotificationManager := emailnotifications.New(cfg, requests, logger)

	// child context so the health API starts failing before the server drains
	childCtx, childCancel := context.WithCancel(ctx)
	defer childCancel()

	routers := api.New(childCtx, cfg, dbStores, emailNotificationManager, logger)

	wg.Add(1)
	// setup http server
	go func() {
		defer wg.Done()
		if serr := server.ListenAndServe(ctx, &routers, cfg, logger); serr != nil {
			logger.Errorf("error while running http server %v", serr)
		}
	}()

	// listen for C-c
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	// create channel to mark status of waitgroup
	// this is required to brutally kill application in case of
	// timeout
	done := make(chan struct{})
	go func() {
		wg.Wait()
		logger.Debugf("main: all goroutines have finished.")
		close(done)
	}()

	// wait for signal channel
	<-c
	logger.Debugf("main: received close signal - attempting graceful shutdown ....")
	// fail the health probe first, then stop the server
	childCancel()
	cancel()

	select {
	case <-done:
		logger.Debugf("Go routines exited within timeout")
	case <-time.After(cfg.GracefulTimeout):
		logger.Errorf("Graceful timeout exceeded. Brutally killing the application")
		return errs.ErrTimeoutExceeded
	}
	return nil
}
