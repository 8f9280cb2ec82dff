package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pothosware/pothos-audio/internal/audio"
	"github.com/pothosware/pothos-audio/internal/config"
	"github.com/pothosware/pothos-audio/internal/logging"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	listDevices := flag.Bool("list", false, "list audio devices and exit")
	printOverlay := flag.Bool("overlay", false, "print the overlay document and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Use default logger if config fails to load
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logging.NewWithLevel(cfg.LogLevel)
	log.Info().Str("version", Version).Msg("pothos-audio starting")

	host, err := audio.NewHost()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize audio subsystem")
	}
	defer host.Close()

	if *listDevices {
		if err := printDevices(host); err != nil {
			log.Error().Err(err).Msg("Failed to list devices")
		}
		return
	}

	block, err := audio.NewBlock(host, cfg.BlockName, cfg.Sink, cfg.DType, cfg.Channels, cfg.ChanMode, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create audio block")
	}
	// The stream handle must be released before the host terminates
	// the subsystem; defers run in that order.
	defer block.Close()

	if *printOverlay {
		doc, err := block.Overlay()
		if err != nil {
			log.Error().Err(err).Msg("Failed to generate overlay")
			return
		}
		fmt.Println(doc)
		return
	}

	if err := block.SetReportMode(cfg.ReportMode); err != nil {
		log.Fatal().Err(err).Msg("Invalid report mode")
	}
	block.SetBackoffTime(cfg.BackoffMs)

	if err := block.SetupDevice(cfg.Device); err != nil {
		log.Fatal().Err(err).Msg("Device setup failed")
	}
	if err := block.SetupStream(cfg.SampleRate); err != nil {
		log.Fatal().Err(err).Msg("Stream setup failed")
	}
	if err := block.Activate(); err != nil {
		log.Fatal().Err(err).Msg("Stream activation failed")
	}
	log.Info().
		Float64("sampleRate", cfg.SampleRate).
		Str("direction", block.Direction().String()).
		Msg("Stream active")

	// Hold the stream open until interrupted
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutting down...")
	if err := block.Deactivate(); err != nil {
		log.Error().Err(err).Msg("Stream deactivation failed")
	}
}

func printDevices(host audio.Host) error {
	count, err := host.DeviceCount()
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		info, err := host.DeviceInfo(i)
		if err != nil {
			return err
		}
		fmt.Printf("%3d  %-40s %-12s in=%-2d out=%-2d %6.0f Hz\n",
			info.Index, info.Name, info.HostApiName,
			info.MaxInputChannels, info.MaxOutputChannels, info.DefaultSampleRate)
	}
	return nil
}
