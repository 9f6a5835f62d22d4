// Command hardcore runs a Dragonfly server with the limited-lives rules
// enabled.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/df-mc/dragonfly/server"
	"github.com/oriumgames/lives"
)

func main() {
	conf, err := lives.LoadServerConfig()
	if err != nil {
		slog.Error("hardcore: invalid configuration", "error", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: conf.LogLevel}))
	slog.SetDefault(log)

	uc := server.DefaultConfig()
	uc.Network.Address = conf.ListenAddress
	uc.Server.Name = conf.ServerName
	uc.World.Folder = conf.WorldFolder

	sc, err := uc.Config(log)
	if err != nil {
		log.Error("hardcore: build server config", "error", err)
		os.Exit(1)
	}
	srv := sc.New()
	srv.CloseOnProgramEnd()

	region, err := conf.OpenRegion()
	if err != nil {
		log.Error("hardcore: open region", "path", conf.RegionPath(), "error", err)
		os.Exit(1)
	}
	defer region.Close()

	slot := conf.SaveSlot
	if strings.TrimSpace(slot) == "" {
		slot = srv.World().Name()
	}

	mngr, err := lives.NewBuilder().
		Region(region).
		Slot(slot).
		Operators(conf.Operators...).
		Logger(log).
		Autosave(conf.AutosaveInterval).
		Init()
	if err != nil {
		log.Error("hardcore: init lives", "error", err)
		os.Exit(1)
	}
	mngr.Start()

	srv.Listen()
	for p := range srv.Accept() {
		mngr.Accept(p)
	}

	if err := mngr.Shutdown(); err != nil {
		log.Error("hardcore: final save failed", "error", err)
	}
}
