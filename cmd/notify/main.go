// Command notify sends a single notification to every configured
// destination and exits. Configuration comes from the environment
// (optionally via a .env file) or from -config.
//
//	TELEGRAM_BOT_TOKEN=... TELEGRAM_ALLOWED_IDS=123,@chan \
//	  notify -level warning "disk space is running low"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"tgnotify"
	"tgnotify/pkg/logx"
)

func main() {
	var (
		cfgPath  string
		envFile  string
		levelStr string
		logLevel string
	)
	flag.StringVar(&cfgPath, "config", "", "path to config file (json or yaml); default is env vars")
	flag.StringVar(&envFile, "env-file", "", "path to a .env file to load before reading env vars")
	flag.StringVar(&levelStr, "level", "info", "notification level: info, warning or error")
	flag.StringVar(&logLevel, "log-level", "info", "log verbosity")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: notify [flags] <message...>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	message := strings.Join(flag.Args(), " ")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logx.NewConsole(logLevel)

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintln(os.Stderr, "fatal:", err)
			os.Exit(1)
		}
	} else {
		// Best-effort: a .env in the working directory is picked up if present.
		_ = godotenv.Load()
	}

	level, err := tgnotify.ParseLevel(levelStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(2)
	}

	var cfg tgnotify.Config
	if cfgPath != "" {
		cfg, err = tgnotify.LoadFile(cfgPath)
	} else {
		cfg, err = tgnotify.FromEnv()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	n, err := tgnotify.New(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	if err := n.Notify(ctx, message, level); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}
