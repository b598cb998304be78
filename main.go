package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/marquee"
	"github.com/Zachkp/portfolio/internal/tui"
	"github.com/Zachkp/portfolio/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-config file] [serve|tui]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "serve"
	}

	switch cmd {
	case "serve":
		if err := serve(cfg); err != nil {
			log.Fatal(err)
		}
	case "tui":
		if err := tui.Run(cfg); err != nil {
			log.Fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func serve(cfg *config.Config) error {
	s, err := web.New(cfg)
	if err != nil {
		return err
	}

	var subs marquee.Subscriptions
	defer subs.Close()
	if cfg.Path != "" {
		unwatch, err := config.Watch(cfg.Path, func(next *config.Config, err error) {
			if err != nil {
				log.Printf("config reload: %v", err)
				return
			}
			mc, err := next.Marquee.Build()
			if err != nil {
				log.Printf("config reload: %v", err)
				return
			}
			s.SetMarquee(mc)
			log.Printf("marquee config reloaded from %s", cfg.Path)
		})
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			subs.Add(unwatch)
		}
	}

	return s.Run()
}
