package main

import (
	"fmt"
	"io"

	"vastra-store/internal/auth"
	"vastra-store/internal/booking"
	"vastra-store/internal/cart"
	"vastra-store/internal/catalog"
	"vastra-store/internal/config"
	"vastra-store/internal/drawer"
	"vastra-store/internal/session"
	"vastra-store/internal/storage"
)

// app owns one wired instance of every storefront component. The cart
// engine is constructed here once and handed to consumers explicitly;
// nothing reaches for it ambiently.
type app struct {
	kv      storage.Store
	gate    *session.Gate
	engine  *cart.Engine
	catalog catalog.Service
	auth    *auth.Client
	booking *booking.Client
	drawer  *drawer.Drawer
	out     io.Writer
}

// loginNavigator is the CLI's "redirect to login": it tells the user
// which command to run, since a terminal cannot navigate on its own.
type loginNavigator struct {
	out io.Writer
}

func (n loginNavigator) RedirectToLogin() {
	fmt.Fprintln(n.out, "Please sign in first: storefront login <email>")
	fmt.Fprintln(n.out, "Your action is saved and will run after you sign in.")
}

func newApp(cfg *config.Config, out io.Writer) *app {
	kv := storage.NewFileStore(cfg.ProfileDir)
	gate := session.NewGate(kv)
	engine := cart.NewEngine(cart.NewPersistence(kv), gate, loginNavigator{out: out})
	engine.Hydrate()

	var cat catalog.Service
	if cfg.APIBaseURL != "" {
		cat = catalog.NewClient(catalog.ClientOptions{
			BaseURL:    cfg.APIBaseURL,
			Timeout:    cfg.HTTPTimeout,
			RatePerSec: cfg.RatePerSec,
			RateBurst:  cfg.RateBurst,
		}, kv)
	} else {
		cat = catalog.NewSeedService()
	}

	authClient := auth.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, kv)
	authClient.SetLoginHook(engine.ReplayPending)

	return &app{
		kv:      kv,
		gate:    gate,
		engine:  engine,
		catalog: cat,
		auth:    authClient,
		booking: booking.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout),
		drawer:  drawer.New(engine, out),
		out:     out,
	}
}
