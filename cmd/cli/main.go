package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fahicart/fahicart-web/config"
	"github.com/fahicart/fahicart-web/domain/contact"
	"github.com/fahicart/fahicart-web/internal/log"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "check-config":
		if !checkConfig(logger) {
			os.Exit(1)
		}
		return

	case "send-test":
		if err := sendTest(logger); err != nil {
			logger.Error("Test inquiry failed", "error", err.Error())
			os.Exit(1)
		}
		logger.Info("Test inquiry sent")
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

// checkConfig prints which settings are present. Secret values are never printed.
func checkConfig(logger *log.Logger) bool {
	ok := true

	mailConfig := config.NewMailConfig()
	if missing := mailConfig.MissingKeys(); len(missing) > 0 {
		fmt.Printf("mail:  NOT configured (missing %s)\n", strings.Join(missing, ", "))
		ok = false
	} else {
		fmt.Printf("mail:  configured (driver=%s, smtp=%s:%d)\n", mailConfig.Driver, mailConfig.Host, mailConfig.Port)
	}

	cacheConfig := config.NewCacheConfig()
	if !cacheConfig.IsConfigured() {
		fmt.Println("redis: not configured (in-memory rate limiting)")
	} else if cache, err := cacheConfig.NewCache(logger); err != nil {
		fmt.Printf("redis: unreachable (%v)\n", err)
		ok = false
	} else {
		fmt.Println("redis: reachable")
		_ = config.CloseCache(cache, logger)
	}

	contactConfig := config.NewContactConfig()
	fmt.Printf("contact limit: %d per %s\n", contactConfig.RateLimitRequests, contactConfig.RateLimitWindow)

	return ok
}

func sendTest(logger *log.Logger) error {
	mailConfig := config.NewMailConfig()
	contactConfig := config.NewContactConfig()

	factory := contact.NewContactServiceFactory(logger, contact.ControllerConfig{
		Mail:              mailConfig,
		Sender:            mailConfig.NewSender(logger),
		RateLimitRequests: contactConfig.RateLimitRequests,
		RateLimitWindow:   contactConfig.RateLimitWindow,
		SendTimeout:       mailConfig.SendTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	return factory.CreateService().SubmitInquiry(ctx, &contact.SubmitInquiryRequest{
		Name:    "Fahicart CLI",
		Email:   "cli@fahicart.local",
		Phone:   "0000000",
		Message: "This is a test inquiry sent from the fahicart-web CLI.",
	})
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check-config  Report which mail and Redis settings are configured")
	fmt.Println("  send-test     Send one test inquiry through the configured mail sender")
}
