package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"sahamindo-chatbot/internal/chat"
	"sahamindo-chatbot/internal/logger"
	"sahamindo-chatbot/internal/store"
	"sahamindo-chatbot/internal/trace"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle      = lipgloss.NewStyle().Faint(true)
)

func main() {
	_ = godotenv.Load()

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	if err := ensureAPIKey(ctx, cfg); err != nil {
		logger.ErrorWithErr(ctx, "No usable language-model credential", err)
		os.Exit(1)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		cancel()
	}()

	composer := initializeComposer(ctx, cfg)
	runChat(ctx, cfg, composer)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := trace.Shutdown(shutdownCtx); err != nil {
		logger.Warn(ctx, "Tracer shutdown failed", "error", err)
	}
}

// runChat drives the interactive transcript loop. One message is fully
// answered before the next is read.
func runChat(ctx context.Context, cfg *store.Config, composer *chat.Composer) {
	fmt.Println(titleStyle.Render("Chatbot Pemantau Saham Indonesia"))
	greeting := cfg.Chat.Greeting
	if greeting == "" {
		greeting = "Tanyakan harga saham pada tanggal tertentu, misalnya: \"Harga BBCA pada 2025-09-01\"."
	}
	fmt.Println(hintStyle.Render(greeting))
	fmt.Println()

	session := chat.NewSession()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			logger.Info(ctx, "Shutting down")
			return
		default:
		}

		fmt.Print(userStyle.Render("Anda> "))
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "/keluar" || text == "/exit" {
			return
		}

		reply := composer.Compose(ctx, text, session)
		fmt.Println(assistantStyle.Render("Bot:"), reply)
		fmt.Println()
	}
}
