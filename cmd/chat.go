package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/israyx/sintrade/internal/engine"
	"github.com/israyx/sintrade/internal/gateway"
	"github.com/israyx/sintrade/internal/session"
	"github.com/israyx/sintrade/internal/store"
)

// localUserID identifies the single REPL user in the session store.
const localUserID = 1

var (
	botStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	userStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Italic(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive learning conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

// runChat wires the content gateway and request log, then runs the REPL.
// A missing API key degrades to the curated bank instead of failing.
func runChat(cmd *cobra.Command) error {
	_ = godotenv.Load()

	st, err := store.Open(resolveDBPath(cmd))
	if err != nil {
		return fmt.Errorf("open request log: %w", err)
	}
	defer st.Close()

	cfg := gateway.ConfigFromEnv()
	var source engine.ContentSource
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "AI content not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to the built-in curriculum.")
	} else {
		chat, err := gateway.NewOpenAIChat(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "AI content not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to the built-in curriculum.")
		} else {
			source = gateway.New(gateway.WithLogging(chat, st), nil, cfg)
		}
	}

	admin, _ := cmd.Flags().GetBool("admin")
	eng := engine.New(session.NewStore(), source)
	return runREPL(cmd.Context(), eng, admin)
}

func runREPL(ctx context.Context, eng *engine.Engine, admin bool) error {
	reply := eng.Handle(ctx, localUserID, engine.Event{Kind: engine.EventStart})
	printReply(reply)
	fmt.Println(dimStyle.Render("Type /help for commands, /exit to leave."))

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)
	for {
		fmt.Print(userStyle.Render("you> "))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/exit" || line == "/quit" {
			return nil
		}
		printReply(eng.Handle(ctx, localUserID, parseLine(line, admin)))
	}
}

// parseLine maps a REPL line onto an engine event. Slash commands are
// explicit actions; everything else is free text.
func parseLine(line string, admin bool) engine.Event {
	if !strings.HasPrefix(line, "/") {
		return engine.Event{Kind: engine.EventFreeText, Text: line}
	}

	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return engine.Event{Kind: engine.EventHelp}
	}
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch strings.ToLower(fields[0]) {
	case "help":
		return engine.Event{Kind: engine.EventHelp}
	case "lesson":
		return engine.Event{Kind: engine.EventLessonRequest}
	case "complete":
		return engine.Event{Kind: engine.EventLessonComplete}
	case "simulate":
		return engine.Event{Kind: engine.EventSimulationRequest}
	case "challenge":
		return engine.Event{Kind: engine.EventDailyChallengeRequest}
	case "ask":
		return engine.Event{Kind: engine.EventAssistantRequest}
	case "back":
		return engine.Event{Kind: engine.EventAssistantQuit}
	case "status":
		return engine.Event{Kind: engine.EventStatus}
	case "kill":
		return engine.Event{Kind: engine.EventKill}
	case "reset":
		return engine.Event{Kind: engine.EventReset}
	case "lang":
		return engine.Event{Kind: engine.EventLanguageSelect, Value: arg}
	case "set":
		value := ""
		if len(fields) > 2 {
			value = fields[2]
		}
		return engine.Event{Kind: engine.EventAdminSet, Setting: arg, Value: value, Admin: admin}
	}
	return engine.Event{Kind: engine.EventFreeText, Text: line}
}

func printReply(r engine.Reply) {
	fmt.Println(botStyle.Render(r.Text))
	fmt.Println()
}
