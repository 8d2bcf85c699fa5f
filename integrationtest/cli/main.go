// Package main provides an interactive CLI for exercising the guardrail
// monitor against a hand-driven session event stream.
//
// Usage:
//
//	go run ./integrationtest/cli [config.yaml]
//
// Commands:
//
//	turn                start a new assistant turn
//	ok <tool>           record a successful tool call
//	fail <tool> <msg>   record a failing tool call
//	policy              show the resolved policy
//	q                   quit
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rickchristie/guardrail"
	"github.com/tmc/langchaingo/llms"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorDim    = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	policy, err := loadPolicy()
	if err != nil {
		return err
	}

	fmt.Printf("%sResolved policy: "+
		"maxConsecutiveToolErrors=%d maxToolCallsPerTurn=%d action=%s%s\n",
		colorDim,
		policy.MaxConsecutiveToolErrors,
		policy.MaxToolCallsPerTurn,
		policy.ToolErrorAction,
		colorReset)

	hub := guardrail.NewSessionHub()
	defer hub.Close()

	unsubscribe := guardrail.Monitor(guardrail.MonitorConfig{
		Session:        hub,
		RunID:          "cli",
		ToolGuardrails: policy,
		OnToolGuardrailTriggered: func(e *guardrail.ToolGuardrailEvent) {
			fmt.Printf("%s>>> GUARDRAIL %s: count=%d limit=%d "+
				"tool=%q error=%q action=%s%s\n",
				colorRed, e.Type, e.Count, e.Limit,
				e.ToolName, e.ErrorMessage, e.Action,
				colorReset)
		},
	})
	defer unsubscribe()

	rl, err := readline.New(colorCyan + "guardrail> " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit", "exit":
			return nil

		case "turn":
			hub.Publish(&guardrail.MessageStartEvent{
				Role: llms.ChatMessageTypeAI,
			})
			fmt.Printf("%snew assistant turn%s\n", colorDim, colorReset)

		case "ok":
			if len(fields) < 2 {
				fmt.Printf("%susage: ok <tool>%s\n", colorYellow, colorReset)
				continue
			}
			hub.Publish(&guardrail.ToolExecutionEndEvent{
				ToolName: fields[1],
				Result:   "ok",
			})
			fmt.Printf("%s%s succeeded%s\n", colorGreen, fields[1], colorReset)

		case "fail":
			if len(fields) < 2 {
				fmt.Printf("%susage: fail <tool> <message>%s\n",
					colorYellow, colorReset)
				continue
			}
			message := strings.Join(fields[2:], " ")
			hub.Publish(&guardrail.ToolExecutionEndEvent{
				ToolName: fields[1],
				IsError:  true,
				Result:   map[string]any{"error": message},
			})
			fmt.Printf("%s%s failed: %s%s\n",
				colorYellow, fields[1], message, colorReset)

		case "policy":
			fmt.Printf("maxConsecutiveToolErrors=%d "+
				"maxToolCallsPerTurn=%d action=%s\n",
				policy.MaxConsecutiveToolErrors,
				policy.MaxToolCallsPerTurn,
				policy.ToolErrorAction)

		default:
			fmt.Printf("%sunknown command %q "+
				"(turn | ok <tool> | fail <tool> <msg> | policy | q)%s\n",
				colorYellow, fields[0], colorReset)
		}
	}
}

// loadPolicy resolves the guardrail policy from an optional YAML config
// file passed as the first argument.
func loadPolicy() (guardrail.ToolGuardrailsResolved, error) {
	if len(os.Args) < 2 {
		return guardrail.ResolveToolGuardrails(nil), nil
	}
	cfg, err := guardrail.LoadConfig(os.Args[1])
	if err != nil {
		return guardrail.ToolGuardrailsResolved{}, err
	}
	return guardrail.ResolveToolGuardrails(cfg), nil
}
