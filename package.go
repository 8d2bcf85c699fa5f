// Package guardrail protects an agent runtime from runaway or looping tool
// use during a conversational turn.
//
// The engine watches a session's event stream and enforces two independent
// limits: a maximum number of tool invocations within one assistant turn,
// and a maximum number of consecutive identical tool failures across the
// whole run. When a limit is reached it emits exactly one
// [ToolGuardrailEvent] carrying a configured action (warn, escalate, abort)
// for the host to act on. The engine only classifies and signals; it never
// terminates the session itself.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/rickchristie/guardrail"
//	    "github.com/tmc/langchaingo/llms"
//	)
//
//	func main() {
//	    // 1. Resolve the policy from the host configuration. Missing or
//	    //    malformed fields silently resolve to safe defaults.
//	    cfg, _ := guardrail.LoadConfig("config.yaml")
//	    policy := guardrail.ResolveToolGuardrails(cfg)
//
//	    // 2. Wire the monitor to the session's event stream.
//	    hub := guardrail.NewSessionHub()
//	    unsubscribe := guardrail.Monitor(guardrail.MonitorConfig{
//	        Session:        hub,
//	        RunID:          "run-42",
//	        ToolGuardrails: policy,
//	        OnToolGuardrailTriggered: func(e *guardrail.ToolGuardrailEvent) {
//	            // Host policy: abort the run, inject a warning, escalate.
//	            fmt.Printf("%s (%d/%d) action=%s\n",
//	                e.Type, e.Count, e.Limit, e.Action)
//	        },
//	    })
//	    defer unsubscribe()
//
//	    // 3. Feed session lifecycle events as the run progresses.
//	    hub.Publish(&guardrail.MessageStartEvent{Role: llms.ChatMessageTypeAI})
//	    hub.Publish(&guardrail.ToolExecutionEndEvent{
//	        ToolName: "search",
//	        IsError:  true,
//	        Result:   map[string]any{"error": "permission denied"},
//	    })
//	}
//
// # Fire-Once Semantics
//
// A guardrail event of a given kind fires on the call that first brings
// the relevant counter to its configured limit, not on every subsequent
// call while still at or above it. The budget breach re-arms when a new
// assistant turn resets the counter; the consecutive-error breach re-arms
// when the failure identity changes (a different tool or a different
// normalized error message).
//
// # Error Identity
//
// Two failures are "the same" when the tool name matches and the error
// messages normalize to the same key: trimmed, truncated to 500
// characters, lowercased. See [NormalizeErrorKey]. Successful calls are
// invisible to the streak; only the per-turn budget counts them.
//
// # Concurrency
//
// The engine is pure in-memory bookkeeping plus a synchronous callback.
// One monitor owns its state exclusively and relies on the session
// delivering events in order, handlers running to completion before the
// next event. [SessionHub] provides exactly that contract.
package guardrail
