package mcptools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/berserk-vibe/matchd/internal/aiadapter"
	"github.com/berserk-vibe/matchd/internal/match"
)

// activeSession is the singleton match session, one per stdio process.
var activeSession *Session

// RegisterTools adds the match tool surface to an MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startMatchTool(), handleStartMatch)
	s.AddTool(submitCommandTool(), handleSubmitCommand)
	s.AddTool(getMatchStateTool(), handleGetMatchState)
}

func startMatchTool() mcp.Tool {
	return mcp.NewTool("start_match",
		mcp.WithDescription("Start a new grid-combat match against a heuristic opponent. Returns the initial board state."),
		mcp.WithNumber("agent_player", mcp.Required(), mcp.Description("Which side the agent plays: 1 or 2")),
		mcp.WithNumber("seed", mcp.Description("Deterministic RNG seed for dice rolls")),
		mcp.WithString("opponent", mcp.Description("Opponent policy: 'random' or 'rule_based'")),
	)
}

func submitCommandTool() mcp.Tool {
	return mcp.NewTool("submit_command",
		mcp.WithDescription("Submit one command for the agent's side (MOVE, ATTACK, USE_ABILITY, USE_INSTANT, "+
			"PREPARE_FLYER_ATTACK, CONFIRM, CANCEL, CHOOSE_POSITION, CHOOSE_CARD, CHOOSE_AMOUNT, PASS_PRIORITY, SKIP, END_TURN). "+
			"The opponent's subsequent turns are played automatically; the response reflects state once control returns to the agent."),
		mcp.WithString("type", mcp.Required(), mcp.Description("Command kind, e.g. MOVE, ATTACK, END_TURN")),
		mcp.WithNumber("card_id", mcp.Description("Acting card's ID, where applicable")),
		mcp.WithNumber("position", mcp.Description("Target board position (0-29 ground, 30-39 flying zones)")),
		mcp.WithString("ability_id", mcp.Description("Ability ID for USE_ABILITY/USE_INSTANT")),
		mcp.WithString("option", mcp.Description("Instant option, e.g. atk_plus1")),
		mcp.WithNumber("amount", mcp.Description("Amount for CHOOSE_AMOUNT")),
		mcp.WithBoolean("accept", mcp.Description("Yes/no answer for CONFIRM")),
	)
}

func getMatchStateTool() mcp.Tool {
	return mcp.NewTool("get_match_state",
		mcp.WithDescription("Get the current board snapshot without submitting a command. Read-only."),
	)
}

func handleStartMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A match is already running. Only one at a time is supported."), nil
	}
	agentPlayer := request.GetInt("agent_player", 1)
	if agentPlayer != 1 && agentPlayer != 2 {
		return mcp.NewToolResultError("agent_player must be 1 or 2"), nil
	}
	seed := int64(request.GetInt("seed", 1))

	var opponent aiadapter.Policy
	switch request.GetString("opponent", "rule_based") {
	case "random":
		opponent = aiadapter.NewRandomPolicy(seed + 1)
	default:
		opponent = aiadapter.RuleBasedPolicy{}
	}

	sess, err := NewSession(seed, agentPlayer, opponent)
	if err != nil {
		return mcp.NewToolResultErrorf("failed to start match: %v", err), nil
	}
	activeSession = sess

	return mcp.NewToolResultText(marshalSnapshot(sess.Snapshot())), nil
}

func handleSubmitCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}
	cmd := match.Command{
		Kind:      match.Kind(request.GetString("type", "")),
		CardID:    request.GetInt("card_id", 0),
		Position:  request.GetInt("position", 0),
		AbilityID: request.GetString("ability_id", ""),
		Option:    request.GetString("option", ""),
		Amount:    request.GetInt("amount", 0),
		Accept:    request.GetBool("accept", false),
	}
	result := activeSession.Apply(cmd)
	if result.Snapshot != nil && result.Snapshot.Winner != 0 {
		defer func() { activeSession = nil }()
	}
	return mcp.NewToolResultText(marshalResult(result)), nil
}

func handleGetMatchState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No match is running."), nil
	}
	return mcp.NewToolResultText(marshalSnapshot(activeSession.Snapshot())), nil
}

func marshalSnapshot(snap *match.Snapshot) string {
	b, _ := json.Marshal(snap)
	return string(b)
}

func marshalResult(r match.Result) string {
	b, _ := json.Marshal(r)
	return string(b)
}
