// Command matchsim runs a batch of AI-vs-AI matches and reports a win
// tally, for balance testing the content pack: flag-configured match
// count and seed, a setup+run loop, then a summary report.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/berserk-vibe/matchd/internal/aiadapter"
	"github.com/berserk-vibe/matchd/internal/match"
)

var starterSquad = []string{
	"cyclops", "gnome_basaarg", "kobold", "korpit", "lovec_udachi", "kostedrobitel",
}

func main() {
	matches := flag.Int("matches", 20, "number of AI-vs-AI matches to simulate")
	seed := flag.Int64("seed", 0, "base RNG seed (0 = use current time)")
	maxTurns := flag.Int("max-turns", 200, "turns after which an unfinished match counts as a draw")
	p1Policy := flag.String("p1", "rule_based", "player 1 policy: random or rule_based")
	p2Policy := flag.String("p2", "rule_based", "player 2 policy: random or rule_based")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	fmt.Println("=== Match Simulator ===")
	fmt.Printf("matches=%d seed=%d max_turns=%d p1=%s p2=%s\n\n", *matches, *seed, *maxTurns, *p1Policy, *p2Policy)

	wins := map[int]int{1: 0, 2: 0}
	draws := 0

	for i := 0; i < *matches; i++ {
		runSeed := *seed + int64(i)
		winner := runOne(runSeed, *maxTurns, newPolicy(*p1Policy, runSeed*2+1), newPolicy(*p2Policy, runSeed*2+2))
		if winner == 0 {
			draws++
		} else {
			wins[winner]++
		}
	}

	fmt.Println("+--------------------------------------+")
	fmt.Printf("| P1 wins: %-4d  P2 wins: %-4d  Draws: %-4d |\n", wins[1], wins[2], draws)
	fmt.Println("+--------------------------------------+")
}

func newPolicy(name string, seed int64) aiadapter.Policy {
	if name == "random" {
		return aiadapter.NewRandomPolicy(seed)
	}
	return aiadapter.RuleBasedPolicy{}
}

// runOne plays one match to completion (or max_turns) and returns the
// winning player, or 0 for a draw/timeout.
func runOne(seed int64, maxTurns int, p1, p2 aiadapter.Policy) int {
	e := match.NewEngine(seed)
	if err := e.DeploySquad(1, starterSquad); err != nil {
		fmt.Printf("setup error: %v\n", err)
		return 0
	}
	if err := e.DeploySquad(2, starterSquad); err != nil {
		fmt.Printf("setup error: %v\n", err)
		return 0
	}
	e.RevealAndStart()

	policies := map[int]aiadapter.Policy{1: p1, 2: p2}

	// TurnNumber advances once per full round; the step cap stops a policy
	// that keeps resubmitting a rejected command.
	for step := 0; step < maxTurns*100 && e.State.TurnNumber <= maxTurns; step++ {
		st := e.State
		if st.Winner != 0 {
			return st.Winner
		}
		actor := st.CurrentPlayer
		if st.Interaction != nil {
			actor = st.Interaction.ActingPlayer
		} else if st.PriorityPhase {
			actor = st.PriorityPlayer
		}
		cmd := policies[actor].NextCommand(e, actor)
		e.Apply(cmd)
	}
	return e.State.Winner
}
