// Command matchd hosts or joins a two-player networked match, wrapping
// the net package's Server/Client around the engine's Apply/Result
// command loop with a fixed-squad deployment.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/berserk-vibe/matchd/internal/match"
	"github.com/berserk-vibe/matchd/internal/matchserver"
	matchnet "github.com/berserk-vibe/matchd/internal/net"
)

var starterSquad = []string{
	"cyclops", "gnome_basaarg", "kobold", "korpit", "lovec_udachi", "kostedrobitel",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  matchd host [--port P] [--seed N]")
	fmt.Println("  matchd join [--addr ADDR]")
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	port := fs.String("port", "9000", "TCP port to listen on")
	seed := fs.Int64("seed", 1, "dice RNG seed")
	fs.Parse(args)

	sess := matchserver.NewSession(*seed)
	if err := deploy(sess.Engine); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srv := &matchnet.Server{Port: *port, Session: sess}
	fmt.Printf("hosting match %s on :%s, waiting for opponent...\n", sess.ID, *port)

	go runCommandPrompt(sess, 1)

	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	addr := fs.String("addr", "localhost:9000", "server address")
	fs.Parse(args)

	client := &matchnet.Client{Addr: *addr}
	if err := client.Dial(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	fmt.Println("connected, player 2")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		var wire matchnet.CommandWire
		if err := json.Unmarshal([]byte(line), &wire); err != nil {
			fmt.Fprintf(os.Stderr, "bad command: %v\n", err)
			continue
		}
		wire.Player = 2
		result, err := client.Send(wire)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		printResult(result)
	}
}

// runCommandPrompt reads newline-delimited JSON commands from stdin for
// the hosting player and applies them directly to the session, since the
// host is in-process with the engine (no socket hop needed for its own
// side).
func runCommandPrompt(sess *matchserver.Session, player int) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		var wire matchnet.CommandWire
		if err := json.Unmarshal([]byte(line), &wire); err != nil {
			fmt.Fprintf(os.Stderr, "bad command: %v\n", err)
			continue
		}
		wire.Player = player
		result := sess.Apply(wire.ToCommand())
		wireResult := matchnet.ToResultWire(result)
		printResult(wireResult)
	}
}

func printResult(r matchnet.ResultWire) {
	b, _ := json.Marshal(r)
	fmt.Println(string(b))
}

func deploy(e *match.Engine) error {
	if err := e.DeploySquad(1, starterSquad); err != nil {
		return err
	}
	if err := e.DeploySquad(2, starterSquad); err != nil {
		return err
	}
	e.RevealAndStart()
	return nil
}
