package net

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/berserk-vibe/matchd/internal/match"
	"github.com/berserk-vibe/matchd/internal/matchserver"
)

// Server hosts a match for one remote TCP client: accepts exactly one
// joining connection, performs the content-hash handshake, then relays
// that client's commands (as player 2) into the shared session and
// streams back results; the host plays through the session in-process. The network transport serializes commands and events as
// bytes; the engine itself never touches I/O.
type Server struct {
	Port    string
	Session *matchserver.Session
}

// Run listens, accepts one opponent connection, and serves commands from
// it until the match ends or the connection closes.
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("net: listen: %w", err)
	}
	defer ln.Close()

	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("net: accept: %w", err)
	}
	defer conn.Close()

	return s.serveConn(conn, 2)
}

func (s *Server) serveConn(conn net.Conn, player int) error {
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	var hello Envelope
	if err := dec.Decode(&hello); err != nil {
		return fmt.Errorf("net: read hello: %w", err)
	}
	if err := matchserver.VerifyHandshake(hello.ContentHash); err != nil {
		enc.Encode(Envelope{Type: "hello_ack", Accepted: false, Reason: err.Error()})
		return err
	}
	enc.Encode(Envelope{Type: "hello_ack", Accepted: true, Player: player})

	for {
		var in Envelope
		if err := dec.Decode(&in); err != nil {
			return err
		}
		if in.Type != "command" || in.Command == nil {
			continue
		}
		cmd := in.Command.ToCommand()
		cmd.Player = player
		result := s.Session.Apply(cmd)
		wire := ToResultWire(result)
		if err := enc.Encode(Envelope{Type: "result", Result: &wire}); err != nil {
			return err
		}
		if result.Snapshot != nil && result.Snapshot.Phase == "GAME_OVER" {
			return nil
		}
	}
}

// Client connects to a hosted match as the joining player.
type Client struct {
	Addr string
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
}

// Dial connects and performs the content-hash handshake.
func (c *Client) Dial() error {
	conn, err := net.Dial("tcp", c.Addr)
	if err != nil {
		return fmt.Errorf("net: dial: %w", err)
	}
	c.conn = conn
	c.enc = json.NewEncoder(conn)
	c.dec = json.NewDecoder(conn)

	if err := c.enc.Encode(Envelope{Type: "hello", ContentHash: match.ContentHash()}); err != nil {
		return err
	}
	var ack Envelope
	if err := c.dec.Decode(&ack); err != nil {
		return err
	}
	if !ack.Accepted {
		return fmt.Errorf("net: handshake rejected: %s", ack.Reason)
	}
	return nil
}

// Send submits one command and waits for its result.
func (c *Client) Send(cmd CommandWire) (ResultWire, error) {
	if err := c.enc.Encode(Envelope{Type: "command", Command: &cmd}); err != nil {
		return ResultWire{}, err
	}
	var out Envelope
	if err := c.dec.Decode(&out); err != nil {
		return ResultWire{}, err
	}
	if out.Result == nil {
		return ResultWire{}, fmt.Errorf("net: expected result envelope")
	}
	return *out.Result, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
