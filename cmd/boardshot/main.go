package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/park285/cheese-termchess/internal/adapter/chesspresenter"
	"github.com/park285/cheese-termchess/internal/chess"
	"github.com/park285/cheese-termchess/internal/chessbuilder"
	appcfg "github.com/park285/cheese-termchess/internal/config"
	"github.com/park285/cheese-termchess/internal/obslog"
	"github.com/park285/cheese-termchess/internal/session"
	"github.com/park285/cheese-termchess/internal/snapshot"
)

func main() {
	out := flag.String("out", "board.png", "PNG output path")
	fen := flag.String("fen", "", "board placement in FEN (defaults to TERMCHESS_START_FEN or the standard setup)")
	sel := flag.String("select", "", "square to select before rendering, as file,rank")
	cur := flag.String("cursor", "", "cursor square after selecting, as file,rank")
	intents := flag.String("intents", "", "comma-separated intents applied last (up,down,left,right,confirm)")
	flag.Parse()

	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if *fen != "" {
		cfg.StartFEN = *fen
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = obslog.Close() }()

	deps, err := chessbuilder.New(cfg, obslog.L())
	if err != nil {
		log.Fatalf("chess init error: %v", err)
	}
	for _, w := range deps.Warnings {
		log.Println(w.Error())
	}

	sess := deps.Session
	if *sel != "" {
		sq, err := parseSquare(*sel)
		if err != nil {
			log.Fatalf("-select: %v", err)
		}
		if err := walk(sess, sq); err != nil {
			log.Fatalf("select: %v", err)
		}
		if _, err := sess.Apply(session.Confirm); err != nil {
			log.Fatalf("select: %v", err)
		}
	}
	if *cur != "" {
		sq, err := parseSquare(*cur)
		if err != nil {
			log.Fatalf("-cursor: %v", err)
		}
		if err := walk(sess, sq); err != nil {
			log.Fatalf("cursor: %v", err)
		}
	}

	if *intents != "" {
		seq, err := parseIntents(*intents)
		if err != nil {
			log.Fatalf("-intents: %v", err)
		}
		for _, in := range seq {
			if _, err := sess.Apply(in); err != nil {
				log.Fatalf("apply %s: %v", in, err)
			}
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	presenter := chesspresenter.NewPresenter(deps.Formatter, snapshot.NewPNGRenderer(f))
	renderErr := presenter.Present(sess.Frame())
	if err := f.Close(); err != nil && renderErr == nil {
		renderErr = err
	}
	if renderErr != nil {
		log.Fatalf("render: %v", renderErr)
	}

	fmt.Println(chess.EncodeFEN(sess.Board()))
	log.Printf("wrote %s", *out)
}

func parseSquare(s string) (chess.Square, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return chess.Square{}, fmt.Errorf("want file,rank, got %q", s)
	}
	var v [2]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < int(chess.MinCoord) || n > int(chess.MaxCoord) {
			return chess.Square{}, fmt.Errorf("coordinate %q out of range", p)
		}
		v[i] = uint8(n)
	}
	return chess.Sq(v[0], v[1]), nil
}

func parseIntents(s string) ([]session.Intent, error) {
	var out []session.Intent
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		in := session.ParseIntent(name)
		if in == session.IntentOther && name != "other" {
			return nil, fmt.Errorf("unknown intent %q", name)
		}
		out = append(out, in)
	}
	return out, nil
}

// walk drives the cursor to target with directional intents only.
func walk(sess *session.Session, target chess.Square) error {
	for sess.Cursor() != target {
		c := sess.Cursor()
		var in session.Intent
		switch {
		case c.File < target.File:
			in = session.CursorRight
		case c.File > target.File:
			in = session.CursorLeft
		case c.Rank < target.Rank:
			in = session.CursorDown
		default:
			in = session.CursorUp
		}
		if _, err := sess.Apply(in); err != nil {
			return err
		}
	}
	return nil
}
