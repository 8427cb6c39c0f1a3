package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"quoridor/internal/client"
	"quoridor/internal/config"
	"quoridor/internal/quoridor"
)

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.App{
		Name:      "quoridor-client",
		Usage:     "play Quoridor against the game server",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "API base URL",
				Value:   cfg.ServerURL,
				EnvVars: []string{"QUORIDOR_SERVER_URL"},
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "list the ids of NAME's last games and exit",
			},
			&cli.BoolFlag{
				Name:    "auto",
				Aliases: []string{"a"},
				Usage:   "let the local bot choose every move",
			},
		},
		Action: func(c *cli.Context) error {
			name := c.Args().First()
			if name == "" {
				return cli.Exit("missing player NAME", 2)
			}
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
			defer stop()

			api := client.New(c.String("server"), nil)
			if c.Bool("list") {
				ids, err := api.List(ctx, name)
				if err != nil {
					return fmt.Errorf("list games: %w", err)
				}
				for _, id := range ids {
					fmt.Println(id)
				}
				return nil
			}

			var bot *quoridor.Bot
			if c.Bool("auto") {
				bot = quoridor.NewBot(nil, cfg.Weights)
			}
			return play(ctx, api, name, bot)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("client exited")
	}
}

// play runs one match. Each move is first tried on a local copy of the
// state so obviously illegal input never reaches the server.
func play(ctx context.Context, api *client.Client, name string, bot *quoridor.Bot) error {
	id, state, err := api.Start(ctx, name)
	if err != nil {
		return fmt.Errorf("start match: %w", err)
	}
	log.Info().Str("match", id).Msg("match started")
	printState(state)

	in := bufio.NewScanner(os.Stdin)
	for {
		local, err := quoridor.FromState(state)
		if err != nil {
			return fmt.Errorf("server sent an invalid state: %w", err)
		}

		mv, err := nextMove(local, bot, in)
		if err != nil {
			return err
		}
		if err := local.Clone().Apply(1, mv); err != nil {
			fmt.Println("illegal move:", err)
			continue
		}

		next, err := api.Play(ctx, id, mv)
		var over *client.GameOverError
		var rejected *client.RejectedError
		switch {
		case errors.As(err, &over):
			printState(over.State)
			fmt.Printf("game over, %s wins\n", over.Winner)
			return nil
		case errors.As(err, &rejected):
			fmt.Println("server refused the move:", rejected.Message)
			continue
		case err != nil:
			return fmt.Errorf("play: %w", err)
		}
		state = next
		printState(state)
	}
}

func nextMove(g *quoridor.Game, bot *quoridor.Bot, in *bufio.Scanner) (quoridor.Move, error) {
	if bot != nil {
		mv, err := bot.Play(g.Clone(), 1)
		if err != nil {
			return quoridor.Move{}, fmt.Errorf("choose move: %w", err)
		}
		fmt.Println(">", mv)
		return mv, nil
	}
	for {
		fmt.Print("move (D x y | MH x y | MV x y)> ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return quoridor.Move{}, err
			}
			return quoridor.Move{}, errors.New("input closed")
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		mv, err := quoridor.ParseMove(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return mv, nil
	}
}

func printState(s quoridor.State) {
	js, _ := json.MarshalIndent(s, "", "  ")
	fmt.Println(string(js))
}
