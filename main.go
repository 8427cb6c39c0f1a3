package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"quoridor/internal/config"
	"quoridor/internal/quoridor"
)

// Offline match against the bot in the terminal. The human is player 1.
func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	name := "You"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	g := quoridor.New(name, cfg.BotName)
	var rnd quoridor.Rand
	if cfg.BotSeed != 0 {
		rnd = rand.New(rand.NewSource(cfg.BotSeed))
	}
	bot := quoridor.NewBot(rnd, cfg.Weights)

	reader := bufio.NewReader(os.Stdin)
	turn := 1
	for g.Winner() == 0 {
		printState(g.State())

		if turn == 2 {
			mv, err := bot.Play(g, 2)
			if err != nil {
				log.Fatal().Err(err).Msg("bot could not move")
			}
			fmt.Printf("%s plays %v\n", cfg.BotName, mv)
			turn = 1
			continue
		}

		moves, _ := g.LegalPawnMoves(1)
		fmt.Printf("\nYour turn. Pawn moves: %v\n", moves)
		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil && strings.TrimSpace(line) == "" {
				fmt.Println("\nbye")
				return
			}
			mv, err := quoridor.ParseMove(line)
			if err != nil {
				fmt.Println("Bad input:", err)
				continue
			}
			if err := g.Apply(1, mv); err != nil {
				fmt.Println("Illegal move:", err)
				continue
			}
			break
		}
		turn = 2
	}

	fmt.Println("\nGame over!")
	printState(g.State())
	fmt.Printf("Winner: %s\n", g.WinnerName())
}

func printState(s quoridor.State) {
	js, _ := json.MarshalIndent(s, "", "  ")
	fmt.Println(string(js))
}
