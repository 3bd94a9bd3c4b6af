package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"pokerhand-evaluator/internal/config"
	"pokerhand-evaluator/internal/logging"
	"pokerhand-evaluator/pkg/deck"
	"pokerhand-evaluator/pkg/handevaluator"
	"pokerhand-evaluator/pkg/showdown"
)

var (
	cards   = flag.String("cards", "", "comma separated cards to evaluate, i.e., 14s,13s,12s,11s,10s")
	players = flag.Int("players", 0, "deal a hold'em showdown for this many players (overrides deal.players)")
	seed    = flag.Int64("seed", -1, "seed for the deal, 0 picks a random seed (overrides deal.seed)")
)

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := logging.Setup(cfg, os.Stderr); err != nil {
		logrus.WithError(err).Fatal("could not set up logging")
	}

	if *cards != "" {
		if _, err := evaluateHand(*cards); err != nil {
			logrus.WithError(err).Fatal("could not evaluate hand")
		}
		return
	}

	nPlayers := cfg.Deal.Players
	if *players > 0 {
		nPlayers = *players
	}

	dealSeed := cfg.Deal.Seed
	if *seed >= 0 {
		dealSeed = *seed
	}

	if err := dealShowdown(dealSeed, nPlayers); err != nil {
		logrus.WithError(err).Fatal("could not deal showdown")
	}
}

// evaluateHand logs the category of the hand, and the full result when there are enough cards
func evaluateHand(s string) (handevaluator.Category, error) {
	hand, err := deck.ParseCards(s)
	if err != nil {
		return handevaluator.HighCard, err
	}

	e, err := handevaluator.New(hand)
	if err != nil {
		return handevaluator.HighCard, err
	}

	log := logrus.WithField("cards", deck.CardsToString(hand))

	result, err := e.Result()
	if errors.Is(err, handevaluator.ErrTooFewCards) {
		category := e.FiveCardCategory()
		log.WithField("category", category.String()).Info("evaluated hand")
		return category, nil
	} else if err != nil {
		return handevaluator.HighCard, err
	}

	log.WithFields(logrus.Fields{
		"category": result.Category().String(),
		"result":   result.String(),
	}).Info("evaluated hand")
	return result.Category(), nil
}

func dealShowdown(seed int64, nPlayers int) error {
	res, hash, err := deal(seed, nPlayers)
	if err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{
		"handId": res.HandID.String(),
		"deck":   hash,
	})

	log.WithField("board", res.Board.String()).Info("dealt board")
	for _, seat := range res.Seats {
		log.WithFields(logrus.Fields{
			"player": seat.Name,
			"hole":   seat.Hole.String(),
			"result": seat.Result.String(),
		}).Info("showdown")
	}

	log.WithFields(logrus.Fields{
		"winners": res.WinnerNames(),
		"split":   res.IsSplit(),
	}).Info("pot awarded")

	return nil
}

// deal shuffles a fresh deck and evaluates a hold'em showdown
// It returns the showdown and the hash of the shuffled deck so the deal can be reproduced.
func deal(seed int64, nPlayers int) (*showdown.Result, string, error) {
	if nPlayers < 1 {
		return nil, "", fmt.Errorf("invalid number of players: %d", nPlayers)
	}

	d := deck.New()
	d.Shuffle(seed)
	hash := d.HashCode()

	names := make([]string, nPlayers)
	for i := range names {
		names[i] = fmt.Sprintf("player%d", i+1)
	}

	board, seats, err := showdown.Deal(d, names)
	if err != nil {
		return nil, "", err
	}

	res, err := showdown.Evaluate(board, seats)
	if err != nil {
		return nil, "", err
	}

	logrus.WithField("seed", d.GetSeed()).Debug("shuffled deck")
	return res, hash, nil
}
