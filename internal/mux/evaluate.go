package mux

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"pokerhand-evaluator/pkg/deck"
	"pokerhand-evaluator/pkg/handevaluator"
	"pokerhand-evaluator/pkg/showdown"
)

type evaluateRequest struct {
	Cards string `json:"cards"`
}

type evaluateResponse struct {
	Cards    string                    `json:"cards"`
	Category string                    `json:"category"`
	Rank     int                       `json:"rank"`
	Result   *handevaluator.HandResult `json:"result,omitempty"`
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		cards, err := deck.ParseCards(req.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		e, err := handevaluator.New(cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		resp := evaluateResponse{
			Cards: deck.CardsToString(cards),
		}

		category := e.FiveCardCategory()
		result, err := e.Result()
		switch {
		case err == nil:
			category = result.Category()
			resp.Result = &result
		case !errors.Is(err, handevaluator.ErrTooFewCards):
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		resp.Category = category.String()
		resp.Rank = int(category)

		logrus.WithFields(logrus.Fields{
			"cards":    resp.Cards,
			"category": resp.Category,
		}).Debug("evaluated hand")

		writeJSON(w, http.StatusOK, resp)
	}
}

type showdownSeatRequest struct {
	Name  string `json:"name"`
	Cards string `json:"cards"`
}

type showdownRequest struct {
	Board   string                `json:"board"`
	Players []showdownSeatRequest `json:"players"`
}

type showdownSeatResponse struct {
	Name   string                   `json:"name"`
	Cards  string                   `json:"cards"`
	Result handevaluator.HandResult `json:"result"`
}

type showdownResponse struct {
	HandID  string                 `json:"handId"`
	Board   string                 `json:"board"`
	Results []showdownSeatResponse `json:"results"`
	Winners []string               `json:"winners"`
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req showdownRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		board, err := deck.ParseCards(req.Board)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		seats := make([]showdown.Seat, len(req.Players))
		for i, player := range req.Players {
			hole, err := deck.ParseCards(player.Cards)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			seats[i] = showdown.Seat{Name: player.Name, Hole: hole}
		}

		res, err := showdown.Evaluate(board, seats)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		resp := showdownResponse{
			HandID:  res.HandID.String(),
			Board:   deck.CardsToString(res.Board),
			Results: make([]showdownSeatResponse, len(res.Seats)),
			Winners: res.WinnerNames(),
		}

		for i, seat := range res.Seats {
			resp.Results[i] = showdownSeatResponse{
				Name:   seat.Name,
				Cards:  deck.CardsToString(seat.Hole),
				Result: seat.Result,
			}
		}

		logrus.WithFields(logrus.Fields{
			"handId":  resp.HandID,
			"winners": resp.Winners,
		}).Info("showdown")

		writeJSON(w, http.StatusOK, resp)
	}
}
